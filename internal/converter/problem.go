package converter

import (
	dto "linecheck/internal/api/dto/problem"
	"linecheck/internal/model"
	repoModel "linecheck/internal/repository/stats_repo/model"
	"linecheck/internal/service/problem"
)

func ToProblemResponse(p model.Problem) dto.ProblemResponse {
	return dto.ProblemResponse{
		Slope:       p.Slope,
		Intercept:   p.Intercept,
		X:           p.X,
		Y:           p.Y,
		UseDecimals: p.UseDecimals,
		Equation:    problem.Equation(p),
		Point:       problem.Point(p),
	}
}

func ToSolutionResponse(s model.Session, graphURL string) dto.SolutionResponse {
	res := dto.SolutionResponse{
		Visible:     s.SolutionVisible,
		OnLine:      s.Solution.OnLine,
		CalculatedY: s.Solution.CalculatedY,
		Verdict:     s.Solution.Verdict,
	}
	if s.SolutionVisible {
		res.GraphURL = graphURL
	}
	return res
}

func ToStatsResponse(s repoModel.GeneratorStats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalProblems: s.TotalProblems,
		OnLine:        s.OnLine,
		Decimals:      s.Decimals,
		OnLineShare:   s.OnLineShare,
		Target:        s.Target,
		WindowShare:   s.WindowShare,
		WindowSize:    s.WindowSize,
		Drifting:      s.Drifting,
	}
}
