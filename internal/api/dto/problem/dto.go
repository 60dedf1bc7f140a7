package problem

type GenerateRequest struct {
	UseDecimals bool `json:"use_decimals"` // Значения с одним знаком после запятой
}

type ProblemResponse struct {
	Slope       float64 `json:"slope"`
	Intercept   float64 `json:"intercept"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	UseDecimals bool    `json:"use_decimals"`
	Equation    string  `json:"equation"` // "y = 2x + 3"
	Point       string  `json:"point"`    // "(4, 11)"
}

type SolutionResponse struct {
	Visible     bool    `json:"visible"`
	OnLine      bool    `json:"on_line"`
	CalculatedY float64 `json:"calculated_y"`
	Verdict     string  `json:"verdict"`
	GraphURL    string  `json:"graph_url,omitempty"` // Только когда решение открыто
}

type StatsResponse struct {
	TotalProblems int     `json:"total_problems"`
	OnLine        int     `json:"on_line"`
	Decimals      int     `json:"decimals"`
	OnLineShare   float64 `json:"on_line_share"`
	Target        float64 `json:"target"`
	WindowShare   float64 `json:"window_share"`
	WindowSize    int     `json:"window_size"`
	Drifting      bool    `json:"drifting"`
}
