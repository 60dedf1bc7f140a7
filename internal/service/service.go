package service

import (
	"context"
	"errors"
	"linecheck/internal/model"
	repoModel "linecheck/internal/repository/stats_repo/model"
	"linecheck/internal/surface"
)

// ErrGraphHidden график запрошен, когда панель решения скрыта
var ErrGraphHidden = errors.New("graph is hidden")

type ProblemService interface {
	Generate(useDecimals bool) model.Problem
	Check(p model.Problem) model.Solution
}

type GraphService interface {
	Render(p model.Problem, dst surface.Surface)
	RenderPNG(p model.Problem) ([]byte, error)
}

type WidgetService interface {
	Current(ctx context.Context, sessionID string) (*model.Session, error)
	Generate(ctx context.Context, sessionID string, useDecimals bool) (*model.Session, error)
	ToggleDecimals(ctx context.Context, sessionID string) (*model.Session, error)
	ToggleSolution(ctx context.Context, sessionID string) (*model.Session, error)
	Graph(ctx context.Context, sessionID string) ([]byte, error)
	Stats() repoModel.GeneratorStats
}
