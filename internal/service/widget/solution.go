package widget

import (
	"context"
	"errors"
	"fmt"
	"linecheck/internal/model"
	"linecheck/internal/repository"
	"linecheck/internal/service"
)

// ToggleSolution показывает или скрывает решение.
// График рисуется только при переходе в видимое состояние, при скрытии он просто сбрасывается.
func (s *serv) ToggleSolution(ctx context.Context, sessionID string) (*model.Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Solution = s.problems.Check(session.Problem)
	session.SolutionVisible = !session.SolutionVisible

	if session.SolutionVisible {
		graph, err := s.graphs.RenderPNG(session.Problem)
		if err != nil {
			return nil, fmt.Errorf("render graph: %w", err)
		}
		session.Graph = graph
	} else {
		session.Graph = nil
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Graph возвращает PNG, нарисованный при последнем открытии решения.
// Неизвестная сессия не создаётся: для неё графика просто нет.
func (s *serv) Graph(ctx context.Context, sessionID string) ([]byte, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, service.ErrGraphHidden
		}
		return nil, err
	}

	if !session.SolutionVisible || session.Graph == nil {
		return nil, service.ErrGraphHidden
	}
	return session.Graph, nil
}
