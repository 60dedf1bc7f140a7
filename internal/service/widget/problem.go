package widget

import (
	"context"
	"errors"
	"linecheck/internal/model"
	"linecheck/internal/repository"
	repoModel "linecheck/internal/repository/stats_repo/model"
)

// Current возвращает сессию. Новая сессия сразу получает задачу в целых числах.
func (s *serv) Current(ctx context.Context, sessionID string) (*model.Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	return s.current(ctx, sessionID)
}

// Generate заменяет задачу новой, скрывает решение и график
func (s *serv) Generate(ctx context.Context, sessionID string, useDecimals bool) (*model.Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	return s.generate(ctx, sessionID, useDecimals)
}

// ToggleDecimals переключает режим десятичных дробей и генерирует новую задачу
func (s *serv) ToggleDecimals(ctx context.Context, sessionID string) (*model.Session, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	session, err := s.current(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.generate(ctx, sessionID, !session.Problem.UseDecimals)
}

// Stats возвращает статистику генератора по всем сессиям
func (s *serv) Stats() repoModel.GeneratorStats {
	return s.stats.Stats()
}

// current вызывается под блокировкой сессии
func (s *serv) current(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, repository.ErrSessionNotFound) {
		return nil, err
	}

	return s.generate(ctx, sessionID, false)
}

// generate вызывается под блокировкой сессии
func (s *serv) generate(ctx context.Context, sessionID string, useDecimals bool) (*model.Session, error) {
	session := &model.Session{
		ID:      sessionID,
		Problem: s.problems.Generate(useDecimals),
	}

	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	s.stats.Record(s.problems.Check(session.Problem).OnLine, useDecimals)
	return session, nil
}
