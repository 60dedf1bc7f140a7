package repository

import (
	"context"
	"errors"
	"linecheck/internal/model"
	repoModel "linecheck/internal/repository/stats_repo/model"
)

// ErrSessionNotFound сессии нет или она истекла
var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	GetSession(ctx context.Context, id string) (*model.Session, error)
	SaveSession(ctx context.Context, session *model.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type StatsRepository interface {
	Stats() repoModel.GeneratorStats
	Record(onLine, decimals bool)
}
