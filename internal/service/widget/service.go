package widget

import (
	"linecheck/internal/repository"
	"linecheck/internal/service"
)

type serv struct {
	problems service.ProblemService
	graphs   service.GraphService
	repo     repository.SessionRepository
	stats    repository.StatsRepository

	// Чтение, изменение и запись одной сессии не пересекаются
	locks *sessionLocks
}

// NewWidgetService Создать сервис виджета: задача, решение и график для каждой сессии
func NewWidgetService(
	problems service.ProblemService,
	graphs service.GraphService,
	repo repository.SessionRepository,
	stats repository.StatsRepository,
) service.WidgetService {
	return &serv{
		problems: problems,
		graphs:   graphs,
		repo:     repo,
		stats:    stats,
		locks:    newSessionLocks(),
	}
}
