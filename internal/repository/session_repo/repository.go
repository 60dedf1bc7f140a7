package session_repo

import (
	"context"
	"linecheck/internal/model"
	"linecheck/internal/repository"
	"log"
	"sync"
	"time"
)

// Реализация хранилища сессий в памяти
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]model.Session

	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

// NewSessionRepository Конструктор хранилища сессий.
// Сессии, не обновлявшиеся дольше ttl, не отдаются и удаляются, когда хранилище заполнено.
func NewSessionRepository(ttl time.Duration, maxSessions int) repository.SessionRepository {
	return newRepo(ttl, maxSessions, time.Now)
}

func newRepo(ttl time.Duration, maxSessions int, now func() time.Time) *repo {
	return &repo{
		sessions:    make(map[string]model.Session),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         now,
	}
}

// GetSession возвращает копию сессии
func (r *repo) GetSession(_ context.Context, id string) (*model.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[id]
	if !ok || r.expired(s) {
		return nil, repository.ErrSessionNotFound
	}
	return &s, nil
}

// SaveSession целиком заменяет сессию
func (r *repo) SaveSession(_ context.Context, session *model.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s := *session
	s.UpdatedAt = r.now()
	session.UpdatedAt = s.UpdatedAt

	// Истёкшие сессии вычищаются, только когда новой сессии не хватает места
	if _, exists := r.sessions[s.ID]; !exists && len(r.sessions) >= r.maxSessions {
		r.purge()
		if len(r.sessions) >= r.maxSessions {
			r.evictOldest()
		}
	}
	r.sessions[s.ID] = s

	return nil
}

func (r *repo) DeleteSession(_ context.Context, id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *repo) expired(s model.Session) bool {
	return r.ttl > 0 && r.now().Sub(s.UpdatedAt) > r.ttl
}

// purge удаляет истёкшие сессии. Вызывается под блокировкой на запись.
func (r *repo) purge() {
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
		}
	}
}

// evictOldest вытесняет самую давнюю сессию
func (r *repo) evictOldest() {
	var (
		oldestID string
		oldestAt time.Time
	)
	for id, s := range r.sessions {
		if oldestID == "" || s.UpdatedAt.Before(oldestAt) {
			oldestID, oldestAt = id, s.UpdatedAt
		}
	}
	if oldestID != "" {
		delete(r.sessions, oldestID)
		log.Printf("session limit %d reached, evicted %s", r.maxSessions, oldestID)
	}
}
