package widget

import "sync"

// sessionLocks последовательно выполняет изменения одной сессии.
// Запись удаляется, когда её никто не держит и не ждёт.
type sessionLocks struct {
	mtx   sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mtx  sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// lock захватывает блокировку сессии и возвращает функцию освобождения
func (l *sessionLocks) lock(sessionID string) func() {
	l.mtx.Lock()
	sl, ok := l.locks[sessionID]
	if !ok {
		sl = &sessionLock{}
		l.locks[sessionID] = sl
	}
	sl.refs++
	l.mtx.Unlock()

	sl.mtx.Lock()

	return func() {
		sl.mtx.Unlock()

		l.mtx.Lock()
		sl.refs--
		if sl.refs == 0 {
			delete(l.locks, sessionID)
		}
		l.mtx.Unlock()
	}
}

// size число сессий с активной блокировкой
func (l *sessionLocks) size() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.locks)
}
