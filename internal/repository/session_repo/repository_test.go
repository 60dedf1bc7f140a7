package session_repo

import (
	"context"
	"linecheck/internal/model"
	"linecheck/internal/repository"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRepository(time.Hour, 10)

	s := &model.Session{ID: "a", Problem: model.Problem{Slope: 2, Intercept: 3, X: 4, Y: 11}}
	require.NoError(t, r.SaveSession(ctx, s))
	assert.False(t, s.UpdatedAt.IsZero())

	got, err := r.GetSession(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, s.Problem, got.Problem)

	// Изменение копии не затрагивает хранилище
	got.SolutionVisible = true
	again, err := r.GetSession(ctx, "a")
	require.NoError(t, err)
	assert.False(t, again.SolutionVisible)
}

func TestGetMissing(t *testing.T) {
	_, err := NewSessionRepository(time.Hour, 10).GetSession(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSessionExpires(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := newRepo(time.Minute, 10, c.now)

	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "a"}))

	c.t = c.t.Add(2 * time.Minute)
	_, err := r.GetSession(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	// Пока есть место, истёкшие сессии не вычищаются
	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "b"}))
	assert.Len(t, r.sessions, 2)
}

func TestPurgeExpiredWhenFull(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := newRepo(time.Minute, 2, c.now)

	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "a"}))
	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "b"}))

	c.t = c.t.Add(30 * time.Second)
	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "b"}))

	// "a" истекла, "b" обновлена: место освобождается без вытеснения живой сессии
	c.t = c.t.Add(45 * time.Second)
	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "c"}))

	assert.Len(t, r.sessions, 2)
	_, err := r.GetSession(ctx, "b")
	assert.NoError(t, err)
	_, err = r.GetSession(ctx, "c")
	assert.NoError(t, err)
}

func TestEvictOldestWhenFull(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	r := newRepo(0, 2, c.now)

	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "a"}))
	c.t = c.t.Add(time.Second)
	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "b"}))
	c.t = c.t.Add(time.Second)
	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "c"}))

	_, err := r.GetSession(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = r.GetSession(ctx, "c")
	assert.NoError(t, err)
	assert.Len(t, r.sessions, 2)
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRepository(time.Hour, 10)

	require.NoError(t, r.SaveSession(ctx, &model.Session{ID: "a"}))
	require.NoError(t, r.DeleteSession(ctx, "a"))

	_, err := r.GetSession(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
