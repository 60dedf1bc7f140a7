package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureSessionID(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := SessionIDFromContext(r.Context())
		if ok {
			*got = id
		}
	})
}

func TestSessionIssuesCookie(t *testing.T) {
	var got string
	rec := httptest.NewRecorder()

	Session(captureSessionID(&got)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, cookies[0].Value, got)
	assert.True(t, cookies[0].HttpOnly)

	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestSessionKeepsExistingCookie(t *testing.T) {
	var got string
	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: id})
	rec := httptest.NewRecorder()

	Session(captureSessionID(&got)).ServeHTTP(rec, req)

	assert.Equal(t, id, got)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionReplacesGarbageCookie(t *testing.T) {
	var got string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-uuid"})
	rec := httptest.NewRecorder()

	Session(captureSessionID(&got)).ServeHTTP(rec, req)

	assert.NotEqual(t, "not-a-uuid", got)
	assert.Len(t, rec.Result().Cookies(), 1)
}
