package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

const SessionCookieName = "session_id"

type ctxKey struct{}

// Session выдаёт cookie session_id, если её нет, и кладёт ID сессии в контекст
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(SessionCookieName); err == nil {
			if _, err := uuid.Parse(c.Value); err == nil {
				sessionID = c.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			setSessionIDCookie(w, sessionID)
		}

		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sessionID)))
	})
}

// WithSessionID кладёт ID сессии в контекст
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, sessionID)
}

// SessionIDFromContext достаёт ID сессии из контекста
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// setSessionIDCookie устанавливает cookie с session_id
func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   30 * 24 * 60 * 60, // 30 дней
	})
}
