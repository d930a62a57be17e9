package middleware

import (
	"context"
	"log"
	"net/http"

	"socialnet/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const (
	userIDKey   contextKey = "userID"
	usernameKey contextKey = "username"
)

// SessionCookieName - имя cookie с подписанным токеном сессии
const SessionCookieName = "session_token"

// UserIDFromContext возвращает личность запроса, установленную SessionMiddleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

// WithIdentity кладет личность в контекст. Используется в SessionMiddleware и
// в тестах обработчиков.
func WithIdentity(ctx context.Context, userID int64, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, usernameKey, username)
}

// SessionMiddleware разбирает cookie сессии и кладет личность в контекст
// ровно один раз на запрос. Ошибки здесь не пишутся: запрос без личности
// проходит дальше, решение принимает проверка доступа в сервисе.
func SessionMiddleware(authService service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := authService.ResolveSession(r.Context(), cookie.Value)
			if err != nil {
				// просроченный или отозванный токен равен его отсутствию
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithIdentity(r.Context(), session.UserID, session.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s, RemoteAddr: %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
