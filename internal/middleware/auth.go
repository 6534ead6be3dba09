package middleware

import (
	"context"
	"net/http"
	"strings"

	"Bloglist/internal/auth"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

// WithAuth извлекает bearer-токен из заголовка Authorization и, если токен
// валиден, кладёт идентификатор и имя пользователя в контекст запроса.
// Отсутствующий или невалидный токен не является ошибкой на этом этапе:
// запрос продолжается анонимно, а хендлеры, требующие identity, отвечают 401.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(token, secret)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			ctx = context.WithValue(ctx, usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken достаёт токен из "Authorization: Bearer <token>".
// Префикс "bearer" сравнивается без учёта регистра.
func bearerToken(r *http.Request) string {
	authorization := r.Header.Get("Authorization")
	if len(authorization) > 7 && strings.EqualFold(authorization[:7], "bearer ") {
		return authorization[7:]
	}
	return ""
}

// GetUserIDFromContext возвращает идентификатор аутентифицированного пользователя.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// GetUsernameFromContext возвращает имя аутентифицированного пользователя.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok && name != ""
}
