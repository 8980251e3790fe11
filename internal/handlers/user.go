package handlers

import (
	"context"
	"net/http"
	"strings"
)

type userKey struct{}

// WithUser resolves the caller from the X-User-ID header or the user query
// parameter. Requests naming neither act as defaultUser.
func WithUser(defaultUser string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get("X-User-ID"))
		if id == "" {
			id = strings.TrimSpace(r.URL.Query().Get("user"))
		}
		if id == "" {
			id = defaultUser
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, id)))
	})
}

func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userKey{}).(string)
	return id
}
