package middleware

import (
	"net/http"

	"github.com/GritX-web/GritX/internal/api/handlers"
	"github.com/GritX-web/GritX/internal/authz"
)

// Заголовки, которыми внешний шлюз передает личность запрашивающего
const (
	headerUserID    = "X-User-ID"
	headerUserEmail = "X-User-Email"
	headerUserPhone = "X-User-Phone"
	headerUserRole  = "X-User-Role"
)

// Auth извлекает личность пользователя из заголовков запроса и кладет её в
// контекст. Запросы без X-User-ID отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, handlers.CodeForbidden, "missing user identity")
			return
		}

		identity := authz.Identity{
			UserID: userID,
			Email:  r.Header.Get(headerUserEmail),
			Phone:  r.Header.Get(headerUserPhone),
			Role:   r.Header.Get(headerUserRole),
		}

		next.ServeHTTP(w, r.WithContext(authz.WithIdentity(r.Context(), identity)))
	})
}

// RequireAdmin пропускает только администраторов согласно политике доступа.
// Должен стоять после Auth.
func RequireAdmin(policy *authz.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authz.IdentityFromContext(r.Context())
			if !ok || !policy.IsAdmin(identity) {
				handlers.RespondForbidden(w, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
