package middleware

import (
	"net/http"

	"sante-backend/internal/domain/entity"
	"sante-backend/pkg/response"
)

// RequireRole allows the request through only when the authenticated
// user's role is one of the given roles. It must run after Authenticate.
func RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You do not have permission to access this resource")
		})
	}
}

// RequireStaff restricts access to clinic personnel.
func RequireStaff() func(http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse, entity.RoleReceptionist)
}

// RequireAdmin restricts access to administrators.
func RequireAdmin() func(http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)
}
