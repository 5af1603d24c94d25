package middleware

import (
	"net/http"
	"slices"

	"patients-care-api/internal/domain/entity"
	"patients-care-api/pkg/apperror"
)

var errInvalidAuthorization = apperror.Forbidden(apperror.KeyInvalidAuthorization)

// RequireRole creates a middleware that checks if the user has any of the required roles.
// Role is read from context (set by Authenticate from JWT claims)
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				m.responder.Error(w, r, errInvalidAuthentication)
				return
			}

			if !slices.Contains(roles, identity.Role) {
				m.responder.Error(w, r, errInvalidAuthorization)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func (m *AuthMiddleware) RequireDoctor(next http.Handler) http.Handler {
	return m.RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func (m *AuthMiddleware) RequirePatient(next http.Handler) http.Handler {
	return m.RequireRole(entity.RolePatient)(next)
}
