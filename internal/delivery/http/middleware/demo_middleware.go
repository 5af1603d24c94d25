package middleware

import (
	"net/http"

	"patients-care-api/pkg/apperror"
	"patients-care-api/pkg/response"

	"github.com/google/uuid"
)

var errDemoAccount = apperror.BadRequest(apperror.KeyDemoAccount)

// DemoGuard rejects requests made by the shared demo doctor account
type DemoGuard struct {
	demoID    uuid.UUID
	responder *response.Responder
}

// NewDemoGuard builds a guard for demoID; a nil id disables it
func NewDemoGuard(demoID uuid.UUID, responder *response.Responder) *DemoGuard {
	return &DemoGuard{
		demoID:    demoID,
		responder: responder,
	}
}

// Block must run after Authenticate
func (g *DemoGuard) Block(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentityFromContext(r.Context())
		if ok && g.demoID != uuid.Nil && identity.UserID == g.demoID {
			g.responder.Error(w, r, errDemoAccount)
			return
		}
		next.ServeHTTP(w, r)
	})
}
