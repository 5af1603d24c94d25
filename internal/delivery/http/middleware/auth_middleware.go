package middleware

import (
	"context"
	"net/http"
	"strings"

	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/service"
	"patients-care-api/pkg/apperror"
	"patients-care-api/pkg/jwt"
	"patients-care-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenIDKey  contextKey = "token_id"
)

var errInvalidAuthentication = apperror.Unauthenticated(apperror.KeyInvalidAuthentication)

type AuthMiddleware struct {
	log        *logrus.Logger
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
	responder  *response.Responder
}

func NewAuthMiddleware(log *logrus.Logger, jwtService *jwt.JWTService, tokenStore service.TokenStore, responder *response.Responder) *AuthMiddleware {
	return &AuthMiddleware{
		log:        log,
		jwtService: jwtService,
		tokenStore: tokenStore,
		responder:  responder,
	}
}

// Authenticate requires a live Bearer access token and stores the caller's identity on the request context
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			m.responder.Error(w, r, errInvalidAuthentication)
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.responder.Error(w, r, errInvalidAuthentication)
			return
		}

		claims, err := m.jwtService.ValidateAccessToken(parts[1])
		if err != nil {
			m.responder.Error(w, r, errInvalidAuthentication)
			return
		}

		// Revoked tokens are gone from the store
		exists, err := m.tokenStore.Exists(r.Context(), jwt.AccessToken, claims.UserID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to check access token: %+v", err)
			m.responder.Error(w, r, err)
			return
		}
		if !exists {
			m.responder.Error(w, r, errInvalidAuthentication)
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, claims.Identity())
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext extracts the authenticated identity from context
func GetIdentityFromContext(ctx context.Context) (entity.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(entity.Identity)
	return identity, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
