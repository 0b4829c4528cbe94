package middleware

import (
	"net/http"
	"strings"

	"truedoc-admin/internal/domain/entity"
	"truedoc-admin/internal/service"
	"truedoc-admin/internal/usecase"
	"truedoc-admin/pkg/response"

	"github.com/sirupsen/logrus"
)

type AuthMiddleware struct {
	log      *logrus.Logger
	identity service.IdentityService
	gate     usecase.AccessGate
}

func NewAuthMiddleware(log *logrus.Logger, identity service.IdentityService, gate usecase.AccessGate) *AuthMiddleware {
	return &AuthMiddleware{
		log:      log,
		identity: identity,
		gate:     gate,
	}
}

// Authenticate requires a live session and stores it in the request context.
// It does not check moderator rights.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(w, r)
		if !ok {
			return
		}

		session, err := m.identity.CurrentSession(r.Context(), token)
		if err != nil {
			response.ServiceUnavailable(w, "Failed to validate session")
			return
		}
		if session == nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := entity.ContextWithSession(r.Context(), session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireModerator runs the access gate on every request. Denied sessions are already
// signed out by the gate when the response is written.
func (m *AuthMiddleware) RequireModerator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(w, r)
		if !ok {
			return
		}

		decision, _ := m.gate.Check(r.Context(), token)
		if !decision.Authorized() {
			m.deny(w, decision)
			return
		}

		ctx := entity.ContextWithSession(r.Context(), decision.Session)
		ctx = usecase.ContextWithAccessDecision(ctx, decision)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) deny(w http.ResponseWriter, decision *usecase.AccessDecision) {
	var reason usecase.DenialReason
	if decision != nil {
		reason = decision.Reason
	}

	switch reason {
	case usecase.DenialLookupFailed:
		response.ServiceUnavailable(w, "Could not verify moderator access, please retry")
	case usecase.DenialNoRecord, usecase.DenialNotModerator:
		m.log.Infof("Denied non-moderator access: %s", reason)
		response.Forbidden(w, "Access restricted to moderators")
	default:
		response.Unauthorized(w, "Invalid or expired token")
	}
}

// bearerToken extracts the token from "Bearer <token>" and writes a 401 when it is missing
func bearerToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		response.Unauthorized(w, "Authorization header is required")
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		response.Unauthorized(w, "Invalid authorization header format")
		return "", false
	}

	return parts[1], true
}
