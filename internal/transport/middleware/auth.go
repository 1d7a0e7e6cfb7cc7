package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

// Auth puts the bearer's user ID and token role into the request context.
// Requests without a bearer token pass through anonymously and an invalid
// token is rejected with 401. A role the service does not know is read as
// public, so a token can never grant more than reading.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeError(w, r, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, knownRole(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func knownRole(role string) string {
	switch role {
	case ctxutil.RoleSuperAdmin, ctxutil.RoleAdmin, ctxutil.RolePublic:
		return role
	default:
		return ctxutil.RolePublic
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
