package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

type userToucher interface {
	Touch(ctx context.Context, u domain.User) (domain.UserRole, error)
}

// Identity records authenticated callers and replaces the token role in the
// context with the stored one. Anonymous requests pass through. When the
// user store is unavailable the caller is downgraded to the public role.
func Identity(users userToucher, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := ctxutil.UserIDFromCtx(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			role, err := users.Touch(r.Context(), domain.User{
				ID:   userID,
				Role: domain.UserRole(ctxutil.UserRoleFromCtx(r.Context())),
			})
			if err != nil {
				logger.ErrorContext(r.Context(), "touch user failed",
					slog.String("user_id", userID.String()),
					slog.String("error", err.Error()),
				)
				role = domain.UserRolePublic
			}

			ctx := ctxutil.WithUserRole(r.Context(), role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
