package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

// Touch records that an authenticated caller was seen and returns their
// stored role. The first request creates the row with the token's role.
// Within the touch interval the cached role is returned without a write.
func (s *Service) Touch(ctx context.Context, u domain.User) (domain.UserRole, error) {
	now := s.now()
	if role, ok := s.cached(u.ID, now); ok {
		return role, nil
	}

	if !u.Role.IsValid() {
		u.Role = domain.UserRolePublic
	}
	u.LastActiveAt = now

	stored, err := s.users.Touch(ctx, u)
	if err != nil {
		return "", fmt.Errorf("user.Touch: %w", err)
	}

	s.remember(u.ID, stored.Role, now)
	if stored.Role != u.Role {
		s.log.DebugContext(ctx, "stored role differs from token",
			slog.String("user_id", u.ID.String()),
			slog.String("token_role", u.Role.String()),
			slog.String("stored_role", stored.Role.String()),
		)
	}
	return stored.Role, nil
}

// Profile returns the caller's user record.
func (s *Service) Profile(ctx context.Context) (domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, fmt.Errorf("user.Profile: %w", err)
	}
	return u, nil
}
