package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// SetUserRole changes the role of a user (super-admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsSuperAdminCtx(ctx) {
		return domain.User{}, domain.ErrForbidden
	}

	if !role.IsValid() {
		return domain.User{}, domain.NewValidationError("role", "invalid role: must be 'super-admin', 'admin' or 'public'")
	}

	// Prevent a super-admin from demoting themselves.
	if callerID == targetUserID && role != domain.UserRoleSuperAdmin {
		return domain.User{}, domain.NewValidationError("role", "cannot demote yourself")
	}

	var updated domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updErr error
		updated, updErr = s.users.UpdateRole(txCtx, targetUserID, role)
		if updErr != nil {
			return updErr
		}

		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &targetUserID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": role.String()},
		})
		if auditErr != nil {
			return fmt.Errorf("audit role: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.forget(targetUserID)

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return updated, nil
}

// ListUsers returns a paginated list of all users (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset = max(offset, 0)

	users, total, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}

	return users, total, nil
}
