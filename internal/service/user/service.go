package user

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Touch(ctx context.Context, u domain.User) (domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
}

// auditRepo defines the audit repository interface needed by user service.
type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type touched struct {
	role domain.UserRole
	at   time.Time
}

// Service implements user provisioning, profiles and role management.
type Service struct {
	log           *slog.Logger
	users         userRepo
	audit         auditRepo
	tx            txManager
	touchInterval time.Duration
	now           func() time.Time

	mu      sync.Mutex
	touched map[uuid.UUID]touched
}

// NewService creates a new user service instance. Touch writes at most once
// per touchInterval per user.
func NewService(
	logger *slog.Logger,
	users userRepo,
	audit auditRepo,
	tx txManager,
	touchInterval time.Duration,
) *Service {
	return &Service{
		log:           logger.With("service", "user"),
		users:         users,
		audit:         audit,
		tx:            tx,
		touchInterval: touchInterval,
		now:           func() time.Time { return time.Now().UTC() },
		touched:       make(map[uuid.UUID]touched),
	}
}

func (s *Service) cached(id uuid.UUID, now time.Time) (domain.UserRole, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.touched[id]
	if !ok || now.Sub(t.at) >= s.touchInterval {
		return "", false
	}
	return t.role, true
}

func (s *Service) remember(id uuid.UUID, role domain.UserRole, now time.Time) {
	s.mu.Lock()
	s.touched[id] = touched{role: role, at: now}
	s.mu.Unlock()
}

func (s *Service) forget(id uuid.UUID) {
	s.mu.Lock()
	delete(s.touched, id)
	s.mu.Unlock()
}
