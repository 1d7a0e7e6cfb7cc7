package dictionary

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/draft"
	"github.com/SiphoChris/afrilex/internal/editor"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictionaryRepo interface {
	Create(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error)
	Update(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Dictionary, error)
	GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error)
	List(ctx context.Context, filter domain.DictionaryFilter) ([]domain.Dictionary, error)
}

type wordCounter interface {
	CountByLanguage(ctx context.Context, languageCode string) (int, error)
}

type auditRepo interface {
	Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements dictionary configuration management and the
// configuration editor drafts.
type Service struct {
	log          *slog.Logger
	dictionaries dictionaryRepo
	words        wordCounter
	audit        auditRepo
	tx           txManager
	drafts       *draft.Store[*editor.Editor]
	now          func() time.Time
}

// NewService creates a new dictionary service.
func NewService(
	logger *slog.Logger,
	dictionaries dictionaryRepo,
	words wordCounter,
	audit auditRepo,
	tx txManager,
	drafts *draft.Store[*editor.Editor],
) *Service {
	return &Service{
		log:          logger.With("service", "dictionary"),
		dictionaries: dictionaries,
		words:        words,
		audit:        audit,
		tx:           tx,
		drafts:       drafts,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Editors and forms submit through the service.
var _ editor.Persister = (*Service)(nil)
