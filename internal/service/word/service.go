package word

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/config"
	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/draft"
	"github.com/SiphoChris/afrilex/internal/wordform"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	Create(ctx context.Context, w domain.Word) (domain.Word, error)
	Update(ctx context.Context, w domain.Word) (domain.Word, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool, at time.Time) (domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Word, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
}

type dictionaryRepo interface {
	GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error)
	AdjustWordCount(ctx context.Context, languageCode string, delta int) error
}

type audioRepo interface {
	Create(ctx context.Context, f domain.AudioFile) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.AudioFile, error)
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

// Service implements word management, the word form drafts, pronunciation
// uploads and the public browse listing.
type Service struct {
	log          *slog.Logger
	words        wordRepo
	dictionaries dictionaryRepo
	audio        audioRepo
	audit        auditRepo
	tx           txManager
	drafts       *draft.Store[*wordform.Form]
	media        config.MediaConfig
	browse       config.BrowseConfig
	now          func() time.Time
}

// NewService creates a new word service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	dictionaries dictionaryRepo,
	audio audioRepo,
	audit auditRepo,
	tx txManager,
	drafts *draft.Store[*wordform.Form],
	media config.MediaConfig,
	browse config.BrowseConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "word"),
		words:        words,
		dictionaries: dictionaries,
		audio:        audio,
		audit:        audit,
		tx:           tx,
		drafts:       drafts,
		media:        media,
		browse:       browse,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

var (
	_ wordform.Persister = (*Service)(nil)
	_ wordform.Uploader  = (*Service)(nil)
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// clampLimit ensures a limit is within [1, max], defaulting from 0 to defaultVal.
func clampLimit(limit, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit > max {
		return max
	}
	return limit
}
