package word

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

// Get returns a word by ID (admin only).
func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Word, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return domain.Word{}, err
	}
	return s.words.GetByID(ctx, id)
}

// List returns a filtered page of words and the total match count (admin only).
func (s *Service) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	filter.Limit = clampLimit(filter.Limit, s.browse.MaxPageSize, s.browse.PageSize)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	words, total, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list words: %w", err)
	}
	return words, total, nil
}

// Issues reports data-quality problems of a stored word against the current
// configuration of its dictionary (admin only).
func (s *Service) Issues(ctx context.Context, id uuid.UUID) ([]domain.FieldError, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dict, err := s.dictionaries.GetByLanguage(ctx, w.LanguageCode)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", w.LanguageCode, err)
	}
	issues := w.Issues(dict)
	if issues == nil {
		issues = []domain.FieldError{}
	}
	return issues, nil
}

// Create validates and stores a new word and bumps its dictionary's word
// count in the same transaction (admin only).
func (s *Service) Create(ctx context.Context, w domain.Word) (domain.Word, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return domain.Word{}, err
	}
	if err := s.prepare(ctx, &w); err != nil {
		return domain.Word{}, err
	}

	now := s.now()
	w.ID = uuid.New()
	w.Metadata.CreatedBy = userID
	w.Metadata.CreatedAt = now
	w.Metadata.UpdatedAt = now

	var created domain.Word
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.words.Create(txCtx, w)
		if createErr != nil {
			return fmt.Errorf("create word: %w", createErr)
		}
		if adjErr := s.dictionaries.AdjustWordCount(txCtx, created.LanguageCode, 1); adjErr != nil {
			return fmt.Errorf("adjust word count: %w", adjErr)
		}

		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWord,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"word": created.Word, "language_code": created.LanguageCode},
		})
		if auditErr != nil {
			return fmt.Errorf("audit create: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Word{}, err
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", created.ID.String()),
		slog.String("language_code", created.LanguageCode),
	)
	return created, nil
}

// Update validates and replaces a stored word (admin only). Ownership and
// the publication flag are kept from the stored row. Moving a word to
// another language moves it between the dictionaries' word counts.
func (s *Service) Update(ctx context.Context, id uuid.UUID, w domain.Word) (domain.Word, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return domain.Word{}, err
	}
	existing, err := s.words.GetByID(ctx, id)
	if err != nil {
		return domain.Word{}, err
	}
	if err := s.prepare(ctx, &w); err != nil {
		return domain.Word{}, err
	}

	w.ID = id
	w.Metadata.IsPublished = existing.Metadata.IsPublished
	w.Metadata.CreatedBy = existing.Metadata.CreatedBy
	w.Metadata.CreatedAt = existing.Metadata.CreatedAt
	w.Metadata.UpdatedAt = s.now()

	var updated domain.Word
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.words.Update(txCtx, w)
		if updateErr != nil {
			return fmt.Errorf("update word: %w", updateErr)
		}

		changes := map[string]any{"word": updated.Word}
		if existing.LanguageCode != updated.LanguageCode {
			if adjErr := s.dictionaries.AdjustWordCount(txCtx, existing.LanguageCode, -1); adjErr != nil {
				return fmt.Errorf("adjust word count: %w", adjErr)
			}
			if adjErr := s.dictionaries.AdjustWordCount(txCtx, updated.LanguageCode, 1); adjErr != nil {
				return fmt.Errorf("adjust word count: %w", adjErr)
			}
			changes["language_code"] = map[string]any{"old": existing.LanguageCode, "new": updated.LanguageCode}
		}
		if existing.Metadata.Status != updated.Metadata.Status {
			changes["status"] = string(updated.Metadata.Status)
		}

		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWord,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit update: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Word{}, err
	}

	return updated, nil
}

// Persist creates w when it has no ID and updates it otherwise.
func (s *Service) Persist(ctx context.Context, w domain.Word) (domain.Word, error) {
	if w.ID == uuid.Nil {
		return s.Create(ctx, w)
	}
	return s.Update(ctx, w.ID, w)
}

// SetPublished publishes or unpublishes a word (admin only).
func (s *Service) SetPublished(ctx context.Context, id uuid.UUID, published bool) (domain.Word, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return domain.Word{}, err
	}

	var updated domain.Word
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var pubErr error
		updated, pubErr = s.words.SetPublished(txCtx, id, published, s.now())
		if pubErr != nil {
			return fmt.Errorf("set published: %w", pubErr)
		}

		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWord,
			EntityID:   &id,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"is_published": published},
		})
		if auditErr != nil {
			return fmt.Errorf("audit publish: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Word{}, err
	}
	return updated, nil
}

// Delete removes a word and decrements its dictionary's word count in the
// same transaction (admin only).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		lang, delErr := s.words.Delete(txCtx, id)
		if delErr != nil {
			return fmt.Errorf("delete word: %w", delErr)
		}
		if adjErr := s.dictionaries.AdjustWordCount(txCtx, lang, -1); adjErr != nil {
			return fmt.Errorf("adjust word count: %w", adjErr)
		}

		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWord,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"language_code": lang},
		})
		if auditErr != nil {
			return fmt.Errorf("audit delete: %w", auditErr)
		}
		return nil
	})
}

// prepare loads the owning dictionary, compacts w, and validates it against
// the configuration. A non-lemma without a lemma word is logged but accepted.
func (s *Service) prepare(ctx context.Context, w *domain.Word) error {
	lang, ok := domain.LanguageByCode(w.LanguageCode)
	if !ok {
		return domain.NewValidationError("language_code", "Unsupported language")
	}
	w.LanguageCode = lang.Code

	dict, err := s.dictionaries.GetByLanguage(ctx, lang.Code)
	if err != nil {
		return fmt.Errorf("dictionary %s: %w", lang.Code, err)
	}

	w.PrepareForSave(dict.LanguageConfig)
	if err := w.Validate(dict); err != nil {
		return err
	}

	if !w.Lemma.IsLemma && w.Lemma.LemmaWord == "" {
		s.log.WarnContext(ctx, "non-lemma word saved without lemma word",
			slog.String("word", w.Word),
			slog.String("language_code", w.LanguageCode),
		)
	}
	return nil
}

func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
