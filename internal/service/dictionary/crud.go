package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/pkg/ctxutil"
)

// Defaults returns a new configuration seeded with the stock taxonomies.
func (s *Service) Defaults(languageCode string) domain.Dictionary {
	return domain.NewDefaultDictionary(languageCode)
}

// List returns dictionaries ordered by language. Readers only see
// published dictionaries.
func (s *Service) List(ctx context.Context) ([]domain.Dictionary, error) {
	filter := domain.DictionaryFilter{PublishedOnly: !ctxutil.IsAdminCtx(ctx)}
	dicts, err := s.dictionaries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	return dicts, nil
}

// GetByLanguage returns the dictionary for a language. Unpublished
// dictionaries are hidden from readers.
func (s *Service) GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error) {
	lang, ok := domain.LanguageByCode(languageCode)
	if !ok {
		return domain.Dictionary{}, fmt.Errorf("language %q: %w", languageCode, domain.ErrNotFound)
	}
	d, err := s.dictionaries.GetByLanguage(ctx, lang.Code)
	if err != nil {
		return domain.Dictionary{}, err
	}
	if !d.Metadata.IsPublished && !ctxutil.IsAdminCtx(ctx) {
		return domain.Dictionary{}, fmt.Errorf("dictionary %s: %w", lang.Code, domain.ErrNotFound)
	}
	return d, nil
}

// GetByID returns a dictionary by ID (admin only).
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domain.Dictionary, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.Dictionary{}, domain.ErrForbidden
	}
	return s.dictionaries.GetByID(ctx, id)
}

// Create validates and stores a new dictionary (admin only).
func (s *Service) Create(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return domain.Dictionary{}, err
	}
	if err := d.Validate(); err != nil {
		return domain.Dictionary{}, err
	}

	now := s.now()
	d.ID = uuid.New()
	d.WordCount = 0
	d.Metadata.CreatedBy = userID
	d.Metadata.CreatedAt = now
	d.Metadata.UpdatedAt = now

	var created domain.Dictionary
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.dictionaries.Create(txCtx, d)
		if createErr != nil {
			return fmt.Errorf("create dictionary: %w", createErr)
		}

		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDictionary,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"language_code": created.LanguageCode, "name": created.Name.Bilingual},
		})
		if auditErr != nil {
			return fmt.Errorf("audit create: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.Dictionary{}, err
	}

	s.log.InfoContext(ctx, "dictionary created",
		slog.String("dictionary_id", created.ID.String()),
		slog.String("language_code", created.LanguageCode),
	)
	return created, nil
}

// Update validates and replaces an existing dictionary (admin only).
// Ownership fields and the word count are kept from the stored row.
func (s *Service) Update(ctx context.Context, id uuid.UUID, d domain.Dictionary) (domain.Dictionary, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return domain.Dictionary{}, err
	}
	if err := d.Validate(); err != nil {
		return domain.Dictionary{}, err
	}

	existing, err := s.dictionaries.GetByID(ctx, id)
	if err != nil {
		return domain.Dictionary{}, err
	}

	d.ID = id
	d.WordCount = existing.WordCount
	d.Metadata.CreatedBy = existing.Metadata.CreatedBy
	d.Metadata.CreatedAt = existing.Metadata.CreatedAt
	d.Metadata.UpdatedAt = s.now()

	var updated domain.Dictionary
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.dictionaries.Update(txCtx, d)
		if updateErr != nil {
			return fmt.Errorf("update dictionary: %w", updateErr)
		}

		changes := map[string]any{"name": updated.Name.Bilingual}
		if existing.LanguageCode != updated.LanguageCode {
			changes["language_code"] = map[string]any{"old": existing.LanguageCode, "new": updated.LanguageCode}
		}
		if existing.Metadata.IsPublished != updated.Metadata.IsPublished {
			changes["is_published"] = updated.Metadata.IsPublished
		}
		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDictionary,
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
		return domain.Dictionary{}, err
	}

	return updated, nil
}

// Delete removes a dictionary (admin only). A dictionary that still has
// words cannot be deleted. The check runs in the delete transaction; a word
// inserted concurrently trips the foreign key, which the repository also
// reports as a conflict.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, getErr := s.dictionaries.GetByID(txCtx, id)
		if getErr != nil {
			return getErr
		}

		n, countErr := s.words.CountByLanguage(txCtx, existing.LanguageCode)
		if countErr != nil {
			return fmt.Errorf("count words: %w", countErr)
		}
		if n > 0 {
			return fmt.Errorf("dictionary %s has %d words: %w", existing.LanguageCode, n, domain.ErrConflict)
		}

		if delErr := s.dictionaries.Delete(txCtx, id); delErr != nil {
			return fmt.Errorf("delete dictionary: %w", delErr)
		}

		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeDictionary,
			EntityID:   &id,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"language_code": existing.LanguageCode},
		})
		if auditErr != nil {
			return fmt.Errorf("audit delete: %w", auditErr)
		}
		return nil
	})
}

// Persist creates d when it has no ID and updates it otherwise.
func (s *Service) Persist(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error) {
	if d.ID == uuid.Nil {
		return s.Create(ctx, d)
	}
	return s.Update(ctx, d.ID, d)
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
