package word

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/wordform"
)

// UploadAudio stores a pronunciation recording and returns the URL it is
// served from.
func (s *Service) UploadAudio(ctx context.Context, a wordform.Audio) (string, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return "", err
	}

	f := domain.AudioFile{
		ID:          uuid.New(),
		Filename:    a.Filename,
		ContentType: a.ContentType,
		Size:        int64(len(a.Data)),
		Data:        a.Data,
		CreatedBy:   userID,
		CreatedAt:   s.now(),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if createErr := s.audio.Create(txCtx, f); createErr != nil {
			return fmt.Errorf("store audio: %w", createErr)
		}
		_, auditErr := s.audit.Create(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeAudio,
			EntityID:   &f.ID,
			Action:     domain.AuditActionCreate,
			Changes:    map[string]any{"filename": f.Filename, "size": f.Size},
		})
		if auditErr != nil {
			return fmt.Errorf("audit audio: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return s.media.PublicPrefix + f.ID.String(), nil
}

// Audio returns a stored recording. Recordings are public.
func (s *Service) Audio(ctx context.Context, id uuid.UUID) (domain.AudioFile, error) {
	return s.audio.GetByID(ctx, id)
}
