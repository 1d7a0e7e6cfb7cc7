package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/editor"
)

// DraftView is a configuration draft as shown to its owner.
type DraftView struct {
	ID         uuid.UUID         `json:"id"`
	Dictionary domain.Dictionary `json:"dictionary"`
	Submitting bool              `json:"submitting"`
}

// OpenDraft starts an editor session. With a nil dictionaryID the draft
// starts from the default configuration; otherwise from the stored one.
func (s *Service) OpenDraft(ctx context.Context, dictionaryID *uuid.UUID) (DraftView, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return DraftView{}, err
	}

	d := domain.NewDefaultDictionary("")
	if dictionaryID != nil {
		if d, err = s.dictionaries.GetByID(ctx, *dictionaryID); err != nil {
			return DraftView{}, err
		}
	}

	ed := editor.New(d)
	id, err := s.drafts.Put(userID, ed)
	if err != nil {
		return DraftView{}, domain.NewValidationError("draft", err.Error())
	}
	return viewOf(id, ed), nil
}

// Draft returns the caller's editor for draftID.
func (s *Service) Draft(ctx context.Context, draftID uuid.UUID) (*editor.Editor, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	return s.drafts.Get(userID, draftID)
}

// DraftView returns the current state of a draft.
func (s *Service) DraftView(ctx context.Context, draftID uuid.UUID) (DraftView, error) {
	ed, err := s.Draft(ctx, draftID)
	if err != nil {
		return DraftView{}, err
	}
	return viewOf(draftID, ed), nil
}

// SubmitDraft validates and stores the draft. The draft stays open so later
// edits update the stored dictionary.
func (s *Service) SubmitDraft(ctx context.Context, draftID uuid.UUID) (domain.Dictionary, editor.Notice, error) {
	ed, err := s.Draft(ctx, draftID)
	if err != nil {
		return domain.Dictionary{}, editor.Notice{}, err
	}

	saved, notice, err := ed.Submit(ctx, s)
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, editor.ErrSubmitInProgress) {
			s.log.ErrorContext(ctx, "dictionary draft submit failed",
				slog.String("draft_id", draftID.String()),
				slog.String("error", err.Error()),
			)
		}
		return domain.Dictionary{}, editor.Notice{}, fmt.Errorf("submit draft: %w", err)
	}
	return saved, notice, nil
}

// DiscardDraft closes a draft without saving.
func (s *Service) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	return s.drafts.Delete(userID, draftID)
}

func viewOf(id uuid.UUID, ed *editor.Editor) DraftView {
	return DraftView{ID: id, Dictionary: ed.Snapshot(), Submitting: ed.Submitting()}
}
