package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/wordform"
)

// DraftView is a word form as shown to its owner.
type DraftView struct {
	ID    uuid.UUID      `json:"id"`
	State wordform.State `json:"state"`
}

// OpenDraft starts a word form session. With a nil wordID the form is
// blank for the dictionary of languageCode; otherwise it edits the stored
// word within its own dictionary.
func (s *Service) OpenDraft(ctx context.Context, languageCode string, wordID *uuid.UUID) (DraftView, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return DraftView{}, err
	}

	var initial *domain.Word
	if wordID != nil {
		w, getErr := s.words.GetByID(ctx, *wordID)
		if getErr != nil {
			return DraftView{}, getErr
		}
		languageCode = w.LanguageCode
		initial = &w
	}

	lang, ok := domain.LanguageByCode(languageCode)
	if !ok {
		return DraftView{}, domain.NewValidationError("language_code", "Unsupported language")
	}
	dict, err := s.dictionaries.GetByLanguage(ctx, lang.Code)
	if err != nil {
		return DraftView{}, err
	}

	form := wordform.Initialize(dict, initial, wordform.WithMaxAudioBytes(s.media.MaxAudioBytes))
	id, err := s.drafts.Put(userID, form)
	if err != nil {
		return DraftView{}, domain.NewValidationError("draft", err.Error())
	}
	return DraftView{ID: id, State: form.State()}, nil
}

// Draft returns the caller's form for draftID.
func (s *Service) Draft(ctx context.Context, draftID uuid.UUID) (*wordform.Form, error) {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	return s.drafts.Get(userID, draftID)
}

// DraftView returns the current state of a form.
func (s *Service) DraftView(ctx context.Context, draftID uuid.UUID) (DraftView, error) {
	form, err := s.Draft(ctx, draftID)
	if err != nil {
		return DraftView{}, err
	}
	return DraftView{ID: draftID, State: form.State()}, nil
}

// AttachAudio uploads a pronunciation recording into the form.
func (s *Service) AttachAudio(ctx context.Context, draftID uuid.UUID, a wordform.Audio) (wordform.Notice, error) {
	form, err := s.Draft(ctx, draftID)
	if err != nil {
		return wordform.Notice{}, err
	}

	notice, err := form.AttachAudio(ctx, s, a)
	if err != nil {
		if errors.Is(err, wordform.ErrUploadFailed) {
			s.log.ErrorContext(ctx, "audio upload failed",
				slog.String("draft_id", draftID.String()),
				slog.String("error", err.Error()),
			)
		}
		return wordform.Notice{}, err
	}
	return notice, nil
}

// SubmitDraft validates and stores the form's word. The form stays open so
// later edits update the stored word.
func (s *Service) SubmitDraft(ctx context.Context, draftID uuid.UUID) (domain.Word, wordform.Notice, error) {
	form, err := s.Draft(ctx, draftID)
	if err != nil {
		return domain.Word{}, wordform.Notice{}, err
	}

	saved, notice, err := form.Submit(ctx, s)
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, wordform.ErrSubmitInProgress) {
			s.log.ErrorContext(ctx, "word draft submit failed",
				slog.String("draft_id", draftID.String()),
				slog.String("error", err.Error()),
			)
		}
		return domain.Word{}, wordform.Notice{}, fmt.Errorf("submit draft: %w", err)
	}
	return saved, notice, nil
}

// DiscardDraft closes a form without saving.
func (s *Service) DiscardDraft(ctx context.Context, draftID uuid.UUID) error {
	userID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	return s.drafts.Delete(userID, draftID)
}
