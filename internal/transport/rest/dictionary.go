package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/editor"
	"github.com/SiphoChris/afrilex/internal/service/dictionary"
)

type dictionaryService interface {
	Defaults(languageCode string) domain.Dictionary
	List(ctx context.Context) ([]domain.Dictionary, error)
	GetByLanguage(ctx context.Context, languageCode string) (domain.Dictionary, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Dictionary, error)
	Create(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error)
	Update(ctx context.Context, id uuid.UUID, d domain.Dictionary) (domain.Dictionary, error)
	Delete(ctx context.Context, id uuid.UUID) error

	OpenDraft(ctx context.Context, dictionaryID *uuid.UUID) (dictionary.DraftView, error)
	Draft(ctx context.Context, draftID uuid.UUID) (*editor.Editor, error)
	DraftView(ctx context.Context, draftID uuid.UUID) (dictionary.DraftView, error)
	SubmitDraft(ctx context.Context, draftID uuid.UUID) (domain.Dictionary, editor.Notice, error)
	DiscardDraft(ctx context.Context, draftID uuid.UUID) error
}

// DictionaryHandler serves dictionary configuration endpoints.
type DictionaryHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewDictionaryHandler creates a DictionaryHandler.
func NewDictionaryHandler(svc dictionaryService, logger *slog.Logger) *DictionaryHandler {
	return &DictionaryHandler{svc: svc, log: logger.With("handler", "dictionary")}
}

// ---------------------------------------------------------------------------
// Catalog and CRUD
// ---------------------------------------------------------------------------

// Languages lists the supported languages.
// GET /api/v1/languages
func (h *DictionaryHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Languages())
}

// Defaults returns a configuration seeded with the stock taxonomies.
// GET /api/v1/dictionaries/defaults?language=xh
func (h *DictionaryHandler) Defaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Defaults(r.URL.Query().Get("language")))
}

// List returns the dictionaries visible to the caller.
// GET /api/v1/dictionaries
func (h *DictionaryHandler) List(w http.ResponseWriter, r *http.Request) {
	dicts, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dicts)
}

// Get returns the dictionary of a language.
// GET /api/v1/dictionaries/{lang}
func (h *DictionaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetByLanguage(r.Context(), mux.Vars(r)["lang"])
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// GetByID returns a dictionary by ID.
// GET /api/v1/admin/dictionaries/{id}
func (h *DictionaryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	d, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// Create stores a complete configuration.
// POST /api/v1/admin/dictionaries
func (h *DictionaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var d domain.Dictionary
	if !decodeJSON(w, r, &d) {
		return
	}
	created, err := h.svc.Create(r.Context(), d)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update replaces a configuration.
// PUT /api/v1/admin/dictionaries/{id}
func (h *DictionaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var d domain.Dictionary
	if !decodeJSON(w, r, &d) {
		return
	}
	updated, err := h.svc.Update(r.Context(), id, d)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete removes a dictionary that has no words.
// DELETE /api/v1/admin/dictionaries/{id}
func (h *DictionaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Drafts
// ---------------------------------------------------------------------------

type openDictionaryDraftRequest struct {
	DictionaryID *uuid.UUID `json:"dictionary_id"`
}

type basicInfoRequest struct {
	LanguageCode string           `json:"language_code"`
	Name         domain.LabelPair `json:"dictionary_name"`
	Description  string           `json:"description"`
}

type trackOptionRequest struct {
	Native    string `json:"native"`
	Bilingual string `json:"bilingual"`
	Label     string `json:"label"`
}

type numberClassRequest struct {
	Class domain.NumberClass `json:"class"`
}

type customPropertyRequest struct {
	TitleNative    string `json:"title_native"`
	TitleBilingual string `json:"title_bilingual"`
	Options        string `json:"options"`
}

// OpenDraft starts an editor session.
// POST /api/v1/admin/dictionary-drafts
func (h *DictionaryHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	var req openDictionaryDraftRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.svc.OpenDraft(r.Context(), req.DictionaryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// GetDraft returns the current state of a draft.
// GET /api/v1/admin/dictionary-drafts/{id}
func (h *DictionaryHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	view, err := h.svc.DraftView(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// SetBasicInfo sets the language, name and description.
// PATCH /api/v1/admin/dictionary-drafts/{id}/basic
func (h *DictionaryHandler) SetBasicInfo(w http.ResponseWriter, r *http.Request) {
	var req basicInfoRequest
	h.mutate(w, r, &req, func(ed *editor.Editor) (editor.Notice, error) {
		ed.SetBasicInfo(req.LanguageCode, req.Name, req.Description)
		return editor.Notice{}, nil
	})
}

// SetUILabel sets one UI label.
// PUT /api/v1/admin/dictionary-drafts/{id}/labels/{key}
func (h *DictionaryHandler) SetUILabel(w http.ResponseWriter, r *http.Request) {
	var req domain.LabelPair
	h.mutate(w, r, &req, func(ed *editor.Editor) (editor.Notice, error) {
		return editor.Notice{}, ed.SetUILabel(mux.Vars(r)["key"], req)
	})
}

// SetFlags sets the dictionary switches.
// PUT /api/v1/admin/dictionary-drafts/{id}/flags
func (h *DictionaryHandler) SetFlags(w http.ResponseWriter, r *http.Request) {
	var req domain.DictionaryFlags
	h.mutate(w, r, &req, func(ed *editor.Editor) (editor.Notice, error) {
		ed.SetFlags(req)
		return editor.Notice{}, nil
	})
}

// AddTrackOption appends a term or option to a track.
// POST /api/v1/admin/dictionary-drafts/{id}/tracks/{track}
func (h *DictionaryHandler) AddTrackOption(w http.ResponseWriter, r *http.Request) {
	var req trackOptionRequest
	track := editor.Track(mux.Vars(r)["track"])
	h.mutate(w, r, &req, func(ed *editor.Editor) (editor.Notice, error) {
		if track.Paired() {
			return ed.AddPairedOption(track, req.Native, req.Bilingual)
		}
		return ed.AddSingleOption(track, req.Label)
	})
}

// RemoveTrackOption removes a term or option from a track.
// DELETE /api/v1/admin/dictionary-drafts/{id}/tracks/{track}/{index}
func (h *DictionaryHandler) RemoveTrackOption(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	track := editor.Track(mux.Vars(r)["track"])
	h.mutate(w, r, nil, func(ed *editor.Editor) (editor.Notice, error) {
		if track.Paired() {
			return editor.Notice{}, ed.RemovePairedOption(track, index)
		}
		return editor.Notice{}, ed.RemoveSingleOption(track, index)
	})
}

// SetNumberClass classifies a number term.
// PUT /api/v1/admin/dictionary-drafts/{id}/tracks/number/{index}/class
func (h *DictionaryHandler) SetNumberClass(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	var req numberClassRequest
	h.mutate(w, r, &req, func(ed *editor.Editor) (editor.Notice, error) {
		return editor.Notice{}, ed.SetNumberClass(index, req.Class)
	})
}

// AddCustomProperty appends a custom property definition.
// POST /api/v1/admin/dictionary-drafts/{id}/properties
func (h *DictionaryHandler) AddCustomProperty(w http.ResponseWriter, r *http.Request) {
	var req customPropertyRequest
	h.mutate(w, r, &req, func(ed *editor.Editor) (editor.Notice, error) {
		return ed.AddCustomProperty(req.TitleNative, req.TitleBilingual, req.Options)
	})
}

// RemoveCustomProperty removes a custom property definition.
// DELETE /api/v1/admin/dictionary-drafts/{id}/properties/{index}
func (h *DictionaryHandler) RemoveCustomProperty(w http.ResponseWriter, r *http.Request) {
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	h.mutate(w, r, nil, func(ed *editor.Editor) (editor.Notice, error) {
		return editor.Notice{}, ed.RemoveCustomProperty(index)
	})
}

// SubmitDraft validates and stores the draft.
// POST /api/v1/admin/dictionary-drafts/{id}/submit
func (h *DictionaryHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	saved, notice, err := h.svc.SubmitDraft(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, noticeResponse[domain.Dictionary]{Message: notice.Message, Data: saved})
}

// DiscardDraft closes a draft without saving.
// DELETE /api/v1/admin/dictionary-drafts/{id}
func (h *DictionaryHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DiscardDraft(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// mutate loads the draft named by the path, decodes req when non-nil,
// applies fn and responds with the notice and the resulting draft.
func (h *DictionaryHandler) mutate(w http.ResponseWriter, r *http.Request, req any, fn func(*editor.Editor) (editor.Notice, error)) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if req != nil && !decodeJSON(w, r, req) {
		return
	}
	ed, err := h.svc.Draft(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	notice, err := fn(ed)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	view, err := h.svc.DraftView(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, noticeResponse[dictionary.DraftView]{Message: notice.Message, Data: view})
}
