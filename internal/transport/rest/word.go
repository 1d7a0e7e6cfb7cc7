package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/service/word"
	"github.com/SiphoChris/afrilex/internal/transport/dataloader"
	"github.com/SiphoChris/afrilex/internal/wordform"
)

type wordService interface {
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, int, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Word, error)
	Issues(ctx context.Context, id uuid.UUID) ([]domain.FieldError, error)
	Create(ctx context.Context, w domain.Word) (domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, w domain.Word) (domain.Word, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error

	OpenDraft(ctx context.Context, languageCode string, wordID *uuid.UUID) (word.DraftView, error)
	Draft(ctx context.Context, draftID uuid.UUID) (*wordform.Form, error)
	DraftView(ctx context.Context, draftID uuid.UUID) (word.DraftView, error)
	AttachAudio(ctx context.Context, draftID uuid.UUID, a wordform.Audio) (wordform.Notice, error)
	SubmitDraft(ctx context.Context, draftID uuid.UUID) (domain.Word, wordform.Notice, error)
	DiscardDraft(ctx context.Context, draftID uuid.UUID) error

	Audio(ctx context.Context, id uuid.UUID) (domain.AudioFile, error)
}

// WordHandler serves word endpoints.
type WordHandler struct {
	svc           wordService
	log           *slog.Logger
	maxAudioBytes int64
}

// NewWordHandler creates a WordHandler. maxAudioBytes caps multipart uploads.
func NewWordHandler(svc wordService, maxAudioBytes int64, logger *slog.Logger) *WordHandler {
	if maxAudioBytes <= 0 {
		maxAudioBytes = wordform.DefaultMaxAudioBytes
	}
	return &WordHandler{svc: svc, log: logger.With("handler", "word"), maxAudioBytes: maxAudioBytes}
}

// ---------------------------------------------------------------------------
// CRUD
// ---------------------------------------------------------------------------

// wordListItem is a word with its creator and dictionary name resolved.
type wordListItem struct {
	domain.Word
	CreatorName    string           `json:"creator_name,omitempty"`
	DictionaryName domain.LabelPair `json:"dictionary_name"`
}

// List returns a filtered page of words.
// GET /api/v1/admin/words?language=xh&status=complete&published=true&creator=..&search=..&limit=50&offset=0
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, ok := wordFilterFromQuery(w, r)
	if !ok {
		return
	}

	words, total, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := resolveListItems(r.Context(), words)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[wordListItem]{Items: items, Total: total})
}

func wordFilterFromQuery(w http.ResponseWriter, r *http.Request) (domain.WordFilter, bool) {
	q := r.URL.Query()
	filter := domain.WordFilter{
		LanguageCode: q.Get("language"),
		Search:       q.Get("search"),
		Letter:       q.Get("letter"),
		Limit:        queryInt(r, "limit", 0),
		Offset:       queryInt(r, "offset", 0),
	}
	if v := q.Get("status"); v != "" {
		status := domain.WordStatus(v)
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid status")
			return filter, false
		}
		filter.Status = &status
	}
	if v := q.Get("published"); v != "" {
		published, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid published")
			return filter, false
		}
		filter.Published = &published
	}
	if v := q.Get("creator"); v != "" {
		creator, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid creator")
			return filter, false
		}
		filter.CreatedBy = &creator
	}
	return filter, true
}

// resolveListItems batches the creator and dictionary lookups of a page.
func resolveListItems(ctx context.Context, words []domain.Word) ([]wordListItem, error) {
	loaders := dataloader.FromContext(ctx)

	users := make([]func() (*domain.User, error), len(words))
	dicts := make([]func() (*domain.Dictionary, error), len(words))
	for i, wd := range words {
		users[i] = loaders.UserByID.Load(ctx, wd.Metadata.CreatedBy)
		dicts[i] = loaders.DictionaryByLanguage.Load(ctx, wd.LanguageCode)
	}

	items := make([]wordListItem, len(words))
	for i, wd := range words {
		items[i].Word = wd
		u, err := users[i]()
		if err != nil {
			return nil, err
		}
		if u != nil {
			items[i].CreatorName = u.Name
		}
		d, err := dicts[i]()
		if err != nil {
			return nil, err
		}
		if d != nil {
			items[i].DictionaryName = d.Name
		}
	}
	return items, nil
}

// Get returns a word.
// GET /api/v1/admin/words/{id}
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	wd, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wd)
}

// Issues reports data-quality problems of a word.
// GET /api/v1/admin/words/{id}/issues
func (h *WordHandler) Issues(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	issues, err := h.svc.Issues(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

// Create stores a complete word.
// POST /api/v1/admin/words
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var wd domain.Word
	if !decodeJSON(w, r, &wd) {
		return
	}
	created, err := h.svc.Create(r.Context(), wd)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// Update replaces a word.
// PUT /api/v1/admin/words/{id}
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var wd domain.Word
	if !decodeJSON(w, r, &wd) {
		return
	}
	updated, err := h.svc.Update(r.Context(), id, wd)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

type publishRequest struct {
	Published bool `json:"published"`
}

// SetPublished publishes or unpublishes a word.
// PUT /api/v1/admin/words/{id}/publish
func (h *WordHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req publishRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	wd, err := h.svc.SetPublished(r.Context(), id, req.Published)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, wd)
}

// Delete removes a word.
// DELETE /api/v1/admin/words/{id}
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

type openWordDraftRequest struct {
	LanguageCode string     `json:"language_code"`
	WordID       *uuid.UUID `json:"word_id"`
}

type setFieldRequest struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

type textRequest struct {
	Text string `json:"text"`
}

type removedResponse struct {
	Removed bool           `json:"removed"`
	State   word.DraftView `json:"data"`
}

// OpenDraft starts a word form session.
// POST /api/v1/admin/word-drafts
func (h *WordHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	var req openWordDraftRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.svc.OpenDraft(r.Context(), req.LanguageCode, req.WordID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

// GetDraft returns the current state of a form.
// GET /api/v1/admin/word-drafts/{id}
func (h *WordHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
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

// SetField sets one field of the form.
// PATCH /api/v1/admin/word-drafts/{id}/fields
func (h *WordHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req setFieldRequest
	h.mutate(w, r, &req, func(f *wordform.Form) error {
		return f.SetField(req.Path, req.Value)
	})
}

// AddEntry appends a blank entry to a repeatable group.
// POST /api/v1/admin/word-drafts/{id}/groups/{group}
func (h *WordHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	group := wordform.Group(mux.Vars(r)["group"])
	h.mutate(w, r, nil, func(f *wordform.Form) error {
		return f.AddRepeatableEntry(group)
	})
}

// RemoveEntry removes an entry from a repeatable group. Removing the
// required first entry is reported with removed=false.
// DELETE /api/v1/admin/word-drafts/{id}/groups/{group}/{index}
func (h *WordHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	index, ok := pathInt(w, r, "index")
	if !ok {
		return
	}
	form, err := h.svc.Draft(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	removed, err := form.RemoveRepeatableEntry(wordform.Group(mux.Vars(r)["group"]), index)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, removedResponse{Removed: removed, State: word.DraftView{ID: id, State: form.State()}})
}

// AddSyllable appends a syllable.
// POST /api/v1/admin/word-drafts/{id}/syllables
func (h *WordHandler) AddSyllable(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	h.mutate(w, r, &req, func(f *wordform.Form) error {
		return f.AddSyllable(req.Text)
	})
}

// SetSyllableBuffer stores the syllable being typed.
// PUT /api/v1/admin/word-drafts/{id}/syllable-buffer
func (h *WordHandler) SetSyllableBuffer(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	h.mutate(w, r, &req, func(f *wordform.Form) error {
		f.SetSyllableBuffer(req.Text)
		return nil
	})
}

// CommitSyllableBuffer appends the buffered syllable.
// POST /api/v1/admin/word-drafts/{id}/syllable-buffer/commit
func (h *WordHandler) CommitSyllableBuffer(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, nil, func(f *wordform.Form) error {
		return f.CommitSyllableBuffer()
	})
}

// AttachAudio uploads the multipart "file" as the pronunciation.
// POST /api/v1/admin/word-drafts/{id}/audio
func (h *WordHandler) AttachAudio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxAudioBytes+1<<20)
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, r, h.log, domain.NewValidationError("phonology.pronunciation_url", "Audio file is too large"))
			return
		}
		handleError(w, r, h.log, domain.NewValidationError("file", "Please upload an audio file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxAudioBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload")
		return
	}

	notice, err := h.svc.AttachAudio(r.Context(), id, wordform.Audio{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	view, err := h.svc.DraftView(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, noticeResponse[word.DraftView]{Message: notice.Message, Data: view})
}

// SubmitDraft validates and stores the form's word.
// POST /api/v1/admin/word-drafts/{id}/submit
func (h *WordHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	saved, notice, err := h.svc.SubmitDraft(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, noticeResponse[domain.Word]{Message: notice.Message, Data: saved})
}

// DiscardDraft closes a form without saving.
// DELETE /api/v1/admin/word-drafts/{id}
func (h *WordHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
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

func (h *WordHandler) mutate(w http.ResponseWriter, r *http.Request, req any, fn func(*wordform.Form) error) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if req != nil && !decodeJSON(w, r, req) {
		return
	}
	form, err := h.svc.Draft(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := fn(form); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, word.DraftView{ID: id, State: form.State()})
}

// ---------------------------------------------------------------------------
// Media
// ---------------------------------------------------------------------------

// Audio serves a stored pronunciation recording.
// GET /media/audio/{id}
func (h *WordHandler) Audio(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	f, err := h.svc.Audio(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	contentType := f.ContentType
	if !strings.HasPrefix(contentType, "audio/") {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Length", strconv.FormatInt(int64(len(f.Data)), 10))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	w.Write(f.Data) //nolint:errcheck
}
