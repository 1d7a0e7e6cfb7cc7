package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SiphoChris/afrilex/internal/browse"
	"github.com/SiphoChris/afrilex/internal/config"
	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/service/word"
)

type browseService interface {
	Browse(ctx context.Context, st browse.ViewState, limit, offset int) (word.BrowseResult, error)
	Letters() []string
}

// BrowseHandler serves the public reading view.
type BrowseHandler struct {
	svc      browseService
	resolver browse.Resolver
	prefs    config.PreferencesConfig
	log      *slog.Logger
}

// NewBrowseHandler creates a BrowseHandler.
func NewBrowseHandler(svc browseService, cfg config.BrowseConfig, prefs config.PreferencesConfig, logger *slog.Logger) *BrowseHandler {
	return &BrowseHandler{
		svc:      svc,
		resolver: browse.Resolver{MaxTermLength: cfg.MaxSearchLength},
		prefs:    prefs,
		log:      logger.With("handler", "browse"),
	}
}

// promptResponse asks the reader to choose a language and view mode.
type promptResponse struct {
	Prompt    bool              `json:"prompt"`
	Languages []domain.Language `json:"languages"`
	Modes     []domain.ViewMode `json:"modes"`
	Suggested string            `json:"suggested_language,omitempty"`
}

// browseResponse is the browse result with labels rendered for the view mode.
type browseResponse struct {
	State          browse.ViewState  `json:"state"`
	DictionaryName string            `json:"dictionary_name"`
	Labels         map[string]string `json:"labels"`
	ShowEtymology  bool              `json:"show_etymology"`
	Words          []domain.Word     `json:"words"`
	Total          int               `json:"total"`
	Letters        []string          `json:"letters"`
}

// Browse renders the reading view for the query's language, mode, letter and term.
// GET /api/v1/browse?lang=xh&mode=native&letter=A&word=...
func (h *BrowseHandler) Browse(w http.ResponseWriter, r *http.Request) {
	res := h.resolver.Resolve(r.URL.Query(), h.preferences(r))

	if res.NeedsPrompt {
		resp := promptResponse{
			Prompt:    true,
			Languages: domain.Languages(),
			Modes:     []domain.ViewMode{domain.ViewModeNative, domain.ViewModeBilingual},
		}
		if lang, ok := domain.SuggestLanguage(r.Header.Get("Accept-Language")); ok {
			resp.Suggested = lang.Code
		}
		writeJSON(w, http.StatusOK, resp)
		return
	}

	if res.NeedsRewrite {
		http.Redirect(w, r, r.URL.Path+"?"+res.Canonical.Encode(), http.StatusFound)
		return
	}

	result, err := h.svc.Browse(r.Context(), res.State, queryInt(r, "limit", 0), queryInt(r, "offset", 0))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	mode := res.State.Mode
	labels := make(map[string]string, len(domain.UILabelKeys))
	for _, key := range domain.UILabelKeys {
		if l, ok := result.Dictionary.UILabels.Get(key); ok {
			labels[key] = l.In(mode)
		}
	}

	writeJSON(w, http.StatusOK, browseResponse{
		State:          result.State,
		DictionaryName: result.Dictionary.Name.In(mode),
		Labels:         labels,
		ShowEtymology:  result.Dictionary.Metadata.ShowEtymology,
		Words:          result.Words,
		Total:          result.Total,
		Letters:        h.svc.Letters(),
	})
}

// Letters returns the alphabet index.
// GET /api/v1/browse/letters
func (h *BrowseHandler) Letters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Letters())
}

type preferencesRequest struct {
	LanguageCode string          `json:"language_code"`
	Mode         domain.ViewMode `json:"mode"`
}

// SetPreferences remembers the reader's language and view mode and
// redirects to the first page of that dictionary.
// POST /api/v1/browse/preferences
func (h *BrowseHandler) SetPreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !domain.IsSupportedLanguage(req.LanguageCode) {
		handleError(w, r, h.log, domain.NewValidationError("language_code", "Please select a language"))
		return
	}
	if !req.Mode.IsValid() {
		handleError(w, r, h.log, domain.NewValidationError("mode", "Please select a view mode"))
		return
	}

	h.setCookie(w, h.prefs.LanguageCookie, req.LanguageCode)
	h.setCookie(w, h.prefs.ModeCookie, req.Mode.String())

	target := browse.ViewState{LanguageCode: req.LanguageCode, Mode: req.Mode, Letter: browse.DefaultLetter}
	http.Redirect(w, r, browsePath+"?"+target.Query().Encode(), http.StatusSeeOther)
}

func (h *BrowseHandler) preferences(r *http.Request) browse.Preferences {
	var p browse.Preferences
	if c, err := r.Cookie(h.prefs.LanguageCookie); err == nil {
		p.LanguageCode = c.Value
	}
	if c, err := r.Cookie(h.prefs.ModeCookie); err == nil {
		p.Mode = domain.ViewMode(c.Value)
	}
	return p
}

func (h *BrowseHandler) setCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.prefs.MaxAge.Seconds()),
		Secure:   h.prefs.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
