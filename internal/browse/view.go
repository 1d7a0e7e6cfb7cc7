package browse

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/SiphoChris/afrilex/internal/domain"
)

// Query parameter names.
const (
	ParamLanguage = "lang"
	ParamMode     = "mode"
	ParamWord     = "word"
	ParamLetter   = "letter"
)

// DefaultMaxTermLength bounds search terms when no limit is configured.
const DefaultMaxTermLength = 100

// DefaultMode is the display mode when neither the URL nor the stored
// preference names one.
const DefaultMode = domain.ViewModeNative

// Preferences is what a reader chose on an earlier visit.
type Preferences struct {
	LanguageCode string
	Mode         domain.ViewMode
}

// ViewState is the resolved state of the browsing view. Once resolved the
// URL carries it and stored preferences are no longer consulted.
type ViewState struct {
	LanguageCode string          `json:"language_code"`
	Mode         domain.ViewMode `json:"mode"`
	Term         string          `json:"term,omitempty"`
	Letter       string          `json:"letter"`
}

// Query returns the canonical URL query for s.
func (s ViewState) Query() url.Values {
	q := url.Values{}
	q.Set(ParamLanguage, s.LanguageCode)
	q.Set(ParamMode, string(s.Mode))
	q.Set(ParamLetter, s.Letter)
	if s.Term != "" {
		q.Set(ParamWord, s.Term)
	}
	return q
}

// Resolution is the outcome of resolving a browse request.
type Resolution struct {
	State ViewState
	// NeedsPrompt is set when no language is known. Nothing but the
	// language and mode selection may be shown.
	NeedsPrompt bool
	// NeedsRewrite is set when the URL lacked or carried a non-canonical
	// value. Canonical holds the query to redirect to.
	NeedsRewrite bool
	Canonical    url.Values
}

// Resolver resolves view states.
type Resolver struct {
	MaxTermLength int
}

// Resolve resolves with the default term limit.
func Resolve(q url.Values, prefs Preferences) Resolution {
	return Resolver{}.Resolve(q, prefs)
}

// Resolve derives the view state from the URL query. Language and mode
// missing from the URL are seeded from prefs. Mode falls back to native and
// the letter to "A".
func (r Resolver) Resolve(q url.Values, prefs Preferences) Resolution {
	var (
		st      ViewState
		rewrite bool
	)

	if lang, ok := domain.LanguageByCode(q.Get(ParamLanguage)); ok {
		st.LanguageCode = lang.Code
		rewrite = lang.Code != q.Get(ParamLanguage)
	} else if lang, ok := domain.LanguageByCode(prefs.LanguageCode); ok {
		st.LanguageCode = lang.Code
		rewrite = true
	} else {
		return Resolution{NeedsPrompt: true}
	}

	switch mode := domain.ViewMode(strings.ToLower(q.Get(ParamMode))); {
	case mode.IsValid():
		st.Mode = mode
		rewrite = rewrite || string(mode) != q.Get(ParamMode)
	case prefs.Mode.IsValid():
		st.Mode = prefs.Mode
		rewrite = true
	default:
		st.Mode = DefaultMode
		rewrite = true
	}

	raw := q.Get(ParamWord)
	st.Term = r.clampTerm(raw)
	rewrite = rewrite || (q.Has(ParamWord) && st.Term != raw)

	letter := strings.ToUpper(q.Get(ParamLetter))
	if !isLetter(letter) {
		letter = DefaultLetter
	}
	st.Letter = letter
	rewrite = rewrite || letter != q.Get(ParamLetter)

	res := Resolution{State: st, NeedsRewrite: rewrite}
	if rewrite {
		res.Canonical = st.Query()
	}
	return res
}

func (r Resolver) clampTerm(term string) string {
	limit := r.MaxTermLength
	if limit <= 0 {
		limit = DefaultMaxTermLength
	}
	term = strings.TrimSpace(term)
	if utf8.RuneCountInString(term) <= limit {
		return term
	}
	runes := []rune(term)
	return strings.TrimSpace(string(runes[:limit]))
}

func isLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}
