// Package browse implements the public dictionary view: word filtering by
// letter or search term, and resolution of the reader's view state from the
// URL and stored preferences.
package browse

import (
	"strings"

	"github.com/SiphoChris/afrilex/internal/domain"
)

// DefaultLetter is the letter shown when none is selected.
const DefaultLetter = "A"

// Matcher tests word text against a letter or search term. Both sides are
// folded with domain.FoldText, so matching ignores case and Unicode
// composition differences.
type Matcher struct {
	term   string
	prefix string
}

// NewMatcher builds a matcher. A non-blank term selects substring matching
// and the letter is ignored; otherwise words are matched by prefix.
func NewMatcher(letter, term string) Matcher {
	if t := domain.FoldText(term); t != "" {
		return Matcher{term: t}
	}
	return Matcher{prefix: domain.FoldText(letter)}
}

// Searching reports whether the matcher uses a search term.
func (m Matcher) Searching() bool { return m.term != "" }

// Match reports whether text is selected.
func (m Matcher) Match(text string) bool {
	folded := domain.FoldText(text)
	if m.term != "" {
		return strings.Contains(folded, m.term)
	}
	return strings.HasPrefix(folded, m.prefix)
}

// FilterWords returns the words selected by letter or term, in input order.
func FilterWords(words []string, letter, term string) []string {
	m := NewMatcher(letter, term)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if m.Match(w) {
			out = append(out, w)
		}
	}
	return out
}

// FilterEntries is FilterWords over word entries.
func FilterEntries(words []domain.Word, letter, term string) []domain.Word {
	m := NewMatcher(letter, term)
	out := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if m.Match(w.Word) {
			out = append(out, w)
		}
	}
	return out
}

// Letters returns the browse letters.
func Letters() []string {
	return domain.AlphabetLetters()
}
