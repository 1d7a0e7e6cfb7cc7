package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares word text for storage and comparison:
//   - composes to Unicode NFC
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses runs of whitespace into one space
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// FoldText applies Unicode case folding on top of NormalizeText. Use it for
// case-insensitive matching only, never for display.
func FoldText(text string) string {
	text = NormalizeText(text)
	if text == "" {
		return ""
	}
	return cases.Fold().String(text)
}
