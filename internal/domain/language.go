package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Language is one entry of the supported language catalog.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var catalog = []Language{
	{Code: "xh", Name: "IsiXhosa"},
	{Code: "zu", Name: "IsiZulu"},
	{Code: "af", Name: "Afrikaans"},
	{Code: "ts", Name: "Xitsonga"},
	{Code: "ss", Name: "SiSwati"},
	{Code: "ve", Name: "TshiVenda"},
	{Code: "tn", Name: "SeTswana"},
	{Code: "st", Name: "SeSotho"},
	{Code: "nso", Name: "SePedi"},
	{Code: "nr", Name: "IsiNdebele"},
	{Code: "sn", Name: "ChiShona"},
}

var catalogMatcher = newCatalogMatcher()

func newCatalogMatcher() language.Matcher {
	tags := make([]language.Tag, len(catalog))
	for i, l := range catalog {
		tags[i] = language.Make(l.Code)
	}
	return language.NewMatcher(tags)
}

// Languages returns a copy of the supported language catalog in display order.
func Languages() []Language {
	return slices.Clone(catalog)
}

// LanguageByCode looks up a catalog language. Region and script subtags are
// ignored, so "xh-ZA" resolves to isiXhosa.
func LanguageByCode(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Language{}, false
	}
	base := strings.ToLower(code)
	if tag, err := language.Parse(code); err == nil {
		if b, conf := tag.Base(); conf != language.No {
			base = b.String()
		}
	}
	for _, l := range catalog {
		if l.Code == base {
			return l, true
		}
	}
	return Language{}, false
}

// IsSupportedLanguage reports whether code names a catalog language exactly.
func IsSupportedLanguage(code string) bool {
	return slices.ContainsFunc(catalog, func(l Language) bool { return l.Code == code })
}

// SuggestLanguage picks the best catalog language for an Accept-Language
// header value. ok is false when nothing in the header matches.
func SuggestLanguage(acceptLanguage string) (Language, bool) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Language{}, false
	}
	_, idx, conf := catalogMatcher.Match(tags...)
	if conf == language.No {
		return Language{}, false
	}
	return catalog[idx], true
}
