package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lemma records whether a word is a canonical base form.
type Lemma struct {
	IsLemma   bool   `json:"is_lemma"`
	LemmaWord string `json:"lemma_word,omitempty"`
}

// Translations is the labelled list of translations.
type Translations struct {
	Label   string   `json:"label"`
	Content []string `json:"content"`
}

// LabeledText is a labelled native/bilingual text pair.
type LabeledText struct {
	Label   string    `json:"label"`
	Content LabelPair `json:"content"`
}

// PairedList holds independent native and bilingual lists.
type PairedList struct {
	Native    []string `json:"native"`
	Bilingual []string `json:"bilingual"`
}

// LabeledList is a labelled PairedList.
type LabeledList struct {
	Label   string     `json:"label"`
	Content PairedList `json:"content"`
}

// MorphologyEntry fills one morphological slot of the dictionary.
type MorphologyEntry struct {
	Part    string `json:"part"`
	Content string `json:"content"`
}

// Phonology holds pronunciation data.
type Phonology struct {
	PronunciationURL string   `json:"pronunciation_url,omitempty"`
	Syllables        []string `json:"syllables"`
}

// Contributor identifies who wrote an example sentence.
type Contributor struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// SentencePair is an example sentence in both tracks.
type SentencePair struct {
	Native    string      `json:"native"`
	Bilingual string      `json:"bilingual"`
	Context   string      `json:"context"`
	CreatedBy Contributor `json:"created_by"`
}

// ExampleSentence wraps a SentencePair.
type ExampleSentence struct {
	Pair SentencePair `json:"pair"`
}

func (s ExampleSentence) isBlank() bool {
	return strings.TrimSpace(s.Pair.Native) == "" && strings.TrimSpace(s.Pair.Bilingual) == ""
}

// PluralForm is the plural of a singular word.
type PluralForm struct {
	Word             string            `json:"word"`
	ExampleSentences []ExampleSentence `json:"example_sentences"`
}

// WordInflection holds the selected tense and number.
type WordInflection struct {
	Tense      string      `json:"tense,omitempty"`
	Number     string      `json:"number,omitempty"`
	PluralForm *PluralForm `json:"plural_form,omitempty"`
}

// WordGrammar holds the selected grammatical categories.
type WordGrammar struct {
	POS        string         `json:"pos"`
	Inflection WordInflection `json:"inflection"`
}

// Semantics holds definitions, synonyms and antonyms.
type Semantics struct {
	Definitions LabeledList `json:"definitions"`
	Synonyms    LabeledList `json:"synonyms"`
	Antonyms    LabeledList `json:"antonyms"`
}

// UsageContent holds example sentences and the selected register.
type UsageContent struct {
	Sentences []ExampleSentence `json:"sentences"`
	Register  string            `json:"register,omitempty"`
}

// Usage is the labelled usage section.
type Usage struct {
	Label   string       `json:"label"`
	Content UsageContent `json:"content"`
}

// PropertyValue is the value of one dictionary-defined property.
type PropertyValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// WordMetadata holds persistence-owned fields and publication state.
type WordMetadata struct {
	Status      WordStatus `json:"status"`
	IsPublished bool       `json:"is_published"`
	CreatedBy   uuid.UUID  `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Word is a dictionary entry.
type Word struct {
	ID              uuid.UUID         `json:"id"`
	Word            string            `json:"word"`
	LanguageCode    string            `json:"language_code"`
	Lemma           Lemma             `json:"lemma"`
	Translations    Translations      `json:"translations"`
	Etymology       LabeledText       `json:"etymology"`
	Morphology      []MorphologyEntry `json:"morphology"`
	Phonology       Phonology         `json:"phonology"`
	Grammar         WordGrammar       `json:"grammar"`
	Semantics       Semantics         `json:"semantics"`
	Usage           Usage             `json:"usage"`
	Collocations    LabeledList       `json:"collocations"`
	CulturalNotes   LabeledText       `json:"cultural_notes"`
	OtherProperties []PropertyValue   `json:"other_properties"`
	Metadata        WordMetadata      `json:"metadata"`
}

// Clone returns a deep copy of w.
func (w Word) Clone() Word {
	out := w
	out.Translations.Content = slices.Clone(w.Translations.Content)
	out.Morphology = slices.Clone(w.Morphology)
	out.Phonology.Syllables = slices.Clone(w.Phonology.Syllables)
	if w.Grammar.Inflection.PluralForm != nil {
		pf := *w.Grammar.Inflection.PluralForm
		pf.ExampleSentences = slices.Clone(pf.ExampleSentences)
		out.Grammar.Inflection.PluralForm = &pf
	}
	out.Semantics.Definitions.Content = w.Semantics.Definitions.Content.clone()
	out.Semantics.Synonyms.Content = w.Semantics.Synonyms.Content.clone()
	out.Semantics.Antonyms.Content = w.Semantics.Antonyms.Content.clone()
	out.Usage.Content.Sentences = slices.Clone(w.Usage.Content.Sentences)
	out.Collocations.Content = w.Collocations.Content.clone()
	out.OtherProperties = slices.Clone(w.OtherProperties)
	return out
}

func (p PairedList) clone() PairedList {
	return PairedList{Native: slices.Clone(p.Native), Bilingual: slices.Clone(p.Bilingual)}
}

func (p PairedList) compact() PairedList {
	return PairedList{Native: compactStrings(p.Native), Bilingual: compactStrings(p.Bilingual)}
}

// compactStrings trims every entry and drops the blank ones. It never returns nil.
func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func compactSentences(in []ExampleSentence) []ExampleSentence {
	out := make([]ExampleSentence, 0, len(in))
	for _, s := range in {
		if !s.isBlank() {
			out = append(out, s)
		}
	}
	return out
}

// Compact trims text fields and removes blank entries from every list.
func (w *Word) Compact() {
	w.Word = strings.TrimSpace(w.Word)
	w.LanguageCode = strings.TrimSpace(w.LanguageCode)
	w.Lemma.LemmaWord = strings.TrimSpace(w.Lemma.LemmaWord)
	w.Translations.Content = compactStrings(w.Translations.Content)
	w.Phonology.Syllables = compactStrings(w.Phonology.Syllables)
	w.Semantics.Definitions.Content = w.Semantics.Definitions.Content.compact()
	w.Semantics.Synonyms.Content = w.Semantics.Synonyms.Content.compact()
	w.Semantics.Antonyms.Content = w.Semantics.Antonyms.Content.compact()
	w.Collocations.Content = w.Collocations.Content.compact()
	w.Usage.Content.Sentences = compactSentences(w.Usage.Content.Sentences)
	if pf := w.Grammar.Inflection.PluralForm; pf != nil {
		pf.Word = strings.TrimSpace(pf.Word)
		pf.ExampleSentences = compactSentences(pf.ExampleSentences)
	}
}

// PluralFormApplies reports whether the word's selected number is the
// configuration's singular term.
func (w Word) PluralFormApplies(cfg LanguageConfig) bool {
	if w.Grammar.Inflection.Number == "" {
		return false
	}
	singular, ok := cfg.SingularNumber()
	return ok && singular.Native == w.Grammar.Inflection.Number
}

// ComputeStatus derives the completeness status of the word.
func (w Word) ComputeStatus() WordStatus {
	if w.Phonology.PronunciationURL != "" &&
		len(w.Phonology.Syllables) > 0 &&
		w.Grammar.POS != "" &&
		len(w.Usage.Content.Sentences) > 0 {
		return WordStatusComplete
	}
	return WordStatusIncomplete
}

// PrepareForSave compacts the word, drops a plural form that does not apply,
// and recomputes the status.
func (w *Word) PrepareForSave(cfg LanguageConfig) {
	w.Compact()
	if pf := w.Grammar.Inflection.PluralForm; pf != nil {
		if !w.PluralFormApplies(cfg) || (pf.Word == "" && len(pf.ExampleSentences) == 0) {
			w.Grammar.Inflection.PluralForm = nil
		}
	}
	w.Metadata.Status = w.ComputeStatus()
}

// Validate checks the word against the word schema and against the owning
// dictionary's configuration. It expects a compacted word.
func (w Word) Validate(dict Dictionary) error {
	var errs []FieldError

	if w.Word == "" {
		errs = append(errs, FieldError{Field: "word", Message: "Word is required"})
	}
	if w.LanguageCode == "" {
		errs = append(errs, FieldError{Field: "language_code", Message: "Language code is required"})
	} else if w.LanguageCode != dict.LanguageCode {
		errs = append(errs, FieldError{Field: "language_code", Message: "Language code does not match the dictionary"})
	}
	if len(w.Translations.Content) == 0 {
		errs = append(errs, FieldError{Field: "translations.content", Message: "At least one translation is required"})
	}
	if len(w.Semantics.Definitions.Content.Native) == 0 {
		errs = append(errs, FieldError{Field: "semantics.definitions.content.native", Message: "At least one native definition is required"})
	}
	if len(w.Semantics.Definitions.Content.Bilingual) == 0 {
		errs = append(errs, FieldError{Field: "semantics.definitions.content.bilingual", Message: "At least one bilingual definition is required"})
	}

	cfg := dict.LanguageConfig
	switch {
	case w.Grammar.POS == "":
		errs = append(errs, FieldError{Field: "grammar.pos", Message: "Part of speech is required"})
	case !cfg.Grammar.POS.Contains(w.Grammar.POS):
		errs = append(errs, FieldError{Field: "grammar.pos", Message: "Select a part of speech from the dictionary"})
	}
	if t := w.Grammar.Inflection.Tense; t != "" && !cfg.Grammar.Inflection.Tense.Contains(t) {
		errs = append(errs, FieldError{Field: "grammar.inflection.tense", Message: "Select a tense from the dictionary"})
	}
	if n := w.Grammar.Inflection.Number; n != "" && !cfg.Grammar.Inflection.Number.Contains(n) {
		errs = append(errs, FieldError{Field: "grammar.inflection.number", Message: "Select a number from the dictionary"})
	}
	if r := w.Usage.Content.Register; r != "" && !slices.Contains(cfg.Grammar.General.Register, r) {
		errs = append(errs, FieldError{Field: "usage.content.register", Message: "Select a register from the dictionary"})
	}
	for i, s := range w.Usage.Content.Sentences {
		if c := s.Pair.Context; c != "" && !slices.Contains(cfg.Grammar.General.Context, c) {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("usage.content.sentences.%d.pair.context", i),
				Message: "Select a context from the dictionary",
			})
		}
	}
	for i, m := range w.Morphology {
		if !cfg.Morphology.Contains(m.Part) {
			errs = append(errs, FieldError{Field: fmt.Sprintf("morphology.%d.part", i), Message: "Unknown morphology part"})
		}
	}
	errs = append(errs, w.propertyErrors(cfg)...)

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// propertyErrors checks other_properties positionally against the
// configuration's property definitions. Blank values are allowed.
func (w Word) propertyErrors(cfg LanguageConfig) []FieldError {
	var errs []FieldError
	for i, pv := range w.OtherProperties {
		path := fmt.Sprintf("other_properties.%d.value", i)
		if i >= len(cfg.OtherProperties) {
			if pv.Value != "" {
				errs = append(errs, FieldError{Field: path, Message: "Unknown property"})
			}
			continue
		}
		def := cfg.OtherProperties[i]
		if pv.Value != "" && !slices.Contains(def.Options, pv.Value) {
			errs = append(errs, FieldError{
				Field:   path,
				Message: fmt.Sprintf("%s must be one of the dictionary options", def.Title.Bilingual),
			})
		}
	}
	return errs
}

// Issues reports data-quality problems of a saved word without rejecting it:
// references to options that were removed from the configuration, and a
// non-lemma without its lemma word.
func (w Word) Issues(dict Dictionary) []FieldError {
	var issues []FieldError

	if !w.Lemma.IsLemma && w.Lemma.LemmaWord == "" {
		issues = append(issues, FieldError{Field: "lemma.lemma_word", Message: "Non-lemma words should name their lemma"})
	}
	cfg := dict.LanguageConfig
	if w.Grammar.POS != "" && !cfg.Grammar.POS.Contains(w.Grammar.POS) {
		issues = append(issues, FieldError{Field: "grammar.pos", Message: "Part of speech is no longer in the dictionary"})
	}
	if t := w.Grammar.Inflection.Tense; t != "" && !cfg.Grammar.Inflection.Tense.Contains(t) {
		issues = append(issues, FieldError{Field: "grammar.inflection.tense", Message: "Tense is no longer in the dictionary"})
	}
	if n := w.Grammar.Inflection.Number; n != "" && !cfg.Grammar.Inflection.Number.Contains(n) {
		issues = append(issues, FieldError{Field: "grammar.inflection.number", Message: "Number is no longer in the dictionary"})
	}
	issues = append(issues, w.propertyErrors(cfg)...)
	return issues
}

// TextIn returns the definitions for the requested view mode.
func (l LabeledList) TextIn(mode ViewMode) []string {
	if mode == ViewModeNative {
		return l.Content.Native
	}
	return l.Content.Bilingual
}
