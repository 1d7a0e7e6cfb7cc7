package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LabelPair is the native and bilingual rendering of the same text.
type LabelPair struct {
	Native    string `json:"native"`
	Bilingual string `json:"bilingual"`
}

// In returns the label for the given view mode. Bilingual is the fallback.
func (p LabelPair) In(mode ViewMode) string {
	if mode == ViewModeNative {
		return p.Native
	}
	return p.Bilingual
}

// Trimmed returns p with surrounding whitespace removed from both tracks.
func (p LabelPair) Trimmed() LabelPair {
	return LabelPair{Native: strings.TrimSpace(p.Native), Bilingual: strings.TrimSpace(p.Bilingual)}
}

// IsComplete reports whether both tracks are non-blank.
func (p LabelPair) IsComplete() bool {
	t := p.Trimmed()
	return t.Native != "" && t.Bilingual != ""
}

// Term is one taxonomy entry. Native and Bilingual name the same category,
// so the two label tracks can never drift out of alignment.
type Term struct {
	Native    string      `json:"native"`
	Bilingual string      `json:"bilingual"`
	Class     NumberClass `json:"class,omitempty"`
}

// Label returns the term's labels as a pair.
func (t Term) Label() LabelPair {
	return LabelPair{Native: t.Native, Bilingual: t.Bilingual}
}

// Taxonomy is an ordered list of terms.
type Taxonomy []Term

// Natives returns the native labels in order.
func (t Taxonomy) Natives() []string {
	out := make([]string, len(t))
	for i, term := range t {
		out[i] = term.Native
	}
	return out
}

// Find returns the term whose native label equals native.
func (t Taxonomy) Find(native string) (Term, bool) {
	for _, term := range t {
		if term.Native == native {
			return term, true
		}
	}
	return Term{}, false
}

// Contains reports whether native is one of the taxonomy's native labels.
func (t Taxonomy) Contains(native string) bool {
	_, ok := t.Find(native)
	return ok
}

// UI label keys, in display order.
const (
	LabelTranslation   = "translation"
	LabelEtymology     = "etymology"
	LabelSynonym       = "synonym"
	LabelAntonym       = "antonym"
	LabelDefinition    = "definition"
	LabelUsage         = "usage"
	LabelCollocation   = "collocation"
	LabelCulturalNotes = "cultural_notes"
)

// UILabelKeys lists every section key that a dictionary must label.
var UILabelKeys = []string{
	LabelTranslation, LabelEtymology, LabelSynonym, LabelAntonym,
	LabelDefinition, LabelUsage, LabelCollocation, LabelCulturalNotes,
}

// UILabels holds the display labels of the word-entry sections.
type UILabels struct {
	Translation   LabelPair `json:"translation"`
	Etymology     LabelPair `json:"etymology"`
	Synonym       LabelPair `json:"synonym"`
	Antonym       LabelPair `json:"antonym"`
	Definition    LabelPair `json:"definition"`
	Usage         LabelPair `json:"usage"`
	Collocation   LabelPair `json:"collocation"`
	CulturalNotes LabelPair `json:"cultural_notes"`
}

func (l *UILabels) field(key string) *LabelPair {
	switch key {
	case LabelTranslation:
		return &l.Translation
	case LabelEtymology:
		return &l.Etymology
	case LabelSynonym:
		return &l.Synonym
	case LabelAntonym:
		return &l.Antonym
	case LabelDefinition:
		return &l.Definition
	case LabelUsage:
		return &l.Usage
	case LabelCollocation:
		return &l.Collocation
	case LabelCulturalNotes:
		return &l.CulturalNotes
	}
	return nil
}

// Get returns the label for key.
func (l UILabels) Get(key string) (LabelPair, bool) {
	p := l.field(key)
	if p == nil {
		return LabelPair{}, false
	}
	return *p, true
}

// Set replaces the label for key. It returns false for unknown keys.
func (l *UILabels) Set(key string, label LabelPair) bool {
	p := l.field(key)
	if p == nil {
		return false
	}
	*p = label
	return true
}

// Inflection holds the tense and number taxonomies.
type Inflection struct {
	Tense  Taxonomy `json:"tense"`
	Number Taxonomy `json:"number"`
}

// GeneralGrammar holds the register, context and relationship options.
type GeneralGrammar struct {
	Register     []string `json:"register"`
	Context      []string `json:"context"`
	Relationship Taxonomy `json:"relationship"`
}

// GrammarConfig is the grammar taxonomy of a dictionary.
type GrammarConfig struct {
	POS        Taxonomy       `json:"pos"`
	Inflection Inflection     `json:"inflection"`
	General    GeneralGrammar `json:"general"`
}

// PropertyDefinition is a dictionary-specific attribute such as noun class.
type PropertyDefinition struct {
	Title   LabelPair `json:"title"`
	Options []string  `json:"options"`
}

// LanguageConfig is the part of a dictionary that parametrizes word entry.
type LanguageConfig struct {
	Grammar         GrammarConfig        `json:"grammar"`
	Morphology      Taxonomy             `json:"morphology"`
	OtherProperties []PropertyDefinition `json:"other_properties"`
}

// SingularNumber returns the number term tagged singular. When no term is
// tagged the first number term is the singular one.
func (c LanguageConfig) SingularNumber() (Term, bool) {
	number := c.Grammar.Inflection.Number
	for _, t := range number {
		if t.Class == NumberClassSingular {
			return t, true
		}
	}
	if len(number) > 0 {
		return number[0], true
	}
	return Term{}, false
}

// NumberClassOf returns the class of the number term with the given native label.
func (c LanguageConfig) NumberClassOf(native string) NumberClass {
	t, ok := c.Grammar.Inflection.Number.Find(native)
	if !ok {
		return NumberClassNone
	}
	return t.Class
}

// DictionaryFlags are the operator-controlled switches of a dictionary.
type DictionaryFlags struct {
	IsPublished        bool `json:"is_published"`
	AllowContributions bool `json:"allow_contributions"`
	EnableDiscussions  bool `json:"enable_discussions"`
	ShowEtymology      bool `json:"show_etymology"`
}

// DictionaryMetadata combines the flags with persistence-owned fields.
type DictionaryMetadata struct {
	DictionaryFlags
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Dictionary is the per-language configuration that governs word entry and display.
type Dictionary struct {
	ID             uuid.UUID          `json:"id"`
	LanguageCode   string             `json:"language_code"`
	Name           LabelPair          `json:"dictionary_name"`
	Description    string             `json:"description,omitempty"`
	UILabels       UILabels           `json:"ui_labels"`
	LanguageConfig LanguageConfig     `json:"language_config"`
	Metadata       DictionaryMetadata `json:"metadata"`
	WordCount      int                `json:"word_count"`
}

// Clone returns a deep copy of d.
func (d Dictionary) Clone() Dictionary {
	out := d
	g := d.LanguageConfig.Grammar
	out.LanguageConfig.Grammar = GrammarConfig{
		POS: slices.Clone(g.POS),
		Inflection: Inflection{
			Tense:  slices.Clone(g.Inflection.Tense),
			Number: slices.Clone(g.Inflection.Number),
		},
		General: GeneralGrammar{
			Register:     slices.Clone(g.General.Register),
			Context:      slices.Clone(g.General.Context),
			Relationship: slices.Clone(g.General.Relationship),
		},
	}
	out.LanguageConfig.Morphology = slices.Clone(d.LanguageConfig.Morphology)
	if d.LanguageConfig.OtherProperties != nil {
		props := make([]PropertyDefinition, len(d.LanguageConfig.OtherProperties))
		for i, p := range d.LanguageConfig.OtherProperties {
			props[i] = PropertyDefinition{Title: p.Title, Options: slices.Clone(p.Options)}
		}
		out.LanguageConfig.OtherProperties = props
	}
	return out
}

// Validate checks the dictionary against the configuration schema and returns
// a *ValidationError listing every violation.
func (d Dictionary) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(d.LanguageCode) == "" {
		errs = append(errs, FieldError{Field: "language_code", Message: "Language is required"})
	} else if !IsSupportedLanguage(d.LanguageCode) {
		errs = append(errs, FieldError{Field: "language_code", Message: "Unsupported language"})
	}
	if strings.TrimSpace(d.Name.Native) == "" {
		errs = append(errs, FieldError{Field: "dictionary_name.native", Message: "Native name is required"})
	}
	if strings.TrimSpace(d.Name.Bilingual) == "" {
		errs = append(errs, FieldError{Field: "dictionary_name.bilingual", Message: "Bilingual name is required"})
	}

	for _, key := range UILabelKeys {
		label, _ := d.UILabels.Get(key)
		if strings.TrimSpace(label.Native) == "" {
			errs = append(errs, FieldError{Field: "ui_labels." + key + ".native", Message: "Label is required"})
		}
		if strings.TrimSpace(label.Bilingual) == "" {
			errs = append(errs, FieldError{Field: "ui_labels." + key + ".bilingual", Message: "Label is required"})
		}
	}

	cfg := d.LanguageConfig
	if len(cfg.Grammar.POS) == 0 {
		errs = append(errs, FieldError{Field: "language_config.grammar.pos", Message: "At least one part of speech is required"})
	}
	errs = append(errs, validateTaxonomy("language_config.grammar.pos", cfg.Grammar.POS)...)
	errs = append(errs, validateTaxonomy("language_config.grammar.inflection.tense", cfg.Grammar.Inflection.Tense)...)
	errs = append(errs, validateTaxonomy("language_config.grammar.inflection.number", cfg.Grammar.Inflection.Number)...)
	errs = append(errs, validateTaxonomy("language_config.grammar.general.relationship", cfg.Grammar.General.Relationship)...)
	errs = append(errs, validateTaxonomy("language_config.morphology", cfg.Morphology)...)
	errs = append(errs, validateOptions("language_config.grammar.general.register", cfg.Grammar.General.Register)...)
	errs = append(errs, validateOptions("language_config.grammar.general.context", cfg.Grammar.General.Context)...)

	singular := 0
	for _, t := range cfg.Grammar.Inflection.Number {
		if t.Class == NumberClassSingular {
			singular++
		}
	}
	if singular > 1 {
		errs = append(errs, FieldError{
			Field:   "language_config.grammar.inflection.number",
			Message: "Only one number option can be marked singular",
		})
	}

	for i, p := range cfg.OtherProperties {
		path := fmt.Sprintf("language_config.other_properties.%d", i)
		if !p.Title.IsComplete() {
			errs = append(errs, FieldError{Field: path + ".title", Message: "Both native and bilingual titles are required"})
		}
		if len(p.Options) == 0 {
			errs = append(errs, FieldError{Field: path + ".options", Message: "At least one option is required"})
		}
		errs = append(errs, validateOptions(path+".options", p.Options)...)
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

func validateTaxonomy(path string, t Taxonomy) []FieldError {
	var errs []FieldError
	for i, term := range t {
		if !term.Label().IsComplete() {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s.%d", path, i),
				Message: "Please fill in both native and bilingual labels",
			})
		}
		if !term.Class.IsValid() {
			errs = append(errs, FieldError{
				Field:   fmt.Sprintf("%s.%d.class", path, i),
				Message: "Invalid number class",
			})
		}
	}
	return errs
}

func validateOptions(path string, opts []string) []FieldError {
	var errs []FieldError
	for i, o := range opts {
		if strings.TrimSpace(o) == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("%s.%d", path, i), Message: "Option cannot be empty"})
		}
	}
	return errs
}
