// Package wordform builds word entries against a dictionary configuration.
// The selectable vocabulary of the form (parts of speech, tenses, numbers,
// registers, contexts and custom property options) comes from the
// configuration the form was initialized with.
package wordform

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
)

var (
	ErrUploadInProgress = errors.New("audio upload already in progress")
	ErrSubmitInProgress = errors.New("submit already in progress")
	ErrUploadFailed     = errors.New("failed to upload audio file")
)

// User-facing messages.
const (
	msgNotAudio        = "Please upload an audio file"
	msgAudioTooLarge   = "Audio file is too large"
	msgAudioUploaded   = "Audio file uploaded successfully"
	msgSyllableMissing = "Please enter a syllable"
	msgPluralHidden    = "Plural form applies only to singular words"
	msgCreated         = "Word created successfully"
	msgUpdated         = "Word updated successfully"
)

// DefaultMaxAudioBytes caps uploads when no limit is configured.
const DefaultMaxAudioBytes = 10 << 20

// Notice is a confirmation shown to the operator after a successful operation.
type Notice struct {
	Message string `json:"message"`
}

// Audio is an uploaded pronunciation file.
type Audio struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Uploader stores an audio file and returns the URL it is served from.
type Uploader interface {
	UploadAudio(ctx context.Context, a Audio) (string, error)
}

// Persister stores a validated word. It creates the word when w.ID is zero
// and updates it otherwise.
type Persister interface {
	Persist(ctx context.Context, w domain.Word) (domain.Word, error)
}

// State is a consistent snapshot of a form.
type State struct {
	Word              domain.Word `json:"word"`
	SyllableBuffer    string      `json:"syllable_buffer"`
	PluralFormVisible bool        `json:"plural_form_visible"`
	Uploading         bool        `json:"uploading"`
	Submitting        bool        `json:"submitting"`
}

// Form holds one word entry under edit.
type Form struct {
	mu             sync.Mutex
	dict           domain.Dictionary
	word           domain.Word
	syllableBuffer string
	uploading      bool
	submitting     bool
	maxAudioBytes  int64
}

// Option configures a Form.
type Option func(*Form)

// WithMaxAudioBytes limits the size of attached audio files.
func WithMaxAudioBytes(n int64) Option {
	return func(f *Form) {
		if n > 0 {
			f.maxAudioBytes = n
		}
	}
}

// Initialize builds a form for dict. When initial is non-nil its sections
// that are set replace the defaults. The form keeps its own copy of dict.
func Initialize(dict domain.Dictionary, initial *domain.Word, opts ...Option) *Form {
	f := &Form{
		dict:          dict.Clone(),
		maxAudioBytes: DefaultMaxAudioBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.word = Defaults(f.dict)
	if initial != nil {
		f.word = merge(f.word, initial.Clone(), f.dict)
	}
	return f
}

// Defaults returns a blank word laid out for dict.
func Defaults(dict domain.Dictionary) domain.Word {
	cfg := dict.LanguageConfig
	labels := dict.UILabels
	return domain.Word{
		LanguageCode: dict.LanguageCode,
		Lemma:        domain.Lemma{IsLemma: true},
		Translations: domain.Translations{Label: labels.Translation.Native, Content: []string{""}},
		Etymology:    domain.LabeledText{Label: labels.Etymology.Native},
		Morphology:   alignMorphology(cfg, nil),
		Phonology:    domain.Phonology{Syllables: []string{}},
		Semantics: domain.Semantics{
			Definitions: domain.LabeledList{
				Label:   labels.Definition.Native,
				Content: domain.PairedList{Native: []string{""}, Bilingual: []string{""}},
			},
			Synonyms: domain.LabeledList{Label: labels.Synonym.Native, Content: emptyPaired()},
			Antonyms: domain.LabeledList{Label: labels.Antonym.Native, Content: emptyPaired()},
		},
		Usage: domain.Usage{
			Label: labels.Usage.Native,
			Content: domain.UsageContent{
				Sentences: []domain.ExampleSentence{blankSentence(cfg)},
			},
		},
		Collocations:    domain.LabeledList{Label: labels.Collocation.Native, Content: emptyPaired()},
		CulturalNotes:   domain.LabeledText{Label: labels.CulturalNotes.Native},
		OtherProperties: alignProperties(cfg, nil),
		Metadata:        domain.WordMetadata{Status: domain.WordStatusIncomplete},
	}
}

func emptyPaired() domain.PairedList {
	return domain.PairedList{Native: []string{}, Bilingual: []string{}}
}

func blankSentence(cfg domain.LanguageConfig) domain.ExampleSentence {
	var ctx string
	if len(cfg.Grammar.General.Context) > 0 {
		ctx = cfg.Grammar.General.Context[0]
	}
	return domain.ExampleSentence{Pair: domain.SentencePair{
		Context:   ctx,
		CreatedBy: domain.Contributor{Role: string(domain.UserRoleAdmin)},
	}}
}

// merge lays the set sections of in over def. Morphology and property rows
// are realigned to the configuration; labels left blank are filled in.
func merge(def, in domain.Word, dict domain.Dictionary) domain.Word {
	out := def
	out.ID = in.ID
	if in.Word != "" {
		out.Word = in.Word
	}
	if in.ID != uuid.Nil || !isZero(in.Lemma) {
		out.Lemma = in.Lemma
	}
	overlay(&out.Translations, in.Translations)
	overlay(&out.Etymology, in.Etymology)
	overlay(&out.Phonology, in.Phonology)
	overlay(&out.Grammar, in.Grammar)
	overlay(&out.Semantics.Definitions, in.Semantics.Definitions)
	overlay(&out.Semantics.Synonyms, in.Semantics.Synonyms)
	overlay(&out.Semantics.Antonyms, in.Semantics.Antonyms)
	overlay(&out.Usage, in.Usage)
	overlay(&out.Collocations, in.Collocations)
	overlay(&out.CulturalNotes, in.CulturalNotes)
	overlay(&out.Metadata, in.Metadata)

	cfg := dict.LanguageConfig
	out.Morphology = alignMorphology(cfg, in.Morphology)
	out.OtherProperties = alignProperties(cfg, in.OtherProperties)
	fillLabels(&out, dict.UILabels)
	return out
}

func overlay[T any](dst *T, src T) {
	if !isZero(src) {
		*dst = src
	}
}

func isZero(v any) bool {
	return reflect.ValueOf(v).IsZero()
}

func fillLabels(w *domain.Word, labels domain.UILabels) {
	fill := func(dst *string, l domain.LabelPair) {
		if *dst == "" {
			*dst = l.Native
		}
	}
	fill(&w.Translations.Label, labels.Translation)
	fill(&w.Etymology.Label, labels.Etymology)
	fill(&w.Semantics.Definitions.Label, labels.Definition)
	fill(&w.Semantics.Synonyms.Label, labels.Synonym)
	fill(&w.Semantics.Antonyms.Label, labels.Antonym)
	fill(&w.Usage.Label, labels.Usage)
	fill(&w.Collocations.Label, labels.Collocation)
	fill(&w.CulturalNotes.Label, labels.CulturalNotes)
}

// alignMorphology returns one row per configured morphology term, carrying
// over the content of rows with the same part.
func alignMorphology(cfg domain.LanguageConfig, existing []domain.MorphologyEntry) []domain.MorphologyEntry {
	out := make([]domain.MorphologyEntry, len(cfg.Morphology))
	for i, term := range cfg.Morphology {
		out[i] = domain.MorphologyEntry{Part: term.Native}
		for _, e := range existing {
			if e.Part == term.Native {
				out[i].Content = e.Content
				break
			}
		}
	}
	return out
}

// alignProperties returns one row per configured property, carrying over the
// value of rows with the same label.
func alignProperties(cfg domain.LanguageConfig, existing []domain.PropertyValue) []domain.PropertyValue {
	out := make([]domain.PropertyValue, len(cfg.OtherProperties))
	for i, def := range cfg.OtherProperties {
		out[i] = domain.PropertyValue{Label: def.Title.Native}
		for _, e := range existing {
			if e.Label == def.Title.Native {
				out[i].Value = e.Value
				break
			}
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Word:              f.word.Clone(),
		SyllableBuffer:    f.syllableBuffer,
		PluralFormVisible: f.pluralFormVisible(),
		Uploading:         f.uploading,
		Submitting:        f.submitting,
	}
}

// Dictionary returns a copy of the configuration the form was built for.
func (f *Form) Dictionary() domain.Dictionary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dict.Clone()
}

// PluralFormVisible reports whether the selected number is the singular term.
func (f *Form) PluralFormVisible() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pluralFormVisible()
}

func (f *Form) pluralFormVisible() bool {
	return f.word.PluralFormApplies(f.dict.LanguageConfig)
}

// ---------------------------------------------------------------------------
// Repeatable entries
// ---------------------------------------------------------------------------

// AddRepeatableEntry appends a blank entry to g.
func (f *Form) AddRepeatableEntry(g Group) error {
	if !g.IsValid() {
		return unknownGroup(g)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if g == GroupPluralExamples && !f.pluralFormVisible() {
		return domain.NewValidationError("grammar.inflection.plural_form", msgPluralHidden)
	}
	if list := f.strings(g); list != nil {
		*list = append(*list, "")
		return nil
	}
	list := f.sentences(g)
	*list = append(*list, blankSentence(f.dict.LanguageConfig))
	return nil
}

// RemoveRepeatableEntry removes the entry at index from g. Removing the first
// entry of a required group is a no-op and reports false.
func (f *Form) RemoveRepeatableEntry(g Group, index int) (bool, error) {
	if !g.IsValid() {
		return false, unknownGroup(g)
	}
	if index == 0 && g.FirstEntryGuarded() {
		return false, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if list := f.strings(g); list != nil {
		if index < 0 || index >= len(*list) {
			return false, outOfRange(g.Path(), index)
		}
		*list = append((*list)[:index:index], (*list)[index+1:]...)
		return true, nil
	}
	if g == GroupPluralExamples && f.word.Grammar.Inflection.PluralForm == nil {
		return false, outOfRange(g.Path(), index)
	}
	list := f.sentences(g)
	if index < 0 || index >= len(*list) {
		return false, outOfRange(g.Path(), index)
	}
	*list = append((*list)[:index:index], (*list)[index+1:]...)
	return true, nil
}

// ---------------------------------------------------------------------------
// Fields
// ---------------------------------------------------------------------------

// SetField sets one field. Scalar fields use their JSON path
// ("grammar.pos", "lemma.is_lemma"). List entries are addressed by group and
// index ("translations.2", "usage_sentences.0.context"); morphology and
// property rows by "morphology.<i>" and "other_properties.<i>".
// Option-backed fields only accept values from the configuration.
func (f *Form) SetField(path, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ok, err := f.setScalar(path, value); ok {
		return err
	}
	return f.setIndexed(path, value)
}

func (f *Form) setScalar(path, value string) (bool, error) {
	w := &f.word
	cfg := f.dict.LanguageConfig

	switch path {
	case "word":
		w.Word = value
	case "lemma.is_lemma":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return true, domain.NewValidationError(path, "Must be true or false")
		}
		w.Lemma.IsLemma = b
	case "lemma.lemma_word":
		w.Lemma.LemmaWord = value
	case "etymology.native":
		w.Etymology.Content.Native = value
	case "etymology.bilingual":
		w.Etymology.Content.Bilingual = value
	case "cultural_notes.native":
		w.CulturalNotes.Content.Native = value
	case "cultural_notes.bilingual":
		w.CulturalNotes.Content.Bilingual = value
	case "grammar.pos":
		if value != "" && !cfg.Grammar.POS.Contains(value) {
			return true, domain.NewValidationError(path, "Select a part of speech from the dictionary")
		}
		w.Grammar.POS = value
	case "grammar.inflection.tense":
		if value != "" && !cfg.Grammar.Inflection.Tense.Contains(value) {
			return true, domain.NewValidationError(path, "Select a tense from the dictionary")
		}
		w.Grammar.Inflection.Tense = value
	case "grammar.inflection.number":
		if value != "" && !cfg.Grammar.Inflection.Number.Contains(value) {
			return true, domain.NewValidationError(path, "Select a number from the dictionary")
		}
		w.Grammar.Inflection.Number = value
	case "grammar.inflection.plural_form.word":
		if !f.pluralFormVisible() {
			return true, domain.NewValidationError("grammar.inflection.plural_form", msgPluralHidden)
		}
		f.pluralForm().Word = value
	case "usage.content.register":
		if value != "" && !slices.Contains(cfg.Grammar.General.Register, value) {
			return true, domain.NewValidationError(path, "Select a register from the dictionary")
		}
		w.Usage.Content.Register = value
	default:
		return false, nil
	}
	return true, nil
}

func (f *Form) setIndexed(path, value string) error {
	head, rest, _ := strings.Cut(path, ".")
	idxText, field, _ := strings.Cut(rest, ".")
	index, err := strconv.Atoi(idxText)
	if err != nil {
		return unknownField(path)
	}
	cfg := f.dict.LanguageConfig

	switch head {
	case "morphology":
		if field != "" {
			return unknownField(path)
		}
		if index < 0 || index >= len(f.word.Morphology) {
			return outOfRange("morphology", index)
		}
		f.word.Morphology[index].Content = value
		return nil
	case "other_properties":
		if field != "" {
			return unknownField(path)
		}
		if index < 0 || index >= len(f.word.OtherProperties) {
			return outOfRange("other_properties", index)
		}
		if value != "" && (index >= len(cfg.OtherProperties) || !slices.Contains(cfg.OtherProperties[index].Options, value)) {
			return domain.NewValidationError(path+".value", "Select an option from the dictionary")
		}
		f.word.OtherProperties[index].Value = value
		return nil
	}

	g := Group(head)
	if !g.IsValid() {
		return unknownField(path)
	}
	if list := f.strings(g); list != nil {
		if field != "" {
			return unknownField(path)
		}
		if index < 0 || index >= len(*list) {
			return outOfRange(g.Path(), index)
		}
		(*list)[index] = value
		return nil
	}

	if g == GroupPluralExamples && f.word.Grammar.Inflection.PluralForm == nil {
		return outOfRange(g.Path(), index)
	}
	list := f.sentences(g)
	if index < 0 || index >= len(*list) {
		return outOfRange(g.Path(), index)
	}
	pair := &(*list)[index].Pair
	switch field {
	case "native":
		pair.Native = value
	case "bilingual":
		pair.Bilingual = value
	case "context":
		if value != "" && !slices.Contains(cfg.Grammar.General.Context, value) {
			return domain.NewValidationError(path, "Select a context from the dictionary")
		}
		pair.Context = value
	default:
		return unknownField(path)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Syllables
// ---------------------------------------------------------------------------

// AddSyllable appends a trimmed syllable and clears the syllable buffer.
func (f *Form) AddSyllable(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addSyllable(text)
}

// SetSyllableBuffer replaces the pending syllable text.
func (f *Form) SetSyllableBuffer(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syllableBuffer = text
}

// CommitSyllableBuffer adds the pending syllable text as a syllable.
func (f *Form) CommitSyllableBuffer() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addSyllable(f.syllableBuffer)
}

func (f *Form) addSyllable(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.NewValidationError(GroupSyllables.Path(), msgSyllableMissing)
	}
	f.word.Phonology.Syllables = append(f.word.Phonology.Syllables, text)
	f.syllableBuffer = ""
	return nil
}

// ---------------------------------------------------------------------------
// Audio
// ---------------------------------------------------------------------------

// AttachAudio uploads a and stores its URL as the pronunciation. Only one
// upload runs at a time; a failed upload leaves the form unchanged.
func (f *Form) AttachAudio(ctx context.Context, up Uploader, a Audio) (Notice, error) {
	if !strings.HasPrefix(strings.ToLower(a.ContentType), "audio/") || len(a.Data) == 0 {
		return Notice{}, domain.NewValidationError("phonology.pronunciation_url", msgNotAudio)
	}

	f.mu.Lock()
	if int64(len(a.Data)) > f.maxAudioBytes {
		f.mu.Unlock()
		return Notice{}, domain.NewValidationError("phonology.pronunciation_url", msgAudioTooLarge)
	}
	if f.uploading {
		f.mu.Unlock()
		return Notice{}, ErrUploadInProgress
	}
	f.uploading = true
	f.mu.Unlock()

	url, err := up.UploadAudio(ctx, a)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploading = false
	if err != nil {
		return Notice{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	f.word.Phonology.PronunciationURL = url
	return Notice{Message: msgAudioUploaded}, nil
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

// Submit compacts and validates a copy of the word and hands it to p.
// Validation failures never reach p. The form state is left verbatim on any
// failure. On success the form adopts the persisted identity.
func (f *Form) Submit(ctx context.Context, p Persister) (domain.Word, Notice, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.Word{}, Notice{}, ErrSubmitInProgress
	}
	candidate := f.word.Clone()
	candidate.LanguageCode = f.dict.LanguageCode
	candidate.PrepareForSave(f.dict.LanguageConfig)
	if err := candidate.Validate(f.dict); err != nil {
		f.mu.Unlock()
		return domain.Word{}, Notice{}, err
	}
	f.submitting = true
	f.mu.Unlock()

	creating := candidate.ID == uuid.Nil
	saved, err := p.Persist(ctx, candidate)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		return domain.Word{}, Notice{}, err
	}

	f.word.ID = saved.ID
	f.word.Metadata = saved.Metadata

	if creating {
		return saved, Notice{Message: msgCreated}, nil
	}
	return saved, Notice{Message: msgUpdated}, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func unknownGroup(g Group) error {
	return domain.NewValidationError("group", fmt.Sprintf("Unknown group %q", string(g)))
}

func unknownField(path string) error {
	return domain.NewValidationError(path, "Unknown field")
}

func outOfRange(path string, index int) error {
	return domain.NewValidationError(fmt.Sprintf("%s.%d", path, index), "Index out of range")
}
