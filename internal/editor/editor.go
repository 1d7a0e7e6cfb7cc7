// Package editor mutates a dictionary configuration one operation at a time.
// Every operation runs under the editor's mutex, so a reader never observes
// a half-applied change.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/SiphoChris/afrilex/internal/domain"
)

// ErrSubmitInProgress is returned when Submit is called while a previous
// submission of the same editor has not finished.
var ErrSubmitInProgress = errors.New("submit already in progress")

// Track names a taxonomy or option list of the configuration.
type Track string

const (
	TrackPOS          Track = "pos"
	TrackTense        Track = "tense"
	TrackNumber       Track = "number"
	TrackRelationship Track = "relationship"
	TrackMorphology   Track = "morphology"
	TrackRegister     Track = "register"
	TrackContext      Track = "context"
)

// Paired reports whether the track holds native/bilingual terms.
func (t Track) Paired() bool {
	switch t {
	case TrackPOS, TrackTense, TrackNumber, TrackRelationship, TrackMorphology:
		return true
	}
	return false
}

// IsValid reports whether t is a known track.
func (t Track) IsValid() bool {
	return t.Paired() || t == TrackRegister || t == TrackContext
}

// Path returns the JSON path of the track inside a dictionary document.
func (t Track) Path() string {
	switch t {
	case TrackPOS:
		return "language_config.grammar.pos"
	case TrackTense:
		return "language_config.grammar.inflection.tense"
	case TrackNumber:
		return "language_config.grammar.inflection.number"
	case TrackRelationship:
		return "language_config.grammar.general.relationship"
	case TrackMorphology:
		return "language_config.morphology"
	case TrackRegister:
		return "language_config.grammar.general.register"
	case TrackContext:
		return "language_config.grammar.general.context"
	}
	return "track"
}

// User-facing messages.
const (
	msgPairedRequired   = "Please fill in both native and bilingual labels"
	msgPropertyRequired = "Please fill in all fields for the other property"
	msgPropertyAdded    = "Other property added successfully"
	msgCreated          = "Dictionary created successfully"
	msgUpdated          = "Dictionary updated successfully"
)

var addedMessages = map[Track]string{
	TrackPOS:          "Part of speech added successfully",
	TrackTense:        "Tense added successfully",
	TrackNumber:       "Number option added successfully",
	TrackRelationship: "Relationship option added successfully",
	TrackMorphology:   "Morphology part added successfully",
	TrackRegister:     "Register option added successfully",
	TrackContext:      "Context option added successfully",
}

var requiredMessages = map[Track]string{
	TrackRegister: "Please enter a register option",
	TrackContext:  "Please enter a context option",
}

// Notice is a confirmation shown to the operator after a successful operation.
type Notice struct {
	Message string `json:"message"`
}

// Persister stores a validated configuration. It creates the dictionary when
// d.ID is zero and updates it otherwise.
type Persister interface {
	Persist(ctx context.Context, d domain.Dictionary) (domain.Dictionary, error)
}

// Editor holds one dictionary configuration under edit.
type Editor struct {
	mu         sync.Mutex
	dict       domain.Dictionary
	submitting bool
}

// New returns an editor over a deep copy of d.
func New(d domain.Dictionary) *Editor {
	return &Editor{dict: d.Clone()}
}

// Snapshot returns a deep copy of the current configuration.
func (e *Editor) Snapshot() domain.Dictionary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dict.Clone()
}

// Submitting reports whether a submission is running.
func (e *Editor) Submitting() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.submitting
}

// ---------------------------------------------------------------------------
// Taxonomy tracks
// ---------------------------------------------------------------------------

// AddPairedOption appends a term to a paired track. Both labels are trimmed
// and must be non-empty.
func (e *Editor) AddPairedOption(track Track, native, bilingual string) (Notice, error) {
	if !track.Paired() {
		return Notice{}, unknownTrack(track)
	}
	label := domain.LabelPair{Native: native, Bilingual: bilingual}.Trimmed()
	if !label.IsComplete() {
		return Notice{}, domain.NewValidationError(track.Path(), msgPairedRequired)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.taxonomy(track)
	*t = append(*t, domain.Term{Native: label.Native, Bilingual: label.Bilingual})
	return Notice{Message: addedMessages[track]}, nil
}

// RemovePairedOption removes the term at index from a paired track.
func (e *Editor) RemovePairedOption(track Track, index int) error {
	if !track.Paired() {
		return unknownTrack(track)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	t := e.taxonomy(track)
	if index < 0 || index >= len(*t) {
		return outOfRange(track.Path(), index)
	}
	*t = append((*t)[:index:index], (*t)[index+1:]...)
	return nil
}

// AddSingleOption appends a trimmed, non-empty option to register or context.
func (e *Editor) AddSingleOption(track Track, label string) (Notice, error) {
	if track.Paired() || !track.IsValid() {
		return Notice{}, unknownTrack(track)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return Notice{}, domain.NewValidationError(track.Path(), requiredMessages[track])
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	opts := e.options(track)
	*opts = append(*opts, label)
	return Notice{Message: addedMessages[track]}, nil
}

// RemoveSingleOption removes the option at index from register or context.
func (e *Editor) RemoveSingleOption(track Track, index int) error {
	if track.Paired() || !track.IsValid() {
		return unknownTrack(track)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	opts := e.options(track)
	if index < 0 || index >= len(*opts) {
		return outOfRange(track.Path(), index)
	}
	*opts = append((*opts)[:index:index], (*opts)[index+1:]...)
	return nil
}

// SetNumberClass tags the number term at index. Tagging a term singular
// clears the tag from the previous singular term.
func (e *Editor) SetNumberClass(index int, class domain.NumberClass) error {
	if !class.IsValid() {
		return domain.NewValidationError(TrackNumber.Path()+".class", "Invalid number class")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	number := e.dict.LanguageConfig.Grammar.Inflection.Number
	if index < 0 || index >= len(number) {
		return outOfRange(TrackNumber.Path(), index)
	}
	if class == domain.NumberClassSingular {
		for i := range number {
			if number[i].Class == domain.NumberClassSingular {
				number[i].Class = domain.NumberClassNone
			}
		}
	}
	number[index].Class = class
	return nil
}

// ---------------------------------------------------------------------------
// Custom properties
// ---------------------------------------------------------------------------

// SplitOptions splits a comma separated option list, trimming every option
// and dropping empty ones.
func SplitOptions(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// AddCustomProperty appends a property definition built from two titles and
// a comma separated option list.
func (e *Editor) AddCustomProperty(titleNative, titleBilingual, rawOptions string) (Notice, error) {
	title := domain.LabelPair{Native: titleNative, Bilingual: titleBilingual}.Trimmed()
	options := SplitOptions(rawOptions)
	if !title.IsComplete() || len(options) == 0 {
		return Notice{}, domain.NewValidationError("language_config.other_properties", msgPropertyRequired)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.dict.LanguageConfig.OtherProperties = append(e.dict.LanguageConfig.OtherProperties,
		domain.PropertyDefinition{Title: title, Options: options})
	return Notice{Message: msgPropertyAdded}, nil
}

// RemoveCustomProperty removes the property definition at index.
func (e *Editor) RemoveCustomProperty(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	props := e.dict.LanguageConfig.OtherProperties
	if index < 0 || index >= len(props) {
		return outOfRange("language_config.other_properties", index)
	}
	e.dict.LanguageConfig.OtherProperties = append(props[:index:index], props[index+1:]...)
	return nil
}

// ---------------------------------------------------------------------------
// Basic info, labels, flags
// ---------------------------------------------------------------------------

// SetBasicInfo replaces the language, names and description.
func (e *Editor) SetBasicInfo(languageCode string, name domain.LabelPair, description string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dict.LanguageCode = strings.TrimSpace(languageCode)
	e.dict.Name = name.Trimmed()
	e.dict.Description = strings.TrimSpace(description)
}

// SetUILabel replaces one section label.
func (e *Editor) SetUILabel(key string, label domain.LabelPair) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.dict.UILabels.Set(key, label.Trimmed()) {
		return domain.NewValidationError("ui_labels", fmt.Sprintf("Unknown label %q", key))
	}
	return nil
}

// SetFlags replaces the publication and feature flags.
func (e *Editor) SetFlags(flags domain.DictionaryFlags) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.dict.Metadata.DictionaryFlags = flags
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

// Submit validates the configuration and hands it to p. Validation failures
// never reach p. On a persistence failure the editor keeps its state so the
// operator can retry. On success the editor adopts the persisted identity so a
// later submit updates instead of creating.
func (e *Editor) Submit(ctx context.Context, p Persister) (domain.Dictionary, Notice, error) {
	e.mu.Lock()
	if e.submitting {
		e.mu.Unlock()
		return domain.Dictionary{}, Notice{}, ErrSubmitInProgress
	}
	snapshot := e.dict.Clone()
	if err := snapshot.Validate(); err != nil {
		e.mu.Unlock()
		return domain.Dictionary{}, Notice{}, err
	}
	e.submitting = true
	e.mu.Unlock()

	creating := snapshot.ID == uuid.Nil
	saved, err := p.Persist(ctx, snapshot)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.submitting = false
	if err != nil {
		return domain.Dictionary{}, Notice{}, err
	}

	e.dict.ID = saved.ID
	e.dict.Metadata.CreatedBy = saved.Metadata.CreatedBy
	e.dict.Metadata.CreatedAt = saved.Metadata.CreatedAt
	e.dict.Metadata.UpdatedAt = saved.Metadata.UpdatedAt
	e.dict.WordCount = saved.WordCount

	if creating {
		return saved, Notice{Message: msgCreated}, nil
	}
	return saved, Notice{Message: msgUpdated}, nil
}

// ---------------------------------------------------------------------------
// Helpers (callers hold e.mu)
// ---------------------------------------------------------------------------

func (e *Editor) taxonomy(track Track) *domain.Taxonomy {
	cfg := &e.dict.LanguageConfig
	switch track {
	case TrackPOS:
		return &cfg.Grammar.POS
	case TrackTense:
		return &cfg.Grammar.Inflection.Tense
	case TrackNumber:
		return &cfg.Grammar.Inflection.Number
	case TrackRelationship:
		return &cfg.Grammar.General.Relationship
	default:
		return &cfg.Morphology
	}
}

func (e *Editor) options(track Track) *[]string {
	if track == TrackRegister {
		return &e.dict.LanguageConfig.Grammar.General.Register
	}
	return &e.dict.LanguageConfig.Grammar.General.Context
}

func unknownTrack(track Track) error {
	return domain.NewValidationError("track", fmt.Sprintf("Unknown track %q", string(track)))
}

func outOfRange(path string, index int) error {
	return domain.NewValidationError(fmt.Sprintf("%s.%d", path, index), "Index out of range")
}
