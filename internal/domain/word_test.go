package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWord() Word {
	return Word{
		Word:         "indoda",
		LanguageCode: "xh",
		Lemma:        Lemma{IsLemma: true},
		Translations: Translations{Content: []string{"man"}},
		Morphology: []MorphologyEntry{
			{Part: "Isimaphambili", Content: "in"},
			{Part: "Ingcambu", Content: "doda"},
		},
		Grammar: WordGrammar{
			POS:        "Isibizo",
			Inflection: WordInflection{Number: "Isinye"},
		},
		Semantics: Semantics{
			Definitions: LabeledList{Content: PairedList{
				Native:    []string{"Isidalwa esilume"},
				Bilingual: []string{"A male human being"},
			}},
		},
		OtherProperties: []PropertyValue{{Label: "Ihlelo", Value: "9"}, {Label: "Isixando", Value: ""}},
	}
}

func TestWord_Validate_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, validWord().Validate(validDictionary()))
}

func TestWord_Validate_RequiredLists(t *testing.T) {
	t.Parallel()

	w := validWord()
	w.Translations.Content = []string{"  ", ""}
	w.Semantics.Definitions.Content = PairedList{Native: []string{""}, Bilingual: nil}
	w.Compact()

	assert.ElementsMatch(t, []string{
		"translations.content",
		"semantics.definitions.content.native",
		"semantics.definitions.content.bilingual",
	}, fieldNames(w.Validate(validDictionary())))
}

func TestWord_Validate_ReferentialOptions(t *testing.T) {
	t.Parallel()

	w := validWord()
	w.Grammar.POS = "Noun"
	w.Grammar.Inflection.Tense = "Past"
	w.Usage.Content.Register = "Street"
	w.OtherProperties[0].Value = "99"
	w.Morphology[0].Part = "Prefix"

	assert.ElementsMatch(t, []string{
		"grammar.pos",
		"grammar.inflection.tense",
		"usage.content.register",
		"other_properties.0.value",
		"morphology.0.part",
	}, fieldNames(w.Validate(validDictionary())))
}

func TestWord_Validate_MissingPOSAndLanguageMismatch(t *testing.T) {
	t.Parallel()

	w := validWord()
	w.Grammar.POS = ""
	w.LanguageCode = "zu"

	assert.ElementsMatch(t, []string{"grammar.pos", "language_code"}, fieldNames(w.Validate(validDictionary())))
}

func TestWord_Compact(t *testing.T) {
	t.Parallel()

	w := Word{
		Word:         "  hamba ",
		Translations: Translations{Content: []string{"", " go ", "  "}},
		Phonology:    Phonology{Syllables: []string{"ha", " ", "mba"}},
		Usage: Usage{Content: UsageContent{Sentences: []ExampleSentence{
			{Pair: SentencePair{Context: "Daily"}},
			{Pair: SentencePair{Native: "Hamba uye esikolweni.", Bilingual: "Go to school."}},
		}}},
	}
	w.Compact()

	assert.Equal(t, "hamba", w.Word)
	assert.Equal(t, []string{"go"}, w.Translations.Content)
	assert.Equal(t, []string{"ha", "mba"}, w.Phonology.Syllables)
	require.Len(t, w.Usage.Content.Sentences, 1)
	assert.Equal(t, "Go to school.", w.Usage.Content.Sentences[0].Pair.Bilingual)
	assert.NotNil(t, w.Semantics.Synonyms.Content.Native)
}

func TestWord_PrepareForSave_PluralForm(t *testing.T) {
	t.Parallel()

	cfg := validDictionary().LanguageConfig

	singular := validWord()
	singular.Grammar.Inflection.PluralForm = &PluralForm{Word: "amadoda"}
	singular.PrepareForSave(cfg)
	require.NotNil(t, singular.Grammar.Inflection.PluralForm)
	assert.Equal(t, "amadoda", singular.Grammar.Inflection.PluralForm.Word)

	plural := validWord()
	plural.Grammar.Inflection.Number = "Isininzi"
	plural.Grammar.Inflection.PluralForm = &PluralForm{Word: "amadoda"}
	plural.PrepareForSave(cfg)
	assert.Nil(t, plural.Grammar.Inflection.PluralForm)

	empty := validWord()
	empty.Grammar.Inflection.PluralForm = &PluralForm{ExampleSentences: []ExampleSentence{{}}}
	empty.PrepareForSave(cfg)
	assert.Nil(t, empty.Grammar.Inflection.PluralForm)
}

func TestWord_ComputeStatus(t *testing.T) {
	t.Parallel()

	w := validWord()
	assert.Equal(t, WordStatusIncomplete, w.ComputeStatus())

	w.Phonology = Phonology{PronunciationURL: "/media/audio/x", Syllables: []string{"in", "do", "da"}}
	w.Usage.Content.Sentences = []ExampleSentence{{Pair: SentencePair{Native: "Indoda ifuna ukusebenza."}}}
	assert.Equal(t, WordStatusComplete, w.ComputeStatus())
}

func TestWord_Issues_ToleratesStaleValues(t *testing.T) {
	t.Parallel()

	dict := validDictionary()
	w := validWord()
	w.Lemma = Lemma{IsLemma: false}
	dict.LanguageConfig.OtherProperties[0].Options = []string{"1", "2"}

	issues := w.Issues(dict)

	var fields []string
	for _, is := range issues {
		fields = append(fields, is.Field)
	}
	assert.ElementsMatch(t, []string{"lemma.lemma_word", "other_properties.0.value"}, fields)
}

func TestWord_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	orig := validWord()
	orig.Grammar.Inflection.PluralForm = &PluralForm{Word: "amadoda"}
	clone := orig.Clone()

	clone.Translations.Content[0] = "changed"
	clone.Grammar.Inflection.PluralForm.Word = "changed"
	clone.Semantics.Definitions.Content.Native[0] = "changed"
	clone.OtherProperties[0].Value = "changed"

	assert.Equal(t, "man", orig.Translations.Content[0])
	assert.Equal(t, "amadoda", orig.Grammar.Inflection.PluralForm.Word)
	assert.Equal(t, "Isidalwa esilume", orig.Semantics.Definitions.Content.Native[0])
	assert.Equal(t, "9", orig.OtherProperties[0].Value)
}
