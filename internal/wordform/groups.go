package wordform

import "github.com/SiphoChris/afrilex/internal/domain"

// Group names a list-shaped field of the word form.
type Group string

const (
	GroupTranslations          Group = "translations"
	GroupDefinitionsNative     Group = "definitions_native"
	GroupDefinitionsBilingual  Group = "definitions_bilingual"
	GroupSynonymsNative        Group = "synonyms_native"
	GroupSynonymsBilingual     Group = "synonyms_bilingual"
	GroupAntonymsNative        Group = "antonyms_native"
	GroupAntonymsBilingual     Group = "antonyms_bilingual"
	GroupCollocationsNative    Group = "collocations_native"
	GroupCollocationsBilingual Group = "collocations_bilingual"
	GroupUsageSentences        Group = "usage_sentences"
	GroupSyllables             Group = "syllables"
	GroupPluralExamples        Group = "plural_examples"
)

// IsValid reports whether g is a known group.
func (g Group) IsValid() bool {
	switch g {
	case GroupTranslations, GroupDefinitionsNative, GroupDefinitionsBilingual,
		GroupSynonymsNative, GroupSynonymsBilingual, GroupAntonymsNative, GroupAntonymsBilingual,
		GroupCollocationsNative, GroupCollocationsBilingual, GroupUsageSentences,
		GroupSyllables, GroupPluralExamples:
		return true
	}
	return false
}

// FirstEntryGuarded reports whether index 0 of the group may not be removed.
func (g Group) FirstEntryGuarded() bool {
	return g == GroupTranslations || g == GroupDefinitionsNative || g == GroupDefinitionsBilingual
}

// Path returns the JSON path of the group inside a word document.
func (g Group) Path() string {
	switch g {
	case GroupTranslations:
		return "translations.content"
	case GroupDefinitionsNative:
		return "semantics.definitions.content.native"
	case GroupDefinitionsBilingual:
		return "semantics.definitions.content.bilingual"
	case GroupSynonymsNative:
		return "semantics.synonyms.content.native"
	case GroupSynonymsBilingual:
		return "semantics.synonyms.content.bilingual"
	case GroupAntonymsNative:
		return "semantics.antonyms.content.native"
	case GroupAntonymsBilingual:
		return "semantics.antonyms.content.bilingual"
	case GroupCollocationsNative:
		return "collocations.content.native"
	case GroupCollocationsBilingual:
		return "collocations.content.bilingual"
	case GroupUsageSentences:
		return "usage.content.sentences"
	case GroupSyllables:
		return "phonology.syllables"
	case GroupPluralExamples:
		return "grammar.inflection.plural_form.example_sentences"
	}
	return "group"
}

// strings returns the string list behind g, or nil for sentence groups.
func (f *Form) strings(g Group) *[]string {
	w := &f.word
	switch g {
	case GroupTranslations:
		return &w.Translations.Content
	case GroupDefinitionsNative:
		return &w.Semantics.Definitions.Content.Native
	case GroupDefinitionsBilingual:
		return &w.Semantics.Definitions.Content.Bilingual
	case GroupSynonymsNative:
		return &w.Semantics.Synonyms.Content.Native
	case GroupSynonymsBilingual:
		return &w.Semantics.Synonyms.Content.Bilingual
	case GroupAntonymsNative:
		return &w.Semantics.Antonyms.Content.Native
	case GroupAntonymsBilingual:
		return &w.Semantics.Antonyms.Content.Bilingual
	case GroupCollocationsNative:
		return &w.Collocations.Content.Native
	case GroupCollocationsBilingual:
		return &w.Collocations.Content.Bilingual
	case GroupSyllables:
		return &w.Phonology.Syllables
	}
	return nil
}

// sentences returns the sentence list behind g. The plural form is created
// on demand.
func (f *Form) sentences(g Group) *[]domain.ExampleSentence {
	switch g {
	case GroupUsageSentences:
		return &f.word.Usage.Content.Sentences
	case GroupPluralExamples:
		return &f.pluralForm().ExampleSentences
	}
	return nil
}

func (f *Form) pluralForm() *domain.PluralForm {
	inf := &f.word.Grammar.Inflection
	if inf.PluralForm == nil {
		inf.PluralForm = &domain.PluralForm{ExampleSentences: []domain.ExampleSentence{}}
	}
	return inf.PluralForm
}
