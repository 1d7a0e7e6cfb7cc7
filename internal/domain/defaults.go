package domain

import "slices"

// DefaultUILabels returns the stock isiXhosa/English section labels.
func DefaultUILabels() UILabels {
	return UILabels{
		Translation:   LabelPair{Native: "Iinguqulelo", Bilingual: "Translations"},
		Etymology:     LabelPair{Native: "Intsusa yegama", Bilingual: "Etymology"},
		Synonym:       LabelPair{Native: "Izithetha-ntonye", Bilingual: "Synonyms"},
		Antonym:       LabelPair{Native: "Izichasi", Bilingual: "Antonyms"},
		Definition:    LabelPair{Native: "Iinkcazelo", Bilingual: "Definitions"},
		Usage:         LabelPair{Native: "Imizekelo yemigca", Bilingual: "Example sentences"},
		Collocation:   LabelPair{Native: "Amagama ahamba onke", Bilingual: "Collocations"},
		CulturalNotes: LabelPair{Native: "Amanqaku enkcubeko", Bilingual: "Cultural notes"},
	}
}

// DefaultGrammar returns the stock grammar taxonomy.
func DefaultGrammar() GrammarConfig {
	return GrammarConfig{
		POS: Taxonomy{
			{Native: "Isenzi", Bilingual: "Verb"},
			{Native: "Isibizo", Bilingual: "Noun"},
			{Native: "Isimnini", Bilingual: "Adjective"},
			{Native: "Isimeli", Bilingual: "Pronoun"},
			{Native: "Isihlomelo", Bilingual: "Adverb"},
			{Native: "Isikhumbuzo", Bilingual: "Interjection"},
			{Native: "Isilanduli", Bilingual: "Conjunction"},
		},
		Inflection: Inflection{
			Tense: Taxonomy{
				{Native: "Ixesha elidlulileyo", Bilingual: "Past tense"},
				{Native: "Ixesha elizayo", Bilingual: "Future tense"},
				{Native: "Ixesha langoku", Bilingual: "Present tense"},
			},
			Number: Taxonomy{
				{Native: "Isinye", Bilingual: "Singular", Class: NumberClassSingular},
				{Native: "Isininzi", Bilingual: "Plural", Class: NumberClassPlural},
			},
		},
		General: GeneralGrammar{
			Register: []string{"Formal", "Informal", "Slang", "Archaic", "Colloquial"},
			Context:  []string{"Lifestyle", "Cultural", "Daily", "Religious", "Scientific", "Technical"},
			Relationship: Taxonomy{
				{Native: "Izifanokuthi", Bilingual: "Homonym"},
				{Native: "Ixesha", Bilingual: "Tense"},
				{Native: "Uhlobo lwesinyanzeliso", Bilingual: "Imperative form"},
			},
		},
	}
}

// DefaultMorphology returns the stock morphological slots.
func DefaultMorphology() Taxonomy {
	return Taxonomy{
		{Native: "Isimaphambili", Bilingual: "Prefix"},
		{Native: "Ingcambu", Bilingual: "Root"},
		{Native: "Isimamva", Bilingual: "Suffix"},
	}
}

// DefaultOtherProperties returns the stock custom properties.
func DefaultOtherProperties() []PropertyDefinition {
	return []PropertyDefinition{
		{
			Title: LabelPair{Native: "Ihlelo", Bilingual: "Noun Class"},
			Options: []string{
				"1a", "2a", "1", "2", "3", "4", "5", "6", "7", "8", "9",
				"10", "11", "12", "13", "14", "15", "16", "17",
			},
		},
		{
			Title:   LabelPair{Native: "Isixando", Bilingual: "Verb extension"},
			Options: []string{"sokwenzisa", "sokwenzela", "sokwenzana", "sokwenziwa", "sokwenzeka", "sokwenza"},
		},
	}
}

// NewDefaultDictionary returns a dictionary seeded with the stock labels and
// taxonomies. Every call returns independent slices.
func NewDefaultDictionary(languageCode string) Dictionary {
	return Dictionary{
		LanguageCode: languageCode,
		UILabels:     DefaultUILabels(),
		LanguageConfig: LanguageConfig{
			Grammar:         DefaultGrammar(),
			Morphology:      DefaultMorphology(),
			OtherProperties: DefaultOtherProperties(),
		},
		Metadata: DictionaryMetadata{
			DictionaryFlags: DictionaryFlags{ShowEtymology: true},
		},
	}
}

// AlphabetLetters returns the browse letters A through Z.
func AlphabetLetters() []string {
	return slices.Clone(alphabet)
}

var alphabet = func() []string {
	out := make([]string, 26)
	for i := range out {
		out[i] = string(rune('A' + i))
	}
	return out
}()
