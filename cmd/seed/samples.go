package main

import "github.com/SiphoChris/afrilex/internal/domain"

type sample struct {
	word        string
	pos         string
	translation string
	syllables   []string
	definition  domain.LabelPair
	examples    []domain.LabelPair
	synonyms    domain.PairedList
}

var xhosa = []sample{
	{
		word: "hamba", pos: "Isenzi", translation: "go",
		syllables:  []string{"ha", "mba"},
		definition: domain.LabelPair{Native: "Ukusuka endaweni uye kwenye", Bilingual: "To go; to move from one place to another"},
		examples: []domain.LabelPair{
			{Native: "Hamba uye esikolweni.", Bilingual: "Go to school."},
			{Native: "Sihambe ngomso eKapa.", Bilingual: "We're going to Cape Town tomorrow."},
		},
		synonyms: domain.PairedList{Native: []string{"yiya", "qhubeka"}, Bilingual: []string{"proceed", "move"}},
	},
	{
		word: "indoda", pos: "Isibizo", translation: "man",
		syllables:  []string{"in", "do", "da"},
		definition: domain.LabelPair{Native: "Isidalwa esilume", Bilingual: "A male human being; man"},
		examples: []domain.LabelPair{
			{Native: "Le ndoda yinkosana yaseMpuma.", Bilingual: "This man is a chief from the Eastern Cape."},
			{Native: "Indoda ifuna ukusebenza.", Bilingual: "The man wants to work."},
		},
		synonyms: domain.PairedList{Native: []string{"umlisa", "isilisa"}, Bilingual: []string{"male", "gentleman"}},
	},
	{
		word: "intombi", pos: "Isibizo", translation: "girl",
		syllables:  []string{"in", "to", "mbi"},
		definition: domain.LabelPair{Native: "Isidalwa esisikazi esingakatshati", Bilingual: "A young unmarried woman; girl"},
		examples: []domain.LabelPair{
			{Native: "Intombi ikwazi ukuzimela.", Bilingual: "The girl can be independent."},
			{Native: "Intombi ifunda eYunivesithi.", Bilingual: "The girl is studying at University."},
		},
		synonyms: domain.PairedList{Native: []string{"inkazana"}, Bilingual: []string{"maiden", "lass"}},
	},
	{
		word: "funda", pos: "Isenzi", translation: "learn",
		syllables:  []string{"fu", "nda"},
		definition: domain.LabelPair{Native: "Ukufumana ulwazi ngokufunda okanye ukufundiswa", Bilingual: "To acquire knowledge through reading or being taught"},
		examples: []domain.LabelPair{
			{Native: "Ndiyafunda isiNgesi.", Bilingual: "I'm learning English."},
			{Native: "Abantwana bafunda esikolweni.", Bilingual: "Children learn at school."},
		},
		synonyms: domain.PairedList{Native: []string{"qeqesha", "phucula"}, Bilingual: []string{"study", "learn"}},
	},
	{
		word: "ihobe", pos: "Isibizo", translation: "dove",
		syllables:  []string{"i", "ho", "be"},
		definition: domain.LabelPair{Native: "Intaka enomculo omhle", Bilingual: "A bird known for its beautiful song; dove"},
		examples: []domain.LabelPair{
			{Native: "Ihobe libika ukusa.", Bilingual: "The dove announces the dawn."},
			{Native: "Ndiyakuvuyela ukuba ndivile ihobe licula.", Bilingual: "I'm happy to hear the dove singing."},
		},
		synonyms: domain.PairedList{Native: []string{"ijuba"}, Bilingual: []string{"pigeon"}},
	},
}

func xhosaSamples() []domain.Word {
	out := make([]domain.Word, len(xhosa))
	for i, s := range xhosa {
		sentences := make([]domain.ExampleSentence, len(s.examples))
		for j, ex := range s.examples {
			sentences[j] = domain.ExampleSentence{Pair: domain.SentencePair{Native: ex.Native, Bilingual: ex.Bilingual}}
		}
		out[i] = domain.Word{
			Word:         s.word,
			LanguageCode: "xh",
			Lemma:        domain.Lemma{IsLemma: true},
			Translations: domain.Translations{Content: []string{s.translation}},
			Phonology:    domain.Phonology{Syllables: s.syllables},
			Grammar:      domain.WordGrammar{POS: s.pos},
			Semantics: domain.Semantics{
				Definitions: domain.LabeledList{Content: domain.PairedList{
					Native:    []string{s.definition.Native},
					Bilingual: []string{s.definition.Bilingual},
				}},
				Synonyms: domain.LabeledList{Content: s.synonyms},
			},
			Usage: domain.Usage{Content: domain.UsageContent{Sentences: sentences}},
		}
	}
	return out
}
