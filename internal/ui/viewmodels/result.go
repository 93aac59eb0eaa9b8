package viewmodels

import (
	"strings"

	"wordgrip/internal/domain"
)

// MaxRelated caps the synonyms and antonyms shown per definition
const MaxRelated = 5

// PartOfSpeechCategory is the display category of a part of speech
type PartOfSpeechCategory int

const (
	CategoryDefault PartOfSpeechCategory = iota
	CategoryNoun
	CategoryVerb
	CategoryAdjective
	CategoryAdverb
	CategoryPronoun
	CategoryPreposition
	CategoryConjunction
	CategoryInterjection
)

func (c PartOfSpeechCategory) String() string {
	switch c {
	case CategoryNoun:
		return "noun"
	case CategoryVerb:
		return "verb"
	case CategoryAdjective:
		return "adjective"
	case CategoryAdverb:
		return "adverb"
	case CategoryPronoun:
		return "pronoun"
	case CategoryPreposition:
		return "preposition"
	case CategoryConjunction:
		return "conjunction"
	case CategoryInterjection:
		return "interjection"
	default:
		return "default"
	}
}

// CategoryOf maps a part-of-speech label to its category. Unrecognized
// labels map to CategoryDefault.
func CategoryOf(partOfSpeech string) PartOfSpeechCategory {
	switch strings.ToLower(strings.TrimSpace(partOfSpeech)) {
	case "noun":
		return CategoryNoun
	case "verb":
		return CategoryVerb
	case "adjective":
		return CategoryAdjective
	case "adverb":
		return CategoryAdverb
	case "pronoun":
		return CategoryPronoun
	case "preposition":
		return CategoryPreposition
	case "conjunction":
		return CategoryConjunction
	case "interjection":
		return CategoryInterjection
	default:
		return CategoryDefault
	}
}

// Capabilities reports which pronunciation affordances the platform offers
type Capabilities struct {
	Player  bool
	Speaker bool
}

// ResultView is a word record laid out for display
type ResultView struct {
	Headword      string
	Phonetic      string
	AudioEnabled  bool
	SpeechEnabled bool
	Origin        string
	Meanings      []MeaningView
}

// MeaningView is one part-of-speech section
type MeaningView struct {
	PartOfSpeech string
	Category     PartOfSpeechCategory
	Definitions  []DefinitionView
}

// DefinitionView is one numbered definition
type DefinitionView struct {
	Number   int
	Text     string
	Example  string
	Synonyms []string
	Antonyms []string
}

// SynonymsLine returns the synonyms joined for display
func (d DefinitionView) SynonymsLine() string {
	return strings.Join(d.Synonyms, ", ")
}

// AntonymsLine returns the antonyms joined for display
func (d DefinitionView) AntonymsLine() string {
	return strings.Join(d.Antonyms, ", ")
}

// BuildResult maps record to its display sections. A nil record yields the
// zero view.
func BuildResult(record *domain.WordRecord, caps Capabilities) ResultView {
	if record == nil {
		return ResultView{}
	}

	view := ResultView{
		Headword:      record.Word,
		Phonetic:      record.PhoneticText(),
		AudioEnabled:  record.HasAudio() && caps.Player,
		SpeechEnabled: caps.Speaker,
		Origin:        record.Origin,
		Meanings:      make([]MeaningView, 0, len(record.Meanings)),
	}

	for _, m := range record.Meanings {
		mv := MeaningView{
			PartOfSpeech: m.PartOfSpeech,
			Category:     CategoryOf(m.PartOfSpeech),
			Definitions:  make([]DefinitionView, 0, len(m.Definitions)),
		}
		for i, d := range m.Definitions {
			mv.Definitions = append(mv.Definitions, DefinitionView{
				Number:   i + 1,
				Text:     d.Text,
				Example:  d.Example,
				Synonyms: firstN(d.Synonyms, MaxRelated),
				Antonyms: firstN(d.Antonyms, MaxRelated),
			})
		}
		view.Meanings = append(view.Meanings, mv)
	}
	return view
}

func firstN(items []string, n int) []string {
	if len(items) == 0 {
		return nil
	}
	if len(items) > n {
		items = items[:n]
	}
	return append([]string(nil), items...)
}
