package domain

// WordRecord is one dictionary entry as returned by the lookup service.
// Records are built once by the dictionary client and replaced wholesale by
// the next search.
type WordRecord struct {
	Word      string
	Phonetics []Phonetic
	Meanings  []Meaning
	Origin    string // empty if the service has no etymology
}

// Phonetic pairs an optional transcription with an optional audio resource
type Phonetic struct {
	Text     string
	AudioURL string
}

// Meaning groups definitions under one part of speech
type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

// Definition is a single sense of the word
type Definition struct {
	Text     string
	Example  string
	Synonyms []string
	Antonyms []string
}

// PhoneticText returns the first non-empty phonetic transcription
func (r *WordRecord) PhoneticText() string {
	if r == nil {
		return ""
	}
	for _, p := range r.Phonetics {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}

// AudioURL returns the first phonetic audio URL, or "" if none carries one
func (r *WordRecord) AudioURL() string {
	if r == nil {
		return ""
	}
	for _, p := range r.Phonetics {
		if p.AudioURL != "" {
			return p.AudioURL
		}
	}
	return ""
}

// HasAudio reports whether any phonetic entry has pronunciation audio
func (r *WordRecord) HasAudio() bool {
	return r.AudioURL() != ""
}
