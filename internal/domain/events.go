package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted          EventType = "SearchStarted"
	EventSearchSucceeded        EventType = "SearchSucceeded"
	EventSearchFailed           EventType = "SearchFailed"
	EventStaleResponseDiscarded EventType = "StaleResponseDiscarded"
	EventHistoryChanged         EventType = "HistoryChanged"
	EventPlaybackFailed         EventType = "PlaybackFailed"
	EventSpeechRequested        EventType = "SpeechRequested"
)

// AllEventTypes lists every event type, in declaration order
var AllEventTypes = []EventType{
	EventSearchStarted,
	EventSearchSucceeded,
	EventSearchFailed,
	EventStaleResponseDiscarded,
	EventHistoryChanged,
	EventPlaybackFailed,
	EventSpeechRequested,
}

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a lookup request is issued
type SearchStartedEvent struct {
	Term string
	Seq  uint64
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchSucceededEvent is emitted when a lookup returns a record
type SearchSucceededEvent struct {
	Term string
	Seq  uint64
	Word string // headword as returned by the service
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when a lookup fails for any reason
type SearchFailedEvent struct {
	Term string
	Seq  uint64
	Err  error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// StaleResponseDiscardedEvent is emitted when a response arrives for a
// request that has been superseded by a newer one
type StaleResponseDiscardedEvent struct {
	Term string
	Seq  uint64
}

func (e StaleResponseDiscardedEvent) Type() EventType { return EventStaleResponseDiscarded }

// HistoryChangedEvent is emitted after the recent searches list is rewritten.
// Version increases with every change, so a late delivery can be ignored.
type HistoryChangedEvent struct {
	Terms   []string
	Version uint64
}

func (e HistoryChangedEvent) Type() EventType { return EventHistoryChanged }

// PlaybackFailedEvent is emitted when pronunciation audio could not be played
// and speech synthesis is used instead
type PlaybackFailedEvent struct {
	URL string
	Err error
}

func (e PlaybackFailedEvent) Type() EventType { return EventPlaybackFailed }

// SpeechRequestedEvent is emitted when text is handed to the synthesizer
type SpeechRequestedEvent struct {
	Text string
}

func (e SpeechRequestedEvent) Type() EventType { return EventSpeechRequested }
