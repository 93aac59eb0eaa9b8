package state

import (
	"wordgrip/internal/domain"
)

// Phase is the position in the per-search state machine
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// AppState is the lookup state shown by the UI. Fields are read-only to
// callers; all changes go through the transition methods so at most one of
// Record and Err is ever set.
type AppState struct {
	Input   string             // term of the newest search attempt
	Record  *domain.WordRecord // current result, nil unless PhaseSuccess
	Loading bool
	Err     string // user-facing error, empty unless PhaseFailure
	Phase   Phase

	// Seq of the newest issued request; older responses are stale
	LatestSeq uint64
}

// NewAppState creates the idle state
func NewAppState() *AppState {
	return &AppState{Phase: PhaseIdle}
}

// StartLoading enters the loading phase for a new request. The previous
// error is cleared immediately; the previous record stays visible until the
// response arrives.
func (s *AppState) StartLoading(term string, seq uint64) {
	s.Input = term
	s.Loading = true
	s.Err = ""
	s.Phase = PhaseLoading
	s.LatestSeq = seq
}

// IsCurrent reports whether seq belongs to the newest request
func (s *AppState) IsCurrent(seq uint64) bool {
	return seq == s.LatestSeq
}

// Succeed replaces the current record
func (s *AppState) Succeed(record *domain.WordRecord) {
	s.Record = record
	s.Err = ""
	s.Loading = false
	s.Phase = PhaseSuccess
}

// Fail clears the record and shows message
func (s *AppState) Fail(message string) {
	s.Record = nil
	s.Err = message
	s.Loading = false
	s.Phase = PhaseFailure
}

// Snapshot returns a copy safe to hand out
func (s *AppState) Snapshot() AppState {
	return *s
}
