// Package query owns the current search and drives lookups through the
// per-search state machine.
package query

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"wordgrip/internal/domain"
	"wordgrip/internal/eventbus"
	"wordgrip/internal/ui/state"
)

// ErrorMessage is shown for every failed lookup, whatever the cause
const ErrorMessage = "Word not found. Please check the spelling and try again."

// Lookuper fetches a word record
type Lookuper interface {
	Lookup(ctx context.Context, term string) (*domain.WordRecord, error)
}

// Recorder keeps the recent searches list
type Recorder interface {
	Record(term string)
}

// Request identifies one issued lookup
type Request struct {
	Term string // trimmed input as typed
	Seq  uint64
}

// Result is the outcome of a Request
type Result struct {
	Request Request
	Record  *domain.WordRecord
	Err     error
}

// Service is the query controller
type Service struct {
	mu      sync.Mutex
	state   *state.AppState
	seq     uint64
	lookup  Lookuper
	history Recorder
	bus     eventbus.EventBus
	log     zerolog.Logger
}

// NewService creates a controller in the idle state. bus may be nil.
func NewService(lookup Lookuper, history Recorder, bus eventbus.EventBus, logger zerolog.Logger) *Service {
	return &Service{
		state:   state.NewAppState(),
		lookup:  lookup,
		history: history,
		bus:     bus,
		log:     logger.With().Str("component", "query").Logger(),
	}
}

// State returns a copy of the current state
func (s *Service) State() state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Begin starts a search for term. Blank input is ignored: it returns false
// and leaves the state untouched.
func (s *Service) Begin(term string) (Request, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Request{}, false
	}

	s.mu.Lock()
	s.seq++
	req := Request{Term: term, Seq: s.seq}
	s.state.StartLoading(term, req.Seq)
	s.mu.Unlock()

	s.log.Debug().Str("term", term).Uint64("seq", req.Seq).Msg("search started")
	s.publish(eventbus.SearchStartedEvent{Term: term, Seq: req.Seq})
	return req, true
}

// Fetch performs the lookup for req. It does not touch the state, so it can
// run off the UI goroutine.
func (s *Service) Fetch(ctx context.Context, req Request) Result {
	record, err := s.lookup.Lookup(ctx, strings.ToLower(req.Term))
	if err == nil && record == nil {
		err = errNoRecord
	}
	return Result{Request: req, Record: record, Err: err}
}

// Complete applies res to the state. Responses to superseded requests are
// dropped and Complete returns false.
func (s *Service) Complete(res Result) bool {
	req := res.Request

	s.mu.Lock()
	if !s.state.IsCurrent(req.Seq) {
		s.mu.Unlock()
		s.log.Debug().Str("term", req.Term).Uint64("seq", req.Seq).Msg("discarding stale response")
		s.publish(eventbus.StaleResponseDiscardedEvent{Term: req.Term, Seq: req.Seq})
		return false
	}

	if res.Err != nil {
		s.state.Fail(ErrorMessage)
		s.mu.Unlock()

		s.log.Info().Err(res.Err).Str("term", req.Term).Msg("search failed")
		s.publish(eventbus.SearchFailedEvent{Term: req.Term, Seq: req.Seq, Err: res.Err})
		return true
	}

	s.state.Succeed(res.Record)
	s.mu.Unlock()

	// Outside the lock: recording persists to disk
	s.history.Record(req.Term)

	s.log.Debug().Str("term", req.Term).Str("word", res.Record.Word).Msg("search succeeded")
	s.publish(eventbus.SearchSucceededEvent{Term: req.Term, Seq: req.Seq, Word: res.Record.Word})
	return true
}

// Search runs a whole search cycle synchronously. It returns false for
// blank input.
func (s *Service) Search(ctx context.Context, term string) bool {
	req, ok := s.Begin(term)
	if !ok {
		return false
	}
	s.Complete(s.Fetch(ctx, req))
	return true
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
