// Package history keeps the bounded list of recent searches.
package history

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"wordgrip/internal/eventbus"
)

const (
	// StorageKey is the fixed key the list is stored under
	StorageKey = "recentSearches"
	// MaxEntries caps the list length
	MaxEntries = 5
)

// Tracker maintains the most-recent-first, deduplicated search list.
// Every change is persisted before Record returns.
type Tracker struct {
	mu    sync.Mutex
	store Store
	bus   eventbus.EventBus
	log   zerolog.Logger
	terms []string
	// bumped on every Record
	version uint64
}

// NewTracker creates a tracker and loads the persisted list. bus may be nil.
func NewTracker(store Store, bus eventbus.EventBus, logger zerolog.Logger) *Tracker {
	t := &Tracker{
		store: store,
		bus:   bus,
		log:   logger.With().Str("component", "history").Logger(),
	}
	t.terms = t.Load()
	return t
}

// Load reads the persisted list. Missing or unreadable data yields an empty list.
func (t *Tracker) Load() []string {
	raw, ok, err := t.store.Get(StorageKey)
	if err != nil {
		t.log.Warn().Err(err).Msg("failed to read search history")
		return []string{}
	}
	if !ok {
		return []string{}
	}

	var terms []string
	if err := json.Unmarshal(raw, &terms); err != nil {
		t.log.Warn().Err(err).Msg("ignoring corrupt search history")
		return []string{}
	}
	if terms == nil {
		return []string{}
	}
	if len(terms) > MaxEntries {
		terms = terms[:MaxEntries]
	}
	return terms
}

// Persist writes terms to the store as a JSON array of strings
func (t *Tracker) Persist(terms []string) error {
	if terms == nil {
		terms = []string{}
	}
	data, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("history: marshal: %w", err)
	}
	if err := t.store.Put(StorageKey, data); err != nil {
		return fmt.Errorf("history: persist: %w", err)
	}
	return nil
}

// Record moves term to the front of the list, dropping any earlier
// occurrence and the oldest entries beyond MaxEntries.
func (t *Tracker) Record(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	t.mu.Lock()
	next := push(t.terms, term)
	t.terms = next
	t.version++
	version := t.version
	snapshot := append([]string(nil), next...)
	err := t.Persist(snapshot)
	t.mu.Unlock()

	if err != nil {
		// The in-memory list stays authoritative for this session
		t.log.Error().Err(err).Msg("failed to persist search history")
	}
	if t.bus != nil {
		t.bus.Publish(eventbus.HistoryChangedEvent{Terms: snapshot, Version: version})
	}
}

// Terms returns a copy of the current list, most recent first
func (t *Tracker) Terms() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	terms := make([]string, len(t.terms))
	copy(terms, t.terms)
	return terms
}

// Recent returns a copy of the list with its version, the same pairing
// HistoryChanged events carry
func (t *Tracker) Recent() ([]string, uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	terms := make([]string, len(t.terms))
	copy(terms, t.terms)
	return terms, t.version
}

// push returns a new list with term at the front
func push(terms []string, term string) []string {
	next := make([]string, 0, MaxEntries)
	next = append(next, term)
	for _, existing := range terms {
		if existing == term {
			continue
		}
		if len(next) == MaxEntries {
			break
		}
		next = append(next, existing)
	}
	return next
}
