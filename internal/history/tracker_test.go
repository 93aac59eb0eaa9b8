package history

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordgrip/internal/eventbus"
)

func seededTracker(t *testing.T, terms ...string) (*Tracker, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	if terms != nil {
		data, err := json.Marshal(terms)
		require.NoError(t, err)
		require.NoError(t, store.Put(StorageKey, data))
	}
	return NewTracker(store, nil, zerolog.Nop()), store
}

func storedTerms(t *testing.T, store Store) []string {
	t.Helper()
	raw, ok, err := store.Get(StorageKey)
	require.NoError(t, err)
	require.True(t, ok, "history should be persisted")
	var terms []string
	require.NoError(t, json.Unmarshal(raw, &terms))
	return terms
}

func TestRecordMovesExistingTermToFront(t *testing.T) {
	tracker, store := seededTracker(t, "b", "a", "c", "d", "e")

	tracker.Record("a")

	want := []string{"a", "b", "c", "d", "e"}
	assert.Equal(t, want, tracker.Terms())
	assert.Equal(t, want, storedTerms(t, store))
}

func TestRecordEvictsOldest(t *testing.T) {
	tracker, store := seededTracker(t, "e", "d", "c", "b", "a")

	tracker.Record("f")

	want := []string{"f", "e", "d", "c", "b"}
	assert.Equal(t, want, tracker.Terms())
	assert.Equal(t, want, storedTerms(t, store))
}

func TestRecordNeverExceedsMaxEntries(t *testing.T) {
	tracker, _ := seededTracker(t)

	for _, term := range []string{"one", "two", "three", "four", "five", "six", "seven", "two"} {
		tracker.Record(term)
		assert.LessOrEqual(t, len(tracker.Terms()), MaxEntries)
	}
	assert.Equal(t, []string{"two", "seven", "six", "five", "four"}, tracker.Terms())
}

func TestRecordIgnoresBlankTerms(t *testing.T) {
	tracker, store := seededTracker(t)

	tracker.Record("   ")
	tracker.Record("")

	assert.Empty(t, tracker.Terms())
	_, ok, err := store.Get(StorageKey)
	require.NoError(t, err)
	assert.False(t, ok, "blank terms must not trigger a write")
}

func TestRecordTrimsTerm(t *testing.T) {
	tracker, _ := seededTracker(t, "hello")

	tracker.Record("  hello  ")

	assert.Equal(t, []string{"hello"}, tracker.Terms())
}

func TestLoadSurvivesReload(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(StorageKey, []byte(`["hello","world"]`)))

	tracker := NewTracker(store, nil, zerolog.Nop())

	assert.Equal(t, []string{"hello", "world"}, tracker.Terms())
	assert.Equal(t, []string{"hello", "world"}, tracker.Load())
}

func TestLoadToleratesBadData(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "not json", value: `hello world`},
		{name: "object", value: `{"term":"hello"}`},
		{name: "numbers", value: `[1,2,3]`},
		{name: "null", value: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			require.NoError(t, store.Put(StorageKey, []byte(tt.value)))

			tracker := NewTracker(store, nil, zerolog.Nop())
			assert.NotNil(t, tracker.Terms())
			assert.Empty(t, tracker.Terms())
		})
	}
}

func TestLoadTruncatesOversizedList(t *testing.T) {
	tracker, _ := seededTracker(t, "a", "b", "c", "d", "e", "f", "g")

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, tracker.Terms())
}

type failingStore struct{}

func (failingStore) Get(string) ([]byte, bool, error) { return nil, false, errors.New("disk gone") }
func (failingStore) Put(string, []byte) error         { return errors.New("disk gone") }
func (failingStore) Close() error                     { return nil }

func TestStoreFailuresAreNotFatal(t *testing.T) {
	tracker := NewTracker(failingStore{}, nil, zerolog.Nop())
	assert.Empty(t, tracker.Terms())

	assert.NotPanics(t, func() { tracker.Record("hello") })
	assert.Equal(t, []string{"hello"}, tracker.Terms())

	assert.Error(t, tracker.Persist([]string{"x"}))
}

func TestTermsReturnsCopy(t *testing.T) {
	tracker, _ := seededTracker(t, "a", "b")

	terms := tracker.Terms()
	terms[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, tracker.Terms())
}

// recordingBus keeps published events in order
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(e eventbus.DomainEvent) { b.events = append(b.events, e) }
func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}
func (b *recordingBus) Close() {}

func TestRecordVersionsEachChange(t *testing.T) {
	bus := &recordingBus{}
	tracker := NewTracker(NewMemoryStore(), bus, zerolog.Nop())

	terms, version := tracker.Recent()
	assert.Empty(t, terms)
	assert.Zero(t, version)

	tracker.Record("hello")
	tracker.Record("world")
	tracker.Record(" ")

	terms, version = tracker.Recent()
	assert.Equal(t, []string{"world", "hello"}, terms)
	assert.Equal(t, uint64(2), version, "blank terms do not count as a change")

	require.Len(t, bus.events, 2)
	assert.Equal(t, eventbus.HistoryChangedEvent{Terms: []string{"hello"}, Version: 1}, bus.events[0])
	assert.Equal(t, eventbus.HistoryChangedEvent{Terms: []string{"world", "hello"}, Version: 2}, bus.events[1])
}
