package handlers

import (
	"github.com/rs/zerolog"

	"wordgrip/internal/eventbus"
	"wordgrip/internal/ui/services/navigation"
)

// EventHandler applies domain events to UI-side state
type EventHandler struct {
	nav *navigation.Service
	log zerolog.Logger

	// newest history version applied to nav
	historyVersion uint64
}

// NewEventHandler creates a new event handler
func NewEventHandler(nav *navigation.Service, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		nav: nav,
		log: logger,
	}
}

// HandleEvent processes domain events. It reports whether the view needs
// a refresh.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) bool {
	switch e := event.(type) {
	case eventbus.HistoryChangedEvent:
		return h.ApplyHistory(e.Terms, e.Version)
	}
	return false
}

// ApplyHistory shows terms in the recent list unless a newer version has
// already been applied. Events are delivered concurrently, so they can
// arrive out of order.
func (h *EventHandler) ApplyHistory(terms []string, version uint64) bool {
	if version < h.historyVersion {
		h.log.Debug().Uint64("version", version).Uint64("applied", h.historyVersion).Msg("ignoring stale history update")
		return false
	}
	h.historyVersion = version
	h.nav.SetItems(terms)
	return true
}
