package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"wordgrip/internal/domain"
	"wordgrip/internal/eventbus"
)

// Pronouncer plays a record's pronunciation audio, falling back to speech
// synthesis of the headword when playback fails
type Pronouncer struct {
	player  *Player
	speaker *Speaker
	bus     eventbus.EventBus
	log     zerolog.Logger
}

// NewPronouncer wires a player and a speaker. bus may be nil.
func NewPronouncer(player *Player, speaker *Speaker, bus eventbus.EventBus, logger zerolog.Logger) *Pronouncer {
	return &Pronouncer{
		player:  player,
		speaker: speaker,
		bus:     bus,
		log:     logger.With().Str("component", "pronouncer").Logger(),
	}
}

// CanPlay reports whether the audio affordance is enabled for record
func (p *Pronouncer) CanPlay(record *domain.WordRecord) bool {
	return record.HasAudio() && p.player.Available()
}

// CanSpeak reports whether the speech affordance is enabled
func (p *Pronouncer) CanSpeak() bool {
	return p.speaker.Available()
}

// Speak hands text to the synthesizer without waiting for it
func (p *Pronouncer) Speak(text string) error {
	if p.bus != nil {
		p.bus.Publish(eventbus.SpeechRequestedEvent{Text: text})
	}
	return p.speaker.Speak(text)
}

// Pronounce plays the first phonetic audio of record. Playback failures are
// handled here by speaking the headword instead; only a failure of that
// fallback is returned.
func (p *Pronouncer) Pronounce(ctx context.Context, record *domain.WordRecord) error {
	if record == nil {
		return nil
	}

	url := record.AudioURL()
	err := p.player.Play(ctx, url)
	if err == nil {
		return nil
	}
	return p.handlePlaybackFailure(record.Word, url, err)
}

func (p *Pronouncer) handlePlaybackFailure(word, url string, playErr error) error {
	// Shutting down, not a playback failure
	if errors.Is(playErr, context.Canceled) {
		return nil
	}

	p.log.Info().Err(playErr).Str("url", url).Msg("playback failed, speaking instead")
	if p.bus != nil {
		p.bus.Publish(eventbus.PlaybackFailedEvent{URL: url, Err: playErr})
	}

	if err := p.Speak(word); err != nil {
		return fmt.Errorf("pronounce %q: %w", word, err)
	}
	return nil
}
