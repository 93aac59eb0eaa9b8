package audio

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// baseWordsPerMinute is the normal speaking rate of espeak and say
const baseWordsPerMinute = 175

var speechCandidates = []string{"espeak-ng", "espeak", "say", "spd-say"}

// Speaker synthesizes speech at a fixed rate and normal pitch
type Speaker struct {
	runner  Runner
	command string // resolved path, empty when unavailable
	rate    float64
	log     zerolog.Logger
}

// NewSpeaker picks command, or the first known synthesizer when command is empty
func NewSpeaker(runner Runner, command string, rate float64, logger zerolog.Logger) *Speaker {
	s := &Speaker{
		runner: runner,
		rate:   rate,
		log:    logger.With().Str("component", "speech").Logger(),
	}
	if s.rate <= 0 {
		s.rate = 0.8
	}

	candidates := speechCandidates
	if command != "" {
		candidates = []string{command}
	}
	if path, ok := firstAvailable(runner, candidates...); ok {
		s.command = path
		s.log.Debug().Str("command", path).Msg("speech synthesizer found")
	} else {
		s.log.Info().Strs("tried", candidates).Msg("no speech synthesizer available")
	}
	return s
}

// Available reports whether a synthesizer was found
func (s *Speaker) Available() bool {
	return s.command != ""
}

// Speak starts speaking text and returns without waiting for it to finish
func (s *Speaker) Speak(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if !s.Available() {
		return ErrUnavailable
	}
	if err := s.runner.Start(s.command, s.args(text)...); err != nil {
		return fmt.Errorf("speech: start %s: %w", filepath.Base(s.command), err)
	}
	return nil
}

func (s *Speaker) args(text string) []string {
	wpm := strconv.Itoa(int(math.Round(baseWordsPerMinute * s.rate)))
	switch filepath.Base(s.command) {
	case "espeak-ng", "espeak":
		return []string{"-s", wpm, "-p", "50", "--", text}
	case "say":
		return []string{"-r", wpm, "--", text}
	case "spd-say":
		// spd-say rates run from -100 to 100 around the normal speed
		return []string{"-r", strconv.Itoa(int(math.Round((s.rate - 1) * 100))), "-p", "0", "--", text}
	default:
		return []string{text}
	}
}
