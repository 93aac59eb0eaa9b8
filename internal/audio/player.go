package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
)

var playerCandidates = []string{"mpv", "ffplay", "mpg123", "afplay"}

// Player plays an audio URL through an external player
type Player struct {
	runner     Runner
	command    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewPlayer picks command, or the first known player when command is empty
func NewPlayer(runner Runner, command string, logger zerolog.Logger) *Player {
	p := &Player{
		runner:     runner,
		httpClient: &http.Client{},
		log:        logger.With().Str("component", "player").Logger(),
	}

	candidates := playerCandidates
	if command != "" {
		candidates = []string{command}
	}
	if found, ok := firstAvailable(runner, candidates...); ok {
		p.command = found
		p.log.Debug().Str("command", found).Msg("audio player found")
	} else {
		p.log.Info().Strs("tried", candidates).Msg("no audio player available")
	}
	return p
}

// Available reports whether a player was found
func (p *Player) Available() bool {
	return p.command != ""
}

// Play blocks until the player exits
func (p *Player) Play(ctx context.Context, url string) error {
	if !p.Available() {
		return ErrUnavailable
	}
	if url == "" {
		return fmt.Errorf("player: empty url")
	}

	name := filepath.Base(p.command)
	target := url
	if needsLocalFile(name) {
		local, err := p.download(ctx, url)
		if err != nil {
			return err
		}
		defer os.Remove(local)
		target = local
	}

	if err := p.runner.Run(ctx, p.command, playerArgs(name, target)...); err != nil {
		return fmt.Errorf("player: %s: %w", name, err)
	}
	return nil
}

func needsLocalFile(name string) bool {
	return name == "afplay"
}

func playerArgs(name, target string) []string {
	switch name {
	case "mpv":
		return []string{"--no-video", "--really-quiet", target}
	case "ffplay":
		return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", target}
	case "mpg123":
		return []string{"-q", target}
	default:
		return []string{target}
	}
}

// download fetches url into a temp file and returns its path
func (p *Player) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("player: create request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("player: download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("player: download: unexpected status %d", resp.StatusCode)
	}

	ext := path.Ext(req.URL.Path)
	if ext == "" {
		ext = ".mp3"
	}
	f, err := os.CreateTemp("", "wordgrip-*"+ext)
	if err != nil {
		return "", fmt.Errorf("player: temp file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("player: download: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("player: temp file: %w", err)
	}
	return f.Name(), nil
}
