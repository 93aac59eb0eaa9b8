package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	"wordgrip/internal/audio"
	"wordgrip/internal/config"
	"wordgrip/internal/dictionary"
	"wordgrip/internal/eventbus"
	"wordgrip/internal/history"
	"wordgrip/internal/logging"
	"wordgrip/internal/ui"
	"wordgrip/internal/ui/services/query"
	"wordgrip/internal/ui/viewmodels"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "wordgrip: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath     string
		historyBackend string
		logFile        string
	)
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&historyBackend, "history-backend", "", "Recent searches backend: file, sqlite or memory")
	flag.StringVar(&logFile, "log-file", "", "Path to the log file")

	out := flag.CommandLine.Output()
	header := "Environment variables:"
	flag.Usage = cleanenv.FUsage(out, &config.Config{}, &header, func() {
		fmt.Fprintln(out, "Usage: wordgrip [flags] [word]")
		flag.PrintDefaults()
	})
	flag.Parse()

	initialTerm := strings.TrimSpace(strings.Join(flag.Args(), " "))

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceWithPath(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(configSvc.Dir(), config.Overrides{
		HistoryBackend: historyBackend,
		LogFile:        logFile,
	}); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	// Set up logging
	logger, logCloser := logging.NewOrNop(cfg.Log, os.Stderr)
	defer logCloser.Close()
	logger.Info().Str("config", configSvc.Path()).Str("history", cfg.History.Backend).Msg("starting")

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create event bus
	bus := eventbus.New(logger)
	defer bus.Close()
	for _, eventType := range eventbus.AllEventTypes {
		bus.Subscribe(eventType, logEvent(logger))
	}

	store := openStore(ctx, cfg.History, os.Stderr)
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close history store")
		}
	}()
	tracker := history.NewTracker(store, bus, logger)

	timeout, err := cfg.API.TimeoutDuration()
	if err != nil {
		return err
	}
	var clientOpts []dictionary.Option
	if timeout > 0 {
		clientOpts = append(clientOpts, dictionary.WithTimeout(timeout))
	}
	client := dictionary.NewClient(cfg.API.BaseURL, logger, clientOpts...)

	runner := audio.ExecRunner{}
	player := audio.NewPlayer(runner, cfg.Audio.Player, logger)
	speaker := audio.NewSpeaker(runner, cfg.Audio.SpeechCommand, cfg.Audio.SpeechRate, logger)
	pronouncer := audio.NewPronouncer(player, speaker, bus, logger)

	uiModel := ui.NewModel(ui.Options{
		Context:     ctx,
		Query:       query.NewService(client, tracker, bus, logger),
		History:     tracker,
		Pronouncer:  pronouncer,
		Caps:        viewmodels.Capabilities{Player: player.Available(), Speaker: speaker.Available()},
		InitialTerm: initialTerm,
		Logger:      logger,
	})

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward history changes to the UI
	bus.Subscribe(eventbus.EventHistoryChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("ui: %w", err)
	}
	logger.Info().Msg("exiting")
	return nil
}

// openStore opens the configured backend. A database that cannot be opened
// degrades to an in-memory history with one warning on warn.
func openStore(ctx context.Context, cfg config.HistoryConfig, warn io.Writer) history.Store {
	switch cfg.Backend {
	case config.BackendSQLite:
		store, err := history.OpenSQLiteStore(ctx, cfg.Path)
		if err != nil {
			fmt.Fprintf(warn, "wordgrip: recent searches will not be saved: %v\n", err)
			return history.NewMemoryStore()
		}
		return store
	case config.BackendMemory:
		return history.NewMemoryStore()
	default:
		return history.NewFileStore(cfg.Path)
	}
}

func logEvent(logger zerolog.Logger) eventbus.EventHandler {
	log := logger.With().Str("component", "events").Logger()
	return func(e eventbus.DomainEvent) {
		ev := log.Debug().Str("event", string(e.Type()))
		if err := eventErr(e); err != nil {
			ev = ev.Err(err)
		}
		ev.Msg("event")
	}
}

func eventErr(e eventbus.DomainEvent) error {
	switch e := e.(type) {
	case eventbus.SearchFailedEvent:
		return e.Err
	case eventbus.PlaybackFailedEvent:
		return e.Err
	}
	return nil
}
