package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
)

// Validate checks the configuration for values the app cannot run with
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("api.base_url must be an http(s) URL, got %q", c.API.BaseURL))
	}

	if _, err := c.API.TimeoutDuration(); err != nil {
		errs = append(errs, err)
	}

	switch c.History.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("history.backend must be one of file, sqlite, memory, got %q", c.History.Backend))
	}

	if c.Audio.SpeechRate <= 0 || c.Audio.SpeechRate > 2 {
		errs = append(errs, fmt.Errorf("audio.speech_rate must be in (0, 2], got %v", c.Audio.SpeechRate))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error, disabled, got %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// TimeoutDuration parses the configured request timeout
func (a APIConfig) TimeoutDuration() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0, fmt.Errorf("api.timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("api.timeout must not be negative, got %s", a.Timeout)
	}
	return d, nil
}
