package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	// AppName names the config directory and default files
	AppName = "wordgrip"

	configFileName = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	API     APIConfig     `toml:"api"`
	History HistoryConfig `toml:"history"`
	Audio   AudioConfig   `toml:"audio"`
	Log     LogConfig     `toml:"log"`
}

// APIConfig configures the dictionary service
type APIConfig struct {
	BaseURL string `toml:"base_url" env:"WORDGRIP_API_BASE_URL" env-description:"dictionary lookup endpoint"`
	// Timeout is a Go duration string; "0s" means no timeout
	Timeout string `toml:"timeout" env:"WORDGRIP_API_TIMEOUT" env-description:"lookup request timeout, 0s for none"`
}

// HistoryConfig configures where recent searches are kept
type HistoryConfig struct {
	Backend string `toml:"backend" env:"WORDGRIP_HISTORY_BACKEND" env-description:"file, sqlite or memory"`
	Path    string `toml:"path"    env:"WORDGRIP_HISTORY_PATH"    env-description:"history storage location"`
}

// AudioConfig configures pronunciation playback and speech synthesis
type AudioConfig struct {
	Player        string  `toml:"player"         env:"WORDGRIP_AUDIO_PLAYER"   env-description:"audio player command, empty to auto-detect"`
	SpeechCommand string  `toml:"speech_command" env:"WORDGRIP_SPEECH_COMMAND" env-description:"speech synthesizer command, empty to auto-detect"`
	SpeechRate    float64 `toml:"speech_rate"    env:"WORDGRIP_SPEECH_RATE"    env-description:"speech rate relative to normal"`
}

// LogConfig configures the log file
type LogConfig struct {
	Level string `toml:"level" env:"WORDGRIP_LOG_LEVEL" env-description:"debug, info, warn, error or disabled"`
	File  string `toml:"file"  env:"WORDGRIP_LOG_FILE"  env-description:"log file location"`
}

// History backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
	Dir() string
}

// configService is the concrete implementation
type configService struct {
	dir      string
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	dir := DefaultDir()
	return &configService{
		dir:      dir,
		filePath: filepath.Join(dir, configFileName),
	}
}

// NewConfigServiceWithPath creates a config service for an explicit file
func NewConfigServiceWithPath(path string) ConfigService {
	return &configService{
		dir:      filepath.Dir(path),
		filePath: path,
	}
}

// DefaultDir returns the wordgrip directory under the user config dir
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, AppName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

func (cs *configService) Dir() string {
	return cs.dir
}

// Load loads the configuration file, creating it with defaults if missing.
// Environment variables override file values.
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); err != nil {
		cfg := DefaultConfig()
		// An unusable config dir is not fatal, the defaults still work
		if errors.Is(err, os.ErrNotExist) {
			_ = cs.SaveToPath(cfg, cs.filePath)
		}
		return cs.finish(cfg)
	}

	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cs.finish(cfg)
}

// finish applies env overrides, resolves paths and validates
func (cs *configService) finish(cfg *Config) (*Config, error) {
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.resolvePaths(cs.dir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL: "https://api.dictionaryapi.dev/api/v2/entries/en",
			Timeout: "0s",
		},
		History: HistoryConfig{
			Backend: BackendFile,
		},
		Audio: AudioConfig{
			SpeechRate: 0.8,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// resolvePaths fills empty file locations relative to the config dir
func (c *Config) resolvePaths(dir string) {
	if c.History.Path == "" {
		switch c.History.Backend {
		case BackendSQLite:
			c.History.Path = filepath.Join(dir, "storage.db")
		case BackendFile:
			c.History.Path = filepath.Join(dir, "storage.json")
		}
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dir, AppName+".log")
	}
}

// Overrides holds command line values that take precedence over the file
// and the environment
type Overrides struct {
	HistoryBackend string
	LogFile        string
}

// ApplyOverrides sets the non-empty overrides. Switching the history
// backend also moves its storage to that backend's default location in dir.
func (c *Config) ApplyOverrides(dir string, o Overrides) error {
	if o.HistoryBackend != "" && o.HistoryBackend != c.History.Backend {
		c.History.Backend = o.HistoryBackend
		c.History.Path = ""
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	c.resolvePaths(dir)
	return c.Validate()
}
