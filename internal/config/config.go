package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/AhmetOsmn/ufc-events-ui/internal/domain"
	"github.com/AhmetOsmn/ufc-events-ui/internal/eventbus"
)

const (
	// DefaultBaseURL is the API deployment used when nothing else is configured
	DefaultBaseURL = "http://localhost:5230"

	// DefaultTimeout bounds every API request
	DefaultTimeout = 10 * time.Second

	// EnvBaseURL overrides the API base URL (loaded from the environment or .env)
	EnvBaseURL = "UFC_EVENTS_API_URL"
)

// Config represents the application configuration
type Config struct {
	Version int       `toml:"version"`
	API     APIConfig `toml:"api"`

	// Theme is the persisted color theme: "light", "dark", or "" when the
	// user never chose explicitly and the terminal background decides.
	Theme string `toml:"theme"`

	UISettings UISettings `toml:"ui"`
}

// APIConfig holds the remote API settings
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowRankings bool   `toml:"show_rankings"`
	ExportDir    string `toml:"export_dir"` // where .ics exports are written, "" = current directory
}

// Timeout returns the configured request timeout
func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return DefaultTimeout
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// ApplyEnv overlays environment variable overrides onto the config
func (c *Config) ApplyEnv() {
	if url := os.Getenv(EnvBaseURL); url != "" {
		c.API.BaseURL = url
	}
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// service is the concrete implementation
type service struct {
	bus      eventbus.EventBus
	filePath string
}

// NewService creates a new config service
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "ufc-events-ui")
	_ = os.MkdirAll(appDir, 0o755)

	return &service{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewServiceWithBus creates a config service that publishes load/save events
func NewServiceWithBus(bus eventbus.EventBus) Service {
	s := NewService().(*service)
	s.bus = bus
	return s
}

// Path returns the config file location
func (s *service) Path() string {
	return s.filePath
}

// Load loads the configuration from the default path, falling back to
// defaults when no file exists yet
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		cfg := Default()

		if s.bus != nil {
			s.bus.Publish(domain.ConfigLoadedEvent{Path: s.filePath})
		}

		return cfg, nil
	}

	cfg, err := s.LoadFromPath(s.filePath)
	if err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(domain.ConfigLoadedEvent{Path: s.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to the default path
func (s *service) Save(config *Config) error {
	if err := s.SaveToPath(config, s.filePath); err != nil {
		return err
	}

	if s.bus != nil {
		s.bus.Publish(domain.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			TimeoutSeconds: int(DefaultTimeout / time.Second),
		},
		UISettings: UISettings{
			ShowRankings: true,
		},
	}
}
