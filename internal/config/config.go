package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joeshaw/envdecode"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the application configuration
type Config struct {
	DefaultDeck string `toml:"default_deck"`
	Prompt      string `toml:"prompt"`
	Color       string `toml:"color"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	Theme       Theme  `toml:"theme"`
}

// Theme holds hex colors for the board
type Theme struct {
	Red    string `toml:"red"`
	Black  string `toml:"black"`
	Hidden string `toml:"hidden"`
}

// env holds the environment overrides
type env struct {
	Deck     string `env:"SOLITAIRE_DECK"`
	Prompt   string `env:"SOLITAIRE_PROMPT"`
	Color    string `env:"SOLITAIRE_COLOR"`
	LogFile  string `env:"SOLITAIRE_LOG_FILE"`
	LogLevel string `env:"SOLITAIRE_LOG_LEVEL"`
}

// configFile overrides the default config location when set
var configFile string

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Prompt:   "esp> ",
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// SetConfigFile makes LoadConfig use path instead of the XDG location
func SetConfigFile(path string) {
	configFile = path
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "solitaire", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	if configFile != "" {
		return configFile
	}
	return filepath.Join(GetXDGConfigHome(), "solitaire", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults when it does
// not exist, and applies environment overrides
func LoadConfig() (*Config, error) {
	config, err := loadFile()
	if err != nil {
		return nil, err
	}
	if err := applyEnv(config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := save(config); err != nil {
		return nil, err
	}
	return config, nil
}

func save(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

func applyEnv(config *Config) error {
	var e env
	if err := envdecode.Decode(&e); err != nil {
		if errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("error reading environment: %w", err)
	}

	if e.Deck != "" {
		config.DefaultDeck = e.Deck
	}
	if e.Prompt != "" {
		config.Prompt = e.Prompt
	}
	if e.Color != "" {
		config.Color = e.Color
	}
	if e.LogFile != "" {
		config.LogFile = e.LogFile
	}
	if e.LogLevel != "" {
		config.LogLevel = e.LogLevel
	}
	return nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	c.Color = strings.ToLower(c.Color)
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	return nil
}

// GetDeckPath returns the path to a deck, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	// First, try to find the deck in the deck library
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	// If not found in the library, treat as a relative path
	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultDeck, nil
}

// SetDefaultDeck sets the default deck in the config file
func SetDefaultDeck(deckName string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}
	config.DefaultDeck = deckName
	return save(config)
}
