package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

const appName = "adventurer"

// Config represents the application configuration
type Config struct {
	DefaultGame string    `toml:"default_game" env:"ADVENTURER_DEFAULT_GAME"`
	TextWidth   int       `toml:"text_width" env:"ADVENTURER_TEXT_WIDTH"`
	ArtWidth    int       `toml:"art_width" env:"ADVENTURER_ART_WIDTH"`
	ArtHeight   int       `toml:"art_height" env:"ADVENTURER_ART_HEIGHT"`
	TrueColor   bool      `toml:"true_color" env:"ADVENTURER_TRUE_COLOR"`
	Log         LogConfig `toml:"log"`
}

// LogConfig configures the session log
type LogConfig struct {
	Level      string `toml:"level" env:"ADVENTURER_LOG_LEVEL"`
	Encoding   string `toml:"encoding" env:"ADVENTURER_LOG_ENCODING"`
	OutputPath string `toml:"output_path" env:"ADVENTURER_LOG_OUTPUT"`
}

// Defaults returns the configuration written on first run
func Defaults() Config {
	return Config{
		DefaultGame: "robots",
		TextWidth:   37,
		ArtWidth:    40,
		ArtHeight:   16,
		TrueColor:   true,
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
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

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCacheDir returns the directory for rendered art and logs
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), appName)
}

// GetGameLibraryPath returns the path to the game library
func GetGameLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "games")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file, creating it on first use, and applies
// ADVENTURER_* environment overrides.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = &Config{}
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	config.applyDefaults()
	return config, nil
}

func (c *Config) applyDefaults() {
	d := Defaults()
	if c.TextWidth <= 0 {
		c.TextWidth = d.TextWidth
	}
	if c.ArtWidth <= 0 {
		c.ArtWidth = d.ArtWidth
	}
	if c.ArtHeight <= 0 {
		c.ArtHeight = d.ArtHeight
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Encoding == "" {
		c.Log.Encoding = d.Log.Encoding
	}
	if c.Log.OutputPath == "" {
		c.Log.OutputPath = filepath.Join(GetCacheDir(), appName+".log")
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Defaults()
	if err := writeConfig(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func writeConfig(config *Config) error {
	configPath := GetConfigFilePath()
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

// GetGamePath returns the path to a game, either in the game library or a
// relative path
func GetGamePath(gameName string) (string, error) {
	gamePath := filepath.Join(GetGameLibraryPath(), gameName)
	if _, err := os.Stat(gamePath); err == nil {
		return gamePath, nil
	}

	if _, err := os.Stat(gameName); err == nil {
		return gameName, nil
	}

	return "", fmt.Errorf("game not found: %s", gameName)
}

// GetDefaultGame returns the default game name from config
func GetDefaultGame() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultGame, nil
}

// SetDefaultGame sets the default game in the config file. Environment
// overrides are not persisted.
func SetDefaultGame(gameName string) error {
	configPath := GetConfigFilePath()

	config := Defaults()
	if _, err := os.Stat(configPath); err == nil {
		config = Config{}
		if _, err := toml.DecodeFile(configPath, &config); err != nil {
			return fmt.Errorf("error decoding config file: %w", err)
		}
	}

	config.DefaultGame = gameName
	return writeConfig(&config)
}
