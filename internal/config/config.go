package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds exercise server configuration
type ServerConfig struct {
	URL string `mapstructure:"url"` // Base URL of the exercise server
}

// StorageConfig holds object-store settings for video uploads
type StorageConfig struct {
	Bucket        string `mapstructure:"bucket"`
	Region        string `mapstructure:"region"`
	Endpoint      string `mapstructure:"endpoint"`        // Optional, for S3-compatible stores
	PublicBaseURL string `mapstructure:"public_base_url"` // Prefix for returned video URLs
}

// UIConfig holds UI configuration
type UIConfig struct {
	DefaultSort string `mapstructure:"default_sort"` // difficulty, name, description, favorites, saves
	Theme       string `mapstructure:"theme"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL: "",
		},
		Storage: StorageConfig{
			Region: "us-east-1",
		},
		UI: UIConfig{
			DefaultSort: "difficulty",
			Theme:       "default",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "repbook", "repbook.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "repbook", "repbook.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "repbook")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "repbook")
	}
}

// DefaultDataPath returns the directory for durable client state (the
// session database lives here)
func DefaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "repbook")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "repbook")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("REPBOOK")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("server.url", cfg.Server.URL)

	viper.Set("storage.bucket", cfg.Storage.Bucket)
	viper.Set("storage.region", cfg.Storage.Region)
	viper.Set("storage.endpoint", cfg.Storage.Endpoint)
	viper.Set("storage.public_base_url", cfg.Storage.PublicBaseURL)

	viper.Set("ui.default_sort", cfg.UI.DefaultSort)
	viper.Set("ui.theme", cfg.UI.Theme)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the server URL is set
func (c *Config) IsConfigured() bool {
	return c.Server.URL != ""
}

// UploadsConfigured returns true if the object store is set up for uploads
func (c *Config) UploadsConfigured() bool {
	return c.Storage.Bucket != ""
}
