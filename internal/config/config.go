package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/ytget/flashcards/internal/platform"
)

// Application directory and file names
const (
	AppDirName     = "flashcards"
	ConfigFileName = "config.toml"
	DotEnvFileName = ".env"
)

// Environment variables that override the config file
const (
	EnvBackendURL     = "FLASHCARDS_BACKEND_URL"
	EnvExportDir      = "FLASHCARDS_EXPORT_DIR"
	EnvRequestTimeout = "FLASHCARDS_REQUEST_TIMEOUT"
)

// Default values
const (
	DefaultBackendURL     = "http://localhost:8000"
	DefaultRequestTimeout = "0s"
	DefaultAutoReveal     = true
)

// Config represents the startup configuration
type Config struct {
	BackendURL     string `toml:"backend_url"`
	ExportDir      string `toml:"export_dir"`
	RequestTimeout string `toml:"request_timeout"`
	AutoReveal     bool   `toml:"auto_reveal"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BackendURL:     DefaultBackendURL,
		RequestTimeout: DefaultRequestTimeout,
		AutoReveal:     DefaultAutoReveal,
	}
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

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), AppDirName, ConfigFileName)
}

// Load resolves the configuration in order: defaults, config file, .env, environment.
func Load() (*Config, error) {
	LoadDotEnv(DotEnvFileName)

	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from a .env file without overriding the environment
func LoadDotEnv(path string) {
	err := godotenv.Load(path)
	if err == nil {
		log.Printf("Loaded environment from %s", path)
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Failed to load %s: %v", path, err)
	}
}

// LoadConfig reads the config file on top of the defaults.
// A missing file is not an error.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(GetConfigFilePath())
}

// LoadConfigFile reads the config file at path on top of the defaults
func LoadConfigFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	return cfg, nil
}

// InitConfig writes the default config file and returns its path
func InitConfig(force bool) (string, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); err == nil && !force {
		return configPath, fmt.Errorf("%w: %s", ErrConfigExists, configPath)
	}

	if err := Save(configPath, Default()); err != nil {
		return "", err
	}
	return configPath, nil
}

// Save encodes cfg as TOML into path, creating the directory if needed
func Save(path string, cfg *Config) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from FLASHCARDS_* environment variables
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBackendURL)); v != "" {
		c.BackendURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportDir)); v != "" {
		c.ExportDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvRequestTimeout)); v != "" {
		c.RequestTimeout = v
	}
}

// Validate checks the backend origin and the request timeout
func (c *Config) Validate() error {
	if err := ValidateBackendURL(c.BackendURL); err != nil {
		return err
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	return nil
}

// Timeout returns the parsed request timeout; zero means no timeout
func (c *Config) Timeout() (time.Duration, error) {
	raw := strings.TrimSpace(c.RequestTimeout)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: request_timeout %q: %v", ErrInvalidConfig, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: request_timeout must not be negative", ErrInvalidConfig)
	}
	return d, nil
}

// ResolveExportDir returns the export directory, falling back to Downloads
func (c *Config) ResolveExportDir() string {
	if dir := strings.TrimSpace(c.ExportDir); dir != "" {
		return platform.ExpandHome(dir)
	}
	return defaultExportDir()
}

// ValidateBackendURL accepts absolute http(s) origins only
func ValidateBackendURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: backend_url %q: %v", ErrInvalidConfig, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: backend_url %q must use http or https", ErrInvalidConfig, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: backend_url %q has no host", ErrInvalidConfig, raw)
	}
	return nil
}

func defaultExportDir() string {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return os.TempDir()
	}
	return dir
}
