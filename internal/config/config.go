package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. It is loaded once at startup from
// ~/.vibra/config.yml (if present) with VIBRA_* environment overrides, and
// treated as immutable afterwards.
type Config struct {
	// Gemini
	APIKey         string        `yaml:"api_key"`
	Model          string        `yaml:"model"`
	Endpoint       string        `yaml:"endpoint"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// Appearance
	Theme string `yaml:"theme"`

	// Local identity shown on authored posts and messages
	UserName   string `yaml:"user_name"`
	UserHandle string `yaml:"user_handle"`

	// Feedback
	Haptics bool `yaml:"haptics"`
}

const (
	defaultModel    = "gemini-3-flash-preview"
	defaultEndpoint = "https://generativelanguage.googleapis.com"
	defaultTimeout  = 30 * time.Second
)

// Dir returns the vibra config directory (~/.vibra).
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".vibra")
}

// Path returns the config file path inside Dir.
func Path() string {
	return filepath.Join(Dir(), "config.yml")
}

// LogPath returns the log file path inside Dir.
func LogPath() string {
	return filepath.Join(Dir(), "vibra.log")
}

func defaults() *Config {
	return &Config{
		Model:          defaultModel,
		Endpoint:       defaultEndpoint,
		RequestTimeout: defaultTimeout,
		Theme:          "neon",
		UserName:       "Vibra User",
		UserHandle:     "@vibra_tr",
		Haptics:        true,
	}
}

// Load reads the config file at path (Path() in production), then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.APIKey = getEnvString("VIBRA_API_KEY", cfg.APIKey)
	cfg.Model = getEnvString("VIBRA_MODEL", cfg.Model)
	cfg.Endpoint = getEnvString("VIBRA_ENDPOINT", cfg.Endpoint)
	cfg.RequestTimeout = getEnvDuration("VIBRA_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.Theme = getEnvString("VIBRA_THEME", cfg.Theme)
	cfg.UserName = getEnvString("VIBRA_USER_NAME", cfg.UserName)
	cfg.UserHandle = getEnvString("VIBRA_USER_HANDLE", cfg.UserHandle)
	cfg.Haptics = getEnvBool("VIBRA_HAPTICS", cfg.Haptics)

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	return cfg, nil
}

// Save writes the config back to path, creating the directory if needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
