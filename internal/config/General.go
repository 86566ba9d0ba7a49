package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrConfigNotFound = errors.New("configuration file not found")
)

// AppConfig holds all application configuration. It is built from defaults,
// an optional YAML file and environment variables, in that order.
type AppConfig struct {
	Web struct {
		Port        string        `yaml:"port"`
		SessionTTL  time.Duration `yaml:"session_ttl"`
		MaxSessions int           `yaml:"max_sessions"`
	} `yaml:"web"`

	View struct {
		// PageSize is the number of rows each "show more" adds.
		PageSize int `yaml:"page_size"`
		// SwapBaseURL is the swap app URL the add-liquidity links point into.
		SwapBaseURL string `yaml:"swap_base_url"`
	} `yaml:"view"`

	Data struct {
		// PoolsFile is the pool snapshot (JSON) served by the dashboard.
		PoolsFile string `yaml:"pools_file"`
	} `yaml:"data"`

	Logging struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logging"`
}

// Default returns the configuration used when nothing is set.
func Default() *AppConfig {
	var cfg AppConfig
	cfg.Web.Port = DefaultWebPort
	cfg.Web.SessionTTL = DefaultSessionTTL
	cfg.Web.MaxSessions = DefaultMaxSessions
	cfg.View.PageSize = DefaultPageSize
	cfg.Logging.Level = "info"
	return &cfg
}

// LoadConfig loads the configuration. path may be empty, in which case only
// defaults and environment variables are used.
func LoadConfig(path string) (*AppConfig, error) {
	log.Info().Str("path", path).Msg("Loading application configuration...")

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := overrideWithEnv(cfg); err != nil {
		return nil, err
	}
	if err := loadEndpointConfig(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("port", cfg.Web.Port).
		Int("pageSize", cfg.View.PageSize).
		Str("poolsFile", cfg.Data.PoolsFile).
		Dur("sessionTTL", cfg.Web.SessionTTL).
		Msg("Configuration loaded successfully.")

	return cfg, nil
}

// Validate checks configuration validity
func (c *AppConfig) Validate() error {
	if c.View.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidConfig, c.View.PageSize)
	}
	if c.Web.SessionTTL <= 0 {
		return fmt.Errorf("%w: session TTL must be positive, got %s", ErrInvalidConfig, c.Web.SessionTTL)
	}
	if c.Web.MaxSessions <= 0 {
		return fmt.Errorf("%w: max sessions must be positive, got %d", ErrInvalidConfig, c.Web.MaxSessions)
	}
	port, err := strconv.Atoi(c.Web.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("%w: invalid web port %q", ErrInvalidConfig, c.Web.Port)
	}
	if c.View.SwapBaseURL != "" &&
		!strings.HasPrefix(c.View.SwapBaseURL, "http://") && !strings.HasPrefix(c.View.SwapBaseURL, "https://") {
		return fmt.Errorf("%w: swap base URL must be http(s): %s", ErrInvalidConfig, c.View.SwapBaseURL)
	}
	return nil
}

// overrideWithEnv overrides file values with the environment variables that are set.
func overrideWithEnv(cfg *AppConfig) error {
	if v, ok := os.LookupEnv("WEB_PORT"); ok && v != "" {
		cfg.Web.Port = v
	}
	if v, ok, err := getEnvAsDuration("SESSION_TTL"); err != nil {
		return err
	} else if ok {
		cfg.Web.SessionTTL = v
	}
	if v, ok, err := getEnvAsInt("MAX_SESSIONS"); err != nil {
		return err
	} else if ok {
		cfg.Web.MaxSessions = v
	}
	if v, ok, err := getEnvAsInt("PAGE_SIZE"); err != nil {
		return err
	} else if ok {
		cfg.View.PageSize = v
	}
	if v, ok := os.LookupEnv("POOLS_FILE"); ok && v != "" {
		cfg.Data.PoolsFile = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv("LOG_FILE"); ok && v != "" {
		cfg.Logging.File = v
	}
	return nil
}

// getEnvAsInt retrieves an optional environment variable as an int. Returns error if set but invalid.
func getEnvAsInt(key string) (int, bool, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, false, errors.New("environment variable " + key + " must be a valid int, got: " + valueStr)
	}
	return value, true, nil
}

// getEnvAsDuration retrieves an optional environment variable as a duration (e.g. "30m").
func getEnvAsDuration(key string) (time.Duration, bool, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return 0, false, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, false, errors.New("environment variable " + key + " must be a valid duration, got: " + valueStr)
	}
	return value, true, nil
}
