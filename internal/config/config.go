package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	TransportHTTP  = "http"
	TransportStdio = "stdio"
)

// Generator providers.
const (
	ProviderNone  = "none"
	ProviderGenAI = "genai"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	DB        DBConfig        `yaml:"db"`
	Log       LogConfig       `yaml:"log"`
	Transport TransportConfig `yaml:"transport"`
	Records   RecordsConfig   `yaml:"records"`
	Generator GeneratorConfig `yaml:"generator"`
	Calendar  CalendarConfig  `yaml:"calendar"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// RecordsConfig selects the record set. File, when set, wins over Catalog.
type RecordsConfig struct {
	Catalog string `yaml:"catalog"`
	File    string `yaml:"file"`
}

type GeneratorConfig struct {
	Provider  string        `yaml:"provider"`
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model"`
	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`
}

type CalendarConfig struct {
	UpcomingDays int `yaml:"upcoming_days"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: ":memory:",
		},
		Log: LogConfig{
			Level: "info",
		},
		Transport: TransportConfig{
			Mode: TransportHTTP,
		},
		Records: RecordsConfig{
			Catalog: "scu",
		},
		Generator: GeneratorConfig{
			Provider:  ProviderNone,
			Timeout:   30 * time.Second,
			MaxTokens: 200,
		},
		Calendar: CalendarConfig{
			UpcomingDays: 30,
		},
	}
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("SCHOLARSHIPS_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("SCHOLARSHIPS_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SCHOLARSHIPS_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid SCHOLARSHIPS_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("SCHOLARSHIPS_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("SCHOLARSHIPS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if mode := os.Getenv("SCHOLARSHIPS_TRANSPORT"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if catalog := os.Getenv("SCHOLARSHIPS_RECORDS_CATALOG"); catalog != "" {
		cfg.Records.Catalog = catalog
	}
	if file := os.Getenv("SCHOLARSHIPS_RECORDS_FILE"); file != "" {
		cfg.Records.File = file
	}
	if provider := os.Getenv("SCHOLARSHIPS_GENERATOR_PROVIDER"); provider != "" {
		cfg.Generator.Provider = provider
	}
	if key := os.Getenv("SCHOLARSHIPS_GENERATOR_API_KEY"); key != "" {
		cfg.Generator.APIKey = key
	}
	if model := os.Getenv("SCHOLARSHIPS_GENERATOR_MODEL"); model != "" {
		cfg.Generator.Model = model
	}
	if timeoutStr := os.Getenv("SCHOLARSHIPS_GENERATOR_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return fmt.Errorf("invalid SCHOLARSHIPS_GENERATOR_TIMEOUT: %w", err)
		}
		cfg.Generator.Timeout = timeout
	}
	if tokensStr := os.Getenv("SCHOLARSHIPS_GENERATOR_MAX_TOKENS"); tokensStr != "" {
		tokens, err := strconv.Atoi(tokensStr)
		if err != nil {
			return fmt.Errorf("invalid SCHOLARSHIPS_GENERATOR_MAX_TOKENS: %w", err)
		}
		cfg.Generator.MaxTokens = tokens
	}
	if daysStr := os.Getenv("SCHOLARSHIPS_CALENDAR_UPCOMING_DAYS"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return fmt.Errorf("invalid SCHOLARSHIPS_CALENDAR_UPCOMING_DAYS: %w", err)
		}
		cfg.Calendar.UpcomingDays = days
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Transport.Mode {
	case TransportHTTP, TransportStdio:
	default:
		return fmt.Errorf("%w: transport mode %q", ErrInvalidConfig, c.Transport.Mode)
	}
	switch c.Generator.Provider {
	case "", ProviderNone:
	case ProviderGenAI:
		if c.Generator.APIKey == "" {
			return fmt.Errorf("%w: generator provider %q requires api_key", ErrInvalidConfig, c.Generator.Provider)
		}
	default:
		return fmt.Errorf("%w: generator provider %q", ErrInvalidConfig, c.Generator.Provider)
	}
	if c.Generator.Timeout < 0 {
		return fmt.Errorf("%w: negative generator timeout", ErrInvalidConfig)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d", ErrInvalidConfig, c.Server.Port)
	}
	if c.Calendar.UpcomingDays < 0 {
		return fmt.Errorf("%w: negative upcoming_days", ErrInvalidConfig)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
