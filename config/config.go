package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DevAnalyzerURL is the local development analysis endpoint.
	DevAnalyzerURL = "http://localhost:5000/analyze"
	// ProdAnalyzerURL is the deployed analysis endpoint.
	ProdAnalyzerURL = "https://contentguarad-ai.onrender.com/analyze"
)

type Config struct {
	Server struct {
		Port         int      `yaml:"port"`
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"server"`

	Analyzer struct {
		URL string `yaml:"url"`
		// Zero means no timeout: a hung request stays pending.
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"analyzer"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.AllowOrigins = []string{"http://localhost:5173"}
	cfg.Analyzer.URL = ProdAnalyzerURL
	cfg.Log.Level = "info"
	return cfg
}

// LoadConfig reads the configuration file on top of the defaults, then applies
// .env and environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("CONTENTGUARD_ANALYZER_URL"); v != "" {
		c.Analyzer.URL = v
	}
	if v := os.Getenv("CONTENTGUARD_ANALYZER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CONTENTGUARD_ANALYZER_TIMEOUT %q: %w", v, err)
		}
		c.Analyzer.Timeout = d
	}
	if v := os.Getenv("CONTENTGUARD_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the fields every front-end depends on.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	if c.Analyzer.URL == "" {
		return errors.New("analyzer.url is required")
	}
	u, err := url.Parse(c.Analyzer.URL)
	if err != nil {
		return fmt.Errorf("invalid analyzer.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("analyzer.url must be http or https, got %q", c.Analyzer.URL)
	}
	if c.Analyzer.Timeout < 0 {
		return errors.New("analyzer.timeout must not be negative")
	}
	return nil
}
