package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // lunar.timezone must resolve in minimal images

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Astronomy AstronomyConfig `yaml:"astronomy"`
	Lunar     LunarConfig     `yaml:"lunar"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	AllowedOrigins  []string        `yaml:"allowedOrigins"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AstronomyConfig configures the upstream astronomy provider and the live feed.
type AstronomyConfig struct {
	APIKey              string        `yaml:"apiKey"`
	APIBaseURL          string        `yaml:"apiBaseUrl"`
	Timeout             time.Duration `yaml:"timeout"`
	LiveRefreshInterval time.Duration `yaml:"liveRefreshInterval"`
}

// LunarConfig controls the moon phase calendar.
type LunarConfig struct {
	Timezone     string `yaml:"timezone"`
	CalendarDays int    `yaml:"calendarDays"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("IPGEOLOCATION_API_KEY"); v != "" {
		cfg.Astronomy.APIKey = v
	}
	if v := os.Getenv("ASTRONOMY_API_BASE_URL"); v != "" {
		cfg.Astronomy.APIBaseURL = v
	}
	if v := os.Getenv("ASTRONOMY_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Astronomy.Timeout = parsed
		}
	}
	if v := os.Getenv("ASTRONOMY_LIVE_REFRESH"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Astronomy.LiveRefreshInterval = parsed
		}
	}
	if v := os.Getenv("LUNAR_TIMEZONE"); v != "" {
		cfg.Lunar.Timezone = v
	}
	if v := os.Getenv("LUNAR_CALENDAR_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Lunar.CalendarDays = parsed
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Astronomy: AstronomyConfig{
			APIBaseURL:          "https://api.ipgeolocation.io/v2/astronomy",
			Timeout:             10 * time.Second,
			LiveRefreshInterval: time.Minute,
		},
		Lunar: LunarConfig{
			Timezone:     "UTC",
			CalendarDays: 30,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.ShutdownTimeout < 0 {
		return errors.New("http.shutdownTimeout cannot be negative")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Astronomy.APIBaseURL) == "" {
		return errors.New("astronomy.apiBaseUrl cannot be empty")
	}
	if c.Astronomy.Timeout <= 0 {
		return errors.New("astronomy.timeout must be positive")
	}
	if c.Astronomy.LiveRefreshInterval < time.Second {
		return errors.New("astronomy.liveRefreshInterval must be at least 1s")
	}
	if _, err := time.LoadLocation(c.Lunar.Timezone); err != nil {
		return fmt.Errorf("lunar.timezone: %w", err)
	}
	if c.Lunar.CalendarDays <= 0 || c.Lunar.CalendarDays > 62 {
		return errors.New("lunar.calendarDays must be between 1 and 62")
	}
	return nil
}
