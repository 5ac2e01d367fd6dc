package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ModeHTTP = "http"
	ModeTUI  = "tui"
)

// Config holds all application configuration values
type Config struct {
	Port               string
	GinMode            string
	AppMode            string
	SessionIdleTimeout time.Duration
	SessionSweepEvery  time.Duration
	CORSAllowOrigin    string
}

type configFile struct {
	Server struct {
		Port            string `yaml:"port"`
		GinMode         string `yaml:"gin_mode"`
		CORSAllowOrigin string `yaml:"cors_allow_origin"`
	} `yaml:"server"`
	App struct {
		Mode string `yaml:"mode"`
	} `yaml:"app"`
	Sessions struct {
		IdleTimeout string `yaml:"idle_timeout"`
		SweepEvery  string `yaml:"sweep_every"`
	} `yaml:"sessions"`
}

func defaults() *Config {
	return &Config{
		Port:               "8080",
		GinMode:            "debug",
		AppMode:            ModeHTTP,
		SessionIdleTimeout: 30 * time.Minute,
		SessionSweepEvery:  time.Minute,
		CORSAllowOrigin:    "*",
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML file
// named by CONFIG_FILE, and finally environment variables.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := cfg.applyFile(raw); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(raw []byte) error {
	var f configFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	setString(&c.Port, f.Server.Port)
	setString(&c.GinMode, f.Server.GinMode)
	setString(&c.CORSAllowOrigin, f.Server.CORSAllowOrigin)
	setString(&c.AppMode, f.App.Mode)
	if err := setDuration(&c.SessionIdleTimeout, "sessions.idle_timeout", f.Sessions.IdleTimeout); err != nil {
		return err
	}
	return setDuration(&c.SessionSweepEvery, "sessions.sweep_every", f.Sessions.SweepEvery)
}

func (c *Config) applyEnv(getenv func(string) string) error {
	setString(&c.Port, getenv("PORT"))
	setString(&c.GinMode, getenv("GIN_MODE"))
	setString(&c.AppMode, getenv("APP_MODE"))
	setString(&c.CORSAllowOrigin, getenv("CORS_ALLOW_ORIGIN"))
	if err := setDuration(&c.SessionIdleTimeout, "SESSION_IDLE_TIMEOUT", getenv("SESSION_IDLE_TIMEOUT")); err != nil {
		return err
	}
	return setDuration(&c.SessionSweepEvery, "SESSION_SWEEP_EVERY", getenv("SESSION_SWEEP_EVERY"))
}

func (c *Config) validate() error {
	switch c.AppMode {
	case ModeHTTP, ModeTUI:
	default:
		return fmt.Errorf("invalid app mode %q", c.AppMode)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q", c.GinMode)
	}
	if c.SessionSweepEvery <= 0 {
		return fmt.Errorf("session sweep interval must be positive, got %s", c.SessionSweepEvery)
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name, v string) error {
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", name, err)
	}
	*dst = d
	return nil
}
