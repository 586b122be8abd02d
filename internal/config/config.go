// Package config reads the server's settings from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type EmailJS struct {
	ServiceID  string        `env:"SERVICE_ID"`
	TemplateID string        `env:"TEMPLATE_ID"`
	PublicKey  string        `env:"PUBLIC_KEY"`
	PrivateKey string        `env:"PRIVATE_KEY"`
	Endpoint   string        `env:"ENDPOINT" envDefault:"https://api.emailjs.com/api/v1.0/email/send"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"debug"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	TemplatesGlob   string        `env:"TEMPLATES_GLOB" envDefault:"templates/*"`
	StaticDir       string        `env:"STATIC_DIR" envDefault:"./static"`
	ImagesDir       string        `env:"IMAGES_DIR" envDefault:"./images"`
	ResumePath      string        `env:"RESUME_PATH" envDefault:"./static/resume.pdf"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	EmailJS         EmailJS       `envPrefix:"EMAILJS_"`
}

// Load reads .env (if any) and then the process environment. Variables
// already set in the environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Logger builds the process logger described by LogLevel and LogFormat.
func (c Config) Logger() *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL %q: %w", s, err)
	}
	return l, nil
}
