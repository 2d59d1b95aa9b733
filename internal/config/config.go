// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	Port       int    `envconfig:"PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	StaticPath string `envconfig:"STATIC_PATH" default:"./web"`
	Timezone   string `envconfig:"TIMEZONE" default:"America/Sao_Paulo"`

	Store Store

	Finance Finance

	Oracle Oracle

	Telegram Telegram

	Report Report
}

type Store struct {
	Driver string `envconfig:"STORE_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"STORE_DSN" default:"./data/futmanager.db"`
}

type Finance struct {
	Passphrase string        `envconfig:"FINANCE_PASSPHRASE" default:"1234"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"12h"`
}

type Oracle struct {
	APIKey     string        `envconfig:"GEMINI_API_KEY"`
	TeamModel  string        `envconfig:"GEMINI_TEAM_MODEL" default:"gemini-2.5-flash"`
	ImageModel string        `envconfig:"GEMINI_IMAGE_MODEL" default:"gemini-2.5-flash-image"`
	Timeout    time.Duration `envconfig:"ORACLE_TIMEOUT" default:"90s"`
}

type Telegram struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"TELEGRAM_CHAT_ID"`
}

type Report struct {
	Day  int `envconfig:"REPORT_DAY" default:"1"`
	Hour int `envconfig:"REPORT_HOUR" default:"9"`
}

// New loads .env if present, then reads the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks values envconfig cannot.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite, DriverPostgres, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.DSN == "" && c.Store.Driver != DriverMemory {
		return fmt.Errorf("STORE_DSN is required for driver %s", c.Store.Driver)
	}
	if c.Finance.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// TelegramEnabled reports whether announcements can be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.ChatID != 0
}
