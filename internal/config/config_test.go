package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv removes key for the duration of the test. An empty value would
// count as set and fail to parse for numeric fields.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	prev, ok := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if ok {
			os.Setenv(key, prev)
		}
	})
}

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORE_DRIVER", "STORE_DSN", "FINANCE_PASSPHRASE", "SESSION_TTL", "TIMEZONE", "GEMINI_API_KEY", "ORACLE_TIMEOUT", "REPORT_DAY", "REPORT_HOUR", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
		unsetenv(t, key)
	}

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Store.Driver != DriverSQLite || cfg.Store.DSN != "./data/futmanager.db" {
		t.Errorf("Store = %+v", cfg.Store)
	}
	if cfg.Finance.Passphrase != "1234" || cfg.Finance.SessionTTL != 12*time.Hour {
		t.Errorf("Finance = %+v", cfg.Finance)
	}
	if cfg.Oracle.Timeout != 90*time.Second || cfg.Oracle.APIKey != "" {
		t.Errorf("Oracle = %+v", cfg.Oracle)
	}
	if cfg.Report.Day != 1 || cfg.Report.Hour != 9 {
		t.Errorf("Report = %+v", cfg.Report)
	}
	if cfg.TelegramEnabled() {
		t.Error("Expected Telegram to be disabled by default")
	}
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if cfg.Port != 9090 || cfg.Store.Driver != DriverMemory || cfg.Finance.SessionTTL != 30*time.Minute {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if !cfg.TelegramEnabled() || cfg.Telegram.ChatID != -100123 {
		t.Errorf("Telegram = %+v", cfg.Telegram)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Store.Driver = "mongo" }},
		{"missing dsn", func(c *Config) { c.Store.DSN = "" }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"zero ttl", func(c *Config) { c.Finance.SessionTTL = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{
				Timezone: "UTC",
				Store:    Store{Driver: DriverSQLite, DSN: "x.db"},
				Finance:  Finance{SessionTTL: time.Hour},
			}
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
