package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/hollowflare/eventbus/config"
)

// deepConfig exercises multiple levels of struct nesting with string,
// int, bool and time.Duration fields.
type deepConfig struct {
	ServerHost string `default:"localhost"`
	ServerPort int    `default:"8080"`

	DB struct {
		Host              string        `default:"127.0.0.1"`
		Port              int           `default:"5432"`
		MaxConnections    int           `default:"20"`
		ConnectionTimeout time.Duration `default:"5s"`
		EnableSSLMode     bool          `default:"true"`
	}

	Logging struct {
		Level      string `default:"info"`
		MaxBackups int    `default:"5"`

		Rotation struct {
			Enabled  bool          `default:"true"`
			Interval time.Duration `default:"24h"`
		}
	}
}

func TestParseDeepNestingDefaults(t *testing.T) {
	var cfg deepConfig
	if _, err := config.Parse(&cfg, config.Options{SkipEnv: true}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.DB.Host != "127.0.0.1" {
		t.Errorf("DB.Host = %q, want 127.0.0.1", cfg.DB.Host)
	}
	if cfg.DB.ConnectionTimeout != 5*time.Second {
		t.Errorf("DB.ConnectionTimeout = %v, want 5s", cfg.DB.ConnectionTimeout)
	}
	if !cfg.DB.EnableSSLMode {
		t.Error("DB.EnableSSLMode = false, want true")
	}
	if !cfg.Logging.Rotation.Enabled {
		t.Error("Logging.Rotation.Enabled = false, want true")
	}
	if cfg.Logging.Rotation.Interval != 24*time.Hour {
		t.Errorf("Logging.Rotation.Interval = %v, want 24h", cfg.Logging.Rotation.Interval)
	}
}

func TestParseDeepNestingEnvOverride(t *testing.T) {
	os.Setenv("DB_MAX_CONNECTIONS", "50")
	os.Setenv("LOGGING_ROTATION_INTERVAL", "12h")
	defer os.Unsetenv("DB_MAX_CONNECTIONS")
	defer os.Unsetenv("LOGGING_ROTATION_INTERVAL")

	var cfg deepConfig
	if _, err := config.Parse(&cfg, config.Options{}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.DB.MaxConnections != 50 {
		t.Errorf("DB.MaxConnections = %d, want 50", cfg.DB.MaxConnections)
	}
	if cfg.Logging.Rotation.Interval != 12*time.Hour {
		t.Errorf("Logging.Rotation.Interval = %v, want 12h", cfg.Logging.Rotation.Interval)
	}
	// Untouched nested field keeps its default.
	if cfg.DB.Port != 5432 {
		t.Errorf("DB.Port = %d, want 5432", cfg.DB.Port)
	}
}

// skippedFieldsConfig exercises config:"-" on a field type Parse could
// not otherwise handle (a func value).
type skippedFieldsConfig struct {
	Name     string `default:"svc"`
	OnReload func() `config:"-"`
}

func TestParseSkipsTaggedFields(t *testing.T) {
	called := false
	cfg := skippedFieldsConfig{OnReload: func() { called = true }}

	if _, err := config.Parse(&cfg, config.Options{SkipEnv: true}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Name != "svc" {
		t.Errorf("Name = %q, want svc", cfg.Name)
	}
	if cfg.OnReload == nil {
		t.Fatal("OnReload was cleared by Parse despite config:\"-\"")
	}
	cfg.OnReload()
	if !called {
		t.Fatal("OnReload callback was replaced by Parse")
	}
}
