package logging_test

import (
	"testing"

	"github.com/JaimeStill/chargepoint/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelInfo)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatText)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")
	t.Setenv("TEST_LOG_SOURCE", "true")
	t.Setenv("TEST_LOG_SERVICE", "chargepoint")

	cfg := &logging.Config{}
	env := &logging.Env{
		Level:   "TEST_LOG_LEVEL",
		Format:  "TEST_LOG_FORMAT",
		Source:  "TEST_LOG_SOURCE",
		Service: "TEST_LOG_SERVICE",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", cfg.Level, logging.LevelDebug)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q", cfg.Format, logging.FormatJSON)
	}
	if !cfg.Source {
		t.Error("Source = false, want true")
	}
	if cfg.Service != "chargepoint" {
		t.Errorf("Service = %q, want %q", cfg.Service, "chargepoint")
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "loud")

	cfg := &logging.Config{}
	if err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL"}); err == nil {
		t.Error("Finalize() succeeded with invalid level, want error")
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}

	base.Merge(&logging.Config{Level: logging.LevelDebug, Service: "web"})

	if base.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want %q", base.Level, logging.LevelDebug)
	}
	if base.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want %q (should not change)", base.Format, logging.FormatJSON)
	}
	if base.Service != "web" {
		t.Errorf("Service = %q, want %q", base.Service, "web")
	}
}
