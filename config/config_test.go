package config

import (
	"os"
	"testing"
	"time"
)

// unsetenv clears key for the duration of the test. envconfig treats a set but
// empty variable as present, so t.Setenv(key, "") is not enough.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	if prev, ok := os.LookupEnv(key); ok {
		t.Cleanup(func() { os.Setenv(key, prev) })
	}
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"SLEEVE_ADDR", "SLEEVE_LOG_LEVEL", "SLEEVE_PALETTE_FILE",
		"SLEEVE_GEMINI_API_KEY", "GEMINI_API_KEY",
		"SLEEVE_FAL_BASE_URL", "SLEEVE_HTTP_TIMEOUT", "SLEEVE_PREFER_IPV4",
	} {
		unsetenv(t, k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.FalBaseURL != "https://queue.fal.run" {
		t.Errorf("FalBaseURL = %q, want default", cfg.FalBaseURL)
	}
	if cfg.HTTPTimeout != 180*time.Second {
		t.Errorf("HTTPTimeout = %v, want 180s", cfg.HTTPTimeout)
	}
	if !cfg.PreferIPv4 {
		t.Error("PreferIPv4 = false, want true")
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("GeminiAPIKey = %q, want empty", cfg.GeminiAPIKey)
	}
}

func TestLoadVendorKeyFallback(t *testing.T) {
	unsetenv(t, "SLEEVE_GEMINI_API_KEY")
	t.Setenv("GEMINI_API_KEY", "plain-key")
	t.Setenv("SLEEVE_FAL_KEY", "prefixed-key")
	t.Setenv("FAL_KEY", "plain-fal")
	t.Setenv("SLEEVE_HTTP_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GeminiAPIKey != "plain-key" {
		t.Errorf("GeminiAPIKey = %q, want plain-key", cfg.GeminiAPIKey)
	}
	if cfg.FalKey != "prefixed-key" {
		t.Errorf("FalKey = %q, want prefixed-key", cfg.FalKey)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
}
