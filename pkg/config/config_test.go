package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "https://yard.example.com/api/v1" {
		t.Fatalf("unexpected API base URL: %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("expected default timeout 30s, got %v", cfg.API.Timeout)
	}
	if cfg.Session.Backend != SessionBackendFile {
		t.Fatalf("expected file session backend, got %q", cfg.Session.Backend)
	}
	if cfg.Auth.LogoutOn403 {
		t.Fatal("logout-on-403 must default to off")
	}
	if got := cfg.Media.MaxUploadBytes(); got != 10<<20 {
		t.Fatalf("expected 10MB default upload cap, got %d", got)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAPIBaseURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAPIBaseURL, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_RejectsBadBaseURL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvAPIBaseURL, "ftp://yard.example.com")

	if _, err := Load(); err == nil {
		t.Fatal("expected non-http base URL to be rejected")
	}
}

func TestLoad_RejectsUnknownSessionBackend(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvSessionBackend, "etcd")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown session backend to be rejected")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAPIBaseURL, "https://yard.example.com/api/v1")
	t.Setenv(EnvAppEnv, "production")
}
