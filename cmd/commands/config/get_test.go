package config

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/cfhost/internal/config"
)

func TestGet_AuthMode_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "auth-mode")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_AuthMode_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{AuthMode: "token"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "auth-mode")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.TrimSpace(stdout) != "token" {
		t.Errorf("expected 'token', got: %s", stdout)
	}
}

func TestGet_ListsAllKeys(t *testing.T) {
	path := setupTestConfig(t)

	enabled := true
	cfg := &config.Config{CheckCNAME: &enabled}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "get")

	for _, name := range config.KeyNames() {
		if !strings.Contains(stdout, name+":") {
			t.Errorf("expected key %q in output, got:\n%s", name, stdout)
		}
	}
	if !strings.Contains(stdout, "check-cname: true") {
		t.Errorf("expected stored toggle, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "auth-mode: (not set)") {
		t.Errorf("expected unset marker, got:\n%s", stdout)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
