package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/cfhost/internal/config"
)

// setupTestConfig points the config package at a temp file and returns its path.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	_ = cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_AuthMode(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "auth-mode", "token")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"token"`) {
		t.Errorf("expected confirmation with value, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.AuthMode != "token" {
		t.Errorf("expected AuthMode %q, got %q", "token", cfg.AuthMode)
	}
}

func TestSet_AuthMode_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "AUTH-MODE", "KEY")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `auth-mode set to "key"`) {
		t.Errorf("expected normalized key and value, got: %s", stdout)
	}
}

func TestSet_AuthMode_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "auth-mode", "oauth")

	if !strings.Contains(stderr, "invalid auth mode") {
		t.Errorf("expected 'invalid auth mode' error, got: %s", stderr)
	}
	cfg, _ := config.Load()
	if cfg.AuthMode != "" {
		t.Errorf("invalid value should not be saved, got %q", cfg.AuthMode)
	}
}

func TestSet_Toggle(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "confirm", "false")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `confirm set to "false"`) {
		t.Errorf("unexpected output: %s", stdout)
	}

	cfg, _ := config.Load()
	if cfg.Confirm == nil || *cfg.Confirm {
		t.Errorf("expected Confirm=false to be persisted, got %v", cfg.Confirm)
	}
}

func TestSet_Toggle_Invalid(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "check-cname", "sometimes")

	if !strings.Contains(stderr, "invalid value") {
		t.Errorf("expected 'invalid value' error, got: %s", stderr)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
