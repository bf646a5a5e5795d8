package auth

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"nathanbeddoewebdev/cfhost/internal/app"
	"nathanbeddoewebdev/cfhost/internal/config"
	"nathanbeddoewebdev/cfhost/internal/credentials"
	"nathanbeddoewebdev/cfhost/internal/services/auth"
)

// setupAuthTest isolates config, environment and keychain for one test.
func setupAuthTest(t *testing.T, env map[string]string) *auth.MockStore {
	t.Helper()
	config.SetPath(filepath.Join(t.TempDir(), "config.json"))
	t.Cleanup(config.ResetPath)

	store := auth.NewMockStore()
	app.Set(app.Factories{
		Store:  func() auth.Store { return store },
		Getenv: func(k string) string { return env[k] },
	})
	t.Cleanup(app.Reset)
	return store
}

// execAuth runs the auth command with the given stdin and args and returns
// stdout, stderr, and the command error.
func execAuth(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	app.AddCredentialFlags(cmd.PersistentFlags())
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(append(args, "--credentials-file", filepath.Join(t.TempDir(), "absent")))
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestLogin_Flags(t *testing.T) {
	store := setupAuthTest(t, nil)

	stdout, _, err := execAuth(t, "", "login", "--key", "abc123", "--email", "ops@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Saved Cloudflare credential (key auth)") {
		t.Errorf("expected confirmation, got: %s", stdout)
	}
	if strings.Contains(stdout, "abc123") {
		t.Error("key must not be echoed")
	}

	key, _ := store.GetToken(auth.KeyEntry)
	email, _ := store.GetToken(auth.EmailEntry)
	if key != "abc123" || email != "ops@example.com" {
		t.Errorf("stored key=%q email=%q", key, email)
	}
}

func TestLogin_PromptsFromStdin(t *testing.T) {
	store := setupAuthTest(t, nil)

	stdout, _, err := execAuth(t, "  piped-key \nops@example.com\n", "login")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Enter API key:") || !strings.Contains(stdout, "Enter account email:") {
		t.Errorf("expected both prompts, got: %s", stdout)
	}

	key, _ := store.GetToken(auth.KeyEntry)
	if key != "piped-key" {
		t.Errorf("stored key = %q, want %q", key, "piped-key")
	}
}

func TestLogin_TokenModeSkipsEmail(t *testing.T) {
	store := setupAuthTest(t, nil)

	stdout, _, err := execAuth(t, "tok\n", "login", "--auth-mode", "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stdout, "Enter account email:") {
		t.Errorf("did not expect email prompt in token mode, got: %s", stdout)
	}
	if _, err := store.GetToken(auth.EmailEntry); !errors.Is(err, auth.ErrTokenNotFound) {
		t.Errorf("expected no stored email, got %v", err)
	}
}

func TestLogin_EmptyKey(t *testing.T) {
	setupAuthTest(t, nil)

	_, _, err := execAuth(t, "\n", "login")
	if err == nil || !strings.Contains(err.Error(), "key cannot be empty") {
		t.Fatalf("expected empty key error, got %v", err)
	}
}

func TestLogin_EmptyEmailInKeyMode(t *testing.T) {
	store := setupAuthTest(t, nil)

	_, _, err := execAuth(t, "", "login", "--key", "abc")
	if err == nil || !strings.Contains(err.Error(), "email cannot be empty") {
		t.Fatalf("expected empty email error, got %v", err)
	}
	if _, err := store.GetToken(auth.KeyEntry); !errors.Is(err, auth.ErrTokenNotFound) {
		t.Error("nothing should be stored when login fails")
	}
}

func TestLogout(t *testing.T) {
	store := setupAuthTest(t, nil)
	_ = store.SetToken(auth.KeyEntry, "abc")
	_ = store.SetToken(auth.EmailEntry, "ops@example.com")

	stdout, _, err := execAuth(t, "", "logout")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "Removed stored Cloudflare credential") {
		t.Errorf("unexpected output: %s", stdout)
	}
	if _, err := store.GetToken(auth.KeyEntry); !errors.Is(err, auth.ErrTokenNotFound) {
		t.Error("expected key to be removed")
	}

	stdout, _, err = execAuth(t, "", "logout")
	if err != nil {
		t.Fatalf("unexpected error on second logout: %v", err)
	}
	if !strings.Contains(stdout, "No stored credential.") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestStatus_NothingConfigured(t *testing.T) {
	setupAuthTest(t, nil)

	stdout, _, err := execAuth(t, "", "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"auth mode: key",
		credentials.EnvAPIKey + ": not set",
		credentials.EnvAuthEmail + ": not set",
		": absent",
		"keychain cloudflare: not stored",
		"keychain cloudflare-email: not stored",
		"credential: incomplete",
		"not found",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
}

func TestStatus_CompleteFromMixedSources(t *testing.T) {
	store := setupAuthTest(t, map[string]string{credentials.EnvAPIKey: "env-key"})
	_ = store.SetToken(auth.EmailEntry, "ops@example.com")

	stdout, _, err := execAuth(t, "", "status")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		credentials.EnvAPIKey + ": set",
		"keychain cloudflare-email: stored",
		"credential: complete",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "env-key") || strings.Contains(stdout, "ops@example.com") {
		t.Errorf("status must not print secrets, got:\n%s", stdout)
	}
}
