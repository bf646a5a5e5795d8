package auth

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestKeyringStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore("")

	if err := store.SetToken(" Cloudflare ", "secret"); err != nil {
		t.Fatalf("SetToken: %v", err)
	}

	got, err := store.GetToken(KeyEntry)
	if err != nil {
		t.Fatalf("GetToken: %v", err)
	}
	if got != "secret" {
		t.Errorf("GetToken = %q, want %q", got, "secret")
	}

	if err := store.DeleteToken(KeyEntry); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if _, err := store.GetToken(KeyEntry); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("expected ErrTokenNotFound after delete, got %v", err)
	}
}

func TestKeyringStore_MissingEntry(t *testing.T) {
	keyring.MockInit()
	store := NewKeyringStore(ServiceName)

	if _, err := store.GetToken(EmailEntry); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("GetToken: expected ErrTokenNotFound, got %v", err)
	}
	if err := store.DeleteToken(EmailEntry); !errors.Is(err, ErrTokenNotFound) {
		t.Errorf("DeleteToken: expected ErrTokenNotFound, got %v", err)
	}
}
