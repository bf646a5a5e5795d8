package auth

import (
	"errors"

	"nathanbeddoewebdev/cfhost/internal/util"
)

const ServiceName = "cfhost"

// Keychain entries used for the Cloudflare credential pair.
const (
	KeyEntry   = "cloudflare"
	EmailEntry = "cloudflare-email"
)

var ErrTokenNotFound = errors.New("auth token not found")

type Store interface {
	SetToken(entry string, token string) error
	GetToken(entry string) (string, error)
	DeleteToken(entry string) error
}

// DefaultStore returns the standard auth store backed by the OS keychain.
func DefaultStore() Store {
	return NewKeyringStore(ServiceName)
}

// NormalizeEntry normalizes a keychain entry name for consistent key lookup.
func NormalizeEntry(entry string) string {
	return util.NormalizeKey(entry)
}
