// Package app wires cfhost's collaborators together for the CLI commands.
//
// The keychain, Cloudflare client, and DNS resolvers are built through
// replaceable factories so commands can be exercised against fakes.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"nathanbeddoewebdev/cfhost/internal/challenge"
	"nathanbeddoewebdev/cfhost/internal/cloudflare"
	"nathanbeddoewebdev/cfhost/internal/credentials"
	"nathanbeddoewebdev/cfhost/internal/domain"
	"nathanbeddoewebdev/cfhost/internal/services/auth"
)

// ZoneLister lists the zones visible to a credential.
type ZoneLister interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
}

// Factories builds the collaborators used by a run. Nil fields fall back to
// the production implementation.
type Factories struct {
	Store    func() auth.Store
	Lister   func(cred credentials.Credential) ZoneLister
	Resolver func() challenge.Resolver
	Getenv   func(string) string
}

func defaults() Factories {
	return Factories{
		Store: auth.DefaultStore,
		Lister: func(cred credentials.Credential) ZoneLister {
			return cloudflare.NewClient(cred)
		},
		Resolver: func() challenge.Resolver {
			return challenge.NewDNSResolver()
		},
		Getenv: os.Getenv,
	}
}

var (
	mu      sync.RWMutex
	current = defaults()
)

// Set replaces the non-nil factories in f.
func Set(f Factories) {
	mu.Lock()
	defer mu.Unlock()
	if f.Store != nil {
		current.Store = f.Store
	}
	if f.Lister != nil {
		current.Lister = f.Lister
	}
	if f.Resolver != nil {
		current.Resolver = f.Resolver
	}
	if f.Getenv != nil {
		current.Getenv = f.Getenv
	}
}

// Reset restores the production factories. Intended for use in tests only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = defaults()
}

func get() Factories {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Store returns the keychain store.
func Store() auth.Store {
	return get().Store()
}

// NewLister returns a zone lister authenticated with cred.
func NewLister(cred credentials.Credential) ZoneLister {
	return get().Lister(cred)
}

// NewVerifier returns a challenge verifier with its own resolver.
func NewVerifier(out io.Writer) *challenge.Verifier {
	return challenge.NewVerifier(get().Resolver(), out)
}

// NewValidator returns a CNAME validator with its own resolver, separate
// from any verifier's.
func NewValidator() *challenge.Validator {
	return challenge.NewValidator(get().Resolver())
}
