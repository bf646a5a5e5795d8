package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/cfhost/internal/credentials"
	"nathanbeddoewebdev/cfhost/internal/domain"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels an interactive step.
var ErrAborted = errors.New("aborted by user")

// LoadCredential resolves the credential for s from the environment, the
// fallback file, and the keychain.
func LoadCredential(s Settings) (credentials.Credential, error) {
	f := get()
	p := credentials.NewProvider(credentials.Options{
		Mode:     s.AuthMode,
		FilePath: s.CredentialsFile,
		Getenv:   f.Getenv,
		Store:    f.Store(),
	})
	return p.Load()
}

// Getenv reads an environment variable through the configured factory.
func Getenv(key string) string {
	return get().Getenv(key)
}

// FetchZones lists zones, showing a spinner on stderr when it is a terminal.
func FetchZones(ctx context.Context, lister ZoneLister) ([]domain.Zone, error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return lister.ListZones(ctx)
	}

	var zones []domain.Zone
	err := spinner.New().
		Title("Fetching zones...").
		Accessible(os.Getenv("ACCESSIBLE") != "").
		Output(os.Stderr).
		Context(ctx).
		ActionWithErr(func(ctx context.Context) error {
			var err error
			zones, err = lister.ListZones(ctx)
			return err
		}).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return nil, ErrAborted
		}
		return nil, err
	}
	return zones, nil
}

// ListZones loads the credential for s and fetches its zones.
func ListZones(ctx context.Context, s Settings) ([]domain.Zone, error) {
	cred, err := LoadCredential(s)
	if err != nil {
		return nil, err
	}
	zones, err := FetchZones(ctx, NewLister(cred))
	if err != nil {
		return nil, fmt.Errorf("zone listing failed: %w", err)
	}
	return zones, nil
}
