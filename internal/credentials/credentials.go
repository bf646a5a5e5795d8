// Package credentials resolves the Cloudflare API credential used for a run.
//
// Sources are consulted in a fixed order: the CF_APIKEY / CF_AUTH_EMAIL
// environment variables, then a local fallback file, then (optionally) the
// OS keychain. A field already supplied by an earlier source is never
// overwritten by a later one. When no combination of sources yields every
// field the auth mode requires, Load fails with domain.ErrCredentialsNotFound.
package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"nathanbeddoewebdev/cfhost/internal/domain"
	"nathanbeddoewebdev/cfhost/internal/services/auth"
	"nathanbeddoewebdev/cfhost/internal/util"

	"github.com/sirupsen/logrus"
)

const (
	// EnvAPIKey holds the API token (token mode) or global API key (key mode).
	EnvAPIKey = "CF_APIKEY"

	// EnvAuthEmail holds the account email used with a global API key.
	EnvAuthEmail = "CF_AUTH_EMAIL"

	// DefaultFile is the fallback credential file, relative to the working directory.
	DefaultFile = ".cloudflare_key"
)

// AuthMode selects which credential fields are required and how the
// Cloudflare client authenticates.
type AuthMode string

const (
	// ModeToken authenticates with a bearer API token. Only the key is required.
	ModeToken AuthMode = "token"

	// ModeKey authenticates with X-Auth-Email / X-Auth-Key. Both fields are required.
	ModeKey AuthMode = "key"
)

// DefaultMode is used when no mode is configured.
const DefaultMode = ModeKey

// ParseAuthMode parses a user-supplied auth mode. Empty input yields DefaultMode.
func ParseAuthMode(s string) (AuthMode, error) {
	switch AuthMode(util.NormalizeKey(s)) {
	case "":
		return DefaultMode, nil
	case ModeToken:
		return ModeToken, nil
	case ModeKey:
		return ModeKey, nil
	default:
		return "", fmt.Errorf("unknown auth mode %q (valid: %s, %s)", s, ModeToken, ModeKey)
	}
}

// Credential is the API key and, in key mode, the account email.
// An empty Email means bearer-token authentication.
type Credential struct {
	Key   string
	Email string
}

// String redacts the credential so it cannot leak through %v formatting.
func (c Credential) String() string {
	if c.Email == "" {
		return "Credential{Key: [redacted]}"
	}
	return "Credential{Key: [redacted], Email: [redacted]}"
}

// Complete reports whether every field required by mode is non-empty.
func (c Credential) Complete(mode AuthMode) bool {
	if c.Key == "" {
		return false
	}
	return mode != ModeKey || c.Email != ""
}

// fill copies fields from other into c where c is still empty.
func (c Credential) fill(other Credential) Credential {
	if c.Key == "" {
		c.Key = other.Key
	}
	if c.Email == "" {
		c.Email = other.Email
	}
	return c
}

// Options configures a Provider. Zero values fall back to the process
// environment, os.ReadFile, DefaultFile and DefaultMode.
type Options struct {
	Mode     AuthMode
	FilePath string

	// Getenv reads an environment variable. Defaults to os.Getenv.
	Getenv func(string) string

	// ReadFile reads the fallback file. Defaults to os.ReadFile.
	ReadFile func(string) ([]byte, error)

	// Store is an optional keychain source consulted after the file.
	Store auth.Store
}

// Provider loads credentials according to its Options.
type Provider struct {
	opts Options
}

// NewProvider returns a Provider with defaults applied to opts.
func NewProvider(opts Options) *Provider {
	if opts.Mode == "" {
		opts.Mode = DefaultMode
	}
	if opts.FilePath == "" {
		opts.FilePath = DefaultFile
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}
	if opts.ReadFile == nil {
		opts.ReadFile = os.ReadFile
	}
	return &Provider{opts: opts}
}

// Mode returns the auth mode the provider enforces.
func (p *Provider) Mode() AuthMode { return p.opts.Mode }

// Load resolves the credential. It returns an error wrapping
// domain.ErrCredentialsNotFound when no source completes it.
func (p *Provider) Load() (Credential, error) {
	mode := p.opts.Mode

	cred := Credential{Key: strings.TrimSpace(p.opts.Getenv(EnvAPIKey))}
	if mode == ModeKey {
		cred.Email = strings.TrimSpace(p.opts.Getenv(EnvAuthEmail))
	}
	if cred.Complete(mode) {
		logrus.Debug("credentials: using environment")
		return cred, nil
	}

	fromFile, err := p.readFile()
	switch {
	case err == nil:
		logrus.Debugf("credentials: read fallback file %s", p.opts.FilePath)
		cred = cred.fill(fromFile)
	case errors.Is(err, fs.ErrNotExist):
		logrus.Debugf("credentials: fallback file %s does not exist", p.opts.FilePath)
	default:
		return Credential{}, err
	}
	if mode == ModeToken {
		cred.Email = ""
	}
	if cred.Complete(mode) {
		return cred, nil
	}

	if p.opts.Store != nil {
		cred = cred.fill(p.readStore(mode))
		if cred.Complete(mode) {
			logrus.Debug("credentials: completed from keychain")
			return cred, nil
		}
	}

	return Credential{}, p.notFound()
}

func (p *Provider) readFile() (Credential, error) {
	data, err := p.opts.ReadFile(p.opts.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credential{}, err
		}
		return Credential{}, fmt.Errorf("credentials: failed to read %s: %w", p.opts.FilePath, err)
	}
	cred, err := parseFile(data)
	if err != nil {
		return Credential{}, fmt.Errorf("credentials: failed to parse %s: %w", p.opts.FilePath, err)
	}
	return cred, nil
}

func (p *Provider) readStore(mode AuthMode) Credential {
	var cred Credential
	if key, err := p.opts.Store.GetToken(auth.KeyEntry); err == nil {
		cred.Key = strings.TrimSpace(key)
	} else if !errors.Is(err, auth.ErrTokenNotFound) {
		logrus.Warnf("credentials: keychain lookup failed: %v", err)
	}
	if mode == ModeKey {
		if email, err := p.opts.Store.GetToken(auth.EmailEntry); err == nil {
			cred.Email = strings.TrimSpace(email)
		}
	}
	return cred
}

func (p *Provider) notFound() error {
	vars := EnvAPIKey
	if p.opts.Mode == ModeKey {
		vars = EnvAPIKey + " and " + EnvAuthEmail
	}
	return fmt.Errorf("%w: set %s or create %s", domain.ErrCredentialsNotFound, vars, p.opts.FilePath)
}
