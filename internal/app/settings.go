package app

import (
	"fmt"

	"nathanbeddoewebdev/cfhost/internal/config"
	"nathanbeddoewebdev/cfhost/internal/credentials"

	"github.com/spf13/pflag"
)

// Flag names shared by the root command and its subcommands.
const (
	FlagAuthMode        = "auth-mode"
	FlagCredentialsFile = "credentials-file"
	FlagDomains         = "domains"
	FlagCheckCNAME      = "check-cname"
	FlagConfirm         = "confirm"
	FlagNoConfirm       = "no-confirm"
)

// AddCredentialFlags registers the flags that select how the credential is
// loaded. The root command adds them as persistent flags.
func AddCredentialFlags(fs *pflag.FlagSet) {
	fs.String(FlagAuthMode, "", `Credential scheme: "key" (API key + email) or "token" (default from config, else "key")`)
	fs.String(FlagCredentialsFile, "", "Fallback credential file (default \".cloudflare_key\")")
}

// Settings is the effective configuration for one run.
type Settings struct {
	AuthMode        credentials.AuthMode
	CredentialsFile string
	ListDomains     bool
	CheckCNAME      bool
	Confirm         bool
}

// LoadSettings merges built-in defaults, the persisted config, and any flags
// explicitly set in flags, in that order of precedence.
func LoadSettings(flags *pflag.FlagSet) (Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load config: %w", err)
	}

	s := Settings{
		CredentialsFile: cfg.CredentialsFile,
		ListDomains:     config.Bool(cfg.ListDomains, false),
		CheckCNAME:      config.Bool(cfg.CheckCNAME, false),
		Confirm:         config.Bool(cfg.Confirm, true),
	}

	mode := cfg.AuthMode
	if v, ok := changedString(flags, FlagAuthMode); ok {
		mode = v
	}
	if s.AuthMode, err = credentials.ParseAuthMode(mode); err != nil {
		return Settings{}, err
	}

	if v, ok := changedString(flags, FlagCredentialsFile); ok {
		s.CredentialsFile = v
	}
	if v, ok := changedBool(flags, FlagDomains); ok {
		s.ListDomains = v
	}
	if v, ok := changedBool(flags, FlagCheckCNAME); ok {
		s.CheckCNAME = v
	}
	if v, ok := changedBool(flags, FlagConfirm); ok {
		s.Confirm = v
	}
	if v, ok := changedBool(flags, FlagNoConfirm); ok && v {
		s.Confirm = false
	}

	return s, nil
}

func changedString(flags *pflag.FlagSet, name string) (string, bool) {
	if flags == nil || !flags.Changed(name) {
		return "", false
	}
	v, err := flags.GetString(name)
	return v, err == nil
}

func changedBool(flags *pflag.FlagSet, name string) (bool, bool) {
	if flags == nil || !flags.Changed(name) {
		return false, false
	}
	v, err := flags.GetBool(name)
	return v, err == nil
}
