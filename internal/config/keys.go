package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "auth-mode").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	// Unset keys return "".
	Get func(cfg *Config) string

	// Set validates value and applies it to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "auth-mode",
		Description: `Credential scheme: "key" (API key + email) or "token" (API token)`,
		Get:         func(cfg *Config) string { return cfg.AuthMode },
		Set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "key" && v != "token" {
				return fmt.Errorf("invalid auth mode %q (expected \"key\" or \"token\")", v)
			}
			cfg.AuthMode = v
			return nil
		},
	},
	{
		Name:        "credentials-file",
		Description: "Fallback credential file used when the environment is incomplete",
		Get:         func(cfg *Config) string { return cfg.CredentialsFile },
		Set: func(cfg *Config, v string) error {
			cfg.CredentialsFile = strings.TrimSpace(v)
			return nil
		},
	},
	boolKey("list-domains", "Also list zone domain names on every run",
		func(cfg *Config) **bool { return &cfg.ListDomains }),
	boolKey("check-cname", "Also check that the hostname itself is a CNAME",
		func(cfg *Config) **bool { return &cfg.CheckCNAME }),
	boolKey("confirm", "Ask for a typed \"yes\" before proceeding",
		func(cfg *Config) **bool { return &cfg.Confirm }),
}

func boolKey(name, desc string, field func(cfg *Config) **bool) KeySpec {
	return KeySpec{
		Name:        name,
		Description: desc,
		Get: func(cfg *Config) string {
			v := *field(cfg)
			if v == nil {
				return ""
			}
			return strconv.FormatBool(*v)
		},
		Set: func(cfg *Config, v string) error {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("invalid value %q for %s (expected true or false)", v, name)
			}
			*field(cfg) = &b
			return nil
		},
	}
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
