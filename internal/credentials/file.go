package credentials

import (
	"bytes"
	"strings"

	"github.com/joho/godotenv"
)

// parseFile parses the fallback credential file. Two layouts are accepted:
// a single line holding the raw API key, or dotenv-style lines
//
//	key=<api key>
//	email=<account email>
//
// The environment variable names are accepted as aliases for the keys.
func parseFile(data []byte) (Credential, error) {
	text := strings.TrimSpace(string(data))
	if text == "" {
		return Credential{}, nil
	}
	if !strings.Contains(text, "=") {
		return Credential{Key: firstLine(text)}, nil
	}

	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return Credential{}, err
	}

	return Credential{
		Key:   lookup(values, "key", EnvAPIKey),
		Email: lookup(values, "email", EnvAuthEmail),
	}, nil
}

func lookup(values map[string]string, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(values[name]); v != "" {
			return v
		}
	}
	return ""
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
