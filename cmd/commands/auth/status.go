package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"nathanbeddoewebdev/cfhost/internal/app"
	"nathanbeddoewebdev/cfhost/internal/credentials"
	"nathanbeddoewebdev/cfhost/internal/services/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show where the Cloudflare credential comes from",
		Long: `Show which credential sources are populated and whether together they
satisfy the configured auth mode. Secrets are never printed.

Example:
  cfhost auth status`,
		Args:         cobra.NoArgs,
		RunE:         runStatus,
		SilenceUsage: true,
	}

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	settings, err := app.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "auth mode: %s\n", settings.AuthMode)

	for _, name := range []string{credentials.EnvAPIKey, credentials.EnvAuthEmail} {
		state := "not set"
		if app.Getenv(name) != "" {
			state = "set"
		}
		fmt.Fprintf(out, "%s: %s\n", name, state)
	}

	path := settings.CredentialsFile
	if path == "" {
		path = credentials.DefaultFile
	}
	switch _, err := os.Stat(path); {
	case err == nil:
		fmt.Fprintf(out, "%s: present\n", path)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(out, "%s: absent\n", path)
	default:
		fmt.Fprintf(out, "%s: error (%v)\n", path, err)
	}

	store := app.Store()
	for _, entry := range []string{auth.KeyEntry, auth.EmailEntry} {
		_, err := store.GetToken(entry)
		switch {
		case err == nil:
			fmt.Fprintf(out, "keychain %s: stored\n", entry)
		case errors.Is(err, auth.ErrTokenNotFound):
			fmt.Fprintf(out, "keychain %s: not stored\n", entry)
		default:
			fmt.Fprintf(out, "keychain %s: error (%v)\n", entry, err)
		}
	}

	if _, err := app.LoadCredential(settings); err != nil {
		fmt.Fprintf(out, "credential: incomplete (%v)\n", err)
		return nil
	}
	fmt.Fprintln(out, "credential: complete")
	return nil
}
