package auth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"nathanbeddoewebdev/cfhost/internal/app"
	"nathanbeddoewebdev/cfhost/internal/credentials"
	"nathanbeddoewebdev/cfhost/internal/services/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Cloudflare API key in the keychain",
		Long: `Store a Cloudflare API key (and, for key auth, the account email) using
the local keychain.

Examples:
  cfhost auth login --email ops@example.com
  cfhost auth login --auth-mode token`,
		Args:         cobra.NoArgs,
		RunE:         runLogin,
		SilenceUsage: true,
	}

	cmd.Flags().String("key", "", "API key or token (optional, overrides prompt)")
	cmd.Flags().String("email", "", "Account email for key auth")

	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	settings, err := app.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())

	key, _ := cmd.Flags().GetString("key")
	key = strings.TrimSpace(key)
	if key == "" {
		fmt.Fprint(cmd.OutOrStdout(), "Enter API key: ")
		key, err = readSecret(cmd.InOrStdin(), in)
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	email, _ := cmd.Flags().GetString("email")
	email = strings.TrimSpace(email)
	if email == "" && settings.AuthMode == credentials.ModeKey {
		fmt.Fprint(cmd.OutOrStdout(), "Enter account email: ")
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read email: %w", err)
		}
		email = strings.TrimSpace(line)
		if email == "" {
			return fmt.Errorf("email cannot be empty for key auth (use --auth-mode token for an API token)")
		}
	}

	store := app.Store()
	if err := store.SetToken(auth.KeyEntry, key); err != nil {
		return fmt.Errorf("failed to store key: %w", err)
	}
	if email != "" {
		if err := store.SetToken(auth.EmailEntry, email); err != nil {
			return fmt.Errorf("failed to store email: %w", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved Cloudflare credential (%s auth)\n", settings.AuthMode)
	return nil
}

// readSecret reads a secret without echo when stdin is a terminal, and a
// plain line otherwise.
func readSecret(stdin io.Reader, buffered *bufio.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := buffered.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
