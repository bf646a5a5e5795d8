package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/cfhost/internal/app"
	"nathanbeddoewebdev/cfhost/internal/services/auth"

	"github.com/spf13/cobra"
)

func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored Cloudflare credential",
		Long: `Remove the Cloudflare API key and email from the local keychain.

Example:
  cfhost auth logout`,
		Args:         cobra.NoArgs,
		RunE:         runLogout,
		SilenceUsage: true,
	}
}

func runLogout(cmd *cobra.Command, args []string) error {
	store := app.Store()
	removed := 0
	for _, entry := range []string{auth.KeyEntry, auth.EmailEntry} {
		err := store.DeleteToken(entry)
		switch {
		case err == nil:
			removed++
		case errors.Is(err, auth.ErrTokenNotFound):
		default:
			return fmt.Errorf("failed to remove %s: %w", entry, err)
		}
	}

	if removed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stored credential.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Removed stored Cloudflare credential")
	return nil
}
