package auth

import (
	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored Cloudflare credential",
		Long: `Manage the Cloudflare credential kept in the OS keychain.

The keychain is consulted only after CF_APIKEY / CF_AUTH_EMAIL and the
fallback credential file, and only fills fields they left empty.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(LogoutCommand())
	cmd.AddCommand(StatusCommand())

	return cmd
}
