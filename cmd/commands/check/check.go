package check

import (
	"fmt"

	"nathanbeddoewebdev/cfhost/internal/app"
	"nathanbeddoewebdev/cfhost/internal/challenge"
	"nathanbeddoewebdev/cfhost/internal/styles"

	"github.com/spf13/cobra"
)

// NewCommand returns the "check" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <hostname>",
		Short: "Check DNS for a hostname's ACME challenge",
		Long: `Check public DNS (8.8.8.8, then 1.1.1.1) for a TXT or CNAME record at
_acme-challenge.<hostname>. No Cloudflare credentials are needed.

DNS failures are reported but never change the exit status.

Example:
  cfhost check shop.example.com
  cfhost check shop.example.com --check-cname`,
		Args:         cobra.ExactArgs(1),
		RunE:         runCheck,
		SilenceUsage: true,
	}

	cmd.Flags().Bool(app.FlagCheckCNAME, false, "Also check that the hostname itself is a CNAME")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := app.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	hostname := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, styles.Title.Render("Checking "+challenge.ChallengeName(hostname)))

	app.CheckHostname(cmd.Context(), out, hostname, settings.CheckCNAME)
	return nil
}
