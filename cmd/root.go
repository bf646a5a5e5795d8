package cmd

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/cfhost/cmd/commands/auth"
	"nathanbeddoewebdev/cfhost/cmd/commands/check"
	cfgcmd "nathanbeddoewebdev/cfhost/cmd/commands/config"
	"nathanbeddoewebdev/cfhost/cmd/commands/zones"
	"nathanbeddoewebdev/cfhost/internal/app"
	"nathanbeddoewebdev/cfhost/internal/cloudflare"
	"nathanbeddoewebdev/cfhost/internal/confirm"
	"nathanbeddoewebdev/cfhost/internal/styles"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "cfhost",
		Short: "Check Cloudflare zones and ACME challenge records for a custom hostname",
		Long: `cfhost lists the Cloudflare zones visible to your API credential and, given a
hostname, checks public DNS for the _acme-challenge record that proves
ownership before the hostname is provisioned.

Credentials are read from CF_APIKEY / CF_AUTH_EMAIL, then from the
.cloudflare_key file, then from the OS keychain (see "cfhost auth login").

Quick start:
  cfhost                                 # List zone IDs
  cfhost --hostname shop.example.com     # Also check the ACME challenge
  cfhost zones                           # Zone table with names and status
  cfhost check shop.example.com          # DNS checks only, no credentials`,
		Args:          cobra.NoArgs,
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd)
			return nil
		},
	}

	app.AddCredentialFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")

	cmd.Flags().String("hostname", "", "Custom hostname to verify")
	cmd.Flags().Bool(app.FlagDomains, false, "Also list zone domain names")
	cmd.Flags().Bool(app.FlagCheckCNAME, false, "Also check that the hostname itself is a CNAME")
	cmd.Flags().Bool(app.FlagConfirm, true, "Ask for a typed \"yes\" before proceeding")
	cmd.Flags().Bool(app.FlagNoConfirm, false, "Do not ask for confirmation")

	cmd.AddCommand(auth.NewCommand())
	cmd.AddCommand(check.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(zones.NewCommand())

	return cmd
}

func setupLogging(cmd *cobra.Command) {
	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	settings, err := app.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	zoneList, err := app.ListZones(ctx, settings)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Zone IDs: %v\n", cloudflare.IDs(zoneList))
	if settings.ListDomains {
		fmt.Fprintf(out, "Domain names: %v\n", cloudflare.Names(zoneList))
	}

	hostname, _ := cmd.Flags().GetString("hostname")
	if hostname == "" {
		return nil
	}

	report := app.CheckHostname(ctx, out, hostname, settings.CheckCNAME)

	if settings.Confirm {
		summary := fmt.Sprintf("About to proceed with %s (challenge found: %t).", hostname, report.Outcome.Found)
		ok, err := confirm.New(cmd.InOrStdin(), out).Confirm(summary)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	fmt.Fprintf(out, "Proceeding with %s.\n", hostname)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	var root = rootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, app.ErrAborted) {
			fmt.Fprintln(root.ErrOrStderr(), styles.ErrorText.Render("Error: "+err.Error()))
		}
		os.Exit(1)
	}
}
