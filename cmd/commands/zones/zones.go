package zones

import (
	"fmt"
	"text/tabwriter"

	"nathanbeddoewebdev/cfhost/internal/app"

	"github.com/spf13/cobra"
)

// NewCommand returns the "zones" command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List Cloudflare zones",
		Long: `List every zone visible to the configured credential with its ID, name,
and status.

Example:
  cfhost zones
  cfhost zones --auth-mode token`,
		Args:         cobra.NoArgs,
		RunE:         runZones,
		SilenceUsage: true,
	}
}

func runZones(cmd *cobra.Command, args []string) error {
	settings, err := app.LoadSettings(cmd.Flags())
	if err != nil {
		return err
	}

	zones, err := app.ListZones(cmd.Context(), settings)
	if err != nil {
		return err
	}

	if len(zones) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No zones found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATUS")
	fmt.Fprintln(w, "--\t----\t------")
	for _, z := range zones {
		fmt.Fprintf(w, "%s\t%s\t%s\n", z.ID, z.Name, z.Status)
	}
	return w.Flush()
}
