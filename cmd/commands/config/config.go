package config

import (
	"nathanbeddoewebdev/cfhost/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cfhost configuration",
		Long: "View and modify persistent cfhost settings. Flags always override them.\n\n" +
			"Configuration is stored at ~/.config/cfhost/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
