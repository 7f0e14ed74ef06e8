package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tabsh/tabsh/core/config"
)

// initCmd writes the default configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the tabsh configuration directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		return config.Initialize(afero.NewOsFs(), configDir(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
