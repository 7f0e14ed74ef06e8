package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tabsh/tabsh/core/config"
	"github.com/tabsh/tabsh/core/proc"
	"github.com/tabsh/tabsh/core/shell"
)

func runShell(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// History lands next to the config; missing dir just disables it.
	historyPath := ""
	if err := os.MkdirAll(configDir(), 0700); err == nil {
		historyPath = filepath.Join(configDir(), config.HistoryName)
	}

	sh, err := shell.New(shell.Options{
		Config:      cfg,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		HistoryPath: historyPath,
		PTY:         proc.PTY{IsPTY: true},
	})
	if err != nil {
		return err
	}

	sh.Run()
	return nil
}
