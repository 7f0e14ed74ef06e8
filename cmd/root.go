package cmd

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/tabsh/tabsh/core/config"
)

var cfgPath string

// configDir resolves the configuration directory, defaulting to the
// platform config dir (e.g. ~/.config/tabsh).
func configDir() string {
	if cfgPath != "" {
		return cfgPath
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "tabsh")
}

// loadConfig loads the on-disk configuration, falling back to the
// built-in defaults when none has been initialized yet.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(afero.NewOsFs(), configDir())
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// rootCmd starts the interactive shell when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "tabsh",
	Short: "An interactive shell with typed, pipeable tables.",
	Long: `tabsh is an interactive shell whose builtin ls and ps emit typed
tables that can be piped through where, sort-by, select, contains and
limit before rendering.`,
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config directory (default platform config dir)")
}
