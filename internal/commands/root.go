// Package commands wires the CLI surface: every mutating command loads
// the store snapshot, mutates the ledger, saves the full snapshot back,
// and appends to the history log.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/contas-dev/contas/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "contas",
		Short:   "Month-by-month bill tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", defaultDataDir(), "data directory")

	rootCmd.AddCommand(newInitCommand(&dataDir))
	rootCmd.AddCommand(newAddCommand(&dataDir))
	rootCmd.AddCommand(newEditCommand(&dataDir))
	rootCmd.AddCommand(newRemoveCommand(&dataDir))
	rootCmd.AddCommand(newListCommand(&dataDir))
	rootCmd.AddCommand(newImportCommand(&dataDir))

	return rootCmd
}

func defaultDataDir() string {
	if v := os.Getenv("CONTAS_DATA_DIR"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".contas")
}
