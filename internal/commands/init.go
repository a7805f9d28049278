package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contas-dev/contas/internal/config"
	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/store"
)

func newInitCommand(dataDir *string) *cobra.Command {
	var backend string
	var dateFormat string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := *dataDir
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, backend, dateFormat)
		},
	}

	cmd.Flags().StringVar(&backend, "backend", config.BackendJSON, "storage backend (json or sqlite)")
	cmd.Flags().StringVar(&dateFormat, "date-format", string(datekey.FormatCompact), "input date format (iso, br or compact)")

	return cmd
}

func runInit(dir, backend, dateFormat string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfg := config.Default(dir)
	cfg.Backend = backend
	cfg.DateFormat = dateFormat
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create the empty snapshot so the store file exists from day one.
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	if err := st.Save(nil); err != nil {
		return err
	}
	if c, ok := st.(interface{ Close() error }); ok {
		c.Close()
	}

	pterm.Success.Printfln("Initialized contas data directory at %s (%s backend)", dir, cfg.Backend)
	return nil
}
