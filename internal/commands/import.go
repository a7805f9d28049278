package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contas-dev/contas/internal/history"
	"github.com/contas-dev/contas/internal/importer"
)

func newImportCommand(dataDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import bills from a CSV file",
		Long: `Import appends every row of a CSV file (header: ` + importer.Header + `)
to the bill list. A single bad row aborts the import before anything
is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dataDir)
			if err != nil {
				return err
			}
			defer ws.close()

			format, err := ws.cfg.InputFormat()
			if err != nil {
				return err
			}

			bills, err := importer.ReadFile(args[0], format)
			if err != nil {
				return err
			}
			if len(bills) == 0 {
				pterm.Info.Printfln("Nothing to import from %s", args[0])
				return nil
			}

			now := time.Now()
			entries := make([]history.Entry, 0, len(bills))
			for _, b := range bills {
				if err := ws.led.Add(b); err != nil {
					return err
				}
				entries = append(entries, history.Entry{
					Timestamp: now,
					Action:    history.ActionImport,
					BillID:    b.ID,
					BillName:  b.Name,
					Detail:    "from " + args[0],
				})
			}
			if err := ws.persist(entries...); err != nil {
				return err
			}

			pterm.Success.Printfln("%d contas importadas de %s", len(bills), args[0])
			return nil
		},
	}

	return cmd
}
