package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/ledger"
	"github.com/contas-dev/contas/internal/render"
)

func newListCommand(dataDir *string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bills grouped by month",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(*dataDir)
			if err != nil {
				return err
			}
			defer ws.close()

			buckets := ws.led.GroupByMonth()
			if month != "" {
				var filtered []ledger.MonthBucket
				for _, b := range buckets {
					if b.Key == month {
						filtered = append(filtered, b)
					}
				}
				if filtered == nil {
					return fmt.Errorf("no bills due in %s", month)
				}
				buckets = filtered
			}

			today := datekey.Today(time.Now())
			return render.Buckets(cmd.OutOrStdout(), buckets, today, ws.cfg.CurrencySymbol)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "show a single month (yyyy-mm)")

	return cmd
}
