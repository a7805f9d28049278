package commands

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/history"
	"github.com/contas-dev/contas/internal/model"
	"github.com/contas-dev/contas/internal/money"
)

func newAddCommand(dataDir *string) *cobra.Command {
	var name, date, billType, value, obs string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a bill",
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
			due, err := datekey.Parse(date, format)
			if err != nil {
				return err
			}
			amount, err := money.Parse(value)
			if err != nil {
				return err
			}

			b := model.Bill{
				ID:           model.NewID(),
				Name:         name,
				DueDate:      due,
				Type:         billType,
				Value:        amount,
				Observations: obs,
			}
			if err := ws.led.Add(b); err != nil {
				return err
			}
			if err := ws.persist(history.Entry{
				Timestamp: time.Now(),
				Action:    history.ActionAdd,
				BillID:    b.ID,
				BillName:  b.Name,
				Detail:    "due " + b.DueDate.StorageKey(),
			}); err != nil {
				return err
			}

			pterm.Success.Printfln("Conta adicionada: %s (vence %s)", b.Name, b.DueDate.Display())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "bill name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&date, "date", "", "due date in the configured input format (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&value, "value", "", "amount, comma or dot decimals (required)")
	_ = cmd.MarkFlagRequired("value")
	cmd.Flags().StringVar(&billType, "type", "Pendente", `status tag; "Pago" marks the bill as paid`)
	cmd.Flags().StringVar(&obs, "obs", "", "observations")

	return cmd
}
