package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/history"
	"github.com/contas-dev/contas/internal/money"
)

func newEditCommand(dataDir *string) *cobra.Command {
	var name, date, billType, value, obs string

	cmd := &cobra.Command{
		Use:   "edit <position>",
		Short: "Edit the bill at a list position",
		Long: `Edit replaces fields of the bill at the given position, as shown in
the # column of list. Positions are physical list slots, not stable
identifiers: they shift after a remove.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("position %q is not a number", args[0])
			}

			ws, err := openWorkspace(*dataDir)
			if err != nil {
				return err
			}
			defer ws.close()

			index := pos - 1
			b, err := ws.led.Get(index)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("name") {
				b.Name = name
			}
			if flags.Changed("date") {
				format, err := ws.cfg.InputFormat()
				if err != nil {
					return err
				}
				due, err := datekey.Parse(date, format)
				if err != nil {
					return err
				}
				b.DueDate = due
			}
			if flags.Changed("type") {
				b.Type = billType
			}
			if flags.Changed("value") {
				amount, err := money.Parse(value)
				if err != nil {
					return err
				}
				b.Value = amount
			}
			if flags.Changed("obs") {
				b.Observations = obs
			}

			if err := ws.led.Update(index, b); err != nil {
				return err
			}
			if err := ws.persist(history.Entry{
				Timestamp: time.Now(),
				Action:    history.ActionUpdate,
				BillID:    b.ID,
				BillName:  b.Name,
				Detail:    fmt.Sprintf("position %d", pos),
			}); err != nil {
				return err
			}

			pterm.Success.Printfln("Conta atualizada: %s", b.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new bill name")
	cmd.Flags().StringVar(&date, "date", "", "new due date in the configured input format")
	cmd.Flags().StringVar(&billType, "type", "", `new status tag; "Pago" marks the bill as paid`)
	cmd.Flags().StringVar(&value, "value", "", "new amount, comma or dot decimals")
	cmd.Flags().StringVar(&obs, "obs", "", "new observations")

	return cmd
}
