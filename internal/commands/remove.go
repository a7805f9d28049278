package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/contas-dev/contas/internal/history"
)

func newRemoveCommand(dataDir *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <position>",
		Short: "Remove the bill at a list position",
		Args:  cobra.ExactArgs(1),
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

			if !yes {
				confirmed, err := pterm.DefaultInteractiveConfirm.
					WithDefaultText(fmt.Sprintf("Tem certeza que quer excluir a conta %q?", b.Name)).
					Show()
				if err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}
				if !confirmed {
					pterm.Info.Println("Exclusão cancelada.")
					return nil
				}
			}

			if err := ws.led.Remove(index); err != nil {
				return err
			}
			if err := ws.persist(history.Entry{
				Timestamp: time.Now(),
				Action:    history.ActionRemove,
				BillID:    b.ID,
				BillName:  b.Name,
				Detail:    fmt.Sprintf("position %d", pos),
			}); err != nil {
				return err
			}

			pterm.Success.Printfln("Conta excluída: %s", b.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}
