// Package render prints month buckets as console tables, with the value
// column colored by urgency and a totals footer per month.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/ledger"
	"github.com/contas-dev/contas/internal/model"
	"github.com/contas-dev/contas/internal/money"
)

var (
	overdueText     = color.New(color.FgRed, color.Bold).SprintFunc()
	dueTomorrowText = color.New(color.FgYellow, color.Bold).SprintFunc()
	onTimeText      = color.New(color.FgGreen).SprintFunc()
	paidText        = color.New(color.FgCyan).SprintFunc()
)

// Table layout matches the original rendering, plus a leading position
// column so edit/remove have something to address.
var columns = []string{"#", "Nome", "Vencimento", "Tipo", "Valor", "Observações"}

var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthTitle returns the pt-BR heading for a yyyy-mm bucket key, e.g.
// "junho de 2024". Keys not produced by datekey render as-is.
func MonthTitle(key string) string {
	d, err := datekey.ParseStorageKey(key + "-01")
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s de %d", monthNames[d.Month-1], d.Year)
}

// Buckets writes one titled table per month bucket to w.
func Buckets(w io.Writer, buckets []ledger.MonthBucket, today datekey.CalendarDate, symbol string) error {
	if len(buckets) == 0 {
		fmt.Fprintln(w, "Nenhuma conta cadastrada.")
		return nil
	}

	for _, bucket := range buckets {
		title := pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(MonthTitle(bucket.Key))
		fmt.Fprintln(w, title)

		rows := pterm.TableData{columns}
		for i, b := range bucket.Bills {
			rows = append(rows, []string{
				strconv.Itoa(bucket.Positions[i] + 1),
				b.Name,
				b.DueDate.Display(),
				b.Type,
				colorize(ledger.Classify(b, today), amount(symbol, b.Value)),
				b.Observations,
			})
		}

		table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return fmt.Errorf("rendering table for %s: %w", bucket.Key, err)
		}
		fmt.Fprintln(w, table)

		fmt.Fprintf(w, "Total: %s  Pago: %s  Restante: %s\n\n",
			amount(symbol, bucket.TotalDue),
			amount(symbol, bucket.TotalPaid),
			amount(symbol, bucket.TotalRemaining),
		)
	}
	return nil
}

func amount(symbol string, d decimal.Decimal) string {
	return symbol + " " + money.FormatBRL(d)
}

func colorize(u model.Urgency, s string) string {
	switch u {
	case model.UrgencyPaid:
		return paidText(s)
	case model.UrgencyOverdue:
		return overdueText(s)
	case model.UrgencyDueTomorrow:
		return dueTomorrowText(s)
	default:
		return onTimeText(s)
	}
}
