// Package importer reads bills in bulk from CSV files.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/model"
	"github.com/contas-dev/contas/internal/money"
)

// Header is the expected CSV header.
const Header = "name,date,type,value,observations"

const (
	numFields = 5
	colName   = 0
	colDate   = 1
	colType   = 2
	colValue  = 3
	colObs    = 4
)

// ReadFile parses path with dates in the given display format. Any bad
// row fails the whole import, reported with its row number, so nothing
// partial ever reaches the ledger.
func ReadFile(path string, format datekey.Format) ([]model.Bill, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	bills, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return bills, nil
}

// Read parses CSV bill rows from r.
func Read(r io.Reader, format datekey.Format) ([]model.Bill, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var bills []model.Bill
	for i, rec := range records[1:] {
		b, err := parseRow(rec, format)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		bills = append(bills, b)
	}
	return bills, nil
}

func parseRow(rec []string, format datekey.Format) (model.Bill, error) {
	due, err := datekey.Parse(rec[colDate], format)
	if err != nil {
		return model.Bill{}, err
	}

	value, err := money.Parse(rec[colValue])
	if err != nil {
		return model.Bill{}, err
	}

	b := model.Bill{
		ID:           model.NewID(),
		Name:         rec[colName],
		DueDate:      due,
		Type:         rec[colType],
		Value:        value,
		Observations: rec[colObs],
	}
	if err := b.Validate(); err != nil {
		return model.Bill{}, err
	}
	return b, nil
}
