package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/model"
)

// FileStore keeps the snapshot as one JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// billJSON is the wire form of a bill. Field names match the original
// serialized records; dates are the ISO storage key and values the
// decimal's dot-separated string form.
type billJSON struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Type         string `json:"type"`
	Value        string `json:"value"`
	Observations string `json:"observations"`
}

// Load reads the snapshot. A missing file is an empty list.
func (s *FileStore) Load() ([]model.Bill, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store %s: %w", s.path, err)
	}

	var rows []billJSON
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", s.path, err)
	}

	bills := make([]model.Bill, 0, len(rows))
	for i, row := range rows {
		b, err := unmarshalBill(row)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		bills = append(bills, b)
	}
	return bills, nil
}

// Save rewrites the snapshot atomically (temp file + rename).
func (s *FileStore) Save(bills []model.Bill) error {
	rows := make([]billJSON, len(bills))
	for i, b := range bills {
		rows[i] = marshalBill(b)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}

func marshalBill(b model.Bill) billJSON {
	return billJSON{
		ID:           b.ID,
		Name:         b.Name,
		Date:         b.DueDate.StorageKey(),
		Type:         b.Type,
		Value:        b.Value.String(),
		Observations: b.Observations,
	}
}

func unmarshalBill(row billJSON) (model.Bill, error) {
	due, err := datekey.ParseStorageKey(row.Date)
	if err != nil {
		return model.Bill{}, fmt.Errorf("parsing date %q: %w", row.Date, err)
	}

	value, err := decimal.NewFromString(row.Value)
	if err != nil {
		return model.Bill{}, fmt.Errorf("parsing value %q: %w", row.Value, err)
	}

	return model.Bill{
		ID:           row.ID,
		Name:         row.Name,
		DueDate:      due,
		Type:         row.Type,
		Value:        value,
		Observations: row.Observations,
	}, nil
}
