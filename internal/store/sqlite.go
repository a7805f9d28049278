package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/contas-dev/contas/internal/datekey"
	"github.com/contas-dev/contas/internal/model"
)

// SQLiteStore keeps the snapshot in a single bills table. The position
// column preserves list order; Save has the same full-snapshot
// semantics as the JSON backend.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS bills (
    position INTEGER PRIMARY KEY,
    id TEXT NOT NULL,
    name TEXT NOT NULL,
    due_date TEXT NOT NULL,
    type TEXT NOT NULL,
    value TEXT NOT NULL,
    observations TEXT NOT NULL
);
`

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating store dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load returns all bills in list order.
func (s *SQLiteStore) Load() ([]model.Bill, error) {
	rows, err := s.db.Query(`SELECT id, name, due_date, type, value, observations FROM bills ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying bills: %w", err)
	}
	defer rows.Close()

	var bills []model.Bill
	for rows.Next() {
		var id, name, dueDate, billType, value, obs string
		if err := rows.Scan(&id, &name, &dueDate, &billType, &value, &obs); err != nil {
			return nil, fmt.Errorf("scanning bill: %w", err)
		}

		due, err := datekey.ParseStorageKey(dueDate)
		if err != nil {
			return nil, fmt.Errorf("parsing due date %q: %w", dueDate, err)
		}
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q: %w", value, err)
		}

		bills = append(bills, model.Bill{
			ID:           id,
			Name:         name,
			DueDate:      due,
			Type:         billType,
			Value:        amount,
			Observations: obs,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading bills: %w", err)
	}
	return bills, nil
}

// Save replaces the stored snapshot in one transaction.
func (s *SQLiteStore) Save(bills []model.Bill) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM bills`); err != nil {
		return fmt.Errorf("clearing bills: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO bills (position, id, name, due_date, type, value, observations) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range bills {
		if _, err := stmt.Exec(i, b.ID, b.Name, b.DueDate.StorageKey(), b.Type, b.Value.String(), b.Observations); err != nil {
			return fmt.Errorf("inserting bill %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}
