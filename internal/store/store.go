// Package store persists the bill list. A Store only ever sees the full
// serialized snapshot: every successful mutation is followed by a
// complete rewrite, mirroring the single storage key the data
// originally lived under.
package store

import (
	"fmt"
	"path/filepath"

	"github.com/contas-dev/contas/internal/config"
	"github.com/contas-dev/contas/internal/model"
)

// Store loads and saves the complete bill list.
type Store interface {
	// Load returns the last saved snapshot, or an empty list when no
	// prior data exists.
	Load() ([]model.Bill, error)
	// Save replaces the stored snapshot with the given list.
	Save(bills []model.Bill) error
}

// Snapshot file names inside the data directory.
const (
	jsonFile   = "contas.json"
	sqliteFile = "contas.db"
)

// Open returns the backend selected by the configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return NewFileStore(filepath.Join(cfg.DataDir, jsonFile)), nil
	case config.BackendSQLite:
		return OpenSQLite(filepath.Join(cfg.DataDir, sqliteFile))
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
