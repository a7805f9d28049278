package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/contas-dev/contas/internal/config"
	"github.com/contas-dev/contas/internal/history"
	"github.com/contas-dev/contas/internal/ledger"
	"github.com/contas-dev/contas/internal/store"
)

// workspace bundles the collaborators a command operates on: the loaded
// configuration, the store, and a ledger seeded with its snapshot.
type workspace struct {
	cfg *config.Config
	st  store.Store
	led *ledger.Ledger
}

func openWorkspace(dir string) (*workspace, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.LoadOrDefault(absDir)
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}

	bills, err := st.Load()
	if err != nil {
		return nil, err
	}

	return &workspace{cfg: cfg, st: st, led: ledger.New(bills)}, nil
}

// persist writes the full snapshot back to the store and appends to the
// history log. A history failure does not fail the mutation: the
// snapshot is already durable.
func (w *workspace) persist(entries ...history.Entry) error {
	if err := w.st.Save(w.led.Bills()); err != nil {
		return fmt.Errorf("saving bills: %w", err)
	}
	if len(entries) > 0 {
		if err := history.Append(w.cfg.DataDir, entries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write history: %v\n", err)
		}
	}
	return nil
}

func (w *workspace) close() {
	if c, ok := w.st.(io.Closer); ok {
		c.Close()
	}
}
