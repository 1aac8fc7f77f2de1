// Package store persists supervisor runs and A2A tasks.
package store

import (
	"os"
	"path/filepath"

	"arr-mcp/internal/domain"
	"arr-mcp/internal/infra/config"
)

// Open returns a SQLite store at cfg.Path, or an in-memory store when no
// path is configured.
func Open(cfg config.StoreConfig) (domain.RunStore, error) {
	if cfg.Path == "" {
		return NewMemoryStore(), nil
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, err
		}
	}
	return NewSQLiteStore(cfg.Path)
}

func runNotFound(id string) error {
	return domain.NewSubSystemError("run", "store.GetRun", domain.ErrNotFound, id)
}

func taskNotFound(id string) error {
	return domain.NewSubSystemError("task", "store.GetTask", domain.ErrNotFound, id)
}
