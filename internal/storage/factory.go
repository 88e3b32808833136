package storage

import (
	"context"
	"fmt"

	"github.com/yourname/dreamwell/internal"
	"github.com/yourname/dreamwell/internal/config"
)

// NewKeyValue opens the backend selected by cfg.StorageBackend.
func NewKeyValue(ctx context.Context, cfg *config.Config, logger internal.Logger) (KeyValue, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return NewFileStorage(cfg.DataDir, logger)
	case config.BackendSQLite:
		return NewSQLiteStorage(cfg.SQLitePath, logger)
	case config.BackendPostgres:
		return NewPostgresStorage(ctx, cfg.PostgresDSN, logger)
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", cfg.StorageBackend)
	}
}
