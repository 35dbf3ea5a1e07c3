package app

import (
	"context"
	"fmt"

	"github.com/qualitydesk/qualitydesk/internal/datastore"
	"github.com/qualitydesk/qualitydesk/internal/platform/db"
)

// OpenStore connects the datastore selected by cfg.DatastoreDriver. SQLite
// databases get their tables created on open.
func OpenStore(ctx context.Context, cfg *Config) (datastore.Store, error) {
	switch cfg.DatastoreDriver {
	case DriverPostgres:
		pool, err := db.New(ctx, cfg.DatastoreURL, cfg.DatastoreKey)
		if err != nil {
			return nil, err
		}
		return datastore.NewPostgres(pool), nil
	case DriverSQLite:
		store, err := datastore.OpenSQLite(cfg.DatastoreURL)
		if err != nil {
			return nil, err
		}
		if err := store.Bootstrap(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("app: unsupported datastore driver %q", cfg.DatastoreDriver)
	}
}
