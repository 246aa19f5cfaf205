package root

import (
	"context"
	"database/sql"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	override := dbFlag
	if cfg != nil {
		override = cfg.DBPath
	}
	path, err := storage.ResolveDBPath(override)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugf("opening database %s", path)
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db, engine.WithLogger(logger)), cleanup, nil
}
