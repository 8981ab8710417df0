package settings

import (
	"database/sql"

	"codeberg.org/orvend/gammactl/internal/errors"
)

const (
	schemaVersion = 1

	createTablesSQL = `
	   CREATE TABLE IF NOT EXISTS schema_versions (
	       version     INTEGER PRIMARY KEY,
	       applied_at  TEXT NOT NULL
	   );
	   CREATE TABLE IF NOT EXISTS settings (
	       key    TEXT PRIMARY KEY,
	       value  TEXT NOT NULL
	   );`
)

func initSchema(db *sql.DB) error {
	errFactory := errors.New()

	tx, err := db.Begin()
	if err != nil {
		return errFactory.Wrap(ErrStorageInit, err)
	}

	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if _, err := tx.Exec(createTablesSQL); err != nil {
		return errFactory.Wrap(ErrStorageInit, err)
	}

	if _, err := tx.Exec(`
        INSERT INTO schema_versions (version, applied_at)
        VALUES (?, datetime('now'))
        ON CONFLICT(version) DO NOTHING
    `, schemaVersion); err != nil {
		return errFactory.Wrap(ErrStorageInit, err)
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrStorageInit, err)
	}
	committed = true

	return nil
}
