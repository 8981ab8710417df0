package telemetry

import (
	"database/sql"

	"codeberg.org/orvend/gammactl/internal/errors"
	"codeberg.org/orvend/gammactl/internal/logger"
)

const (
	SchemaVersion = 1

	createTablesSQL = `
	   CREATE TABLE IF NOT EXISTS schema_versions (
	       version     INTEGER PRIMARY KEY,
	       applied_at  TEXT NOT NULL
	   );
	   CREATE TABLE IF NOT EXISTS ticks (
	       timestamp_ms     INTEGER PRIMARY KEY,
	       monitor_index    INTEGER NOT NULL,
	       sample           REAL NOT NULL CHECK (sample >= 0.0 AND sample <= 1.0),
	       average          REAL NOT NULL CHECK (average >= 0.0 AND average <= 1.0),
	       level            INTEGER NOT NULL CHECK (level IN (0, 1, 2)),
	       goal_intensity   REAL NOT NULL,
	       applied_intensity REAL NOT NULL
	   );`

	insertTickSQL = `
    INSERT OR REPLACE INTO ticks (
        timestamp_ms, monitor_index,
        sample, average, level,
        goal_intensity, applied_intensity
    ) VALUES (?, ?, ?, ?, ?, ?, ?)`
)

// InitSchema creates a new database schema with the current version
func InitSchema(db *sql.DB, log logger.Logger) error {
	errFactory := errors.New()

	tx, err := db.Begin()
	if err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	committed := false
	defer func() {
		if !committed {
			if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				log.Debug().Err(err).Msg("Failed to rollback transaction")
			}
		}
	}()

	if _, err := tx.Exec(createTablesSQL); err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	if _, err := tx.Exec(`
        INSERT INTO schema_versions (version, applied_at)
        VALUES (?, datetime('now'))
        ON CONFLICT(version) DO NOTHING
    `, SchemaVersion); err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrSchemaInitFailed, err)
	}
	committed = true

	log.Debug().Int("version", SchemaVersion).Msg("Telemetry schema initialized")

	return nil
}
