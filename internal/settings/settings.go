// Package settings persists the user's target selection between runs.
// The store is a small SQLite key-value table; the control loop itself
// never touches it, it only receives the resolved selection.
package settings

import (
	"database/sql"
	"os"
	"path/filepath"
	"strconv"

	"codeberg.org/orvend/gammactl/internal/errors"
	"codeberg.org/orvend/gammactl/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

const (
	ErrInvalidDBPath = errors.ErrorCode("settings_invalid_db_path")
	ErrStorageInit   = errors.ErrorCode("settings_storage_init_failed")
	ErrLoadFailed    = errors.ErrorCode("settings_load_failed")
	ErrSaveFailed    = errors.ErrorCode("settings_save_failed")
)

const (
	keyMonitorIndex = "monitor_index"
	keyHotkeyLabel  = "hotkey"

	defaultDirPerm = 0o755
)

// TargetSelection is the persisted external-facing configuration. The
// control loop only consumes MonitorIndex; the hotkey label belongs to
// the registrar.
type TargetSelection struct {
	MonitorIndex int
	HotkeyLabel  string
}

// Store loads and saves the target selection.
type Store interface {
	// Load returns the persisted selection; found is false when
	// nothing was ever saved.
	Load() (selection TargetSelection, found bool, err error)
	Save(selection TargetSelection) error
	Close() error
}

type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the settings database at path.
func Open(path string) (Store, error) {
	errFactory := errors.New()

	if path == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL")
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("Settings store opened")

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Load() (TargetSelection, bool, error) {
	errFactory := errors.New()

	values := map[string]string{}
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return TargetSelection{}, false, errFactory.Wrap(ErrLoadFailed, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return TargetSelection{}, false, errFactory.Wrap(ErrLoadFailed, err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return TargetSelection{}, false, errFactory.Wrap(ErrLoadFailed, err)
	}

	rawIndex, ok := values[keyMonitorIndex]
	if !ok {
		return TargetSelection{}, false, nil
	}

	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		return TargetSelection{}, false, errFactory.Wrap(ErrLoadFailed, err)
	}

	return TargetSelection{
		MonitorIndex: index,
		HotkeyLabel:  values[keyHotkeyLabel],
	}, true, nil
}

func (s *sqliteStore) Save(selection TargetSelection) error {
	errFactory := errors.New()

	tx, err := s.db.Begin()
	if err != nil {
		return errFactory.Wrap(ErrSaveFailed, err)
	}

	upsert := `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	pairs := [][2]string{
		{keyMonitorIndex, strconv.Itoa(selection.MonitorIndex)},
		{keyHotkeyLabel, selection.HotkeyLabel},
	}
	for _, pair := range pairs {
		if _, err := tx.Exec(upsert, pair[0], pair[1]); err != nil {
			tx.Rollback()
			return errFactory.Wrap(ErrSaveFailed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errFactory.Wrap(ErrSaveFailed, err)
	}

	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
