package telemetry_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/orvend/gammactl/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(ts time.Time) *telemetry.TickSnapshot {
	return &telemetry.TickSnapshot{
		Timestamp:    ts,
		MonitorIndex: 1,
		Sample:       0.12,
		Average:      0.15,
		Level:        2,
		Goal:         0.60,
		Applied:      0.30,
	}
}

func TestDisabledServiceIsNoop(t *testing.T) {
	collector, err := telemetry.NewService(telemetry.Config{Enabled: false})
	require.NoError(t, err)

	require.NoError(t, collector.Record(context.Background(), snapshot(time.Now())))
	require.NoError(t, collector.Close())
}

func TestRecordAndFlushOnClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")
	cfg := telemetry.Config{
		Enabled:      true,
		DBPath:       dbPath,
		BatchSize:    100, // larger than the number of records, flush happens on Close
		BatchTimeout: 60,
	}

	collector, err := telemetry.NewService(cfg)
	require.NoError(t, err)

	base := time.Now()
	for i := 0; i < 5; i++ {
		require.NoError(t, collector.Record(context.Background(), snapshot(base.Add(time.Duration(i)*100*time.Millisecond))))
	}
	require.NoError(t, collector.Close())

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM ticks`).Scan(&count))
	assert.Equal(t, 5, count)

	var level int
	var applied float64
	require.NoError(t, db.QueryRow(
		`SELECT level, applied_intensity FROM ticks ORDER BY timestamp_ms LIMIT 1`,
	).Scan(&level, &applied))
	assert.Equal(t, 2, level)
	assert.InDelta(t, 0.30, applied, 1e-9)
}

func TestRecordFlushesWhenBatchFills(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "telemetry.db")
	cfg := telemetry.Config{
		Enabled:      true,
		DBPath:       dbPath,
		BatchSize:    2,
		BatchTimeout: 60,
	}

	collector, err := telemetry.NewService(cfg)
	require.NoError(t, err)
	defer collector.Close()

	base := time.Now()
	require.NoError(t, collector.Record(context.Background(), snapshot(base)))
	require.NoError(t, collector.Record(context.Background(), snapshot(base.Add(100*time.Millisecond))))

	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM ticks`).Scan(&count))
	assert.Equal(t, 2, count, "batch flushes as soon as it fills")
}

func TestRecordNilSnapshot(t *testing.T) {
	collector, err := telemetry.NewService(telemetry.Config{
		Enabled:      true,
		DBPath:       filepath.Join(t.TempDir(), "telemetry.db"),
		BatchSize:    10,
		BatchTimeout: 60,
	})
	require.NoError(t, err)
	defer collector.Close()

	require.Error(t, collector.Record(context.Background(), nil))
}

func TestServiceRejectsMissingPath(t *testing.T) {
	_, err := telemetry.NewService(telemetry.Config{Enabled: true})
	require.Error(t, err)
}
