package telemetry

import "codeberg.org/orvend/gammactl/internal/errors"

const (
	defaultDirPerm = 0o755
	defaultDBPath  = "/var/lib/gammactl/telemetry.db"

	// The loop ticks at 10Hz, so batching keeps stable scenes from
	// hammering the database.
	defaultBatchSize    = 50
	defaultBatchTimeout = 10
)

type Config struct {
	Enabled      bool
	DBPath       string
	BatchSize    int
	BatchTimeout int
}

func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		DBPath:       defaultDBPath,
		BatchSize:    defaultBatchSize,
		BatchTimeout: defaultBatchTimeout,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Enabled && c.DBPath == "" {
		return errFactory.New(ErrInvalidDBPath)
	}

	return nil
}
