package config

import (
	"os"

	"codeberg.org/orvend/gammactl/internal/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel   = "info"
	DefaultIntervalMs = 100
	DefaultHotkey     = "INSERT"
)

type Config struct {
	// Monitor is the 1-based index of the display to run the adaptive
	// loop against. 0 means "use the persisted selection, or primary".
	Monitor    int    `mapstructure:"monitor"`
	Hotkey     string `mapstructure:"hotkey"`
	IntervalMs int    `mapstructure:"interval_ms"`
	LogLevel   string `mapstructure:"log_level"`
	Telemetry  bool   `mapstructure:"telemetry"`
	Database   string `mapstructure:"database"`
	Settings   string `mapstructure:"settings"`
	Debug      bool   `mapstructure:"debug"`
	Verbose    bool   `mapstructure:"verbose"`
}

func Load() (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("monitor", 0)
	v.SetDefault("hotkey", DefaultHotkey)
	v.SetDefault("interval_ms", DefaultIntervalMs)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("telemetry", false)
	v.SetDefault("database", "")
	v.SetDefault("settings", "")

	flags := pflag.NewFlagSet("gammactl", pflag.ContinueOnError)
	flags.Int("monitor", 0, "Monitor index to run the adaptive loop against")
	flags.String("hotkey", DefaultHotkey, "Global hotkey that toggles the adaptive loop")
	flags.Int("interval-ms", DefaultIntervalMs, "Tick interval in milliseconds")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flags.Bool("telemetry", false, "Record tick telemetry to the database")
	flags.String("database", "", "Path to the telemetry database")
	flags.String("settings", "", "Path to the settings database")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	// Load configuration from file; an explicit path via GAMMACTL_CONFIG
	// wins over the search paths.
	if path := os.Getenv("GAMMACTL_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gammactl")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}

	// A missing file falls back to defaults; a file that exists but
	// fails to parse is a startup error.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Flags set on the command line override file values
	flags.Visit(func(f *pflag.Flag) {
		key := f.Name
		switch key {
		case "interval-ms":
			key = "interval_ms"
		case "log-level":
			key = "log_level"
		}
		v.Set(key, f.Value.String())
	})

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	config.applyLogLevel()

	return config, nil
}

func (c *Config) validate() error {
	errFactory := errors.New()

	if c.IntervalMs <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.IntervalMs)
	}

	if c.Monitor < 0 {
		return errFactory.WithData(errors.ErrInvalidArgument, "monitor index must not be negative")
	}

	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

func (c *Config) applyLogLevel() {
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}

	switch c.LogLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
}
