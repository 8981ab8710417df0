package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"codeberg.org/orvend/gammactl/internal/config"
	"codeberg.org/orvend/gammactl/internal/controller"
	"codeberg.org/orvend/gammactl/internal/gamma"
	"codeberg.org/orvend/gammactl/internal/hotkey"
	"codeberg.org/orvend/gammactl/internal/lifecycle"
	"codeberg.org/orvend/gammactl/internal/logger"
	"codeberg.org/orvend/gammactl/internal/monitor"
	"codeberg.org/orvend/gammactl/internal/pid"
	"codeberg.org/orvend/gammactl/internal/sensor"
	"codeberg.org/orvend/gammactl/internal/settings"
	"codeberg.org/orvend/gammactl/internal/telemetry"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		logger.Init(false, false, logger.IsService())
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to write PID file")
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("Failed to remove PID file")
		}
	}()

	registry, err := monitor.NewRegistry(monitor.NewPlatformEnumerator())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to enumerate monitors")
	}

	store, err := settings.Open(settingsPath())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open settings store")
	}
	defer store.Close()

	selection := resolveSelection(store, registry)

	collector, err := telemetry.NewService(telemetryConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize telemetry")
	}
	defer collector.Close()

	interval := time.Duration(cfg.IntervalMs) * time.Millisecond
	ctrl := controller.New(sensor.NewPlatformSource(), gamma.NewActuator(), collector, interval)

	mgr, err := lifecycle.NewManager(registry, ctrl, store, selection)
	if err != nil {
		logger.Fatal().Err(err).Msg("Refusing to start with unresolvable target monitor")
	}

	registrar := hotkey.NewPlatformRegistrar()
	if err := registrar.Bind(selection.HotkeyLabel); err != nil {
		logger.Fatal().Err(err).Str("hotkey", selection.HotkeyLabel).Msg("Failed to register toggle hotkey")
	}
	defer registrar.Close()

	logger.Info().
		Int("monitor", selection.MonitorIndex).
		Str("hotkey", selection.HotkeyLabel).
		Dur("interval", interval).
		Msg("gammactl started, waiting for toggle")

	loop(mgr, registrar, ctrl)

	mgr.Shutdown()
	resetAll(registry)
}

// loop blocks on toggle presses until a termination signal arrives.
func loop(mgr *lifecycle.Manager, registrar hotkey.Registrar, ctrl *controller.Controller) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	for {
		select {
		case <-sigs:
			logger.Info().Msg("Received termination signal")
			return
		case <-registrar.Toggles():
			mgr.HandleToggle()
			logStatus(ctrl.Status())
		}
	}
}

func logStatus(status controller.Status) {
	if !status.Active {
		logger.Info().Msg("Adaptive loop idle")
		return
	}

	logger.Info().
		Int("monitor", status.Target).
		Str("level", status.Level.String()).
		Float64("applied", status.Applied).
		Msg("Adaptive loop running")
}

// resetAll restores the identity ramp everywhere on exit. The loop's own
// deactivation already does this for known monitors, but a crash-exit
// path may have left a stale ramp behind.
func resetAll(registry *monitor.Registry) {
	act := gamma.NewActuator()
	for _, m := range registry.List() {
		if err := act.SetGamma(m, 0.0); err != nil {
			logger.Error().Err(err).Int("monitor", m.Index).Msg("Failed to reset gamma ramp")
		}
	}
}

// resolveSelection merges the config file, the persisted selection, and
// the monitor registry into a concrete startup target. An explicit
// config value wins; otherwise the persisted selection, then the primary
// monitor.
func resolveSelection(store settings.Store, registry *monitor.Registry) settings.TargetSelection {
	selection := settings.TargetSelection{
		MonitorIndex: cfg.Monitor,
		HotkeyLabel:  cfg.Hotkey,
	}

	persisted, found, err := store.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load persisted settings, using defaults")
		found = false
	}

	if selection.MonitorIndex == 0 {
		if found {
			selection.MonitorIndex = persisted.MonitorIndex
		} else {
			selection.MonitorIndex = registry.Primary().Index
		}
	}

	if selection.HotkeyLabel == config.DefaultHotkey && found && persisted.HotkeyLabel != "" {
		selection.HotkeyLabel = persisted.HotkeyLabel
	}

	return selection
}

func settingsPath() string {
	if cfg.Settings != "" {
		return cfg.Settings
	}

	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, "gammactl", "settings.db")
}

func telemetryConfig() telemetry.Config {
	tcfg := telemetry.DefaultConfig()
	tcfg.Enabled = cfg.Telemetry
	if cfg.Database != "" {
		tcfg.DBPath = cfg.Database
	}

	return tcfg
}
