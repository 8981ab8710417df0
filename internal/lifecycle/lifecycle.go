// Package lifecycle coordinates the two top-level states of the daemon,
// idle and running, and owns the transitions between them. The toggle
// hotkey, the persisted target selection, and the control loop all meet
// here.
package lifecycle

import (
	"sync"

	"codeberg.org/orvend/gammactl/internal/errors"
	"codeberg.org/orvend/gammactl/internal/logger"
	"codeberg.org/orvend/gammactl/internal/monitor"
	"codeberg.org/orvend/gammactl/internal/settings"
)

// Controller is the subset of the control loop the manager drives.
type Controller interface {
	Activate(target monitor.Descriptor, all []monitor.Descriptor)
	Deactivate()
	IsActive() bool
}

// Manager resolves the configured target against the monitor registry
// and flips the control loop on and off.
type Manager struct {
	registry *monitor.Registry
	ctrl     Controller
	store    settings.Store
	errs     errors.Factory

	mu       sync.Mutex
	selected int
	hotkey   string
}

// NewManager builds a manager for the given selection. The selection
// must already be resolvable: an out-of-range monitor index is a
// configuration error, not something to limp along with.
func NewManager(registry *monitor.Registry, ctrl Controller, store settings.Store, sel settings.TargetSelection) (*Manager, error) {
	errFactory := errors.New()

	if _, ok := registry.Resolve(sel.MonitorIndex); !ok {
		return nil, errFactory.WithData(errors.ErrMonitorResolve, sel.MonitorIndex)
	}

	return &Manager{
		registry: registry,
		ctrl:     ctrl,
		store:    store,
		errs:     errFactory,
		selected: sel.MonitorIndex,
		hotkey:   sel.HotkeyLabel,
	}, nil
}

// HandleToggle flips between idle and running. Activation resolves the
// selected monitor at toggle time so a selection changed mid-session
// takes effect on the next press.
func (m *Manager) HandleToggle() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrl.IsActive() {
		m.ctrl.Deactivate()
		return
	}

	target, ok := m.registry.Resolve(m.selected)
	if !ok {
		logger.Warn().Int("monitor", m.selected).Msg("Selected monitor no longer resolvable, staying idle")
		return
	}

	m.ctrl.Activate(target, m.registry.List())
}

// SelectMonitor changes the target selection and persists it. When the
// loop is running the controller switches over immediately.
func (m *Manager) SelectMonitor(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, ok := m.registry.Resolve(index)
	if !ok {
		return m.errs.WithData(errors.ErrMonitorResolve, index)
	}

	m.selected = index
	if err := m.persistLocked(); err != nil {
		return err
	}

	if m.ctrl.IsActive() {
		m.ctrl.Activate(target, m.registry.List())
	}

	return nil
}

// SetHotkey persists a new toggle binding label. Rebinding the live
// registrar is the caller's job.
func (m *Manager) SetHotkey(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hotkey = label

	return m.persistLocked()
}

// Selection returns the current target selection.
func (m *Manager) Selection() settings.TargetSelection {
	m.mu.Lock()
	defer m.mu.Unlock()

	return settings.TargetSelection{MonitorIndex: m.selected, HotkeyLabel: m.hotkey}
}

// Shutdown forces the idle state, resetting every monitor if the loop
// was running.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ctrl.Deactivate()
}

func (m *Manager) persistLocked() error {
	sel := settings.TargetSelection{MonitorIndex: m.selected, HotkeyLabel: m.hotkey}
	if err := m.store.Save(sel); err != nil {
		return m.errs.Wrap(errors.ErrSaveSettings, err)
	}

	return nil
}
