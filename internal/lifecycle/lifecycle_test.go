package lifecycle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/orvend/gammactl/internal/lifecycle"
	"codeberg.org/orvend/gammactl/internal/monitor"
	"codeberg.org/orvend/gammactl/internal/settings"
)

type fakeController struct {
	active      bool
	activations []int
	deactivated int
}

func (f *fakeController) Activate(target monitor.Descriptor, all []monitor.Descriptor) {
	f.active = true
	f.activations = append(f.activations, target.Index)
}

func (f *fakeController) Deactivate() {
	f.active = false
	f.deactivated++
}

func (f *fakeController) IsActive() bool {
	return f.active
}

type fakeStore struct {
	saved []settings.TargetSelection
	err   error
}

func (f *fakeStore) Load() (settings.TargetSelection, bool, error) {
	return settings.TargetSelection{}, false, nil
}

func (f *fakeStore) Save(sel settings.TargetSelection) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, sel)

	return nil
}

func (f *fakeStore) Close() error { return nil }

func newTestRegistry(t *testing.T) *monitor.Registry {
	t.Helper()

	registry, err := monitor.NewRegistry(&monitor.FakeEnumerator{Monitors: []monitor.Descriptor{
		{Name: "DISPLAY1", Width: 1920, Height: 1080, Primary: true},
		{Name: "DISPLAY2", Width: 1920, Height: 1080, X: 1920},
	}})
	require.NoError(t, err)

	return registry
}

func TestNewManagerRejectsUnresolvableMonitor(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := lifecycle.NewManager(registry, &fakeController{}, &fakeStore{}, settings.TargetSelection{MonitorIndex: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Configured monitor index not found")
}

func TestHandleToggleActivatesAndDeactivates(t *testing.T) {
	registry := newTestRegistry(t)
	ctrl := &fakeController{}

	mgr, err := lifecycle.NewManager(registry, ctrl, &fakeStore{}, settings.TargetSelection{MonitorIndex: 2, HotkeyLabel: "INSERT"})
	require.NoError(t, err)

	mgr.HandleToggle()
	assert.Equal(t, []int{2}, ctrl.activations)
	assert.True(t, ctrl.active)

	mgr.HandleToggle()
	assert.Equal(t, 1, ctrl.deactivated)
	assert.False(t, ctrl.active)

	mgr.HandleToggle()
	assert.Equal(t, []int{2, 2}, ctrl.activations)
}

func TestSelectMonitorPersists(t *testing.T) {
	registry := newTestRegistry(t)
	ctrl := &fakeController{}
	store := &fakeStore{}

	mgr, err := lifecycle.NewManager(registry, ctrl, store, settings.TargetSelection{MonitorIndex: 1, HotkeyLabel: "INSERT"})
	require.NoError(t, err)

	require.NoError(t, mgr.SelectMonitor(2))

	require.Len(t, store.saved, 1)
	assert.Equal(t, settings.TargetSelection{MonitorIndex: 2, HotkeyLabel: "INSERT"}, store.saved[0])
	assert.Equal(t, 2, mgr.Selection().MonitorIndex)

	// Idle selection does not start the loop.
	assert.Empty(t, ctrl.activations)
}

func TestSelectMonitorSwitchesWhileRunning(t *testing.T) {
	registry := newTestRegistry(t)
	ctrl := &fakeController{}
	store := &fakeStore{}

	mgr, err := lifecycle.NewManager(registry, ctrl, store, settings.TargetSelection{MonitorIndex: 1})
	require.NoError(t, err)

	mgr.HandleToggle()
	require.NoError(t, mgr.SelectMonitor(2))

	assert.Equal(t, []int{1, 2}, ctrl.activations)
}

func TestSelectMonitorRejectsUnknownIndex(t *testing.T) {
	registry := newTestRegistry(t)
	ctrl := &fakeController{}
	store := &fakeStore{}

	mgr, err := lifecycle.NewManager(registry, ctrl, store, settings.TargetSelection{MonitorIndex: 1})
	require.NoError(t, err)

	require.Error(t, mgr.SelectMonitor(7))
	assert.Equal(t, 1, mgr.Selection().MonitorIndex)
	assert.Empty(t, store.saved)
}

func TestSelectMonitorSurfacesStoreError(t *testing.T) {
	registry := newTestRegistry(t)
	store := &fakeStore{err: errors.New("disk full")}

	mgr, err := lifecycle.NewManager(registry, &fakeController{}, store, settings.TargetSelection{MonitorIndex: 1})
	require.NoError(t, err)

	err = mgr.SelectMonitor(2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to save settings")
}

func TestSetHotkeyPersists(t *testing.T) {
	registry := newTestRegistry(t)
	store := &fakeStore{}

	mgr, err := lifecycle.NewManager(registry, &fakeController{}, store, settings.TargetSelection{MonitorIndex: 1, HotkeyLabel: "INSERT"})
	require.NoError(t, err)

	require.NoError(t, mgr.SetHotkey("F5"))
	require.Len(t, store.saved, 1)
	assert.Equal(t, "F5", store.saved[0].HotkeyLabel)
	assert.Equal(t, "F5", mgr.Selection().HotkeyLabel)
}

func TestShutdownDeactivates(t *testing.T) {
	registry := newTestRegistry(t)
	ctrl := &fakeController{}

	mgr, err := lifecycle.NewManager(registry, ctrl, &fakeStore{}, settings.TargetSelection{MonitorIndex: 1})
	require.NoError(t, err)

	mgr.HandleToggle()
	mgr.Shutdown()

	assert.False(t, ctrl.active)
	assert.Equal(t, 1, ctrl.deactivated)
}
