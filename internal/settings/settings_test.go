package settings_test

import (
	"path/filepath"
	"testing"

	"codeberg.org/orvend/gammactl/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) settings.Store {
	t.Helper()

	store, err := settings.Open(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestLoadEmptyStore(t *testing.T) {
	store := openStore(t)

	_, found, err := store.Load()
	require.NoError(t, err)
	assert.False(t, found, "a fresh store has no selection")
}

func TestSaveAndLoad(t *testing.T) {
	store := openStore(t)

	saved := settings.TargetSelection{MonitorIndex: 2, HotkeyLabel: "F9"}
	require.NoError(t, store.Save(saved))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, saved, loaded)
}

func TestSaveOverwritesPrevious(t *testing.T) {
	store := openStore(t)

	require.NoError(t, store.Save(settings.TargetSelection{MonitorIndex: 1, HotkeyLabel: "INSERT"}))
	require.NoError(t, store.Save(settings.TargetSelection{MonitorIndex: 3, HotkeyLabel: "DELETE"}))

	loaded, found, err := store.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, loaded.MonitorIndex)
	assert.Equal(t, "DELETE", loaded.HotkeyLabel)
}

func TestSelectionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	store, err := settings.Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(settings.TargetSelection{MonitorIndex: 2, HotkeyLabel: "F5"}))
	require.NoError(t, store.Close())

	reopened, err := settings.Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, found, err := reopened.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, loaded.MonitorIndex)
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := settings.Open("")
	require.Error(t, err)
}
