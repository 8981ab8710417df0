package hotkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyLetters(t *testing.T) {
	vk, err := ParseKey("A")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x41), vk)

	vk, err = ParseKey("z")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x5A), vk, "labels are case-insensitive")
}

func TestParseKeyDigits(t *testing.T) {
	vk, err := ParseKey("0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x30), vk)

	vk, err = ParseKey("9")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x39), vk)
}

func TestParseKeyFunctionKeys(t *testing.T) {
	vk, err := ParseKey("F1")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x70), vk)

	vk, err = ParseKey("f12")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7B), vk)

	_, err = ParseKey("F13")
	require.Error(t, err, "only F1-F12 are supported")
}

func TestParseKeyNamed(t *testing.T) {
	vk, err := ParseKey("INSERT")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2D), vk)

	vk, err = ParseKey(" pageup ")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x21), vk, "labels are trimmed")
}

func TestParseKeyNumpad(t *testing.T) {
	vk, err := ParseKey("NUMPAD0")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x60), vk)

	vk, err = ParseKey("NUMPAD9")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x69), vk)

	vk, err = ParseKey("NUMPADADD")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x6B), vk)
}

func TestParseKeyUnsupported(t *testing.T) {
	for _, label := range []string{"", "CTRL", "SHIFT+A", "NUMPAD10", "??"} {
		_, err := ParseKey(label)
		assert.Error(t, err, "label %q should not parse", label)
	}
}

func TestDefaultKeyParses(t *testing.T) {
	_, err := ParseKey(DefaultKey)
	require.NoError(t, err)
}

func TestBindAfterCloseFails(t *testing.T) {
	r := NewPlatformRegistrar()
	require.NoError(t, r.Close())

	err := r.Bind(DefaultKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registrar is closed")
}
