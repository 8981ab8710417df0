// Package hotkey turns a single system-wide key into a stream of toggle
// events. Each press flips the adaptive loop between active and inactive;
// the event itself carries no payload.
package hotkey

import (
	"strings"

	"codeberg.org/orvend/gammactl/internal/errors"
)

const (
	ErrUnsupportedKey = errors.ErrorCode("hotkey_unsupported_key")
	ErrRegisterFailed = errors.ErrorCode("hotkey_register_failed")
)

// DefaultKey is the binding used when nothing else is configured.
const DefaultKey = "INSERT"

// Registrar owns the global hotkey binding and delivers toggle events.
type Registrar interface {
	// Bind registers the key named by label, replacing any previous
	// binding.
	Bind(label string) error

	// Toggles returns the channel that delivers one event per press.
	Toggles() <-chan struct{}

	// Close releases the binding and stops event delivery.
	Close() error
}

// virtual-key codes for the supported bindings
const (
	vkTab        = 0x09
	vkPause      = 0x13
	vkCapsLock   = 0x14
	vkEscape     = 0x1B
	vkSpace      = 0x20
	vkPageUp     = 0x21
	vkPageDown   = 0x22
	vkEnd        = 0x23
	vkHome       = 0x24
	vkArrowLeft  = 0x25
	vkArrowUp    = 0x26
	vkArrowRight = 0x27
	vkArrowDown  = 0x28
	vkInsert     = 0x2D
	vkDelete     = 0x2E
	vkNumpad0    = 0x60
	vkMultiply   = 0x6A
	vkAdd        = 0x6B
	vkSubtract   = 0x6D
	vkDecimal    = 0x6E
	vkDivide     = 0x6F
	vkF1         = 0x70
	vkNumLock    = 0x90
	vkScrollLock = 0x91
)

var namedKeys = map[string]uint32{
	"INSERT":         vkInsert,
	"DELETE":         vkDelete,
	"HOME":           vkHome,
	"END":            vkEnd,
	"PAGEUP":         vkPageUp,
	"PAGEDOWN":       vkPageDown,
	"ARROWUP":        vkArrowUp,
	"ARROWDOWN":      vkArrowDown,
	"ARROWLEFT":      vkArrowLeft,
	"ARROWRIGHT":     vkArrowRight,
	"ESCAPE":         vkEscape,
	"PAUSE":          vkPause,
	"SCROLLLOCK":     vkScrollLock,
	"SPACE":          vkSpace,
	"TAB":            vkTab,
	"CAPSLOCK":       vkCapsLock,
	"NUMLOCK":        vkNumLock,
	"NUMPADADD":      vkAdd,
	"NUMPADSUBTRACT": vkSubtract,
	"NUMPADMULTIPLY": vkMultiply,
	"NUMPADDIVIDE":   vkDivide,
	"NUMPADDECIMAL":  vkDecimal,
}

// ParseKey resolves a key label to its virtual-key code. Labels are
// case-insensitive: single letters and digits, F1-F12, NUMPAD0-9 and the
// named navigation keys.
func ParseKey(label string) (uint32, error) {
	errFactory := errors.New()

	key := strings.ToUpper(strings.TrimSpace(label))
	if key == "" {
		return 0, errFactory.WithData(ErrUnsupportedKey, label)
	}

	if len(key) == 1 {
		c := key[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return 0x41 + uint32(c-'A'), nil
		case c >= '0' && c <= '9':
			return 0x30 + uint32(c-'0'), nil
		}
	}

	if vk, ok := namedKeys[key]; ok {
		return vk, nil
	}

	if n, ok := strings.CutPrefix(key, "F"); ok {
		if fn := parseKeyNumber(n); fn >= 1 && fn <= 12 {
			return vkF1 + uint32(fn-1), nil
		}
	}

	if n, ok := strings.CutPrefix(key, "NUMPAD"); ok {
		if pad := parseKeyNumber(n); pad >= 0 && pad <= 9 {
			return vkNumpad0 + uint32(pad), nil
		}
	}

	return 0, errFactory.WithData(ErrUnsupportedKey, label)
}

// parseKeyNumber parses a small decimal suffix; -1 means not a number.
func parseKeyNumber(s string) int {
	if s == "" || len(s) > 2 {
		return -1
	}

	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}

	return n
}
