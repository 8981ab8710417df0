//go:build windows

package hotkey

import (
	"runtime"
	"sync"
	"unsafe"

	"codeberg.org/orvend/gammactl/internal/errors"
	"codeberg.org/orvend/gammactl/internal/logger"
	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	procRegisterHotKey       = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey     = user32.NewProc("UnregisterHotKey")
	procGetMessageW          = user32.NewProc("GetMessageW")
	procPostThreadMessageW   = user32.NewProc("PostThreadMessageW")
	procGetCurrentThreadID   = kernel32.NewProc("GetCurrentThreadId")
)

const (
	wmHotkey = 0x0312
	wmQuit   = 0x0012

	toggleHotkeyID = 1
)

type winMsg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	PtX     int32
	PtY     int32
}

type winRegistrar struct {
	mu       sync.Mutex
	toggles  chan struct{}
	threadID uint32
	done     chan struct{}
	closed   bool
}

// NewPlatformRegistrar returns the native global-hotkey registrar.
func NewPlatformRegistrar() Registrar {
	return &winRegistrar{
		toggles: make(chan struct{}, 1),
	}
}

func (r *winRegistrar) Bind(label string) error {
	vk, err := ParseKey(label)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errors.New().WithMessage(ErrRegisterFailed, "registrar is closed")
	}

	r.stopLocked()

	started := make(chan error, 1)
	done := make(chan struct{})
	r.done = done

	go r.messageLoop(vk, started, done)

	if err := <-started; err != nil {
		r.done = nil
		return err
	}

	logger.Info().Str("key", label).Msg("Global hotkey registered")

	return nil
}

// messageLoop owns the hotkey registration; RegisterHotKey binds the key
// to the calling thread, so registration and message pumping must share
// one locked OS thread.
func (r *winRegistrar) messageLoop(vk uint32, started chan<- error, done chan<- struct{}) {
	defer close(done)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	errFactory := errors.New()

	threadID, _, _ := procGetCurrentThreadID.Call()
	r.threadID = uint32(threadID)

	ret, _, callErr := procRegisterHotKey.Call(0, toggleHotkeyID, 0, uintptr(vk))
	if ret == 0 {
		started <- errFactory.Wrap(ErrRegisterFailed, callErr)
		return
	}
	defer procUnregisterHotKey.Call(0, toggleHotkeyID)

	started <- nil

	var msg winMsg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, 0, 0)
		if ret == 0 || int32(ret) == -1 { // WM_QUIT or failure
			return
		}

		if msg.Message == wmHotkey && msg.WParam == toggleHotkeyID {
			select {
			case r.toggles <- struct{}{}:
			default:
				// A press is already pending; coalesce.
			}
		}
	}
}

func (r *winRegistrar) Toggles() <-chan struct{} {
	return r.toggles
}

func (r *winRegistrar) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopLocked()
	r.closed = true

	return nil
}

// stopLocked posts WM_QUIT to the loop thread and waits for it to exit.
func (r *winRegistrar) stopLocked() {
	if r.done == nil {
		return
	}

	procPostThreadMessageW.Call(uintptr(r.threadID), wmQuit, 0, 0)
	<-r.done
	r.done = nil
}
