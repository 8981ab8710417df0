//go:build !windows

package hotkey

import (
	"sync"

	"codeberg.org/orvend/gammactl/internal/errors"
)

// NewPlatformRegistrar returns a registrar that validates bindings but
// never delivers events; global hotkey capture is only implemented on
// Windows.
func NewPlatformRegistrar() Registrar {
	return &stubRegistrar{toggles: make(chan struct{})}
}

type stubRegistrar struct {
	mu      sync.Mutex
	toggles chan struct{}
	closed  bool
}

func (s *stubRegistrar) Bind(label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New().WithMessage(ErrRegisterFailed, "registrar is closed")
	}

	_, err := ParseKey(label)

	return err
}

func (s *stubRegistrar) Toggles() <-chan struct{} {
	return s.toggles
}

func (s *stubRegistrar) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true

	return nil
}
