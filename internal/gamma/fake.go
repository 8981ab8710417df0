package gamma

import (
	"sync"

	"codeberg.org/orvend/gammactl/internal/monitor"
)

// Op identifies the kind of actuator call a fake recorded.
type Op string

const (
	OpSetGamma Op = "set_gamma"
	OpDim      Op = "dim"
)

// Call is one recorded actuator invocation.
type Call struct {
	Op      Op
	Monitor int
	Value   float64
}

// FakeActuator records every call for assertions and can inject failures.
type FakeActuator struct {
	mu sync.Mutex

	// Err, if set, is returned by every call until cleared.
	Err error

	calls []Call
}

func NewFakeActuator() *FakeActuator {
	return &FakeActuator{}
}

func (f *FakeActuator) SetGamma(m monitor.Descriptor, intensity float64) error {
	return f.record(Call{Op: OpSetGamma, Monitor: m.Index, Value: intensity})
}

func (f *FakeActuator) DimMonitor(m monitor.Descriptor, brightness float64) error {
	return f.record(Call{Op: OpDim, Monitor: m.Index, Value: brightness})
}

func (f *FakeActuator) record(c Call) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}
	f.calls = append(f.calls, c)

	return nil
}

// SetErr injects or clears an actuation failure.
func (f *FakeActuator) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

// Calls returns a copy of the recorded calls.
func (f *FakeActuator) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Call, len(f.calls))
	copy(out, f.calls)

	return out
}

// CallsFor returns the recorded calls against one monitor index.
func (f *FakeActuator) CallsFor(monitorIndex int) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []Call
	for _, c := range f.calls {
		if c.Monitor == monitorIndex {
			out = append(out, c)
		}
	}

	return out
}

// Reset clears the recorded calls.
func (f *FakeActuator) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}
