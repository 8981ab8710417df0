// Package gamma drives per-monitor display gamma ramps. A single scalar
// intensity in [0,1] is the entire output space: SetGamma applies the
// shadow-lift curve for it, and intensity 0 restores the identity ramp.
package gamma

import (
	"codeberg.org/orvend/gammactl/internal/errors"
	"codeberg.org/orvend/gammactl/internal/monitor"
)

const (
	ErrApplyFailed   = errors.ErrorCode("gamma_apply_failed")
	ErrDeviceContext = errors.ErrorCode("gamma_device_context_failed")
	ErrSetRamp       = errors.ErrorCode("gamma_set_ramp_failed")
)

// Actuator applies gamma ramps to displays. Calls are fire-and-forget
// from the control loop's perspective; a failed call is retried on the
// next tick by virtue of the fixed schedule.
type Actuator interface {
	// SetGamma applies the shadow-lift ramp for the given intensity.
	// Intensity 0 resets the display to the identity ramp.
	SetGamma(m monitor.Descriptor, intensity float64) error

	// DimMonitor applies a one-shot linear dim. Used only for
	// non-target monitors at activation.
	DimMonitor(m monitor.Descriptor, brightness float64) error
}

type actuator struct {
	apply rampApplier
}

// rampApplier is the platform seam: it writes one ramp to one display.
type rampApplier func(deviceName string, ramp *Ramp) error

// NewActuator returns the native gamma-ramp actuator.
func NewActuator() Actuator {
	return &actuator{apply: applyRamp}
}

func (a *actuator) SetGamma(m monitor.Descriptor, intensity float64) error {
	ramp := shadowLiftRamp(intensity)

	return a.apply(m.Name, &ramp)
}

func (a *actuator) DimMonitor(m monitor.Descriptor, brightness float64) error {
	ramp := dimRamp(brightness)

	return a.apply(m.Name, &ramp)
}
