//go:build !windows

package gamma

import (
	"codeberg.org/orvend/gammactl/internal/errors"
)

func applyRamp(_ string, _ *Ramp) error {
	return errors.New().WithMessage(errors.ErrNotImplemented, "gamma control is only supported on Windows")
}
