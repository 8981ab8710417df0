//go:build !windows

package sensor

import (
	"codeberg.org/orvend/gammactl/internal/errors"
)

// NewPlatformSource returns a source that always fails; screen capture is
// only implemented on Windows.
func NewPlatformSource() Source {
	return &unsupportedSource{}
}

type unsupportedSource struct{}

func (*unsupportedSource) Sample(_ Region) (float64, error) {
	return 0, errors.New().WithMessage(errors.ErrNotImplemented, "screen capture is only supported on Windows")
}
