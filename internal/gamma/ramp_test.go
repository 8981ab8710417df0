package gamma

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShadowLiftIdentityAtZero(t *testing.T) {
	ramp := shadowLiftRamp(0)

	assert.Equal(t, uint16(0), ramp.Red[0])
	assert.Equal(t, uint16(rampScale), ramp.Red[rampSize-1])

	// Midpoint of the identity curve.
	mid := ramp.Red[127]
	assert.InDelta(t, 127.0/255.0*rampScale, float64(mid), 1.0)

	assert.Equal(t, ramp.Red, ramp.Green)
	assert.Equal(t, ramp.Red, ramp.Blue)
}

func TestShadowLiftRaisesBlackFloor(t *testing.T) {
	ramp := shadowLiftRamp(1)

	// Full intensity lifts absolute black by 25%.
	assert.InDelta(t, maxBlackLift*rampScale, float64(ramp.Red[0]), 1.0)
	// White stays white.
	assert.Equal(t, uint16(rampScale), ramp.Red[rampSize-1])
}

func TestShadowLiftMonotonic(t *testing.T) {
	for _, intensity := range []float64{0, 0.35, 0.6, 1} {
		ramp := shadowLiftRamp(intensity)
		for i := 1; i < rampSize; i++ {
			if ramp.Red[i] < ramp.Red[i-1] {
				t.Fatalf("ramp not monotonic at intensity %v, index %d", intensity, i)
			}
		}
	}
}

func TestShadowLiftIntensityOrdering(t *testing.T) {
	// A stronger lift must never darken any part of the curve.
	low := shadowLiftRamp(0.35)
	high := shadowLiftRamp(0.60)
	for i := 0; i < rampSize; i++ {
		assert.GreaterOrEqual(t, high.Red[i], low.Red[i])
	}
}

func TestShadowLiftClampsIntensity(t *testing.T) {
	assert.Equal(t, shadowLiftRamp(0), shadowLiftRamp(-2))
	assert.Equal(t, shadowLiftRamp(1), shadowLiftRamp(5))
}

func TestDimRampFloorsBrightness(t *testing.T) {
	// Brightness below the floor behaves like the floor value.
	assert.Equal(t, dimRamp(0.5), dimRamp(0.1))
	assert.Equal(t, dimRamp(1), dimRamp(2))
}

func TestDimRampStaysNearIdentity(t *testing.T) {
	ramp := dimRamp(0.5)
	for i := 0; i < rampSize; i++ {
		identity := i * rampSize
		diff := identity - int(ramp.Red[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > identityClampRange {
			t.Fatalf("entry %d is %d away from identity", i, diff)
		}
	}
}

func TestDimRampScalesLinearly(t *testing.T) {
	ramp := dimRamp(0.75)
	assert.Equal(t, uint16(0), ramp.Red[0])
	assert.InDelta(t, 100*0.75*rampSize, float64(ramp.Red[100]), 1.0)
}
