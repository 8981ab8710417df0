package gamma

import "math"

const (
	rampSize  = 256
	rampScale = 65535.0

	// Shadow-lift curve shape: at full intensity the power-law gamma
	// drops to 0.5 and absolute black is lifted by 25%.
	maxGammaDrop  = 0.5
	maxBlackLift  = 0.25
	minRampFactor = 0.5

	// Some drivers reject ramp entries further than this from the
	// identity value.
	identityClampRange = 32768
)

// Ramp is a per-channel display gamma ramp.
type Ramp struct {
	Red   [rampSize]uint16
	Green [rampSize]uint16
	Blue  [rampSize]uint16
}

// shadowLiftRamp builds the hybrid shadow-lift curve for an intensity in
// [0,1]: a power-law gamma correction that brightens midtones combined
// with a linear lift of absolute black. Intensity 0 yields the identity
// ramp.
func shadowLiftRamp(intensity float64) Ramp {
	intensity = clamp01(intensity)

	lift := intensity * maxBlackLift
	gammaExp := 1.0 - intensity*maxGammaDrop

	var ramp Ramp
	for i := 0; i < rampSize; i++ {
		x := float64(i) / float64(rampSize-1)

		y := math.Pow(x, gammaExp)
		y = lift + y*(1.0-lift)

		value := uint16(math.Min(math.Max(y*rampScale, 0), rampScale))
		ramp.Red[i] = value
		ramp.Green[i] = value
		ramp.Blue[i] = value
	}

	return ramp
}

// dimRamp builds a linear dimming curve for a brightness in [0,1].
// Brightness is floored at 0.5 and each entry stays within the identity
// clamp range, both Windows gamma-ramp restrictions.
func dimRamp(brightness float64) Ramp {
	if brightness < minRampFactor {
		brightness = minRampFactor
	}
	if brightness > 1 {
		brightness = 1
	}

	var ramp Ramp
	for i := 0; i < rampSize; i++ {
		identity := i * rampSize
		dimmed := int(float64(i) * brightness * float64(rampSize))

		minVal := identity - identityClampRange
		if minVal < 0 {
			minVal = 0
		}
		maxVal := identity + identityClampRange
		if maxVal > int(rampScale) {
			maxVal = int(rampScale)
		}

		if dimmed < minVal {
			dimmed = minVal
		}
		if dimmed > maxVal {
			dimmed = maxVal
		}

		value := uint16(dimmed)
		ramp.Red[i] = value
		ramp.Green[i] = value
		ramp.Blue[i] = value
	}

	return ramp
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
