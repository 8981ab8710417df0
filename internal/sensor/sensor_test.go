package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bgra builds a BGRA buffer from per-pixel luminance values.
func bgra(luminances ...byte) []byte {
	buf := make([]byte, 0, len(luminances)*bytesPerPixel)
	for _, l := range luminances {
		buf = append(buf, l, l, l, 0xff)
	}

	return buf
}

func TestBrightnessUniformPatch(t *testing.T) {
	pixels := make([]byte, 0, 100*bytesPerPixel)
	for i := 0; i < 100; i++ {
		pixels = append(pixels, 128, 128, 128, 0xff)
	}

	brightness, err := brightnessFromBGRA(pixels)
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255.0, brightness, 1e-9)
}

func TestBrightnessPicksDarkPercentile(t *testing.T) {
	// 15 dark pixels in a bright patch of 100: the 10th percentile must
	// report the dark tail, not the bright mean.
	luminances := make([]byte, 100)
	for i := range luminances {
		luminances[i] = 230
	}
	for i := 0; i < 15; i++ {
		luminances[i] = 10
	}

	brightness, err := brightnessFromBGRA(bgra(luminances...))
	require.NoError(t, err)
	assert.InDelta(t, 10.0/255.0, brightness, 1e-9)
}

func TestBrightnessMixedChannels(t *testing.T) {
	// One pixel, B=30 G=60 R=90: luminance is the channel mean.
	brightness, err := brightnessFromBGRA([]byte{30, 60, 90, 0xff})
	require.NoError(t, err)
	assert.InDelta(t, 60.0/255.0, brightness, 1e-9)
}

func TestBrightnessEmptyBuffer(t *testing.T) {
	_, err := brightnessFromBGRA(nil)
	require.Error(t, err)

	_, err = brightnessFromBGRA([]byte{1, 2})
	require.Error(t, err)
}

func TestPatchOriginCentersInRegion(t *testing.T) {
	left, top := patchOrigin(Region{X: 1920, Y: 0, Width: 1920, Height: 1080})
	assert.Equal(t, 1920+960-patchSize/2, left)
	assert.Equal(t, 540-patchSize/2, top)
}

func TestFakeSourceRepeatsLastSample(t *testing.T) {
	fake := NewFakeSource(0.1, 0.2)

	for _, want := range []float64{0.1, 0.2, 0.2, 0.2} {
		got, err := fake.Sample(Region{Width: 800, Height: 600})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 4, fake.Calls())
}
