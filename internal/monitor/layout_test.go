package monitor_test

import (
	"testing"

	"codeberg.org/orvend/gammactl/internal/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutTransformSingleMonitor(t *testing.T) {
	monitors := []monitor.Descriptor{
		{Index: 1, Width: 1920, Height: 1080, X: 0, Y: 0, Primary: true},
	}

	boxes := monitor.LayoutTransform(monitors, 400, 300)
	require.Len(t, boxes, 1)

	// scale = min(400/1920, 300/1080) * 0.8
	scale := (400.0 / 1920.0) * 0.8
	assert.InDelta(t, 1920*scale, boxes[0].Width, 1e-9)
	assert.InDelta(t, 1080*scale, boxes[0].Height, 1e-9)

	// Centered within the container.
	assert.InDelta(t, (400-1920*scale)/2, boxes[0].Left, 1e-9)
	assert.InDelta(t, (300-1080*scale)/2, boxes[0].Top, 1e-9)
}

func TestLayoutTransformSideBySide(t *testing.T) {
	monitors := []monitor.Descriptor{
		{Index: 1, Width: 1920, Height: 1080, X: 0, Y: 0, Primary: true},
		{Index: 2, Width: 1920, Height: 1080, X: 1920, Y: 0},
	}

	boxes := monitor.LayoutTransform(monitors, 800, 600)
	require.Len(t, boxes, 2)

	// Bounding box is 3840x1080; width is the limiting dimension.
	scale := (800.0 / 3840.0) * 0.8

	assert.InDelta(t, boxes[0].Left+boxes[0].Width, boxes[1].Left, 1e-9,
		"adjacent monitors stay adjacent after scaling")
	assert.InDelta(t, 1920*scale, boxes[1].Width, 1e-9)
	assert.InDelta(t, boxes[0].Top, boxes[1].Top, 1e-9)
}

func TestLayoutTransformNegativeOrigin(t *testing.T) {
	// A monitor left of the primary has a negative X; the layout must
	// normalize against the bounding-box origin, not (0,0).
	monitors := []monitor.Descriptor{
		{Index: 1, Width: 1920, Height: 1080, X: -1920, Y: 0},
		{Index: 2, Width: 1920, Height: 1080, X: 0, Y: 0, Primary: true},
	}

	boxes := monitor.LayoutTransform(monitors, 800, 600)
	require.Len(t, boxes, 2)

	assert.Less(t, boxes[0].Left, boxes[1].Left)
	assert.GreaterOrEqual(t, boxes[0].Left, 0.0, "no box escapes the container")
}

func TestLayoutTransformDegenerateInput(t *testing.T) {
	assert.Nil(t, monitor.LayoutTransform(nil, 400, 300))
	assert.Nil(t, monitor.LayoutTransform([]monitor.Descriptor{{Width: 100, Height: 100}}, 0, 300))
}
