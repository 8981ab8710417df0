package monitor

// layoutScaleMargin leaves a border around the scaled layout so monitor
// boxes never touch the container edge.
const layoutScaleMargin = 0.8

// Box is a monitor rectangle in presentation-container coordinates.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// LayoutTransform maps the absolute desktop geometry of the given monitors
// into a container of the given size: the bounding box over all monitors is
// scaled uniformly to fit and centered. The result is presentation-only;
// capture regions always use the monitor's own absolute geometry.
func LayoutTransform(monitors []Descriptor, containerWidth, containerHeight float64) []Box {
	if len(monitors) == 0 || containerWidth <= 0 || containerHeight <= 0 {
		return nil
	}

	minX, minY := monitors[0].X, monitors[0].Y
	maxX, maxY := monitors[0].X+monitors[0].Width, monitors[0].Y+monitors[0].Height
	for _, m := range monitors[1:] {
		if m.X < minX {
			minX = m.X
		}
		if m.Y < minY {
			minY = m.Y
		}
		if m.X+m.Width > maxX {
			maxX = m.X + m.Width
		}
		if m.Y+m.Height > maxY {
			maxY = m.Y + m.Height
		}
	}

	totalWidth := float64(maxX - minX)
	totalHeight := float64(maxY - minY)

	scale := containerWidth / totalWidth
	if s := containerHeight / totalHeight; s < scale {
		scale = s
	}
	scale *= layoutScaleMargin

	offsetX := (containerWidth - totalWidth*scale) / 2
	offsetY := (containerHeight - totalHeight*scale) / 2

	boxes := make([]Box, len(monitors))
	for i, m := range monitors {
		boxes[i] = Box{
			Left:   offsetX + float64(m.X-minX)*scale,
			Top:    offsetY + float64(m.Y-minY)*scale,
			Width:  float64(m.Width) * scale,
			Height: float64(m.Height) * scale,
		}
	}

	return boxes
}
