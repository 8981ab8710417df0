package monitor

import (
	"sort"

	"codeberg.org/orvend/gammactl/internal/errors"
	"codeberg.org/orvend/gammactl/internal/logger"
)

// Descriptor is an immutable snapshot of one display taken at enumeration
// time. Index is the stable identity used everywhere else; it is 1-based
// and assigned after sorting.
type Descriptor struct {
	Index   int
	Name    string
	Width   int
	Height  int
	X       int
	Y       int
	Primary bool
}

// Enumerator provides the platform display list.
type Enumerator interface {
	Enumerate() ([]Descriptor, error)
}

// Registry holds the displays found by a single enumeration at startup.
// There is no hot-plug refresh; a disconnected monitor simply fails to
// resolve.
type Registry struct {
	monitors []Descriptor
}

func NewRegistry(enum Enumerator) (*Registry, error) {
	errFactory := errors.New()

	monitors, err := enum.Enumerate()
	if err != nil {
		return nil, errFactory.Wrap(errors.ErrMonitorList, err)
	}
	if len(monitors) == 0 {
		return nil, errFactory.New(errors.ErrNoMonitors)
	}

	ordered := make([]Descriptor, len(monitors))
	copy(ordered, monitors)
	sortDescriptors(ordered)

	for i := range ordered {
		ordered[i].Index = i + 1
	}

	for _, m := range ordered {
		logger.Debug().
			Int("index", m.Index).
			Str("name", m.Name).
			Int("width", m.Width).
			Int("height", m.Height).
			Int("x", m.X).
			Int("y", m.Y).
			Bool("primary", m.Primary).
			Msg("Detected monitor")
	}

	return &Registry{monitors: ordered}, nil
}

// List returns the ordered set of known monitors.
func (r *Registry) List() []Descriptor {
	out := make([]Descriptor, len(r.monitors))
	copy(out, r.monitors)

	return out
}

// Resolve looks up a monitor by index. The second return is false when the
// index was never enumerated.
func (r *Registry) Resolve(index int) (Descriptor, bool) {
	for _, m := range r.monitors {
		if m.Index == index {
			return m, true
		}
	}

	return Descriptor{}, false
}

// Primary returns the primary monitor, falling back to the first entry.
func (r *Registry) Primary() Descriptor {
	for _, m := range r.monitors {
		if m.Primary {
			return m
		}
	}

	return r.monitors[0]
}

// sortDescriptors orders monitors primary-first, then left-to-right,
// then top-to-bottom.
func sortDescriptors(monitors []Descriptor) {
	sort.SliceStable(monitors, func(i, j int) bool {
		a, b := monitors[i], monitors[j]
		if a.Primary != b.Primary {
			return a.Primary
		}
		if a.X != b.X {
			return a.X < b.X
		}

		return a.Y < b.Y
	})
}
