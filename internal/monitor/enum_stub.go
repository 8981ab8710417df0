//go:build !windows

package monitor

// NewPlatformEnumerator returns a single-display placeholder on platforms
// without native display enumeration.
func NewPlatformEnumerator() Enumerator {
	return &stubEnumerator{}
}

type stubEnumerator struct{}

func (*stubEnumerator) Enumerate() ([]Descriptor, error) {
	return []Descriptor{{
		Name:    "Primary",
		Width:   1920,
		Height:  1080,
		X:       0,
		Y:       0,
		Primary: true,
	}}, nil
}
