package monitor

// FakeEnumerator is a test double returning a fixed display list.
type FakeEnumerator struct {
	Monitors []Descriptor
	Err      error
}

func (f *FakeEnumerator) Enumerate() ([]Descriptor, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	out := make([]Descriptor, len(f.Monitors))
	copy(out, f.Monitors)

	return out, nil
}
