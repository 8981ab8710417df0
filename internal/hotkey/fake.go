package hotkey

// FakeRegistrar is a test double whose toggles are triggered manually.
type FakeRegistrar struct {
	// Bound records every label passed to Bind.
	Bound []string

	// BindErr, if set, is returned by Bind.
	BindErr error

	toggles chan struct{}
}

func NewFakeRegistrar() *FakeRegistrar {
	return &FakeRegistrar{toggles: make(chan struct{}, 8)}
}

func (f *FakeRegistrar) Bind(label string) error {
	if f.BindErr != nil {
		return f.BindErr
	}
	f.Bound = append(f.Bound, label)

	return nil
}

func (f *FakeRegistrar) Toggles() <-chan struct{} {
	return f.toggles
}

func (f *FakeRegistrar) Close() error {
	return nil
}

// Press emits one toggle event.
func (f *FakeRegistrar) Press() {
	f.toggles <- struct{}{}
}
