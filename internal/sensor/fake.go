package sensor

import "sync"

// FakeSource is a test double that returns scripted brightness samples.
// When the script is exhausted the last sample repeats.
type FakeSource struct {
	mu sync.Mutex

	// Samples contains the scripted values to return, in order.
	Samples []float64

	// Err, if set, is returned by every Sample call until cleared.
	Err error

	// Regions records the capture region of each Sample call.
	Regions []Region

	index int
}

func NewFakeSource(samples ...float64) *FakeSource {
	return &FakeSource{Samples: samples}
}

func (f *FakeSource) Sample(region Region) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Regions = append(f.Regions, region)

	if f.Err != nil {
		return 0, f.Err
	}

	if len(f.Samples) == 0 {
		return 0, nil
	}

	sample := f.Samples[f.index]
	if f.index < len(f.Samples)-1 {
		f.index++
	}

	return sample, nil
}

// SetErr injects or clears a sampling failure.
func (f *FakeSource) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

// Calls reports how many samples were requested.
func (f *FakeSource) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.Regions)
}
