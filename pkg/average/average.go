// Package average provides a fixed-window moving average used to smooth
// per-frame interval measurements for the FPS readout.
package average

// Averager is a fixed-capacity ring of samples. The window starts
// zero-filled, so the average is defined from the very first Add: early
// results are pulled toward zero until the ring has wrapped once.
type Averager struct {
	window []float64
	index  int
}

// New returns an Averager over the last size samples.
func New(size int) *Averager {
	if size <= 0 {
		panic("average: window size must be positive")
	}
	return &Averager{window: make([]float64, size)}
}

// Add records value and returns the mean over the full window.
func (a *Averager) Add(value float64) float64 {
	a.window[a.index] = value

	a.index++
	if a.index == len(a.window) {
		a.index = 0
	}

	var sum float64
	for _, v := range a.window {
		sum += v
	}
	return sum / float64(len(a.window))
}
