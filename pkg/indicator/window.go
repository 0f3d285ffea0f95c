package indicator

import (
	"math"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// rollingWindow keeps the trailing N observations of a series. Values may be
// NaN (a delta against a missing close, a true range against a missing
// previous close); a window containing a NaN yields an undefined statistic
// for that row only.
type rollingWindow struct {
	size   int
	values []float64
}

func newRollingWindow(size int) *rollingWindow {
	return &rollingWindow{
		size:   size,
		values: make([]float64, 0, size),
	}
}

// push appends a value, evicting the oldest once the window is full.
func (w *rollingWindow) push(v float64) {
	w.values = append(w.values, v)
	if len(w.values) > w.size {
		copy(w.values, w.values[1:])
		w.values = w.values[:len(w.values)-1]
	}
}

func (w *rollingWindow) full() bool {
	return len(w.values) >= w.size
}

func (w *rollingWindow) clean() bool {
	for _, v := range w.values {
		if math.IsNaN(v) {
			return false
		}
	}
	return true
}

// mean returns the trailing mean, undefined until the window is full and
// free of NaN observations.
func (w *rollingWindow) mean() models.Value {
	if !w.full() || !w.clean() {
		return models.Undefined
	}
	var sum float64
	for _, v := range w.values {
		sum += v
	}
	return models.Float(sum / float64(w.size))
}

// sampleStd returns the trailing sample standard deviation (ddof=1), the
// convention used for Bollinger Band width.
func (w *rollingWindow) sampleStd() models.Value {
	if w.size < 2 || !w.full() || !w.clean() {
		return models.Undefined
	}
	m := w.mean()
	var sumSq float64
	for _, v := range w.values {
		d := v - m.Float64
		sumSq += d * d
	}
	return models.Float(math.Sqrt(sumSq / float64(w.size-1)))
}

func (w *rollingWindow) reset() {
	w.values = w.values[:0]
}
