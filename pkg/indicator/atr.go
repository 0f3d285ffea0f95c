package indicator

import (
	"fmt"
	"math"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// ATR calculates the Average True Range: the rolling mean of the true range
// over the period. The true range at row i (i >= 1) is
//
//	max(|high-low|, |high-prevClose|, |low-prevClose|)
//
// There is no true range at row 0 (no previous close), so the first defined
// ATR is at row `period`.
type ATR struct {
	period    int
	name      string
	prevClose float64
	started   bool
	lastTR    models.Value
	window    *rollingWindow
}

// NewATR creates a new ATR calculator with the specified period (typically 14)
func NewATR(period int) (*ATR, error) {
	if period < 1 {
		return nil, fmt.Errorf("ATR period must be at least 1, got %d", period)
	}

	return &ATR{
		period: period,
		name:   fmt.Sprintf("atr_%d", period),
		window: newRollingWindow(period),
	}, nil
}

// Name returns the indicator name
func (a *ATR) Name() string {
	return a.name
}

// Update processes the next bar and returns the ATR at that row
func (a *ATR) Update(bar models.DailyBar) models.Value {
	if !a.started {
		a.started = true
		a.prevClose = bar.Close
		a.lastTR = models.Undefined
		return models.Undefined
	}

	tr := math.Max(
		math.Abs(bar.High-bar.Low),
		math.Max(
			math.Abs(bar.High-a.prevClose),
			math.Abs(bar.Low-a.prevClose),
		),
	)
	a.prevClose = bar.Close

	a.lastTR = models.Float(tr)
	a.window.push(tr)
	return a.window.mean()
}

// TrueRange returns the true range of the most recently processed bar,
// undefined at row 0.
func (a *ATR) TrueRange() models.Value {
	return a.lastTR
}

// Reset clears the ATR state
func (a *ATR) Reset() {
	a.prevClose = 0
	a.started = false
	a.lastTR = models.Undefined
	a.window.reset()
}
