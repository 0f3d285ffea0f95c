package indicator

import (
	"fmt"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// StdDev calculates the rolling sample standard deviation of the close
// price (ddof=1). Used for Bollinger Band width; undefined for the first
// period-1 rows.
type StdDev struct {
	period int
	name   string
	window *rollingWindow
}

// NewStdDev creates a new rolling standard deviation calculator
func NewStdDev(period int) (*StdDev, error) {
	if period < 2 {
		return nil, fmt.Errorf("StdDev period must be at least 2, got %d", period)
	}

	return &StdDev{
		period: period,
		name:   fmt.Sprintf("std_%d", period),
		window: newRollingWindow(period),
	}, nil
}

// Name returns the indicator name
func (d *StdDev) Name() string {
	return d.name
}

// Update processes the next bar and returns the standard deviation at that row
func (d *StdDev) Update(bar models.DailyBar) models.Value {
	d.window.push(bar.Close)
	return d.window.sampleStd()
}

// Reset clears the calculator state
func (d *StdDev) Reset() {
	d.window.reset()
}
