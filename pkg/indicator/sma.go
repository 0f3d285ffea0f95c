package indicator

import (
	"fmt"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// SMA calculates the Simple Moving Average of the close price.
// SMA = sum of the trailing `period` closes / period, undefined for the
// first period-1 rows.
type SMA struct {
	period int
	name   string
	window *rollingWindow
}

// NewSMA creates a new SMA calculator with the specified period
func NewSMA(period int) (*SMA, error) {
	if period < 1 {
		return nil, fmt.Errorf("SMA period must be at least 1, got %d", period)
	}

	return &SMA{
		period: period,
		name:   fmt.Sprintf("ma_%d", period),
		window: newRollingWindow(period),
	}, nil
}

// Name returns the indicator name
func (s *SMA) Name() string {
	return s.name
}

// Update processes the next bar and returns the SMA at that row
func (s *SMA) Update(bar models.DailyBar) models.Value {
	s.window.push(bar.Close)
	return s.window.mean()
}

// Reset clears the SMA state
func (s *SMA) Reset() {
	s.window.reset()
}
