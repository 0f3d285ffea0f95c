package indicator

import (
	"fmt"
	"math"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// RSI calculates the Relative Strength Index over daily closes.
// RSI = 100 - (100 / (1 + RS)) where RS = average gain / average loss over
// the period, with the averages taken as plain rolling means of the
// close-to-close gains and losses (not Wilder smoothing). Deltas start at
// row 1, so the first defined RSI is at row `period`.
//
// When the average loss is zero the series rose monotonically over the
// window and the RSI is exactly 100; this is special-cased rather than left
// to a division by zero.
type RSI struct {
	period  int
	name    string
	prev    float64
	started bool
	gains   *rollingWindow
	losses  *rollingWindow
}

// NewRSI creates a new RSI calculator with the specified period (typically 14)
func NewRSI(period int) (*RSI, error) {
	if period < 2 {
		return nil, fmt.Errorf("RSI period must be at least 2, got %d", period)
	}

	return &RSI{
		period: period,
		name:   fmt.Sprintf("rsi_%d", period),
		gains:  newRollingWindow(period),
		losses: newRollingWindow(period),
	}, nil
}

// Name returns the indicator name
func (r *RSI) Name() string {
	return r.name
}

// Update processes the next bar and returns the RSI at that row
func (r *RSI) Update(bar models.DailyBar) models.Value {
	close := bar.Close

	// First row has no previous close, hence no delta.
	if !r.started {
		r.started = true
		r.prev = close
		return models.Undefined
	}

	// NaN closes propagate through the delta into the windows, which report
	// undefined until the NaN rolls out.
	delta := close - r.prev
	r.prev = close

	r.gains.push(math.Max(delta, 0))
	r.losses.push(math.Max(-delta, 0))

	avgGain := r.gains.mean()
	avgLoss := r.losses.mean()
	if !avgGain.Valid || !avgLoss.Valid {
		return models.Undefined
	}

	if avgLoss.Float64 == 0 {
		return models.Float(100.0)
	}

	rs := avgGain.Float64 / avgLoss.Float64
	return models.Float(100.0 - (100.0 / (1.0 + rs)))
}

// Reset clears the RSI state
func (r *RSI) Reset() {
	r.prev = 0
	r.started = false
	r.gains.reset()
	r.losses.reset()
}
