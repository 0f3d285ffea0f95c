package indicator

import (
	"fmt"
	"math"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// EMA calculates the Exponential Moving Average of the close price.
// EMA = (Price - Previous EMA) * Multiplier + Previous EMA
// Multiplier = 2 / (Span + 1)
//
// The recurrence is seeded with the first close, so unlike the SMA an EMA is
// defined from the very first row. A NaN close yields an undefined value for
// that row; the recurrence resumes from the previous EMA on the next valid
// close.
type EMA struct {
	span       int
	name       string
	multiplier float64
	value      float64
	seeded     bool
}

// NewEMA creates a new EMA calculator with the specified span
func NewEMA(span int) (*EMA, error) {
	if span < 1 {
		return nil, fmt.Errorf("EMA span must be at least 1, got %d", span)
	}

	return &EMA{
		span:       span,
		name:       fmt.Sprintf("ema_%d", span),
		multiplier: 2.0 / float64(span+1),
	}, nil
}

// Name returns the indicator name
func (e *EMA) Name() string {
	return e.name
}

// Update processes the next bar and returns the EMA at that row
func (e *EMA) Update(bar models.DailyBar) models.Value {
	return e.step(bar.Close)
}

// step advances the recurrence on a raw observation. MACD reuses it to run
// the signal EMA over the macd series itself.
func (e *EMA) step(v float64) models.Value {
	if math.IsNaN(v) {
		return models.Undefined
	}

	if !e.seeded {
		e.value = v
		e.seeded = true
		return models.Float(e.value)
	}

	e.value = (v-e.value)*e.multiplier + e.value
	return models.Float(e.value)
}

// Reset clears the EMA state
func (e *EMA) Reset() {
	e.value = 0
	e.seeded = false
}
