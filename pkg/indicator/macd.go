package indicator

import (
	"fmt"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// MACDValue holds the three MACD outputs for one row
type MACDValue struct {
	MACD      models.Value
	Signal    models.Value
	Histogram models.Value
}

// MACD calculates the Moving Average Convergence Divergence:
// macd = fast EMA - slow EMA, signal = EMA of the macd series (seeded with
// the first defined macd value), histogram = macd - signal. Because both
// EMAs seed with the first close, all three outputs are defined from row 0.
type MACD struct {
	name   string
	fast   *EMA
	slow   *EMA
	signal *EMA
}

// NewMACD creates a new MACD calculator with the given spans (typically 12, 26, 9)
func NewMACD(fastSpan, slowSpan, signalSpan int) (*MACD, error) {
	if fastSpan >= slowSpan {
		return nil, fmt.Errorf("MACD fast span must be shorter than slow span, got %d/%d", fastSpan, slowSpan)
	}

	fast, err := NewEMA(fastSpan)
	if err != nil {
		return nil, err
	}
	slow, err := NewEMA(slowSpan)
	if err != nil {
		return nil, err
	}
	signal, err := NewEMA(signalSpan)
	if err != nil {
		return nil, err
	}

	return &MACD{
		name:   fmt.Sprintf("macd_%d_%d_%d", fastSpan, slowSpan, signalSpan),
		fast:   fast,
		slow:   slow,
		signal: signal,
	}, nil
}

// Name returns the indicator name
func (m *MACD) Name() string {
	return m.name
}

// Update processes the next bar and returns the MACD outputs at that row.
// The fast and slow EMA values for the row are also returned so callers do
// not have to run separate EMA calculators over the same series.
func (m *MACD) Update(bar models.DailyBar) (fast, slow models.Value, out MACDValue) {
	fast = m.fast.Update(bar)
	slow = m.slow.Update(bar)

	if !fast.Valid || !slow.Valid {
		return fast, slow, MACDValue{}
	}

	macd := fast.Float64 - slow.Float64
	out.MACD = models.Float(macd)
	out.Signal = m.signal.step(macd)
	if out.Signal.Valid {
		out.Histogram = models.Float(macd - out.Signal.Float64)
	}
	return fast, slow, out
}

// Reset clears the MACD state
func (m *MACD) Reset() {
	m.fast.Reset()
	m.slow.Reset()
	m.signal.Reset()
}
