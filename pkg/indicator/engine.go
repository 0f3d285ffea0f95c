package indicator

import (
	"fmt"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// Config holds the window sizes and spans used by the engine
type Config struct {
	ShortMAPeriod int // ma20 / Bollinger middle band
	MidMAPeriod   int // ma50
	LongMAPeriod  int // ma200

	FastEMASpan    int // ema12
	SlowEMASpan    int // ema26
	MACDSignalSpan int // macd_signal

	RSIPeriod int
	ATRPeriod int

	BollingerPeriod     int
	BollingerMultiplier float64
}

// DefaultConfig returns the canonical daily-chart configuration
func DefaultConfig() Config {
	return Config{
		ShortMAPeriod:       20,
		MidMAPeriod:         50,
		LongMAPeriod:        200,
		FastEMASpan:         12,
		SlowEMASpan:         26,
		MACDSignalSpan:      9,
		RSIPeriod:           14,
		ATRPeriod:           14,
		BollingerPeriod:     20,
		BollingerMultiplier: 2.0,
	}
}

// Validate validates the engine configuration
func (c Config) Validate() error {
	periods := map[string]int{
		"short MA":    c.ShortMAPeriod,
		"mid MA":      c.MidMAPeriod,
		"long MA":     c.LongMAPeriod,
		"fast EMA":    c.FastEMASpan,
		"slow EMA":    c.SlowEMASpan,
		"MACD signal": c.MACDSignalSpan,
		"ATR":         c.ATRPeriod,
	}
	for name, p := range periods {
		if p < 1 {
			return fmt.Errorf("%s period must be at least 1, got %d", name, p)
		}
	}
	if c.FastEMASpan >= c.SlowEMASpan {
		return fmt.Errorf("fast EMA span must be shorter than slow EMA span, got %d/%d", c.FastEMASpan, c.SlowEMASpan)
	}
	// RSI needs at least one full delta window beyond the first row.
	if c.RSIPeriod < 2 {
		return fmt.Errorf("RSI period must be at least 2, got %d", c.RSIPeriod)
	}
	// Sample standard deviation needs at least two observations.
	if c.BollingerPeriod < 2 {
		return fmt.Errorf("Bollinger period must be at least 2, got %d", c.BollingerPeriod)
	}
	if c.BollingerMultiplier <= 0 {
		return fmt.Errorf("Bollinger multiplier must be positive, got %f", c.BollingerMultiplier)
	}
	return nil
}

// Engine computes the full indicator series and latest-values snapshot for a
// daily price series. Compute is a pure function of its input: all calculator
// state is created per call, so one Engine can be shared across goroutines
// operating on independent series.
type Engine struct {
	config Config
}

// NewEngine creates a new engine with the given configuration
func NewEngine(config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{config: config}, nil
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Compute derives the indicator series for the input price series in a
// single pass. The result has exactly one row per input row with identical
// dates; columns are undefined while their warm-up window has not filled.
// It fails only on structural problems: an empty series or dates that are
// not strictly ascending.
func (e *Engine) Compute(series models.PriceSeries) (models.IndicatorSeries, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	cfg := e.config

	maShort, err := NewSMA(cfg.ShortMAPeriod)
	if err != nil {
		return nil, err
	}
	maMid, err := NewSMA(cfg.MidMAPeriod)
	if err != nil {
		return nil, err
	}
	maLong, err := NewSMA(cfg.LongMAPeriod)
	if err != nil {
		return nil, err
	}
	bbMiddle, err := NewSMA(cfg.BollingerPeriod)
	if err != nil {
		return nil, err
	}
	bbStd, err := NewStdDev(cfg.BollingerPeriod)
	if err != nil {
		return nil, err
	}
	macd, err := NewMACD(cfg.FastEMASpan, cfg.SlowEMASpan, cfg.MACDSignalSpan)
	if err != nil {
		return nil, err
	}
	rsi, err := NewRSI(cfg.RSIPeriod)
	if err != nil {
		return nil, err
	}
	atr, err := NewATR(cfg.ATRPeriod)
	if err != nil {
		return nil, err
	}

	// The single-value calculators all run through the Calculator interface;
	// MACD is composite and the true range rides along with the ATR.
	columns := []struct {
		calc Calculator
		set  func(row *models.IndicatorRow, v models.Value)
	}{
		{maShort, func(row *models.IndicatorRow, v models.Value) { row.MA20 = v }},
		{maMid, func(row *models.IndicatorRow, v models.Value) { row.MA50 = v }},
		{maLong, func(row *models.IndicatorRow, v models.Value) { row.MA200 = v }},
		{rsi, func(row *models.IndicatorRow, v models.Value) { row.RSI = v }},
		{bbMiddle, func(row *models.IndicatorRow, v models.Value) { row.BBMiddle = v }},
		{bbStd, func(row *models.IndicatorRow, v models.Value) { row.BBStd = v }},
		{atr, func(row *models.IndicatorRow, v models.Value) { row.ATR = v }},
	}

	result := make(models.IndicatorSeries, 0, len(series))
	for _, bar := range series {
		row := models.IndicatorRow{
			Date:   bar.Date,
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		}

		for _, col := range columns {
			col.set(&row, col.calc.Update(bar))
		}
		row.TrueRange = atr.TrueRange()

		fast, slow, macdOut := macd.Update(bar)
		row.EMA12 = fast
		row.EMA26 = slow
		row.MACD = macdOut.MACD
		row.MACDSignal = macdOut.Signal
		row.MACDHistogram = macdOut.Histogram

		if row.BBMiddle.Valid && row.BBStd.Valid {
			width := cfg.BollingerMultiplier * row.BBStd.Float64
			row.BBUpper = models.Float(row.BBMiddle.Float64 + width)
			row.BBLower = models.Float(row.BBMiddle.Float64 - width)
		}

		result = append(result, row)
	}

	return result, nil
}

// Snapshot extracts the last row's values for the fixed reporting field set.
// Fields whose window has not filled are present but undefined.
func (e *Engine) Snapshot(series models.IndicatorSeries) (*models.Snapshot, error) {
	if len(series) == 0 {
		return nil, models.ErrEmptySeries
	}

	last := series[len(series)-1]
	return &models.Snapshot{
		Date: last.Date,
		Values: map[string]models.Value{
			"close":          models.Float(last.Close),
			"rsi":            last.RSI,
			"macd":           last.MACD,
			"macd_signal":    last.MACDSignal,
			"macd_histogram": last.MACDHistogram,
			"atr":            last.ATR,
			"bb_upper":       last.BBUpper,
			"bb_middle":      last.BBMiddle,
			"bb_lower":       last.BBLower,
		},
	}, nil
}
