package models

import (
	"time"
)

// DailyBar represents one trading day of OHLCV data
type DailyBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Validate validates a DailyBar
func (b *DailyBar) Validate() error {
	if b.Date.IsZero() {
		return ErrInvalidDate
	}
	if b.Close <= 0 {
		return ErrInvalidPrice
	}
	if b.High < b.Low {
		return ErrInvalidRange
	}
	if b.Volume < 0 {
		return ErrInvalidVolume
	}
	return nil
}

// PriceSeries is an ordered sequence of daily bars, ascending by date.
// Calendar gaps (weekends, holidays) are expected and not an error.
type PriceSeries []DailyBar

// Validate checks the structural preconditions the indicator algorithms
// depend on: at least one row and strictly ascending dates.
func (s PriceSeries) Validate() error {
	if len(s) == 0 {
		return ErrEmptySeries
	}
	for i := 1; i < len(s); i++ {
		if !s[i].Date.After(s[i-1].Date) {
			return ErrUnorderedSeries
		}
	}
	return nil
}

// Closes returns the close column of the series.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i := range s {
		closes[i] = s[i].Close
	}
	return closes
}

// IndicatorRow augments one input bar with computed indicator columns.
// Columns are undefined while their window has not yet filled.
type IndicatorRow struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`

	MA20  Value `json:"ma20"`
	MA50  Value `json:"ma50"`
	MA200 Value `json:"ma200"`

	EMA12 Value `json:"ema12"`
	EMA26 Value `json:"ema26"`

	MACD          Value `json:"macd"`
	MACDSignal    Value `json:"macd_signal"`
	MACDHistogram Value `json:"macd_histogram"`

	RSI Value `json:"rsi"`

	BBMiddle Value `json:"bb_middle"`
	BBStd    Value `json:"bb_std"`
	BBUpper  Value `json:"bb_upper"`
	BBLower  Value `json:"bb_lower"`

	TrueRange Value `json:"tr"`
	ATR       Value `json:"atr"`
}

// IndicatorSeries is the derived series, aligned 1:1 by date with its input.
type IndicatorSeries []IndicatorRow

// Snapshot holds the most recent values of the fixed reporting field set.
// A field whose window has not filled is present but undefined, so consumers
// can tell "not computable yet" apart from "computed as zero".
type Snapshot struct {
	Date   time.Time        `json:"date"`
	Values map[string]Value `json:"values"`
}

// SnapshotFields is the fixed field set of a Snapshot, in reporting order.
var SnapshotFields = []string{
	"close",
	"rsi",
	"macd",
	"macd_signal",
	"macd_histogram",
	"atr",
	"bb_upper",
	"bb_middle",
	"bb_lower",
}
