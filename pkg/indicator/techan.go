package indicator

import (
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// NewTechanSeries converts a PriceSeries into a techan TimeSeries so the
// engine's output can be cross-checked against the techan implementations.
// Note that techan's RSI and ATR use Wilder smoothing while this engine uses
// plain rolling means, so only the moving averages are directly comparable.
func NewTechanSeries(series models.PriceSeries) *techan.TimeSeries {
	ts := techan.NewTimeSeries()
	for _, bar := range series {
		candle := techan.NewCandle(techan.NewTimePeriod(bar.Date, 24*time.Hour))
		candle.OpenPrice = big.NewDecimal(bar.Open)
		candle.MaxPrice = big.NewDecimal(bar.High)
		candle.MinPrice = big.NewDecimal(bar.Low)
		candle.ClosePrice = big.NewDecimal(bar.Close)
		candle.Volume = big.NewDecimal(float64(bar.Volume))
		ts.AddCandle(candle)
	}
	return ts
}
