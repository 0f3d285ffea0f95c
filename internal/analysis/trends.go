package analysis

import (
	"math"
	"time"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// TrendPeriods are the lookback horizons reported by ComputeTrends, in
// reporting order.
var TrendPeriods = []TrendPeriod{
	{Label: "3m", Days: 90},
	{Label: "6m", Days: 180},
	{Label: "12m", Days: 365},
}

// TrendPeriod is one lookback horizon
type TrendPeriod struct {
	Label string
	Days  int
}

// PriceTrends summarizes how the close price moved over the trend periods,
// plus the extremes of the available history. A change is undefined when the
// series does not reach back far enough, or when either endpoint close is
// missing.
type PriceTrends struct {
	AsOf    time.Time               `json:"as_of"`
	Changes map[string]models.Value `json:"changes"` // percent, keyed by period label

	HighClose models.Value `json:"high_close"`
	HighDate  time.Time    `json:"high_date"`
	LowClose  models.Value `json:"low_close"`
	LowDate   time.Time    `json:"low_date"`
}

// ComputeTrends derives the price trend summary for a daily series. Like the
// indicator engine it is pure and fails only on structural problems.
func ComputeTrends(series models.PriceSeries) (*PriceTrends, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}

	last := series[len(series)-1]
	trends := &PriceTrends{
		AsOf:    last.Date,
		Changes: make(map[string]models.Value, len(TrendPeriods)),
	}

	for _, period := range TrendPeriods {
		cutoff := last.Date.AddDate(0, 0, -period.Days)
		trends.Changes[period.Label] = changeSince(series, cutoff, last.Close)
	}

	for _, bar := range series {
		if math.IsNaN(bar.Close) {
			continue
		}
		if !trends.HighClose.Valid || bar.Close > trends.HighClose.Float64 {
			trends.HighClose = models.Float(bar.Close)
			trends.HighDate = bar.Date
		}
		if !trends.LowClose.Valid || bar.Close < trends.LowClose.Float64 {
			trends.LowClose = models.Float(bar.Close)
			trends.LowDate = bar.Date
		}
	}

	return trends, nil
}

// changeSince returns the percent change from the close at the first bar on
// or after the cutoff date to the current close.
func changeSince(series models.PriceSeries, cutoff time.Time, current float64) models.Value {
	// The series starts after the cutoff: the horizon is not covered.
	if series[0].Date.After(cutoff) {
		return models.Undefined
	}

	for _, bar := range series {
		if bar.Date.Before(cutoff) {
			continue
		}
		if math.IsNaN(bar.Close) || math.IsNaN(current) || bar.Close == 0 {
			return models.Undefined
		}
		return models.Float(100 * (current - bar.Close) / bar.Close)
	}
	return models.Undefined
}
