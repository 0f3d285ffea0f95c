package indicator

import (
	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// Calculator is the interface for streaming indicator computation.
// Each calculator consumes bars in date order and carries only the minimal
// recurrence state it needs (a rolling window, a previous EMA value, a
// previous close). Update returns the indicator value for the bar just
// processed, or models.Undefined while the warm-up window has not filled.
type Calculator interface {
	// Name returns the unique name of this indicator (e.g., "rsi_14", "ema_12")
	Name() string

	// Update processes the next bar and returns the value at that row
	Update(bar models.DailyBar) models.Value

	// Reset clears the calculator state
	Reset()
}
