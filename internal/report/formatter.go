package report

import (
	"fmt"
	"strings"

	"github.com/sdcoffey/big"

	"github.com/mohamedkhairy/stock-analyzer/internal/analysis"
	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

// NotAvailable is how an undefined value is rendered. It is never rendered
// as 0: downstream text generation must be able to tell "not computable yet"
// from a real zero.
const NotAvailable = "n/a"

// FormatSnapshot renders a snapshot as "name: value" lines in the fixed
// reporting order, the input format the text-generation collaborator
// expects.
func FormatSnapshot(snap *models.Snapshot) string {
	var b strings.Builder
	for _, field := range models.SnapshotFields {
		fmt.Fprintf(&b, "%s: %s\n", field, formatValue(snap.Values[field]))
	}
	return b.String()
}

// FormatTrends renders the price trend summary as prose lines.
func FormatTrends(trends *analysis.PriceTrends) string {
	var b strings.Builder
	for _, period := range analysis.TrendPeriods {
		change := trends.Changes[period.Label]
		if !change.Valid {
			continue
		}
		fmt.Fprintf(&b, "%s price change: %s%% (change in closing price over the last %s)\n",
			period.Label, formatValue(change), period.Label)
	}
	if trends.HighClose.Valid {
		fmt.Fprintf(&b, "All-time high: $%s on %s (highest closing price in available data)\n",
			formatValue(trends.HighClose), trends.HighDate.Format("2006-01-02"))
	}
	if trends.LowClose.Valid {
		fmt.Fprintf(&b, "All-time low: $%s on %s (lowest closing price in available data)\n",
			formatValue(trends.LowClose), trends.LowDate.Format("2006-01-02"))
	}
	return b.String()
}

// formatValue renders a Value with two decimal places
func formatValue(v models.Value) string {
	if !v.Valid {
		return NotAvailable
	}
	return big.NewDecimal(v.Float64).FormattedString(2)
}
