package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mohamedkhairy/stock-analyzer/internal/analysis"
	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

func TestFormatSnapshot(t *testing.T) {
	snap := &models.Snapshot{
		Date: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Values: map[string]models.Value{
			"close":          models.Float(124),
			"rsi":            models.Float(100),
			"macd":           models.Float(1.2345),
			"macd_signal":    models.Float(1.1),
			"macd_histogram": models.Float(0.1345),
			"atr":            models.Undefined,
			"bb_upper":       models.Undefined,
			"bb_middle":      models.Undefined,
			"bb_lower":       models.Undefined,
		},
	}

	out := FormatSnapshot(snap)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, len(models.SnapshotFields))

	// Fixed reporting order, one field per line.
	assert.Equal(t, "close: 124.00", lines[0])
	assert.Equal(t, "rsi: 100.00", lines[1])
	assert.Equal(t, "macd: 1.23", lines[2])

	// Undefined values render as n/a, never as 0.
	assert.Contains(t, out, "atr: n/a")
	assert.Contains(t, out, "bb_upper: n/a")
	assert.NotContains(t, out, "atr: 0")
}

func TestFormatTrends(t *testing.T) {
	trends := &analysis.PriceTrends{
		AsOf: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Changes: map[string]models.Value{
			"3m":  models.Float(12.5),
			"6m":  models.Undefined,
			"12m": models.Float(-3.25),
		},
		HighClose: models.Float(200),
		HighDate:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		LowClose:  models.Float(100.25),
		LowDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	out := FormatTrends(trends)
	assert.Contains(t, out, "3m price change: 12.50%")
	assert.Contains(t, out, "12m price change: -3.25%")
	assert.NotContains(t, out, "6m price change")
	assert.Contains(t, out, "All-time high: $200.00 on 2024-12-31")
	assert.Contains(t, out, "All-time low: $100.25 on 2024-02-01")
}
