package indicator

import (
	"testing"
	"time"

	"github.com/mohamedkhairy/stock-analyzer/internal/models"
)

func ohlcBar(day int, open, high, low, close float64) models.DailyBar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return models.DailyBar{
		Date:  start.AddDate(0, 0, day),
		Open:  open,
		High:  high,
		Low:   low,
		Close: close,
	}
}

func TestATR_NewATR(t *testing.T) {
	atr, err := NewATR(14)
	if err != nil {
		t.Fatalf("Failed to create ATR: %v", err)
	}
	if atr.Name() != "atr_14" {
		t.Errorf("Expected name 'atr_14', got '%s'", atr.Name())
	}

	if _, err := NewATR(0); err == nil {
		t.Error("Expected error for period < 1")
	}
}

func TestATR_WarmUp(t *testing.T) {
	atr, _ := NewATR(14)

	for i, bar := range makeSeries(linearCloses(100, 20)) {
		val := atr.Update(bar)
		if i == 0 && atr.TrueRange().Valid {
			t.Error("Expected undefined true range at row 0")
		}
		if i >= 1 && !atr.TrueRange().Valid {
			t.Errorf("Expected defined true range at row %d", i)
		}
		if i < 14 && val.Valid {
			t.Errorf("Expected undefined ATR at row %d, got %f", i, val.Float64)
		}
		if i >= 14 && !val.Valid {
			t.Errorf("Expected defined ATR at row %d", i)
		}
	}
}

func TestATR_TrueRangeComponents(t *testing.T) {
	atr, _ := NewATR(3)

	atr.Update(ohlcBar(0, 100, 101, 99, 100))

	tests := []struct {
		name     string
		bar      models.DailyBar
		expected float64
	}{
		// Previous close 100 inside the day's range: TR is high - low.
		{"intraday range dominates", ohlcBar(1, 100, 103, 98, 102), 5},
		// Gap up: high - prevClose dominates. Previous close is 102.
		{"gap up dominates", ohlcBar(2, 107, 108, 106, 107), 6},
		// Gap down: prevClose - low dominates. Previous close is 107.
		{"gap down dominates", ohlcBar(3, 101, 102, 100, 101), 7},
	}

	for _, tt := range tests {
		atr.Update(tt.bar)
		tr := atr.TrueRange()
		if !tr.Valid {
			t.Fatalf("%s: expected defined true range", tt.name)
		}
		if tr.Float64 != tt.expected {
			t.Errorf("%s: expected TR %f, got %f", tt.name, tt.expected, tr.Float64)
		}
	}
}

func TestATR_RollingMean(t *testing.T) {
	atr, _ := NewATR(3)

	atr.Update(ohlcBar(0, 100, 101, 99, 100))
	atr.Update(ohlcBar(1, 100, 103, 98, 102))         // TR 5
	atr.Update(ohlcBar(2, 107, 108, 106, 107))        // TR 6
	val := atr.Update(ohlcBar(3, 101, 102, 100, 101)) // TR 7

	if !val.Valid {
		t.Fatal("Expected defined ATR once three true ranges exist")
	}
	if val.Float64 != 6.0 {
		t.Errorf("Expected ATR 6 (mean of 5, 6, 7), got %f", val.Float64)
	}
}

func TestATR_FlatSeries(t *testing.T) {
	atr, _ := NewATR(14)

	// Constant price, high == low == close: every true range is zero.
	closes := make([]float64, 100)
	for i := range closes {
		closes[i] = 100
	}
	for i, bar := range makeSeries(closes) {
		val := atr.Update(bar)
		if tr := atr.TrueRange(); tr.Valid && tr.Float64 != 0 {
			t.Errorf("Expected TR 0 at row %d, got %f", i, tr.Float64)
		}
		if val.Valid && val.Float64 != 0 {
			t.Errorf("Expected ATR 0 at row %d, got %f", i, val.Float64)
		}
	}
}

func TestATR_Reset(t *testing.T) {
	atr, _ := NewATR(3)
	for _, bar := range makeSeries(linearCloses(100, 10)) {
		atr.Update(bar)
	}

	atr.Reset()

	val := atr.Update(ohlcBar(0, 100, 101, 99, 100))
	if val.Valid || atr.TrueRange().Valid {
		t.Error("Expected undefined ATR and TR after reset")
	}
}
