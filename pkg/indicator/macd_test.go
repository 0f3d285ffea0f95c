package indicator

import (
	"testing"
)

func TestMACD_NewMACD(t *testing.T) {
	macd, err := NewMACD(12, 26, 9)
	if err != nil {
		t.Fatalf("Failed to create MACD: %v", err)
	}
	if macd.Name() != "macd_12_26_9" {
		t.Errorf("Expected name 'macd_12_26_9', got '%s'", macd.Name())
	}

	if _, err := NewMACD(26, 12, 9); err == nil {
		t.Error("Expected error when fast span is not shorter than slow span")
	}
}

func TestMACD_DefinedFromFirstRow(t *testing.T) {
	macd, _ := NewMACD(12, 26, 9)

	for i, bar := range makeSeries(linearCloses(100, 40)) {
		fast, slow, out := macd.Update(bar)
		if !fast.Valid || !slow.Valid {
			t.Fatalf("Expected defined EMAs at row %d", i)
		}
		if !out.MACD.Valid || !out.Signal.Valid || !out.Histogram.Valid {
			t.Fatalf("Expected defined MACD outputs at row %d", i)
		}
		if out.MACD.Float64 != fast.Float64-slow.Float64 {
			t.Errorf("MACD identity broken at row %d", i)
		}
		if out.Histogram.Float64 != out.MACD.Float64-out.Signal.Float64 {
			t.Errorf("Histogram identity broken at row %d", i)
		}
	}
}

func TestMACD_SignalSeed(t *testing.T) {
	macd, _ := NewMACD(12, 26, 9)

	_, _, out := macd.Update(makeSeries([]float64{100})[0])

	// Both EMAs seed at the first close, so macd[0] is 0 and the signal
	// seeds with it.
	if out.MACD.Float64 != 0 {
		t.Errorf("Expected macd 0 at row 0, got %f", out.MACD.Float64)
	}
	if out.Signal.Float64 != out.MACD.Float64 {
		t.Errorf("Expected signal seeded with macd[0], got %f", out.Signal.Float64)
	}
	if out.Histogram.Float64 != 0 {
		t.Errorf("Expected histogram 0 at row 0, got %f", out.Histogram.Float64)
	}
}

func TestMACD_Reset(t *testing.T) {
	macd, _ := NewMACD(12, 26, 9)
	for _, bar := range makeSeries(linearCloses(100, 40)) {
		macd.Update(bar)
	}

	macd.Reset()

	fast, _, out := macd.Update(makeSeries([]float64{50})[0])
	if fast.Float64 != 50 {
		t.Errorf("Expected fast EMA to reseed at 50 after reset, got %f", fast.Float64)
	}
	if out.MACD.Float64 != 0 {
		t.Errorf("Expected macd 0 after reset, got %f", out.MACD.Float64)
	}
}
