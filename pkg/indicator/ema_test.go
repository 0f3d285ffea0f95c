package indicator

import (
	"math"
	"testing"
)

func TestEMA_NewEMA(t *testing.T) {
	ema, err := NewEMA(12)
	if err != nil {
		t.Fatalf("Failed to create EMA: %v", err)
	}
	if ema.Name() != "ema_12" {
		t.Errorf("Expected name 'ema_12', got '%s'", ema.Name())
	}

	if _, err := NewEMA(0); err == nil {
		t.Error("Expected error for span < 1")
	}
}

func TestEMA_SeedAndRecurrence(t *testing.T) {
	// Span 3 gives alpha = 0.5, so the recurrence stays exact in floats.
	ema, _ := NewEMA(3)

	series := makeSeries([]float64{10, 20, 30})
	expected := []float64{10, 15, 22.5}
	for i, bar := range series {
		val := ema.Update(bar)
		if !val.Valid {
			t.Fatalf("Expected defined EMA at row %d", i)
		}
		if val.Float64 != expected[i] {
			t.Errorf("Expected EMA %f at row %d, got %f", expected[i], i, val.Float64)
		}
	}
}

func TestEMA_MissingClose(t *testing.T) {
	ema, _ := NewEMA(3)

	series := makeSeries([]float64{10, math.NaN(), 20})

	val := ema.Update(series[0])
	if !val.Valid || val.Float64 != 10 {
		t.Fatalf("Expected EMA seeded at 10, got %+v", val)
	}

	// The missing row is undefined but does not poison the recurrence.
	val = ema.Update(series[1])
	if val.Valid {
		t.Errorf("Expected undefined EMA on missing close, got %f", val.Float64)
	}

	val = ema.Update(series[2])
	if !val.Valid || val.Float64 != 15 {
		t.Errorf("Expected EMA to resume at 15, got %+v", val)
	}
}

func TestEMA_Reset(t *testing.T) {
	ema, _ := NewEMA(3)
	for _, bar := range makeSeries([]float64{10, 20, 30}) {
		ema.Update(bar)
	}

	ema.Reset()

	val := ema.Update(makeSeries([]float64{50})[0])
	if !val.Valid || val.Float64 != 50 {
		t.Errorf("Expected EMA to reseed at 50 after reset, got %+v", val)
	}
}
