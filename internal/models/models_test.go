package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func bar(day int, close float64) DailyBar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return DailyBar{
		Date:   start.AddDate(0, 0, day),
		Open:   close,
		High:   close,
		Low:    close,
		Close:  close,
		Volume: 1000,
	}
}

func TestDailyBar_Validate(t *testing.T) {
	tests := []struct {
		name    string
		bar     DailyBar
		wantErr error
	}{
		{
			name:    "valid bar",
			bar:     DailyBar{Date: time.Now(), Open: 100, High: 101, Low: 99, Close: 100, Volume: 10},
			wantErr: nil,
		},
		{
			name:    "zero date",
			bar:     DailyBar{Open: 100, High: 101, Low: 99, Close: 100},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "non-positive close",
			bar:     DailyBar{Date: time.Now(), Open: 100, High: 101, Low: 99, Close: 0},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "high below low",
			bar:     DailyBar{Date: time.Now(), Open: 100, High: 99, Low: 101, Close: 100},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "negative volume",
			bar:     DailyBar{Date: time.Now(), Open: 100, High: 101, Low: 99, Close: 100, Volume: -1},
			wantErr: ErrInvalidVolume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.bar.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPriceSeries_Validate(t *testing.T) {
	empty := PriceSeries{}
	if err := empty.Validate(); err != ErrEmptySeries {
		t.Errorf("Expected ErrEmptySeries, got %v", err)
	}

	ordered := PriceSeries{bar(0, 100), bar(1, 101), bar(4, 102)}
	if err := ordered.Validate(); err != nil {
		t.Errorf("Expected calendar gaps to be valid, got %v", err)
	}

	descending := PriceSeries{bar(1, 100), bar(0, 101)}
	if err := descending.Validate(); err != ErrUnorderedSeries {
		t.Errorf("Expected ErrUnorderedSeries, got %v", err)
	}

	duplicate := PriceSeries{bar(0, 100), bar(0, 101)}
	if err := duplicate.Validate(); err != ErrUnorderedSeries {
		t.Errorf("Expected ErrUnorderedSeries for duplicate dates, got %v", err)
	}
}

func TestValue_Float(t *testing.T) {
	v := Float(1.5)
	if !v.Valid || v.Float64 != 1.5 {
		t.Errorf("Expected defined 1.5, got %+v", v)
	}

	// A computed zero is a real value, distinct from undefined.
	zero := Float(0)
	if !zero.Valid {
		t.Error("Expected zero to be a defined value")
	}

	// NaN degrades to the explicit undefined state.
	nan := Float(math.NaN())
	if nan.Valid {
		t.Error("Expected NaN to map to undefined")
	}
}

func TestValue_JSON(t *testing.T) {
	type payload struct {
		RSI Value `json:"rsi"`
		MA  Value `json:"ma"`
	}

	data, err := json.Marshal(payload{RSI: Undefined, MA: Float(114.5)})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"rsi":null,"ma":114.5}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}

	var decoded payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.RSI.Valid {
		t.Error("Expected null to decode as undefined")
	}
	if !decoded.MA.Valid || decoded.MA.Float64 != 114.5 {
		t.Errorf("Expected 114.5, got %+v", decoded.MA)
	}
}

func TestPriceSeries_Closes(t *testing.T) {
	series := PriceSeries{bar(0, 100), bar(1, 101.5)}
	closes := series.Closes()
	if len(closes) != 2 || closes[0] != 100 || closes[1] != 101.5 {
		t.Errorf("Unexpected closes: %v", closes)
	}
}
