package models

import (
	"encoding/json"
	"math"
)

// Value is a float that is either defined or not. Windowed indicators are
// undefined during their warm-up period; an undefined value is distinct from
// a computed zero and must never be substituted with one.
type Value struct {
	Float64 float64
	Valid   bool
}

// Undefined is the zero Value.
var Undefined = Value{}

// Float returns a defined Value. A NaN input yields Undefined, so missing
// input data degrades to the explicit undefined state instead of leaking NaN
// into downstream consumers.
func Float(f float64) Value {
	if math.IsNaN(f) {
		return Undefined
	}
	return Value{Float64: f, Valid: true}
}

// MarshalJSON encodes an undefined Value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.Float64)
}

// UnmarshalJSON decodes null as undefined.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Undefined
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = Float(f)
	return nil
}
