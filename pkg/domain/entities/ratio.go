package entities

import "fmt"

// Ratio is a percentage or ratio that may be undefined. A zero
// denominator produces an undefined Ratio, which is distinct from a
// true 0% result: "no data" is never reported as a number.
type Ratio struct {
	Value   float64
	Defined bool
}

// DefinedRatio wraps a computed value
func DefinedRatio(v float64) Ratio {
	return Ratio{Value: v, Defined: true}
}

// UndefinedRatio marks a ratio whose denominator was zero
func UndefinedRatio() Ratio {
	return Ratio{}
}

// RatioOf divides numerator by denominator, undefined when the
// denominator is zero
func RatioOf(numerator, denominator float64) Ratio {
	if denominator == 0 {
		return UndefinedRatio()
	}
	return DefinedRatio(numerator / denominator)
}

// PercentOf computes numerator/denominator*100, undefined on a zero
// denominator
func PercentOf(numerator, denominator float64) Ratio {
	if denominator == 0 {
		return UndefinedRatio()
	}
	return DefinedRatio(numerator / denominator * 100)
}

// String method renders undefined ratios as N/A
func (r Ratio) String() string {
	if !r.Defined {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", r.Value)
}

// MarshalJSON renders undefined ratios as null
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Defined {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%g", r.Value)), nil
}
