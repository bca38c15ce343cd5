// Package checked provides overflow-checked numeric conversions.
package checked

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Cast converts between integer types, failing on overflow or sign loss.
func Cast[To, From constraints.Integer](v From) (To, error) {
	result := To(v)
	// Sign must survive and converting back must give the original value.
	if (v < 0) != (result < 0) || From(result) != v {
		return 0, fmt.Errorf("integer overflow: %T(%v) cannot be converted to %T", v, v, result)
	}
	return result, nil
}

// MustCast is like Cast but panics on overflow.
func MustCast[To, From constraints.Integer](v From) To {
	result, err := Cast[To](v)
	if err != nil {
		panic(err)
	}
	return result
}

// Int64ToUint64 converts int64 to uint64, failing on negative input.
func Int64ToUint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("cannot convert negative value %d to unsigned int", v)
	}
	return uint64(v), nil
}

// Uint64ToInt64 converts uint64 to int64, failing when the value is too large.
func Uint64ToInt64(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int64 (too large)", v)
	}
	return int64(v), nil
}

// Float64ToInt64 truncates a float to int64, failing on NaN or out-of-range values.
func Float64ToInt64(v float64) (int64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("cannot convert NaN to int64")
	}
	if v < math.MinInt64 || v >= math.MaxInt64 {
		return 0, fmt.Errorf("value %f cannot be converted to int64 (out of range)", v)
	}
	return int64(v), nil
}

// Float64ToUint64 truncates a float to uint64, failing on NaN, negative
// or out-of-range values.
func Float64ToUint64(v float64) (uint64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("cannot convert NaN to uint64")
	}
	if v < 0 {
		return 0, fmt.Errorf("cannot convert negative value %f to unsigned int", v)
	}
	if v >= math.MaxUint64 {
		return 0, fmt.Errorf("value %f cannot be converted to uint64 (too large)", v)
	}
	return uint64(v), nil
}
