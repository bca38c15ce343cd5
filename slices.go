package castly

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number constrains the numeric types eligible for the fast slice path.
type Number interface {
	constraints.Integer | constraints.Float
}

// CastSlice converts a slice element-wise through the default registry.
func CastSlice[To, From any](source []From) ([]To, error) {
	result := make([]To, len(source))
	for i, v := range source {
		converted, err := Cast[To](v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert element %d: %w", i, err)
		}
		result[i] = converted
	}
	return result, nil
}

// CastSliceFunc converts a slice element-wise with the supplied function.
func CastSliceFunc[To, From any](source []From, conv func(From) To) []To {
	result := make([]To, len(source))
	for i, v := range source {
		result[i] = conv(v)
	}
	return result
}

// CastNumericSlice converts a numeric slice using plain Go conversions,
// bypassing the registry.
func CastNumericSlice[To, From Number](source []From) []To {
	result := make([]To, len(source))
	for i, v := range source {
		result[i] = To(v)
	}
	return result
}
