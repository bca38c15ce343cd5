package castly

import (
	"fmt"
	"reflect"
)

// convertToArray performs an element-wise cast into a fixed-size array.
// The source element count must match the destination length; the result
// is length- and order-preserving and the source is left untouched.
func (r *Registry) convertToArray(destValue, srcValue reflect.Value) error {
	srcKind := srcValue.Kind()
	if srcKind != reflect.Array && srcKind != reflect.Slice {
		return fmt.Errorf("unsupported conversion: %v to %v", srcValue.Type(), destValue.Type())
	}
	if srcValue.Len() != destValue.Len() {
		return fmt.Errorf("cannot convert %v to %v: length mismatch (%d vs %d)",
			srcValue.Type(), destValue.Type(), srcValue.Len(), destValue.Len())
	}
	for i := 0; i < srcValue.Len(); i++ {
		if err := r.convertValue(srcValue.Index(i), destValue.Index(i)); err != nil {
			return fmt.Errorf("cannot convert element %d: %w", i, err)
		}
	}
	return nil
}
