package castly

import (
	"fmt"
	"reflect"

	"github.com/viant/castly/visit"
)

// convertToSlice performs an element-wise cast into a slice. The result
// is sized to the source element count and filled in iteration order;
// element conversion re-enters the dispatcher, so nested containers of
// convertible element types compose recursively.
func (r *Registry) convertToSlice(destValue, srcValue reflect.Value) error {
	destType := destValue.Type()
	destElemType := destType.Elem()

	if destElemType.Kind() == reflect.Uint8 && srcValue.Kind() == reflect.String {
		destValue.SetBytes([]byte(srcValue.String()))
		return nil
	}

	if srcValue.Kind() != reflect.Slice && srcValue.Kind() != reflect.Array {
		// Promote a single value to a one-element slice
		result := reflect.MakeSlice(destType, 1, 1)
		if err := r.convertValue(srcValue, result.Index(0)); err != nil {
			return err
		}
		destValue.Set(result)
		return nil
	}

	length := srcValue.Len()
	result := reflect.MakeSlice(destType, length, length)
	elements, err := visit.Elements(srcValue)
	if err != nil {
		return err
	}
	if err := elements(func(i int, element reflect.Value) (bool, error) {
		if err := r.convertValue(element, result.Index(i)); err != nil {
			return false, fmt.Errorf("cannot convert element %d: %w", i, err)
		}
		return true, nil
	}); err != nil {
		return err
	}
	destValue.Set(result)
	return nil
}
