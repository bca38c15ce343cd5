package visit

import (
	"fmt"
	"reflect"
)

// Elements returns a visitor over the elements of a slice or array value,
// keyed by index, in iteration order.
func Elements(value reflect.Value) (Visitor[int, reflect.Value], error) {
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %s", value.Kind())
	}
	return func(f func(key int, element reflect.Value) (bool, error)) error {
		for i := 0; i < value.Len(); i++ {
			continueVisit, err := f(i, value.Index(i))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// ElementsOf returns a visitor over a typed slice, keyed by index.
func ElementsOf[E any](slice []E) Visitor[int, E] {
	return func(f func(key int, element E) (bool, error)) error {
		for i, element := range slice {
			continueVisit, err := f(i, element)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
