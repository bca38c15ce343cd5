package visit

import (
	"fmt"
	"reflect"
)

// Entries returns a visitor over the entries of a map value.
// Entry order follows the map's iteration order and is not stable.
func Entries(value reflect.Value) (Visitor[reflect.Value, reflect.Value], error) {
	if value.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %s", value.Kind())
	}
	return func(f func(key, element reflect.Value) (bool, error)) error {
		iterator := value.MapRange()
		for iterator.Next() {
			continueVisit, err := f(iterator.Key(), iterator.Value())
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
