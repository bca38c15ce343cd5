package castly

import (
	"fmt"
	"reflect"

	"github.com/viant/castly/visit"
	"github.com/viant/xunsafe"
)

// convertToMap performs an element-wise cast into a map. Map sources are
// converted entry by entry with both key and value re-entering the
// dispatcher; struct sources are flattened into entries keyed by their
// mapped field names.
func (r *Registry) convertToMap(destValue, srcValue reflect.Value) error {
	destType := destValue.Type()
	destKeyType := destType.Key()
	destValType := destType.Elem()

	result := reflect.MakeMap(destType)

	switch srcValue.Kind() {
	case reflect.Map:
		entries, err := visit.Entries(srcValue)
		if err != nil {
			return err
		}
		if err := entries(func(key, value reflect.Value) (bool, error) {
			destKey := reflect.New(destKeyType).Elem()
			if err := r.convertValue(key, destKey); err != nil {
				return false, fmt.Errorf("cannot convert map key: %w", err)
			}
			destVal := reflect.New(destValType).Elem()
			if err := r.convertValue(value, destVal); err != nil {
				return false, fmt.Errorf("cannot convert map value: %w", err)
			}
			result.SetMapIndex(destKey, destVal)
			return true, nil
		}); err != nil {
			return err
		}
	case reflect.Struct:
		plan := r.structPlan(srcValue.Type())
		holder := reflect.New(srcValue.Type())
		holder.Elem().Set(srcValue)
		ptr := xunsafe.AsPointer(holder.Interface())
		for _, field := range plan.fields {
			if field.ignore {
				continue
			}
			value := field.xField.Value(ptr)
			if field.omitEmpty && isEmptyValue(reflect.ValueOf(value)) {
				continue
			}
			destKey := reflect.New(destKeyType).Elem()
			if err := r.convertValue(reflect.ValueOf(field.name), destKey); err != nil {
				return fmt.Errorf("cannot convert field name %s to key type: %w", field.name, err)
			}
			destVal := reflect.New(destValType).Elem()
			if value != nil {
				if err := r.convertValue(reflect.ValueOf(value), destVal); err != nil {
					return fmt.Errorf("cannot convert field %s: %w", field.name, err)
				}
			}
			result.SetMapIndex(destKey, destVal)
		}
	default:
		return fmt.Errorf("unsupported conversion: %v to %v", srcValue.Type(), destType)
	}

	destValue.Set(result)
	return nil
}

func isEmptyValue(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	return v.IsZero()
}
