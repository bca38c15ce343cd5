package castly

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

// Convert converts the source value into the value pointed to by dest,
// resolving the conversion strategy from the registry. User-registered
// conversions are consulted first, then assignment, the gojay codec
// bridge, primitive coercions, direct casts and finally the element-wise
// array, slice, map and struct strategies.
func (r *Registry) Convert(src, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src == nil {
		return nil // Nothing to convert
	}
	return r.convertValue(reflect.ValueOf(src), destValue.Elem())
}

// Cast converts the source value to the supplied target type.
func (r *Registry) Cast(src interface{}, target reflect.Type) (interface{}, error) {
	if target == nil {
		return nil, errors.New("target type cannot be nil")
	}
	destPtr := reflect.New(target)
	if src == nil {
		return destPtr.Elem().Interface(), nil
	}
	if err := r.convertValue(reflect.ValueOf(src), destPtr.Elem()); err != nil {
		return nil, err
	}
	return destPtr.Elem().Interface(), nil
}

// Convert converts src into the value pointed to by dest using the default registry.
func Convert(src, dest interface{}) error {
	return Default().Convert(src, dest)
}

// Cast converts the source value to type T using the default registry.
func Cast[T any](src interface{}) (T, error) {
	var result T
	if err := Default().Convert(src, &result); err != nil {
		return result, err
	}
	return result, nil
}

// MustCast is like Cast but panics on failure; intended for init-time use.
func MustCast[T any](src interface{}) T {
	result, err := Cast[T](src)
	if err != nil {
		panic(err)
	}
	return result
}

// convertValue dispatches a single conversion; destValue must be addressable.
func (r *Registry) convertValue(srcValue, destValue reflect.Value) error {
	if srcValue.Kind() == reflect.Interface {
		if srcValue.IsNil() {
			destValue.Set(reflect.Zero(destValue.Type()))
			return nil
		}
		srcValue = srcValue.Elem()
	}
	srcType := srcValue.Type()
	destType := destValue.Type()

	if fn, ok := r.lookup(srcType, destType); ok {
		return fn(srcValue.Interface(), destValue.Addr().Interface(), r.options)
	}

	if srcType.AssignableTo(destType) {
		if r.options.ClonePointerData && srcType.Kind() == reflect.Ptr && !srcValue.IsNil() {
			return r.clonePointerValue(destValue, srcValue)
		}
		destValue.Set(srcValue)
		return nil
	}

	if handled, err := r.tryCodec(srcValue, destValue); handled {
		return err
	}

	if srcValue.Kind() == reflect.Ptr {
		elem := indirect(srcValue)
		if !elem.IsValid() {
			return nil // Source pointer is nil, nothing to do
		}
		return r.convertValue(elem, destValue)
	}

	switch destType.Kind() {
	case reflect.String:
		return r.convertToString(destValue, srcValue)
	case reflect.Bool:
		return r.convertToBool(destValue, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.convertToInt(destValue, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return r.convertToUint(destValue, srcValue)
	case reflect.Float32, reflect.Float64:
		return r.convertToFloat(destValue, srcValue)
	}

	if canDirectCast(srcType, destType) {
		destValue.Set(srcValue.Convert(destType))
		return nil
	}

	return r.convertComplex(destValue, srcValue)
}

func (r *Registry) convertComplex(destValue, srcValue reflect.Value) error {
	destType := destValue.Type()

	switch destType.Kind() {
	case reflect.Ptr:
		elemPtr := reflect.New(destType.Elem())
		if err := r.convertValue(srcValue, elemPtr.Elem()); err != nil {
			return err
		}
		destValue.Set(elemPtr)
		return nil
	case reflect.Array:
		return r.convertToArray(destValue, srcValue)
	case reflect.Slice:
		return r.convertToSlice(destValue, srcValue)
	case reflect.Map:
		return r.convertToMap(destValue, srcValue)
	case reflect.Struct:
		if destType == timeType {
			return r.convertToTime(destValue, srcValue)
		}
		return r.convertToStruct(destValue, srcValue)
	}

	return fmt.Errorf("unsupported conversion: %v to %v", srcValue.Type(), destType)
}

func (r *Registry) clonePointerValue(destValue, srcValue reflect.Value) error {
	srcElem := srcValue.Elem()
	clone := reflect.New(srcElem.Type())
	clone.Elem().Set(srcElem)
	destValue.Set(clone)
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
