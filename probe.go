package castly

import (
	"reflect"
)

// Castable reports whether the registry can resolve a conversion
// strategy for the (from, to) type pair: a user registration, an
// assignment or direct cast, a primitive coercion, the codec bridge, or
// an element-wise array, slice, map or struct cast. Probing has no side
// effects and never fails; pairs the dispatcher cannot serve yield false.
func (r *Registry) Castable(from, to reflect.Type) bool {
	return r.castable(from, to, map[typeKey]bool{})
}

// Castable probes the default registry.
func Castable(from, to reflect.Type) bool {
	return Default().Castable(from, to)
}

func (r *Registry) castable(from, to reflect.Type, seen map[typeKey]bool) bool {
	if from == nil || to == nil {
		return false
	}
	key := typeKey{from, to}
	if verdict, ok := seen[key]; ok {
		return verdict // recursive element types resolve optimistically
	}
	seen[key] = true

	if _, ok := r.lookup(from, to); ok {
		return true
	}
	if from.AssignableTo(to) {
		return true
	}
	if canCodec(from, to) {
		return true
	}
	if from.Kind() == reflect.Interface {
		return true // resolved against the dynamic type per value
	}
	if from.Kind() == reflect.Ptr {
		return r.castable(from.Elem(), to, seen)
	}
	if canCoerce(from, to) {
		return true
	}
	if canDirectCast(from, to) {
		return true
	}

	switch to.Kind() {
	case reflect.Ptr:
		return r.castable(from, to.Elem(), seen)
	case reflect.Array:
		if from.Kind() == reflect.Array && from.Len() != to.Len() {
			return false
		}
		if from.Kind() == reflect.Array || from.Kind() == reflect.Slice {
			return r.castable(from.Elem(), to.Elem(), seen)
		}
	case reflect.Slice:
		if to.Elem().Kind() == reflect.Uint8 && from.Kind() == reflect.String {
			return true
		}
		if from.Kind() == reflect.Array || from.Kind() == reflect.Slice {
			return r.castable(from.Elem(), to.Elem(), seen)
		}
		// single value promoted to a one-element slice
		return r.castable(from, to.Elem(), seen)
	case reflect.Map:
		if from.Kind() == reflect.Map {
			return r.castable(from.Key(), to.Key(), seen) && r.castable(from.Elem(), to.Elem(), seen)
		}
		if from.Kind() == reflect.Struct {
			return r.castable(stringType, to.Key(), seen)
		}
	case reflect.Struct:
		if to == timeType {
			return canCoerceToTime(from)
		}
		return from.Kind() == reflect.Struct || from.Kind() == reflect.Map
	}
	return false
}

// canDirectCast reports whether a Go conversion from one type to the
// other preserves cast semantics. Numeric to string conversions are
// excluded (they produce rune strings, the coercion path formats
// instead), as are slice to array conversions (they panic on short
// slices, the array cast length-checks instead).
func canDirectCast(from, to reflect.Type) bool {
	if from == nil || to == nil || !from.ConvertibleTo(to) {
		return false
	}
	if to.Kind() == reflect.String && isNumericKind(from.Kind()) {
		return false
	}
	if from.Kind() == reflect.Slice {
		if to.Kind() == reflect.Array {
			return false
		}
		if to.Kind() == reflect.Ptr && to.Elem().Kind() == reflect.Array {
			return false
		}
	}
	return true
}

func canCoerce(from, to reflect.Type) bool {
	switch to.Kind() {
	case reflect.String:
		return isScalarKind(from.Kind()) || isByteSlice(from)
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return isScalarKind(from.Kind())
	}
	return false
}

func canCoerceToTime(from reflect.Type) bool {
	if from == timeType {
		return true
	}
	switch from.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isScalarKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.String, reflect.Bool:
		return true
	}
	return isNumericKind(kind)
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isByteSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

var stringType = reflect.TypeOf("")
