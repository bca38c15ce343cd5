package castly

import (
	"reflect"

	"github.com/francoispqt/gojay"
)

var (
	jsonMarshalerType   = reflect.TypeOf((*gojay.MarshalerJSONObject)(nil)).Elem()
	jsonUnmarshalerType = reflect.TypeOf((*gojay.UnmarshalerJSONObject)(nil)).Elem()
)

// tryCodec bridges gojay-aware values and raw JSON: a source implementing
// gojay.MarshalerJSONObject converts into a string or []byte destination,
// and a string or []byte source converts into a destination whose pointer
// implements gojay.UnmarshalerJSONObject.
func (r *Registry) tryCodec(srcValue, destValue reflect.Value) (bool, error) {
	destType := destValue.Type()

	if destType.Kind() == reflect.String || isByteSlice(destType) {
		if marshaler, ok := asJSONMarshaler(srcValue); ok {
			data, err := gojay.MarshalJSONObject(marshaler)
			if err != nil {
				return true, err
			}
			if destType.Kind() == reflect.String {
				destValue.SetString(string(data))
			} else {
				destValue.SetBytes(data)
			}
			return true, nil
		}
	}

	if reflect.PtrTo(destType).Implements(jsonUnmarshalerType) {
		var data []byte
		switch {
		case srcValue.Kind() == reflect.String:
			data = []byte(srcValue.String())
		case isByteSlice(srcValue.Type()):
			data = srcValue.Bytes()
		default:
			return false, nil
		}
		unmarshaler := destValue.Addr().Interface().(gojay.UnmarshalerJSONObject)
		return true, gojay.UnmarshalJSONObject(data, unmarshaler)
	}

	return false, nil
}

func asJSONMarshaler(srcValue reflect.Value) (gojay.MarshalerJSONObject, bool) {
	if srcValue.Type().Implements(jsonMarshalerType) {
		return srcValue.Interface().(gojay.MarshalerJSONObject), true
	}
	if reflect.PtrTo(srcValue.Type()).Implements(jsonMarshalerType) {
		// pointer receiver; copy into an addressable holder
		holder := reflect.New(srcValue.Type())
		holder.Elem().Set(srcValue)
		return holder.Interface().(gojay.MarshalerJSONObject), true
	}
	return nil, false
}

func canCodec(from, to reflect.Type) bool {
	if from == nil || to == nil {
		return false
	}
	if (to.Kind() == reflect.String || isByteSlice(to)) &&
		(from.Implements(jsonMarshalerType) || reflect.PtrTo(from).Implements(jsonMarshalerType)) {
		return true
	}
	if (from.Kind() == reflect.String || isByteSlice(from)) &&
		reflect.PtrTo(to).Implements(jsonUnmarshalerType) {
		return true
	}
	return false
}
