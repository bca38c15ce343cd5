package castly

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/castly/internal/checked"
)

func (r *Registry) convertToString(destValue, srcValue reflect.Value) error {
	var result string

	switch srcValue.Kind() {
	case reflect.String:
		result = srcValue.String()
	case reflect.Bool:
		result = strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = strconv.FormatUint(srcValue.Uint(), 10)
	case reflect.Float32:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 64)
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() == reflect.Uint8 { // []byte
			result = string(srcValue.Bytes())
		} else {
			return fmt.Errorf("cannot convert %v to string", srcValue.Type())
		}
	default:
		return fmt.Errorf("cannot convert %v to string", srcValue.Type())
	}

	destValue.SetString(result)
	return nil
}

func (r *Registry) convertToBool(destValue, srcValue reflect.Value) error {
	var result bool

	switch srcValue.Kind() {
	case reflect.Bool:
		result = srcValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float() != 0
	case reflect.String:
		var err error
		result, err = strconv.ParseBool(srcValue.String())
		if err != nil {
			// Fall back to numeric interpretation
			if f, fErr := strconv.ParseFloat(srcValue.String(), 64); fErr == nil {
				result = f != 0
				break
			}
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to bool", srcValue.Type())
	}

	destValue.SetBool(result)
	return nil
}

func (r *Registry) convertToInt(destValue, srcValue reflect.Value) error {
	var result int64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var err error
		if result, err = checked.Uint64ToInt64(srcValue.Uint()); err != nil {
			return err
		}
	case reflect.Float32, reflect.Float64:
		var err error
		if result, err = checked.Float64ToInt64(srcValue.Float()); err != nil {
			return err
		}
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if strings.Contains(srcValue.String(), ".") {
			var f float64
			if f, err = strconv.ParseFloat(srcValue.String(), 64); err == nil {
				result, err = checked.Float64ToInt64(f)
			}
		} else {
			result, err = strconv.ParseInt(srcValue.String(), 0, 64)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to int", srcValue.Type())
	}

	if destValue.OverflowInt(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Type())
	}
	destValue.SetInt(result)
	return nil
}

func (r *Registry) convertToUint(destValue, srcValue reflect.Value) error {
	var result uint64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var err error
		if result, err = checked.Int64ToUint64(srcValue.Int()); err != nil {
			return err
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint()
	case reflect.Float32, reflect.Float64:
		var err error
		if result, err = checked.Float64ToUint64(srcValue.Float()); err != nil {
			return err
		}
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if strings.Contains(srcValue.String(), ".") {
			var f float64
			if f, err = strconv.ParseFloat(srcValue.String(), 64); err == nil {
				result, err = checked.Float64ToUint64(f)
			}
		} else {
			result, err = strconv.ParseUint(srcValue.String(), 0, 64)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to uint", srcValue.Type())
	}

	if destValue.OverflowUint(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Type())
	}
	destValue.SetUint(result)
	return nil
}

func (r *Registry) convertToFloat(destValue, srcValue reflect.Value) error {
	var result float64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = float64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float()
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if result, err = strconv.ParseFloat(srcValue.String(), 64); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to float", srcValue.Type())
	}

	destValue.SetFloat(result)
	return nil
}

func (r *Registry) convertToTime(destValue, srcValue reflect.Value) error {
	var t time.Time
	var err error

	switch srcValue.Kind() {
	case reflect.String:
		layout := r.options.DateLayout
		if layout == "" {
			layout = DefaultDateLayout
		}
		if t, err = time.Parse(layout, srcValue.String()); err != nil {
			formats := []string{
				time.RFC3339Nano,
				time.RFC3339,
				"2006-01-02T15:04:05",
				"2006-01-02 15:04:05",
				"2006-01-02",
			}
			for _, format := range formats {
				if t, err = time.Parse(format, srcValue.String()); err == nil {
					break
				}
			}
			if err != nil {
				return fmt.Errorf("cannot parse time string %q: %w", srcValue.String(), err)
			}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		t = unixTime(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		t = unixTime(int64(srcValue.Uint()))
	case reflect.Float32, reflect.Float64:
		seconds := int64(srcValue.Float())
		nanos := int64((srcValue.Float() - float64(seconds)) * 1e9)
		t = time.Unix(seconds, nanos)
	case reflect.Struct:
		if srcValue.Type() == timeType {
			t = srcValue.Interface().(time.Time)
		} else {
			return fmt.Errorf("cannot convert %v to time.Time", srcValue.Type())
		}
	default:
		return fmt.Errorf("cannot convert %v to time.Time", srcValue.Type())
	}

	destValue.Set(reflect.ValueOf(t))
	return nil
}

// unixTime treats very large values as nanoseconds, otherwise as seconds.
func unixTime(value int64) time.Time {
	if value > 1e10 {
		return time.Unix(0, value)
	}
	return time.Unix(value, 0)
}
