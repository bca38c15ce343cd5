package castly

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/castly/visit"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type fieldPlan struct {
	name      string // effective name: tag name or field name, case formatted
	fieldType reflect.Type
	xField    *xunsafe.Field
	ignore    bool
	omitEmpty bool
}

type structPlan struct {
	fields []*fieldPlan
	byKey  map[string]*fieldPlan
}

// structPlan builds (and caches) field accessors and mapped names for a struct type.
func (r *Registry) structPlan(structType reflect.Type) *structPlan {
	return r.plans.GetOrPut(structType, func() *structPlan {
		return r.buildStructPlan(structType)
	})
}

func (r *Registry) buildStructPlan(structType reflect.Type) *structPlan {
	plan := &structPlan{byKey: map[string]*fieldPlan{}}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		aField := &fieldPlan{
			name:      field.Name,
			fieldType: field.Type,
			xField:    xunsafe.NewField(field),
		}
		if tag, err := format.Parse(field.Tag, r.options.TagName); err == nil && tag != nil {
			aField.ignore = tag.Ignore
			aField.omitEmpty = tag.Omitempty
			if tag.Name != "" {
				aField.name = tag.Name
			}
			if tag.CaseFormat != "" {
				if srcCase := text.DetectCaseFormat(aField.name); srcCase.IsDefined() {
					aField.name = srcCase.Format(aField.name, text.CaseFormat(tag.CaseFormat))
				}
			}
		}
		plan.fields = append(plan.fields, aField)
		plan.byKey[r.matchKey(aField.name)] = aField
		plan.byKey[r.matchKey(field.Name)] = aField
	}
	return plan
}

func (r *Registry) matchKey(name string) string {
	if r.options.CaseSensitive {
		return name
	}
	return strings.ToLower(name)
}

// convertToStruct performs a field-wise cast into a struct. Map sources
// are matched by key, struct sources by mapped field name; each matched
// value re-enters the dispatcher.
func (r *Registry) convertToStruct(destValue, srcValue reflect.Value) error {
	destType := destValue.Type()
	destPlan := r.structPlan(destType)

	srcEntries := map[string]interface{}{}
	switch srcValue.Kind() {
	case reflect.Map:
		entries, err := visit.Entries(srcValue)
		if err != nil {
			return err
		}
		if err := entries(func(key, value reflect.Value) (bool, error) {
			name := fmt.Sprintf("%v", key.Interface())
			srcEntries[r.matchKey(name)] = value.Interface()
			return true, nil
		}); err != nil {
			return err
		}
	case reflect.Struct:
		srcPlan := r.structPlan(srcValue.Type())
		holder := reflect.New(srcValue.Type())
		holder.Elem().Set(srcValue)
		ptr := xunsafe.AsPointer(holder.Interface())
		for _, field := range srcPlan.fields {
			if field.ignore {
				continue
			}
			srcEntries[r.matchKey(field.name)] = field.xField.Value(ptr)
		}
	default:
		return fmt.Errorf("unsupported conversion: %v to %v", srcValue.Type(), destType)
	}

	destPtr := xunsafe.AsPointer(destValue.Addr().Interface())
	for key, value := range srcEntries {
		field, ok := destPlan.byKey[key]
		if !ok {
			if !r.options.IgnoreUnmapped {
				return fmt.Errorf("no destination field for %q in %v", key, destType)
			}
			continue
		}
		if field.ignore {
			continue
		}
		if err := r.setField(destPtr, field, value); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) setField(ptr unsafe.Pointer, field *fieldPlan, value interface{}) error {
	if value == nil {
		if field.fieldType.Kind() == reflect.Ptr {
			field.xField.SetValue(ptr, reflect.Zero(field.fieldType).Interface())
		}
		return nil
	}
	target := reflect.New(field.fieldType).Elem()
	if err := r.convertValue(reflect.ValueOf(value), target); err != nil {
		return fmt.Errorf("cannot convert field %s: %w", field.name, err)
	}
	field.xField.SetValue(ptr, target.Interface())
	return nil
}
