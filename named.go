package castly

import (
	"fmt"
	"reflect"

	"github.com/viant/x"
)

// RegisterNamed registers a conversion target type under the supplied name.
// The package path is cleared so the registry key is the bare name CastNamed
// looks up.
func (r *Registry) RegisterNamed(name string, target reflect.Type) {
	r.types.Register(x.NewType(target, x.WithName(name), x.WithPkgPath("")))
}

// CastNamed converts the source value to a previously registered named type.
// It allows conversion targets that are only known at run time, e.g. types
// generated from an external schema.
func (r *Registry) CastNamed(src interface{}, typeName string) (interface{}, error) {
	registered := r.types.Lookup(typeName)
	if registered == nil {
		return nil, fmt.Errorf("unknown conversion target: %q", typeName)
	}
	return r.Cast(src, registered.Type)
}

// RegisterNamed registers a named conversion target with the default registry.
func RegisterNamed(name string, target reflect.Type) {
	Default().RegisterNamed(name, target)
}

// CastNamed converts using the default registry.
func CastNamed(src interface{}, typeName string) (interface{}, error) {
	return Default().CastNamed(src, typeName)
}
