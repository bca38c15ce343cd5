package castly

import "reflect"

// Deferred is a short-lived conversion proxy: it records a source value
// and converts it once the target type is known, either from a pointer
// destination or a reflect.Type. It does not own the source; when the
// source is a pointer the pointee has to stay alive until the proxy is
// materialized, so a Deferred should not outlive the expression that
// produced it.
type Deferred struct {
	registry *Registry
	source   interface{}
}

// Defer returns a deferred conversion over the source value.
func (r *Registry) Defer(src interface{}) Deferred {
	return Deferred{registry: r, source: src}
}

// Defer returns a deferred conversion backed by the default registry.
func Defer(src interface{}) Deferred {
	return Default().Defer(src)
}

// Into materializes the conversion into the value pointed to by dest.
func (d Deferred) Into(dest interface{}) error {
	return d.registry.Convert(d.source, dest)
}

// Value materializes the conversion to the supplied target type.
func (d Deferred) Value(target reflect.Type) (interface{}, error) {
	return d.registry.Cast(d.source, target)
}

// Source returns the wrapped source value.
func (d Deferred) Source() interface{} {
	return d.source
}
