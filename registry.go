package castly

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/castly/visit"
	"github.com/viant/x"
)

// ConversionFunc defines a custom conversion function; dest is a pointer
// to the destination value.
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

// Registry maps (source, target) type pairs to conversion strategies.
// User-registered conversions always take precedence over the built-in
// strategies. A Registry is safe for concurrent use.
type Registry struct {
	options    Options
	customConv sync.Map // map[typeKey]ConversionFunc
	plans      *visit.SyncMap[reflect.Type, *structPlan]
	types      *x.Registry
}

// NewRegistry creates a new conversion registry with the provided options.
func NewRegistry(options Options) *Registry {
	if options.TagName == "" {
		options.TagName = DefaultTagName
	}
	if options.DateLayout == "" {
		options.DateLayout = DefaultDateLayout
	}
	return &Registry{
		options: options,
		plans:   visit.NewSyncMap[reflect.Type, *structPlan](),
		types:   x.NewRegistry(),
	}
}

// Options returns a copy of the registry options.
func (r *Registry) Options() Options {
	return r.options
}

// Register registers a custom conversion function between source and destination types.
func (r *Registry) Register(srcType, destType reflect.Type, fn ConversionFunc) {
	r.customConv.Store(typeKey{srcType, destType}, fn)
}

func (r *Registry) lookup(srcType, destType reflect.Type) (ConversionFunc, bool) {
	v, ok := r.customConv.Load(typeKey{srcType, destType})
	if !ok {
		return nil, false
	}
	return v.(ConversionFunc), true
}

// RegisterConversion registers a typed conversion function with the supplied registry.
func RegisterConversion[F, T any](r *Registry, fn func(F) (T, error)) {
	srcType := reflect.TypeOf((*F)(nil)).Elem()
	destType := reflect.TypeOf((*T)(nil)).Elem()
	r.Register(srcType, destType, func(src, dest interface{}, _ Options) error {
		from, ok := src.(F)
		if !ok {
			return fmt.Errorf("expected %s, got %T", srcType, src)
		}
		result, err := fn(from)
		if err != nil {
			return err
		}
		*dest.(*T) = result
		return nil
	})
}

var defaultRegistry = NewRegistry(DefaultOptions())

// Default returns the registry backing the package-level entry points.
func Default() *Registry {
	return defaultRegistry
}
