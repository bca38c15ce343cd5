// Package ref turns iteration over pointer collections into iteration
// over dereferenced values.
package ref

import "iter"

// To returns a pointer to the value of v for any type.
func To[T any](v T) *T {
	return &v
}

// ValueOf returns the value pointed at, or a zero value if the pointer is nil.
func ValueOf[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Deref dereferences a pointer slice; nil entries become zero values.
func Deref[T any](ptrs []*T) []T {
	result := make([]T, len(ptrs))
	for i, p := range ptrs {
		if p != nil {
			result[i] = *p
		}
	}
	return result
}

// NonNil dereferences a pointer slice, dropping nil entries.
func NonNil[T any](ptrs []*T) []T {
	result := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		if p != nil {
			result = append(result, *p)
		}
	}
	return result
}

// Refs returns a slice of pointers into the supplied slice's elements.
// The pointers alias values; they stay valid as long as values does.
func Refs[T any](values []T) []*T {
	result := make([]*T, len(values))
	for i := range values {
		result[i] = &values[i]
	}
	return result
}

// Values yields the dereferenced values of a pointer slice in order,
// skipping nil entries.
func Values[T any](ptrs []*T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range ptrs {
			if p == nil {
				continue
			}
			if !yield(*p) {
				return
			}
		}
	}
}

// MapValues yields (key, dereferenced value) pairs of a pointer-valued
// map, skipping nil entries.
func MapValues[K comparable, V any](m map[K]*V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, p := range m {
			if p == nil {
				continue
			}
			if !yield(k, *p) {
				return
			}
		}
	}
}
