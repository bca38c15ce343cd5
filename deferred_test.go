package castly

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeferred(t *testing.T) {
	t.Run("into pointer destination", func(t *testing.T) {
		var asFloat float64
		var asString string
		deferred := Defer(42)
		assert.NoError(t, deferred.Into(&asFloat))
		assert.NoError(t, deferred.Into(&asString))
		assert.Equal(t, 42.0, asFloat)
		assert.Equal(t, "42", asString)
	})

	t.Run("value by type", func(t *testing.T) {
		result, err := Defer("3.5").Value(reflect.TypeOf(float64(0)))
		assert.NoError(t, err)
		assert.Equal(t, 3.5, result)
	})

	t.Run("matches explicit form", func(t *testing.T) {
		explicit, err := Cast[int64](7.0)
		assert.NoError(t, err)
		var deferred int64
		assert.NoError(t, Defer(7.0).Into(&deferred))
		assert.Equal(t, explicit, deferred)
	})

	t.Run("source accessor", func(t *testing.T) {
		assert.Equal(t, 1, Defer(1).Source())
	})

	t.Run("registry bound", func(t *testing.T) {
		registry := NewRegistry(DefaultOptions())
		RegisterConversion(registry, func(p point2D) (point3D, error) {
			return point3D{X: p.X, Y: p.Y, Z: 2}, nil
		})
		var result point3D
		assert.NoError(t, registry.Defer(point2D{X: 1}).Into(&result))
		assert.Equal(t, point3D{X: 1, Z: 2}, result)
	})
}
