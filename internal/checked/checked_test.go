package checked

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCast(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Cast[uint32](0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := Cast[uint8](123)
		assert.NoError(t, err)
		assert.Equal(t, uint8(123), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := Cast[uint8](-1)
		assert.Error(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := Cast[uint8](300)
		assert.Error(t, err)
	})

	t.Run("max int32", func(t *testing.T) {
		got, err := Cast[uint32](math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxInt32), got)
	})
}

func TestMustCast(t *testing.T) {
	assert.Equal(t, int8(5), MustCast[int8](5))
	assert.Panics(t, func() {
		MustCast[int8](300)
	})
}

func TestInt64ToUint64(t *testing.T) {
	got, err := Int64ToUint64(5)
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), got)

	_, err = Int64ToUint64(-5)
	assert.Error(t, err)
}

func TestUint64ToInt64(t *testing.T) {
	got, err := Uint64ToInt64(5)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), got)

	_, err = Uint64ToInt64(math.MaxUint64)
	assert.Error(t, err)
}

func TestFloat64ToInt64(t *testing.T) {
	got, err := Float64ToInt64(1.9)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), got)

	_, err = Float64ToInt64(math.NaN())
	assert.Error(t, err)

	_, err = Float64ToInt64(1e19)
	assert.Error(t, err)
}

func TestFloat64ToUint64(t *testing.T) {
	got, err := Float64ToUint64(2.5)
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), got)

	_, err = Float64ToUint64(-1)
	assert.Error(t, err)

	_, err = Float64ToUint64(math.NaN())
	assert.Error(t, err)
}
