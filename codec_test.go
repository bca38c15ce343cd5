package castly

import (
	"reflect"
	"testing"

	"github.com/francoispqt/gojay"
	"github.com/stretchr/testify/assert"
)

type jsonUser struct {
	ID   int
	Name string
}

func (u *jsonUser) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("id", u.ID)
	enc.StringKey("name", u.Name)
}

func (u *jsonUser) IsNil() bool { return u == nil }

func (u *jsonUser) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "id":
		return dec.Int(&u.ID)
	case "name":
		return dec.String(&u.Name)
	}
	return nil
}

func (u *jsonUser) NKeys() int { return 2 }

func TestCodecBridge(t *testing.T) {
	registry := NewRegistry(DefaultOptions())

	t.Run("object to string", func(t *testing.T) {
		var result string
		err := registry.Convert(&jsonUser{ID: 1, Name: "bob"}, &result)
		assert.NoError(t, err)
		assert.Equal(t, `{"id":1,"name":"bob"}`, result)
	})

	t.Run("object to bytes", func(t *testing.T) {
		var result []byte
		err := registry.Convert(&jsonUser{ID: 2, Name: "eve"}, &result)
		assert.NoError(t, err)
		assert.Equal(t, `{"id":2,"name":"eve"}`, string(result))
	})

	t.Run("value object to string", func(t *testing.T) {
		result, err := Cast[string](jsonUser{ID: 5, Name: "ada"})
		assert.NoError(t, err)
		assert.Equal(t, `{"id":5,"name":"ada"}`, result)
	})

	t.Run("value object agrees with probe", func(t *testing.T) {
		from := reflect.TypeOf(jsonUser{})
		assert.True(t, registry.Castable(from, reflect.TypeOf("")))
		var result string
		assert.NoError(t, registry.Convert(jsonUser{ID: 6, Name: "tim"}, &result))
	})

	t.Run("string to object", func(t *testing.T) {
		var result jsonUser
		err := registry.Convert(`{"id":3,"name":"ann"}`, &result)
		assert.NoError(t, err)
		assert.Equal(t, jsonUser{ID: 3, Name: "ann"}, result)
	})

	t.Run("round trip", func(t *testing.T) {
		source := jsonUser{ID: 4, Name: "joe"}
		raw, err := Cast[[]byte](&source)
		assert.NoError(t, err)
		var decoded jsonUser
		assert.NoError(t, Convert(raw, &decoded))
		assert.Equal(t, source, decoded)
	})
}
