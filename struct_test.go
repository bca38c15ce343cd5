package castly

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type account struct {
	Name    string
	Age     int
	Active  bool
	Score   float64
	Joined  time.Time
	Tags    []string
	Ignored string `cast:"ignore=true"`
	Renamed string `cast:"name=alias"`
}

type accountView struct {
	Name   string
	Age    int64
	Active bool
	Score  float32
	Tags   []string
}

func TestConvertMapToStruct(t *testing.T) {
	registry := NewRegistry(DefaultOptions())

	source := map[string]interface{}{
		"name":   "bob",
		"age":    "42",
		"active": 1,
		"score":  "9.5",
		"tags":   []interface{}{"a", "b"},
		"alias":  "renamed value",
	}
	var result account
	err := registry.Convert(source, &result)
	assert.NoError(t, err)
	assert.Equal(t, "bob", result.Name)
	assert.Equal(t, 42, result.Age)
	assert.True(t, result.Active)
	assert.Equal(t, 9.5, result.Score)
	assert.Equal(t, []string{"a", "b"}, result.Tags)
	assert.Equal(t, "renamed value", result.Renamed)
}

func TestConvertStructToStruct(t *testing.T) {
	registry := NewRegistry(DefaultOptions())

	source := account{
		Name:   "alice",
		Age:    30,
		Active: true,
		Score:  7.25,
		Tags:   []string{"x"},
	}
	var result accountView
	err := registry.Convert(source, &result)
	assert.NoError(t, err)
	assert.Equal(t, "alice", result.Name)
	assert.Equal(t, int64(30), result.Age)
	assert.True(t, result.Active)
	assert.Equal(t, float32(7.25), result.Score)
	assert.Equal(t, []string{"x"}, result.Tags)
}

func TestConvertStructIgnoredField(t *testing.T) {
	registry := NewRegistry(DefaultOptions())

	var result account
	err := registry.Convert(map[string]interface{}{"ignored": "x", "name": "n"}, &result)
	assert.NoError(t, err)
	assert.Equal(t, "", result.Ignored)
	assert.Equal(t, "n", result.Name)
}

func TestConvertStructCaseSensitive(t *testing.T) {
	options := DefaultOptions()
	options.CaseSensitive = true
	options.IgnoreUnmapped = false
	registry := NewRegistry(options)

	t.Run("exact name matches", func(t *testing.T) {
		var result accountView
		err := registry.Convert(map[string]interface{}{"Name": "n"}, &result)
		assert.NoError(t, err)
		assert.Equal(t, "n", result.Name)
	})

	t.Run("wrong case is unmapped", func(t *testing.T) {
		var result accountView
		err := registry.Convert(map[string]interface{}{"name": "n"}, &result)
		assert.Error(t, err)
	})
}

func TestConvertStructUnmapped(t *testing.T) {
	options := DefaultOptions()
	options.IgnoreUnmapped = false
	registry := NewRegistry(options)

	var result accountView
	err := registry.Convert(map[string]interface{}{"unknown": 1}, &result)
	if err == nil {
		t.Fatal("expected error for unmapped key")
	}
	assert.Contains(t, err.Error(), "unknown")
}

func TestConvertStructNilField(t *testing.T) {
	type holder struct {
		Value *int
	}
	registry := NewRegistry(DefaultOptions())

	value := 1
	result := holder{Value: &value}
	err := registry.Convert(map[string]interface{}{"value": nil}, &result)
	assert.NoError(t, err)
	assert.Nil(t, result.Value)
}

func TestConvertNestedStruct(t *testing.T) {
	type inner struct {
		ID int
	}
	type outer struct {
		Inner inner
		Label string
	}
	registry := NewRegistry(DefaultOptions())

	source := map[string]interface{}{
		"inner": map[string]interface{}{"id": "7"},
		"label": "ok",
	}
	var result outer
	err := registry.Convert(source, &result)
	assert.NoError(t, err)
	assert.Equal(t, 7, result.Inner.ID)
	assert.Equal(t, "ok", result.Label)
}

func TestConvertSliceOfStructs(t *testing.T) {
	type row struct {
		ID   int
		Name string
	}
	registry := NewRegistry(DefaultOptions())

	source := []interface{}{
		map[string]interface{}{"id": 1, "name": "a"},
		map[string]interface{}{"id": 2, "name": "b"},
	}
	var result []row
	err := registry.Convert(source, &result)
	assert.NoError(t, err)
	assert.Equal(t, []row{{1, "a"}, {2, "b"}}, result)
}
