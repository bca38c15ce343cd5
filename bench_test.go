package castly

import (
	"testing"
	"time"
)

type benchRecord struct {
	Name   string
	Age    int
	Active bool
	Score  float64
	Joined time.Time
}

func BenchmarkRegistry_MapToStruct(b *testing.B) {
	registry := NewRegistry(DefaultOptions())
	src := map[string]interface{}{
		"Name":   "Jane",
		"Age":    42,
		"Active": true,
		"Score":  99.5,
		"Joined": "2023-01-15T12:30:45Z",
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var dst benchRecord
		if err := registry.Convert(src, &dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRegistry_SliceCast(b *testing.B) {
	registry := NewRegistry(DefaultOptions())
	src := make([]int, 256)
	for i := range src {
		src[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var dst []float64
		if err := registry.Convert(src, &dst); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCastNumericSlice(b *testing.B) {
	src := make([]int, 256)
	for i := range src {
		src[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CastNumericSlice[float64](src)
	}
}
