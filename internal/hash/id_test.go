package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Bytes([]byte(tt.data)))
		})
	}
}

func TestFingerprint(t *testing.T) {
	sample := []float64{9.8, 10.1, 10.0, 9.9}

	t.Run("deterministic", func(t *testing.T) {
		a := NewFingerprint().Floats(sample).String("Weight").Sum()
		b := NewFingerprint().Floats(sample).String("Weight").Sum()
		require.Equal(t, a, b)
	})

	t.Run("order sensitive", func(t *testing.T) {
		reversed := []float64{9.9, 10.0, 10.1, 9.8}
		require.NotEqual(t,
			NewFingerprint().Floats(sample).Sum(),
			NewFingerprint().Floats(reversed).Sum())
	})

	t.Run("optional presence is part of the hash", func(t *testing.T) {
		zero := 0.0
		withZero := NewFingerprint().OptionalFloat(&zero).Sum()
		absent := NewFingerprint().OptionalFloat(nil).Sum()
		require.NotEqual(t, withZero, absent)
	})

	t.Run("length prefix separates slices", func(t *testing.T) {
		a := NewFingerprint().Floats([]float64{1}).Floats([]float64{2, 3}).Sum()
		b := NewFingerprint().Floats([]float64{1, 2}).Floats([]float64{3}).Sum()
		require.NotEqual(t, a, b)
	})

	t.Run("signed zero differs", func(t *testing.T) {
		require.NotEqual(t,
			NewFingerprint().Float(0).Sum(),
			NewFingerprint().Float(math.Copysign(0, -1)).Sum())
	})
}

func BenchmarkFingerprint(b *testing.B) {
	sample := make([]float64, 1024)
	for i := range sample {
		sample[i] = float64(i) * 0.5
	}
	b.ResetTimer()
	for b.Loop() {
		NewFingerprint().Floats(sample).Sum()
	}
}
