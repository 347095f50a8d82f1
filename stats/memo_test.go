package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varistat/errs"
)

func TestMemo_HitAndMiss(t *testing.T) {
	m := NewMemo(0)

	first, err := m.Calculate(weights, WithUSL(10.5))
	require.NoError(t, err)
	second, err := m.Calculate(weights, WithUSL(10.5))
	require.NoError(t, err)

	require.Equal(t, first, second)
	hits, misses := m.Stats()
	require.Equal(t, uint64(1), hits)
	require.Equal(t, uint64(1), misses)
	require.Equal(t, 1, m.Len())
}

func TestMemo_KeyCoversConfiguration(t *testing.T) {
	m := NewMemo(8)

	_, err := m.Calculate(weights)
	require.NoError(t, err)
	_, err = m.Calculate(weights, WithUSL(10.5))
	require.NoError(t, err)
	_, err = m.Calculate(weights, WithLSL(10.5))
	require.NoError(t, err)
	_, err = m.Calculate(weights, WithGrades(GradeBand{Max: 10, Label: "a"}))
	require.NoError(t, err)
	_, err = m.Calculate(weights, WithGrades(GradeBand{Max: 10, Label: "b"}))
	require.NoError(t, err)
	_, err = m.Calculate(weights[:5])
	require.NoError(t, err)

	require.Equal(t, 6, m.Len())
	hits, _ := m.Stats()
	require.Zero(t, hits)
}

func TestMemo_ReturnsCopies(t *testing.T) {
	m := NewMemo(4)

	res, err := m.Calculate(weights, WithUSL(10.5), WithLSL(9.5))
	require.NoError(t, err)
	*res.Cpk = 1000

	again, err := m.Calculate(weights, WithUSL(10.5), WithLSL(9.5))
	require.NoError(t, err)
	require.NotEqual(t, 1000.0, *again.Cpk)
}

func TestMemo_Eviction(t *testing.T) {
	m := NewMemo(2)

	for _, usl := range []float64{1, 2, 3} {
		_, err := m.Calculate(weights, WithUSL(usl))
		require.NoError(t, err)
	}
	require.Equal(t, 2, m.Len())

	// usl=1 was evicted first.
	_, err := m.Calculate(weights, WithUSL(1))
	require.NoError(t, err)
	hits, misses := m.Stats()
	require.Zero(t, hits)
	require.Equal(t, uint64(4), misses)

	m.Reset()
	require.Zero(t, m.Len())
	hits, misses = m.Stats()
	require.Zero(t, hits)
	require.Zero(t, misses)
}

func TestMemo_ErrorsAreNotCached(t *testing.T) {
	m := NewMemo(4)

	_, err := m.Calculate(nil)
	require.ErrorIs(t, err, errs.ErrEmptySample)
	require.Zero(t, m.Len())
}

func TestMemo_Concurrent(t *testing.T) {
	m := NewMemo(16)
	want, err := Calculate(weights, WithUSL(10.5))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				got, err := m.Calculate(weights, WithUSL(10.5))
				if err != nil || got.Mean != want.Mean {
					t.Errorf("unexpected result: %v %v", got.Mean, err)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, m.Len())
}

func TestMemo_FingerprintCollision(t *testing.T) {
	m := NewMemo(4)
	m.key = func([]float64, Config) uint64 { return 42 }

	first, err := m.Calculate(weights)
	require.NoError(t, err)
	other, err := m.Calculate([]float64{1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 2, other.Mean, 1e-12)
	require.NotEqual(t, first.Mean, other.Mean)

	withLimit, err := m.Calculate([]float64{1, 2, 3}, WithUSL(2.5))
	require.NoError(t, err)
	require.NotNil(t, withLimit.USL)

	again, err := m.Calculate([]float64{1, 2, 3}, WithUSL(2.5))
	require.NoError(t, err)
	require.Equal(t, withLimit, again)

	hits, misses := m.Stats()
	require.Equal(t, uint64(1), hits)
	require.Equal(t, uint64(3), misses)
	require.Equal(t, 1, m.Len())
}
