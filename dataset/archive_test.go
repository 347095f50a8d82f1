package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/varistat/errs"
	"github.com/arloliu/varistat/format"
)

func TestSampleArchive_RoundTrip(t *testing.T) {
	values := make([]float64, 500)
	for i := range values {
		values[i] = 10 + float64(i%11-5)*0.02
	}
	values[7] = math.Inf(1)
	values[8] = -0.0

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := EncodeSample(values, ct)
			require.NoError(t, err)
			require.Equal(t, "VSA1", string(data[:4]))

			got, err := DecodeSample(data)
			require.NoError(t, err)
			require.Equal(t, len(values), len(got))
			for i := range values {
				require.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "index %d", i)
			}
		})
	}
}

func TestSampleArchive_Empty(t *testing.T) {
	data, err := EncodeSample(nil, format.CompressionZstd)
	require.NoError(t, err)

	got, err := DecodeSample(data)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSampleArchive_Compresses(t *testing.T) {
	values := make([]float64, 4000)
	for i := range values {
		values[i] = 25.0 + float64(i%3)*0.1
	}

	plain, err := EncodeSample(values, format.CompressionNone)
	require.NoError(t, err)
	packed, err := EncodeSample(values, format.CompressionZstd)
	require.NoError(t, err)
	require.Less(t, len(packed), len(plain)/4)
}

func TestDecodeSample_Corruption(t *testing.T) {
	data, err := EncodeSample([]float64{1, 2, 3}, format.CompressionNone)
	require.NoError(t, err)

	t.Run("truncated header", func(t *testing.T) {
		_, err := DecodeSample(data[:5])
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[0] = 'X'
		_, err := DecodeSample(bad)
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})

	t.Run("unknown compression", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[4] = 0x7f
		_, err := DecodeSample(bad)
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := DecodeSample(data[:len(data)-4])
		require.ErrorIs(t, err, errs.ErrInvalidArchive)
	})

	t.Run("flipped payload bit", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0x01
		_, err := DecodeSample(bad)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})
}
