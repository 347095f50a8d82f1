package dataset

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/varistat/compress"
	"github.com/arloliu/varistat/errs"
	"github.com/arloliu/varistat/format"
	"github.com/arloliu/varistat/internal/hash"
	"github.com/arloliu/varistat/internal/pool"
)

const (
	archiveMagic      = "VSA1"
	archiveHeaderSize = len(archiveMagic) + 1 + 4 + 8
)

// EncodeSample packs values into a checksummed archive using the given compression.
//
// Parameters:
//   - values: Observations in sample order
//   - compression: Payload codec
//
// Returns:
//   - []byte: Archive bytes, owned by the caller
//   - error: Unsupported compression, or a sample longer than 2^32-1 observations
func EncodeSample(values []float64, compression format.CompressionType) ([]byte, error) {
	out, _, err := EncodeSampleWithStats(values, compression)
	return out, err
}

// EncodeSampleWithStats is EncodeSample that also reports the payload
// compression statistics. The header is not counted in the stats.
func EncodeSampleWithStats(values []float64, compression format.CompressionType) ([]byte, compress.Stats, error) {
	if uint64(len(values)) > math.MaxUint32 {
		return nil, compress.Stats{}, fmt.Errorf("sample of %d observations exceeds archive limit", len(values))
	}

	raw := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(raw)
	raw.AppendFloat64s(values)

	packed, st, err := compress.CompressWithStats(compression, raw.Bytes())
	if err != nil {
		return nil, compress.Stats{}, err
	}

	out := make([]byte, 0, archiveHeaderSize+len(packed))
	out = append(out, archiveMagic...)
	out = append(out, byte(compression))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(values)))
	out = binary.LittleEndian.AppendUint64(out, hash.Bytes(raw.Bytes()))
	out = append(out, packed...)

	return out, st, nil
}

// DecodeSample restores the observations packed by EncodeSample.
//
// Returns:
//   - []float64: Observations in sample order
//   - error: ErrInvalidArchive for a malformed header or payload, ErrChecksumMismatch
//     when the payload decodes but does not match the stored checksum
func DecodeSample(data []byte) ([]float64, error) {
	if len(data) < archiveHeaderSize || string(data[:len(archiveMagic)]) != archiveMagic {
		return nil, fmt.Errorf("%w: bad header", errs.ErrInvalidArchive)
	}

	off := len(archiveMagic)
	compression := format.CompressionType(data[off])
	count := int(binary.LittleEndian.Uint32(data[off+1:]))
	checksum := binary.LittleEndian.Uint64(data[off+5:])

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}

	raw, err := codec.Decompress(data[archiveHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidArchive, err)
	}
	if len(raw) != count*8 {
		return nil, fmt.Errorf("%w: payload holds %d bytes, header declares %d observations",
			errs.ErrInvalidArchive, len(raw), count)
	}
	if hash.Bytes(raw) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}

	return values, nil
}
