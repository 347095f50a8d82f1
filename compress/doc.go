// Package compress provides the payload codecs used by the varistat sample archive.
//
// An archived sample is a column of little-endian float64 observations. Measured
// process data is highly repetitive (instrument resolution, stable processes), so a
// general-purpose codec shrinks it considerably before it is written or shared.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio, uses gozstd with cgo and klauspost/compress otherwise
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and may be
// shared across goroutines.
package compress
