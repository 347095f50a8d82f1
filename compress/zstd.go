package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in codecs.
//
// With cgo enabled it is backed by gozstd; pure-Go builds use klauspost/compress/zstd.
// Both produce standard zstd frames, so archives are portable between builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with the default compression level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
