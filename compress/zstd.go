package compress

// ZstdCompressor backs format.CompressionZstd: the best-ratio option,
// for archival repository indexes written once and decompressed many
// times. The pure-Go backend encodes at zstd's default speed/ratio
// tradeoff.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
