package compress

// NoOpCompressor backs format.CompressionNone: it stores a bundle's
// concatenated payload as-is. Useful when the payload is already small
// (a handful of packages) or when a caller wants to inspect/patch the
// raw payload bytes without a decompression round trip first.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged. The returned slice aliases data;
// callers must not mutate data afterward if they still hold the
// result (the same aliasing rule Encoder.Finish already follows for
// its payload buffer).
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged, mirroring Compress.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
