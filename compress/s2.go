package compress

import "github.com/klauspost/compress/s2"

// S2Compressor backs format.CompressionS2: a lighter-weight alternative
// to Zstd for bundles that get rebuilt on every metadata sync and whose
// payload is read back almost immediately, where S2's lower compression
// ratio is a fair trade for its much cheaper encode step.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress S2-encodes data.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress S2-decodes data.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
