package compress

import (
	"fmt"

	"github.com/svpv/rpmss/format"
)

// Compressor compresses a bundle payload: the concatenated,
// length-prefixed set-string records assembled by bundle.Encoder.Finish.
//
// Memory management:
//   - The returned slice is newly allocated and owned by the caller
//     (except NoOpCompressor, which aliases its input).
//   - The input slice is not modified.
//   - Internal encoder state may be pooled and reused across calls.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor over a stored bundle payload. The
// input must have been produced by the matching algorithm; corrupted
// or mismatched data returns an error. Note that bundle.Decoder
// verifies the stored payload's CRC32 before calling Decompress, so a
// decompression error here usually means an algorithm mismatch rather
// than bit rot.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Every implementation in this package
// is a stateless value (pooled state lives in package-level sync.Pools)
// and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the given compression type. target
// names the caller's use in error messages (e.g. "bundle payload").
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared built-in Codec for the specified
// compression type. Unlike CreateCodec it never allocates; all four
// codecs are stateless values, so sharing them is free.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
