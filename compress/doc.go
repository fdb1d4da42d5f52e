// Package compress provides compression and decompression codecs for rpmss bundle payloads.
//
// A bundle (package rpmss/bundle) concatenates many set-strings, one per
// package's Provides or Requires, into a single payload section before
// writing it to disk or sending it over the network. This package
// implements the second-stage, general-purpose compression applied to
// that concatenated payload; it has no awareness of the set-string
// grammar itself.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no compression, zero overhead.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Encoded
//     set-strings are already close to the information-theoretic bound,
//     so a payload of distinct set-strings may not shrink at all.
//   - S2 (format.CompressionS2): balanced ratio/speed, good default for
//     bundles rebuilt frequently (e.g. on every repository metadata sync).
//   - LZ4 (format.CompressionLZ4): fastest decompression, useful when a
//     bundle is read far more often than it is written.
//
// # Selection guide
//
// | Workload                          | Recommended |
// |------------------------------------|-------------|
// | Repository metadata on disk       | Zstd        |
// | Frequent incremental rebuild      | S2          |
// | Read-heavy dependency resolution  | LZ4         |
// | Debugging / benchmarking          | None        |
//
// # Memory management
//
// Compressor/decompressor implementations pool their internal encoder and
// decoder state via sync.Pool where the underlying library supports reuse
// (zstd, lz4); S2 and None have no pool-able state.
//
// # Thread safety
//
// All Codec implementations in this package are safe for concurrent use.
package compress
