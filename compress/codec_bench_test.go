package compress

import (
	"testing"

	"github.com/svpv/rpmss/codec"
	"github.com/svpv/rpmss/format"
)

// benchPayload approximates a repository bundle: count Provides
// set-strings of setSize pseudo-random bpp-bit hashes each,
// concatenated the way bundle.Encoder.Finish lays them out.
func benchPayload(b *testing.B, count, setSize, bpp int) []byte {
	b.Helper()

	var payload []byte
	x := uint32(0x9E3779B9)
	for i := 0; i < count; i++ {
		values := make([]uint32, 0, setSize)
		seen := make(map[uint32]bool, setSize)
		for len(values) < setSize {
			x = x*1664525 + 1013904223
			v := x & (uint32(1)<<uint(bpp) - 1)
			if seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		for i := 1; i < len(values); i++ {
			for j := i; j > 0 && values[j-1] > values[j]; j-- {
				values[j-1], values[j] = values[j], values[j-1]
			}
		}
		s, err := codec.Encode(values, bpp)
		if err != nil {
			b.Fatal(err)
		}
		payload = append(payload, s...)
	}
	return payload
}

var benchCases = []struct {
	name string
	ct   format.CompressionType
}{
	{"None", format.CompressionNone},
	{"Zstd", format.CompressionZstd},
	{"S2", format.CompressionS2},
	{"LZ4", format.CompressionLZ4},
}

func BenchmarkCompress(b *testing.B) {
	payload := benchPayload(b, 64, 1024, 20)

	for _, bc := range benchCases {
		c, err := GetCodec(bc.ct)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bc.name, func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				if _, err := c.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	payload := benchPayload(b, 64, 1024, 20)

	for _, bc := range benchCases {
		c, err := GetCodec(bc.ct)
		if err != nil {
			b.Fatal(err)
		}
		compressed, err := c.Compress(payload)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(bc.name, func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				if _, err := c.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
