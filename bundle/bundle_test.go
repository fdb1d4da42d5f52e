package bundle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/svpv/rpmss/codec"
	"github.com/svpv/rpmss/errs"
	"github.com/svpv/rpmss/format"
)

func encodeSet(t *testing.T, values []uint32, bpp int) string {
	t.Helper()
	s, err := codec.Encode(values, bpp)
	require.NoError(t, err)
	return s
}

func TestBundleRoundTripByKey(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s1 := encodeSet(t, []uint32{1, 2, 3}, 10)
	s2 := encodeSet(t, []uint32{100, 200, 300}, 10)
	require.NoError(t, enc.Add(1, s1))
	require.NoError(t, enc.Add(2, s2))

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, 2, dec.Len())

	got1, err := dec.Get(1)
	require.NoError(t, err)
	require.Equal(t, s1, got1)

	got2, err := dec.Get(2)
	require.NoError(t, err)
	require.Equal(t, s2, got2)

	_, err = dec.Get(3)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestBundleRoundTripByName(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s1 := encodeSet(t, []uint32{1, 2, 3}, 10)
	s2 := encodeSet(t, []uint32{4, 5, 6}, 10)
	require.NoError(t, enc.AddNamed("pkg-a", s1))
	require.NoError(t, enc.AddNamed("pkg-b", s2))

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)

	got1, err := dec.GetByName("pkg-a")
	require.NoError(t, err)
	require.Equal(t, s1, got1)

	got2, err := dec.GetByName("pkg-b")
	require.NoError(t, err)
	require.Equal(t, s2, got2)

	_, err = dec.GetByName("pkg-c")
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestBundleDuplicateKeyRejected(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s := encodeSet(t, []uint32{1}, 7)
	require.NoError(t, enc.Add(42, s))
	err = enc.Add(42, s)
	require.ErrorIs(t, err, errs.ErrHashCollision)
}

func TestBundleDuplicateNameRejected(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s := encodeSet(t, []uint32{1}, 7)
	require.NoError(t, enc.AddNamed("pkg", s))
	err = enc.AddNamed("pkg", s)
	require.ErrorIs(t, err, errs.ErrEntryAlreadyAdded)
}

func TestBundleEmptyNameRejected(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s := encodeSet(t, []uint32{1}, 7)
	err = enc.AddNamed("", s)
	require.ErrorIs(t, err, errs.ErrEmptyEntryName)
}

// TestBundleNameCollisionDisambiguated drives the collisionTracker
// directly to simulate two distinct names hashing to the same key,
// rather than searching for an actual xxhash collision.
func TestBundleNameCollisionDisambiguated(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s1 := encodeSet(t, []uint32{1}, 7)
	s2 := encodeSet(t, []uint32{2}, 7)

	const sharedKey = uint64(0xdeadbeef)
	require.NoError(t, enc.tracker.trackName("alpha", sharedKey))
	enc.keys = append(enc.keys, sharedKey)
	enc.strings = append(enc.strings, s1)

	require.NoError(t, enc.tracker.trackName("beta", sharedKey))
	enc.keys = append(enc.keys, sharedKey)
	enc.strings = append(enc.strings, s2)

	require.True(t, enc.tracker.hasAnyCollision())

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)

	got1, err := dec.GetByName("alpha")
	require.NoError(t, err)
	require.Equal(t, s1, got1)

	got2, err := dec.GetByName("beta")
	require.NoError(t, err)
	require.Equal(t, s2, got2)
}

func TestBundleCompressionTypes(t *testing.T) {
	values := make([]uint32, 0, 512)
	for i := uint32(0); i < 512; i++ {
		values = append(values, i*3)
	}
	s := encodeSet(t, values, 20)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			enc, err := NewEncoder(WithCompression(ct))
			require.NoError(t, err)
			require.NoError(t, enc.Add(1, s))

			blob, err := enc.Finish()
			require.NoError(t, err)

			dec, err := NewDecoder(blob)
			require.NoError(t, err)
			got, err := dec.Get(1)
			require.NoError(t, err)
			require.Equal(t, s, got)
		})
	}
}

func TestBundleBigEndian(t *testing.T) {
	enc, err := NewEncoder(WithBigEndian())
	require.NoError(t, err)

	s := encodeSet(t, []uint32{7, 8, 9}, 10)
	require.NoError(t, enc.Add(1, s))

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	got, err := dec.Get(1)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestBundleChecksumMismatch(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s := encodeSet(t, []uint32{1, 2, 3}, 10)
	require.NoError(t, enc.Add(1, s))

	blob, err := enc.Finish()
	require.NoError(t, err)

	// Corrupt a byte inside the payload section.
	h, err := ParseHeader(blob)
	require.NoError(t, err)
	blob[h.PayloadOffset] ^= 0xFF

	_, err = NewDecoder(blob)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestBundleTruncatedData(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s := encodeSet(t, []uint32{1, 2, 3}, 10)
	require.NoError(t, enc.Add(1, s))

	blob, err := enc.Finish()
	require.NoError(t, err)

	_, err = NewDecoder(blob[:len(blob)-1])
	require.Error(t, err)

	_, err = NewDecoder(blob[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestBundleBadMagic(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	s := encodeSet(t, []uint32{1}, 7)
	require.NoError(t, enc.Add(1, s))
	blob, err := enc.Finish()
	require.NoError(t, err)

	blob[0] ^= 0xFF
	_, err = NewDecoder(blob)
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}

func TestBundleEmpty(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, 0, dec.Len())

	_, err = dec.Get(1)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestBundleAt(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	s1 := encodeSet(t, []uint32{1}, 7)
	s2 := encodeSet(t, []uint32{2}, 7)
	require.NoError(t, enc.Add(10, s1))
	require.NoError(t, enc.Add(20, s2))

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)

	k, s, err := dec.At(0)
	require.NoError(t, err)
	require.Equal(t, uint64(10), k)
	require.Equal(t, s1, s)

	_, _, err = dec.At(2)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}
