package bundle

import (
	"hash/crc32"

	"github.com/svpv/rpmss/compress"
	"github.com/svpv/rpmss/format"
	"github.com/svpv/rpmss/internal/hash"
	"github.com/svpv/rpmss/internal/options"
	"github.com/svpv/rpmss/internal/pool"
)

// Encoder assembles a set of (key, set-string) entries into a bundle
// blob. The zero value is not usable; construct with NewEncoder.
type Encoder struct {
	compression format.CompressionType
	bigEndian   bool

	tracker *collisionTracker
	keys    []uint64
	strings []string
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm. The
// default is format.CompressionZstd.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		e.compression = c
		return nil
	})
}

// WithBigEndian selects big-endian byte order for the header, index,
// and length prefixes. The default is little-endian.
func WithBigEndian() EncoderOption {
	return options.New(func(e *Encoder) error {
		e.bigEndian = true
		return nil
	})
}

// NewEncoder creates an empty Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		compression: format.CompressionZstd,
		tracker:     newCollisionTracker(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}
	return e, nil
}

// Add appends an entry under an explicit numeric key, typically a
// caller-assigned package id. A repeated key is rejected: with no name
// to fall back on, the collision can't be disambiguated later.
func (e *Encoder) Add(key uint64, setString string) error {
	if err := e.tracker.trackKey(key); err != nil {
		return err
	}
	e.keys = append(e.keys, key)
	e.strings = append(e.strings, setString)
	return nil
}

// AddNamed appends an entry keyed by internal/hash.ID(name), the usual
// path when the caller has a package name rather than a numeric id.
// A hash collision between two different names is not an error: it sets
// a flag that makes Finish emit a collision-names payload so the
// decoder can still tell the entries apart.
func (e *Encoder) AddNamed(name, setString string) error {
	key := hash.ID(name)
	if err := e.tracker.trackName(name, key); err != nil {
		return err
	}
	e.keys = append(e.keys, key)
	e.strings = append(e.strings, setString)
	return nil
}

// Finish serializes all added entries into a bundle blob.
func (e *Encoder) Finish() ([]byte, error) {
	header := NewHeader(e.compression, e.bigEndian)
	engine := header.Engine()

	n := len(e.strings)
	entries := make([]IndexEntry, n)

	buf := pool.GetBundleBuffer()
	defer pool.PutBundleBuffer(buf)
	for i, s := range e.strings {
		offset := buf.Len()
		rec := make([]byte, 2+len(s))
		engine.PutUint16(rec, uint16(len(s)))
		copy(rec[2:], s)
		buf.MustWrite(rec)
		entries[i] = IndexEntry{Key: e.keys[i], Offset: uint32(offset), Length: uint16(len(rec))}
	}

	codec, err := compress.CreateCodec(e.compression, "bundle payload")
	if err != nil {
		return nil, err
	}
	stored, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, err
	}

	var namesPayload []byte
	if e.tracker.hasAnyCollision() {
		header.setCollisionNames(true)
		namesPayload, err = encodeNames(e.tracker.orderedNames(), engine)
		if err != nil {
			return nil, err
		}
	}

	indexOffset := HeaderSize + len(namesPayload)
	payloadOffset := indexOffset + n*IndexEntrySize

	header.EntryCount = uint32(n)
	header.IndexOffset = uint32(indexOffset)
	header.PayloadOffset = uint32(payloadOffset)
	header.PayloadLength = uint32(len(stored))
	header.PayloadCRC32 = crc32.ChecksumIEEE(stored)

	out := make([]byte, 0, payloadOffset+len(stored))
	out = append(out, header.Bytes()...)
	out = append(out, namesPayload...)
	for _, ent := range entries {
		out = append(out, ent.Bytes(engine)...)
	}
	out = append(out, stored...)
	return out, nil
}
