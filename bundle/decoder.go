package bundle

import (
	"hash/crc32"

	"github.com/svpv/rpmss/compress"
	"github.com/svpv/rpmss/errs"
	"github.com/svpv/rpmss/internal/hash"
)

// Decoder gives keyed lookup into a parsed bundle blob: the header and
// index are parsed and validated once up front, the payload is
// decompressed once, and individual entries are served out of the
// already-decompressed bytes.
type Decoder struct {
	header  Header
	entries []IndexEntry
	payload []byte
	names   []string
}

// NewDecoder parses data as a bundle blob: it validates the header's
// magic and compression type, checks the stored payload's CRC32 before
// decompressing it, and parses the index section.
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	engine := header.Engine()

	offset := HeaderSize
	var names []string
	if header.HasCollisionNames() {
		if int(header.IndexOffset) < offset || int(header.IndexOffset) > len(data) {
			return nil, errs.ErrTruncatedPayloadSection
		}
		names, _, err = decodeNames(data[offset:int(header.IndexOffset)], engine)
		if err != nil {
			return nil, err
		}
	}
	offset = int(header.IndexOffset)

	entryBytes := int(header.EntryCount) * IndexEntrySize
	if offset < 0 || offset+entryBytes > len(data) || offset+entryBytes > int(header.PayloadOffset) {
		return nil, errs.ErrTruncatedIndex
	}
	entries := make([]IndexEntry, header.EntryCount)
	for i := range entries {
		entries[i] = ParseIndexEntry(data[offset:], engine)
		offset += IndexEntrySize
	}

	payloadStart := int(header.PayloadOffset)
	payloadEnd := payloadStart + int(header.PayloadLength)
	if payloadStart < 0 || payloadEnd > len(data) {
		return nil, errs.ErrTruncatedPayloadSection
	}
	stored := data[payloadStart:payloadEnd]

	if crc32.ChecksumIEEE(stored) != header.PayloadCRC32 {
		return nil, errs.ErrChecksumMismatch
	}

	codec, err := compress.CreateCodec(header.Compression(), "bundle payload")
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, err
	}

	return &Decoder{header: header, entries: entries, payload: payload, names: names}, nil
}

// Len returns the number of entries in the bundle.
func (d *Decoder) Len() int {
	return len(d.entries)
}

func (d *Decoder) entryString(e IndexEntry) (string, error) {
	engine := d.header.Engine()
	if int(e.Offset)+2 > len(d.payload) {
		return "", errs.ErrTruncatedPayloadSection
	}
	n := int(engine.Uint16(d.payload[e.Offset : e.Offset+2]))
	start := int(e.Offset) + 2
	if start+n > len(d.payload) {
		return "", errs.ErrTruncatedPayloadSection
	}
	return string(d.payload[start : start+n]), nil
}

// Get looks up an entry by its raw numeric key, as passed to
// Encoder.Add.
func (d *Decoder) Get(key uint64) (string, error) {
	for _, e := range d.entries {
		if e.Key == key {
			return d.entryString(e)
		}
	}
	return "", errs.ErrKeyNotFound
}

// GetByName looks up an entry added with Encoder.AddNamed. If the
// bundle carries a collision-names payload (i.e. two or more names
// hashed to the same key while encoding), names are matched exactly;
// otherwise the lookup is a plain hash.ID(name) Get.
func (d *Decoder) GetByName(name string) (string, error) {
	if d.header.HasCollisionNames() {
		for i, e := range d.entries {
			if i < len(d.names) && d.names[i] == name {
				return d.entryString(e)
			}
		}
		return "", errs.ErrKeyNotFound
	}
	return d.Get(hash.ID(name))
}

// At returns the key and set-string of the i'th entry in encode order.
func (d *Decoder) At(i int) (key uint64, setString string, err error) {
	if i < 0 || i >= len(d.entries) {
		return 0, "", errs.ErrIndexOutOfRange
	}
	s, err := d.entryString(d.entries[i])
	return d.entries[i].Key, s, err
}
