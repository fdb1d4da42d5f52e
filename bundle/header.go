package bundle

import (
	"encoding/binary"

	"github.com/svpv/rpmss/endian"
	"github.com/svpv/rpmss/errs"
	"github.com/svpv/rpmss/format"
)

// Magic identifies a bundle blob. It appears as the first two bytes,
// always little-endian, regardless of the blob's own byte order flag:
// a decoder has to read Magic and Flags before it can know which
// engine the rest of the header uses.
const Magic uint16 = 0xB55C

// HeaderSize is the fixed size, in bytes, of a bundle header.
const HeaderSize = 32

const (
	flagBigEndian      uint16 = 0x0001
	flagCollisionNames uint16 = 0x0002
	compressionShift          = 2
	compressionMask    uint16 = 0x001C // bits 2-4, 3 bits for format.CompressionType
)

// Header is the fixed 32-byte section at the start of a bundle blob.
type Header struct {
	Magic uint16
	Flags uint16

	EntryCount    uint32
	IndexOffset   uint32
	PayloadOffset uint32
	// PayloadLength is the length, in bytes, of the payload section as
	// stored (i.e. after compression, if any).
	PayloadLength uint32
	// PayloadCRC32 is the IEEE CRC32 of the payload section as stored,
	// computed before decompression so a truncated or corrupted
	// transfer is caught before the decompressor ever sees it.
	PayloadCRC32 uint32
}

// NewHeader creates a Header for compression and byte order, with
// EntryCount/offsets left for the encoder to fill in once the index and
// payload sections are built.
func NewHeader(compression format.CompressionType, bigEndian bool) Header {
	flags := uint16(compression) << compressionShift
	if bigEndian {
		flags |= flagBigEndian
	}
	return Header{Magic: Magic, Flags: flags}
}

// Engine returns the byte order this header's fields (other than Magic
// and Flags themselves) are encoded with.
func (h Header) Engine() endian.EndianEngine {
	if h.Flags&flagBigEndian != 0 {
		return endian.GetBigEndianEngine()
	}
	return endian.GetLittleEndianEngine()
}

// Compression returns the compression algorithm used for the payload
// section.
func (h Header) Compression() format.CompressionType {
	return format.CompressionType((h.Flags & compressionMask) >> compressionShift)
}

// HasCollisionNames reports whether a collision names payload follows
// the header.
func (h Header) HasCollisionNames() bool {
	return h.Flags&flagCollisionNames != 0
}

func (h *Header) setCollisionNames(v bool) {
	if v {
		h.Flags |= flagCollisionNames
	} else {
		h.Flags &^= flagCollisionNames
	}
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint16(b[0:2], h.Magic)
	binary.LittleEndian.PutUint16(b[2:4], h.Flags)

	engine := h.Engine()
	engine.PutUint32(b[4:8], h.EntryCount)
	engine.PutUint32(b[8:12], h.IndexOffset)
	engine.PutUint32(b[12:16], h.PayloadOffset)
	engine.PutUint32(b[16:20], h.PayloadLength)
	engine.PutUint32(b[20:24], h.PayloadCRC32)
	// b[24:32] reserved, left zero
	return b
}

// ParseHeader parses and validates a bundle header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	h.Magic = binary.LittleEndian.Uint16(data[0:2])
	if h.Magic != Magic {
		return Header{}, errs.ErrInvalidMagic
	}
	h.Flags = binary.LittleEndian.Uint16(data[2:4])

	switch h.Compression() {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return Header{}, errs.ErrUnknownCompression
	}

	engine := h.Engine()
	h.EntryCount = engine.Uint32(data[4:8])
	h.IndexOffset = engine.Uint32(data[8:12])
	h.PayloadOffset = engine.Uint32(data[12:16])
	h.PayloadLength = engine.Uint32(data[16:20])
	h.PayloadCRC32 = engine.Uint32(data[20:24])
	return h, nil
}
