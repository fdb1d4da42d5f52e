package bundle

import (
	"github.com/svpv/rpmss/endian"
	"github.com/svpv/rpmss/errs"
)

// encodeNames encodes the ordered list of entry names into a
// length-prefixed payload: [Count uint16][Len1 uint16][Name1][Len2
// uint16][Name2]...
//
// Entries added by key rather than by name contribute an empty string
// placeholder so the list stays index-aligned with the bundle's index
// section.
func encodeNames(names []string, engine endian.EndianEngine) ([]byte, error) {
	if len(names) > 65535 {
		return nil, errs.ErrTooManyEntries
	}

	total := 2
	for _, name := range names {
		if len(name) > 65535 {
			return nil, errs.ErrEntryNameTooLong
		}
		total += 2 + len(name)
	}

	buf := make([]byte, total)
	offset := 0
	engine.PutUint16(buf[offset:], uint16(len(names)))
	offset += 2
	for _, name := range names {
		engine.PutUint16(buf[offset:], uint16(len(name)))
		offset += 2
		copy(buf[offset:], name)
		offset += len(name)
	}
	return buf, nil
}

// decodeNames is the inverse of encodeNames; it returns the decoded
// names and the number of bytes consumed.
func decodeNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, errs.ErrTruncatedPayloadSection
	}
	count := int(engine.Uint16(data[:2]))
	offset := 2

	names := make([]string, count)
	for i := 0; i < count; i++ {
		if len(data) < offset+2 {
			return nil, 0, errs.ErrTruncatedPayloadSection
		}
		n := int(engine.Uint16(data[offset : offset+2]))
		offset += 2
		if len(data) < offset+n {
			return nil, 0, errs.ErrTruncatedPayloadSection
		}
		names[i] = string(data[offset : offset+n])
		offset += n
	}
	return names, offset, nil
}
