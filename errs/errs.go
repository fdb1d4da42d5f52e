// Package errs collects the sentinel errors returned across rpmss's
// packages. Callers check them with errors.Is; the C library's negative
// return codes map onto these one for one.
package errs

import "errors"

// Encode-side sequence violations (preflight and runtime).
var (
	ErrEmptySet        = errors.New("rpmss: empty value set")
	ErrBppOutOfRange   = errors.New("rpmss: bpp out of range [7,32]")
	ErrValueOutOfRange = errors.New("rpmss: value exceeds 2^bpp-1")
	ErrTooDense        = errors.New("rpmss: set too dense for chosen Golomb parameter")
	ErrNonMonotone     = errors.New("rpmss: values are not strictly increasing")
)

// Decode-side header and payload errors.
var (
	ErrBadHeader        = errors.New("rpmss: invalid set-string header")
	ErrMOutOfRange      = errors.New("rpmss: golomb parameter m out of range [5,30]")
	ErrMNotLessThanBpp  = errors.New("rpmss: m must be less than bpp")
	ErrTruncatedPayload = errors.New("rpmss: truncated set-string payload")
	ErrCorruptPayload   = errors.New("rpmss: corrupt set-string payload")
	ErrInvalidChar      = errors.New("rpmss: invalid character in set-string")
	ErrQuotientOverflow = errors.New("rpmss: golomb quotient overflow")
	ErrValueOverflow    = errors.New("rpmss: decoded value exceeds 2^bpp-1")
)

// Comparator-level errors, surfaced without inspecting the other side.
var (
	ErrProvidesDecode = errors.New("rpmss: failed to decode provides set-string")
	ErrRequiresDecode = errors.New("rpmss: failed to decode requires set-string")
)

// Bundle container errors.
var (
	ErrInvalidMagic            = errors.New("rpmss: bundle: invalid magic number")
	ErrInvalidHeaderSize       = errors.New("rpmss: bundle: invalid header size")
	ErrChecksumMismatch        = errors.New("rpmss: bundle: payload checksum mismatch")
	ErrUnknownCompression      = errors.New("rpmss: bundle: unknown compression type")
	ErrIndexOutOfRange         = errors.New("rpmss: bundle: index entry out of range")
	ErrKeyNotFound             = errors.New("rpmss: bundle: key not found")
	ErrHashCollision           = errors.New("rpmss: bundle: key hash collision")
	ErrEmptyEntryName          = errors.New("rpmss: bundle: entry name must not be empty")
	ErrEntryAlreadyAdded       = errors.New("rpmss: bundle: entry already added")
	ErrTruncatedIndex          = errors.New("rpmss: bundle: truncated index section")
	ErrTruncatedPayloadSection = errors.New("rpmss: bundle: truncated payload section")
	ErrTooManyEntries          = errors.New("rpmss: bundle: entry count exceeds 65535")
	ErrEntryNameTooLong        = errors.New("rpmss: bundle: entry name exceeds 65535 bytes")
)
