// Package bundle packages many set-strings (one Provides or Requires
// per package in a repository) into a single binary blob suitable for
// storage or network transfer.
//
// A bundle does not touch set-string semantics: decoding a bundle entry
// yields exactly the bytes that were encoded into it, to be handed to
// codec.Decode / setcmp.Compare unchanged. It is storage/transport
// plumbing layered on top of the core codec, not a fourth core
// subsystem, and it carries none of the core's non-goals forward: a
// bundle is built and read as a whole, never streamed or randomly
// patched in place.
//
// # Layout
//
//	┌───────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                           │
//	│  - Magic (2 bytes)                                 │
//	│  - Flags (2 bytes): endianness, compression, ...   │
//	│  - EntryCount (4 bytes)                            │
//	│  - IndexOffset (4 bytes)                           │
//	│  - PayloadOffset (4 bytes)                         │
//	│  - PayloadLength (4 bytes, stored/compressed size)  │
//	│  - PayloadCRC32 (4 bytes, over stored bytes)        │
//	│  - Reserved (8 bytes)                               │
//	├───────────────────────────────────────────────────┤
//	│ Collision names payload (variable, optional)        │
//	│  - Present only when two entry keys collided         │
//	├───────────────────────────────────────────────────┤
//	│ Index (EntryCount × 14 bytes, fixed per entry)       │
//	│  - Key (8 bytes), Offset (4 bytes), Length (2 bytes) │
//	├───────────────────────────────────────────────────┤
//	│ Payload (variable, optionally compressed as a unit)  │
//	│  - Each entry is length-prefixed (uint16) within the │
//	│    decompressed payload                              │
//	└───────────────────────────────────────────────────┘
//
// Compression is selected from package compress; key collisions between
// hashed entry names are tracked during encoding and disambiguated by
// the optional collision names payload.
package bundle
