// SPDX-License-Identifier: MPL-2.0

// Package ulid implements the ULID (Universally Unique Lexicographically
// Sortable Identifier) used as the basis for all persistable entity
// identities. See the ULID specification: https://github.com/ulid/spec.
//
// A ULID is a 128-bit value. The most-significant 48 bits are a Unix
// timestamp in milliseconds, the remaining 80 bits are random. The timestamp
// provides lexicographic time ordering; the random tail makes collisions
// vanishingly unlikely. The canonical text form is a 26-character Crockford
// Base32 string whose byte-wise order equals the numeric order of the
// underlying integer.
//
// This package is a leaf dependency: it imports only the standard library.
// It performs no I/O and generates neither timestamps nor randomness; those
// come from the gateway package, which calls FromParts.
package ulid

import (
	"encoding/binary"
	"math/bits"
)

const (
	// TimeBits is the width of a ULID's timestamp portion.
	TimeBits = 48
	// RandBits is the width of a ULID's random portion.
	RandBits = 80

	maxTime   = 1<<TimeBits - 1
	randHiMax = 1<<(RandBits-64) - 1 // random bits held in the high half
)

// Uint128 is a 128-bit unsigned integer represented as two 64-bit halves,
// Hi holding bits 127..64 and Lo bits 63..0.
type Uint128 struct {
	Hi, Lo uint64
}

// Compare returns -1, 0 or 1 depending on whether v is numerically less
// than, equal to or greater than o.
func (v Uint128) Compare(o Uint128) int {
	switch {
	case v.Hi < o.Hi:
		return -1
	case v.Hi > o.Hi:
		return 1
	case v.Lo < o.Lo:
		return -1
	case v.Lo > o.Lo:
		return 1
	}
	return 0
}

// IsZero reports whether v is numerically zero.
func (v Uint128) IsZero() bool { return v.Hi == 0 && v.Lo == 0 }

// ULID is an immutable 128-bit identifier with layout [time:48][random:80],
// time most significant. The zero value is the nil ULID.
type ULID struct {
	hi, lo uint64
}

// FromParts composes a ULID from a millisecond timestamp and a random value.
// timestampMS is masked to its low 48 bits and random to its low 80 bits;
// any wider bits are discarded without error.
func FromParts(timestampMS uint64, random Uint128) ULID {
	return ULID{
		hi: (timestampMS&maxTime)<<16 | random.Hi&randHiMax,
		lo: random.Lo,
	}
}

// FromString parses a 26-character Crockford Base32 string. It returns
// ErrInvalidLength or ErrInvalidChar when the input is not well formed.
func FromString(encoded string) (ULID, error) {
	hi, lo, err := decode128(encoded)
	if err != nil {
		return ULID{}, err
	}
	return ULID{hi: hi, lo: lo}, nil
}

// FromBytes reinterprets a 16-byte big-endian buffer as a ULID. Byte 0
// holds the most-significant 8 bits of the timestamp.
func FromBytes(b [16]byte) ULID {
	return ULID{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// FromUint128 reinterprets a 128-bit integer as a ULID.
func FromUint128(v Uint128) ULID { return ULID{hi: v.Hi, lo: v.Lo} }

// Nil returns the nil ULID, the value with all 128 bits zero. Its text form
// is "00000000000000000000000000".
func Nil() ULID { return ULID{} }

// IsNil reports whether all 128 bits are zero.
func (u ULID) IsNil() bool { return u.hi == 0 && u.lo == 0 }

// Time returns the timestamp portion as milliseconds since the Unix epoch.
func (u ULID) Time() uint64 { return u.hi >> 16 }

// Random returns the 80-bit random portion, right-aligned in a Uint128.
func (u ULID) Random() Uint128 {
	return Uint128{Hi: u.hi & randHiMax, Lo: u.lo}
}

// Increment adds one to the random portion, leaving the timestamp untouched.
// When the random portion is already all ones the carry would spill into the
// time field; that is disallowed and Increment reports false so the caller
// can mint a fresh identifier under a new timestamp instead.
func (u ULID) Increment() (ULID, bool) {
	if u.hi&randHiMax == randHiMax && u.lo == ^uint64(0) {
		return ULID{}, false
	}
	lo, carry := bits.Add64(u.lo, 1, 0)
	return ULID{hi: u.hi + carry, lo: lo}, true
}

// Compare returns -1, 0 or 1 ordering the two ULIDs numerically: first by
// timestamp, then by random tail. This order equals the byte-wise order of
// the String forms.
func (u ULID) Compare(o ULID) int {
	return Uint128{u.hi, u.lo}.Compare(Uint128{o.hi, o.lo})
}

// Uint128 returns the underlying 128-bit integer.
func (u ULID) Uint128() Uint128 { return Uint128{Hi: u.hi, Lo: u.lo} }

// Bytes returns the 16-byte big-endian representation.
func (u ULID) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
	return b
}

// String returns the canonical 26-character Crockford Base32 form, always
// uppercase and left-padded with '0'.
func (u ULID) String() string {
	var b [EncodedLength]byte
	encode128(u.hi, u.lo, b[:])
	return string(b[:])
}

// EncodeTo writes the canonical text form into dst. It returns
// ErrBufferTooSmall when dst is shorter than EncodedLength bytes; that is
// its only failure mode.
func (u ULID) EncodeTo(dst []byte) error {
	if len(dst) < EncodedLength {
		return ErrBufferTooSmall
	}
	encode128(u.hi, u.lo, dst[:EncodedLength])
	return nil
}

// MarshalText implements encoding.TextMarshaler. It never fails.
func (u ULID) MarshalText() ([]byte, error) {
	b := make([]byte, EncodedLength)
	encode128(u.hi, u.lo, b)
	return b, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *ULID) UnmarshalText(text []byte) error {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, producing the 16-byte
// big-endian form. It never fails.
func (u ULID) MarshalBinary() ([]byte, error) {
	b := u.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It returns
// ErrInvalidLength unless data is exactly 16 bytes.
func (u *ULID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	*u = FromBytes([16]byte(data))
	return nil
}
