// SPDX-License-Identifier: MPL-2.0

package ulid

import "errors"

// EncodedLength is the length of a string-encoded ULID.
const EncodedLength = 26

var (
	// ErrInvalidLength is returned when decoding a string whose length is
	// not exactly EncodedLength.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidChar is returned when decoding a string containing a byte
	// outside Crockford's Base32 alphabet.
	ErrInvalidChar = errors.New("invalid character")

	// ErrBufferTooSmall is returned when encoding into a buffer shorter
	// than EncodedLength bytes.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// Crockford's Base32 alphabet. The symbol order matches the numeric rank of
// each digit, which is what makes the encoded form sort the same way as the
// underlying integer. I, L, O and U are excluded to avoid visual ambiguity.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// invalidDigit marks bytes outside the alphabet in the lookup table.
const invalidDigit = 0xFF

// lookup maps every possible input byte to its 5-bit digit, accepting both
// the uppercase and lowercase form of each alphabetic symbol. See
// TestLookupTable for the generator it is pinned against.
var lookup = [256]byte{
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0xFF, 0x12, 0x13, 0xFF, 0x14, 0x15, 0xFF,
	0x16, 0x17, 0x18, 0x19, 0x1A, 0xFF, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F, 0x10, 0x11, 0xFF, 0x12, 0x13, 0xFF, 0x14, 0x15, 0xFF,
	0x16, 0x17, 0x18, 0x19, 0x1A, 0xFF, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// encode128 writes the 26-character Base32 form of the 128-bit value (hi, lo)
// into dst, filling from the least-significant end. dst must be at least
// EncodedLength bytes; the caller checks. 26 digits carry 130 bits, so the
// two most-significant output positions are fed by bits that are always zero
// for a genuine 128-bit value, which is why the result is left-padded with
// '0' for small values.
func encode128(hi, lo uint64, dst []byte) {
	for i := EncodedLength - 1; i >= 0; i-- {
		dst[i] = alphabet[lo&0x1F]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
}

// decode128 parses a 26-character Base32 string into a 128-bit value.
// Length is validated before any character is inspected. The accumulation is
// a plain shift-or: a leading digit above 7 would need more than 128 bits,
// and its excess bits are shifted out silently rather than rejected; see
// TestDecodeLeadingDigitTruncation.
func decode128(s string) (hi, lo uint64, err error) {
	if len(s) != EncodedLength {
		return 0, 0, ErrInvalidLength
	}
	for i := 0; i < EncodedLength; i++ {
		d := lookup[s[i]]
		if d == invalidDigit {
			return 0, 0, ErrInvalidChar
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(d)
	}
	return hi, lo, nil
}
