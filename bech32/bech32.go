// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
)

// charset is the set of characters used in the data section of bech32
// strings.  The index of a character is the 5-bit value it encodes.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// charsetRev maps an ASCII character to its 5-bit value.  Characters outside
// the charset map to -1.  Upper and lower case letters map to the same value.
var charsetRev = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	15, -1, 10, 17, 21, 20, 26, 30, 7, 5, -1, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
	-1, 29, -1, 24, 13, 25, 9, 8, 23, -1, 18, 22, 31, 27, 19, -1,
	1, 0, 3, 16, 11, 28, 12, 14, 6, 4, 2, -1, -1, -1, -1, -1,
}

const (
	// separator splits the human-readable part from the data part.
	separator = '1'

	// maxLength is the BIP-173 limit on the length of a whole string.
	maxLength = 90

	// minLength is a one character hrp, the separator and a bare checksum.
	minLength = 1 + 1 + checksumLength
)

// toBytes converts each character in the string 'chars' to the value of the
// index of the corresponding character in 'charset'.
func toBytes(chars string) ([]byte, error) {
	decoded := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c >= 128 || charsetRev[c] < 0 {
			return nil, ErrNonCharsetChar(c)
		}
		decoded = append(decoded, byte(charsetRev[c]))
	}
	return decoded, nil
}

// toChars converts the byte slice 'data' to a string where each byte in 'data'
// encodes the index of a character in 'charset'.
func toChars(data []byte) (string, error) {
	result := make([]byte, 0, len(data))
	for _, b := range data {
		if int(b) >= len(charset) {
			return "", ErrInvalidDataByte(b)
		}
		result = append(result, charset[b])
	}
	return string(result), nil
}

// validateHRP checks that the hrp is non-empty and made only of printable
// US-ASCII characters.
func validateHRP(hrp string) error {
	if len(hrp) == 0 {
		return ErrInvalidLength(0)
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return ErrInvalidCharacter(hrp[i])
		}
	}
	return nil
}

// decodeNoLimit is the shared decoding path.  It validates the structure of
// the string and its checksum and returns the lowercase hrp, the 5-bit data
// without the checksum and the variant the checksum matched.
func decodeNoLimit(bech string) (string, []byte, Version, error) {
	// The minimum allowed size of a bech32 string is 8 characters, since it
	// needs a non-empty HRP, a separator, and a 6 character checksum.
	if len(bech) < minLength {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	// Only ASCII characters between 33 and 126 are allowed, and they must
	// be either all lowercase or all uppercase.
	var hasLower, hasUpper bool
	for i := 0; i < len(bech); i++ {
		c := bech[i]
		if c < 33 || c > 126 {
			return "", nil, VersionUnknown, ErrInvalidCharacter(c)
		}
		switch {
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		}
		if hasLower && hasUpper {
			return "", nil, VersionUnknown, ErrMixedCase{}
		}
	}

	// We'll work with the lowercase string from now on.
	bech = strings.ToLower(bech)

	// The string is invalid if the last '1' is non-existent, it is the
	// first character of the string (no human-readable part) or one of the
	// last 6 characters of the string (since checksum cannot contain '1').
	one := strings.LastIndexByte(bech, separator)
	if one < 1 || one+checksumLength+1 > len(bech) {
		return "", nil, VersionUnknown, ErrInvalidSeparatorIndex(one)
	}

	// The human-readable part is everything before the last '1'.
	hrp := bech[:one]
	data := bech[one+1:]

	decoded, err := toBytes(data)
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	payload := decoded[:len(decoded)-checksumLength]
	version := verifyChecksum(hrp, decoded)
	if version == VersionUnknown {
		// Report both candidate checksums to ease debugging of typos.
		// The payload symbols are all in range at this point.
		expected, _ := toChars(calculateChecksum(hrp, payload, Version0Const))
		expectedM, _ := toChars(calculateChecksum(hrp, payload, VersionMConst))
		return "", nil, VersionUnknown, ErrInvalidChecksum{
			Expected:  expected,
			ExpectedM: expectedM,
			Actual:    data[len(data)-checksumLength:],
		}
	}

	return hrp, payload, version, nil
}

// DecodeGenericNoLimit is identical to DecodeGeneric but does not enforce
// the BIP-173 maximum string length.
func DecodeGenericNoLimit(bech string) (string, []byte, Version, error) {
	return decodeNoLimit(bech)
}

// DecodeGeneric decodes a bech32 or bech32m encoded string, returning the
// lowercase human-readable part, the data part as 5-bit values excluding the
// checksum, and the checksum variant that matched.
func DecodeGeneric(bech string) (string, []byte, Version, error) {
	// The maximum allowed length for a bech32 string is 90.
	if len(bech) > maxLength {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	return decodeNoLimit(bech)
}

// DecodeNoLimit is identical to Decode but does not enforce the BIP-173
// maximum string length.
func DecodeNoLimit(bech string) (string, []byte, error) {
	return requireVersion0(decodeNoLimit(bech))
}

// Decode decodes a bech32 encoded string, returning the human-readable part
// and the data part excluding the checksum.  Strings carrying a bech32m
// checksum are rejected with ErrInvalidChecksum.
//
// Note that the returned data is 5-bit (base32) encoded and the human-readable
// part will be lowercase.
func Decode(bech string) (string, []byte, error) {
	return requireVersion0(DecodeGeneric(bech))
}

// requireVersion0 narrows a generic decode result to the original bech32
// variant.
func requireVersion0(hrp string, data []byte, version Version,
	err error) (string, []byte, error) {

	if err != nil {
		return "", nil, err
	}
	if version != Version0 {
		// The string carried a valid bech32m checksum.
		expected, _ := toChars(calculateChecksum(hrp, data, Version0Const))
		expectedM, _ := toChars(calculateChecksum(hrp, data, VersionMConst))
		return "", nil, ErrInvalidChecksum{
			Expected:  expected,
			ExpectedM: expectedM,
			Actual:    expectedM,
		}
	}
	return hrp, data, nil
}

// DecodeToBase256WithVersion decodes a bech32 or bech32m encoded string and
// regroups the data part into bytes.  The human-readable part is returned in
// lowercase along with the checksum variant that matched.  Data parts whose
// trailing bits are not valid zero padding are rejected.
//
// Strings over 90 characters are rejected, which rules out any payload above
// 51 bytes even with a one character hrp.  Use DecodeToBase256NoLimit to
// decode longer payloads.
func DecodeToBase256WithVersion(bech string) (string, []byte, Version, error) {
	hrp, data, version, err := DecodeGeneric(bech)
	if err != nil {
		return "", nil, VersionUnknown, err
	}
	converted, err := bits5ToBytes(data)
	if err != nil {
		return "", nil, VersionUnknown, err
	}
	return hrp, converted, version, nil
}

// DecodeToBase256NoLimit is identical to DecodeToBase256WithVersion but does
// not enforce the BIP-173 maximum string length.
func DecodeToBase256NoLimit(bech string) (string, []byte, Version, error) {
	hrp, data, version, err := decodeNoLimit(bech)
	if err != nil {
		return "", nil, VersionUnknown, err
	}
	converted, err := bits5ToBytes(data)
	if err != nil {
		return "", nil, VersionUnknown, err
	}
	return hrp, converted, version, nil
}

// DecodeToBase256 decodes a bech32 encoded string into its human-readable
// part and its data part regrouped into bytes.  Only the original bech32
// checksum is accepted.
func DecodeToBase256(bech string) (string, []byte, error) {
	hrp, data, err := Decode(bech)
	if err != nil {
		return "", nil, err
	}
	converted, err := bits5ToBytes(data)
	if err != nil {
		return "", nil, err
	}
	return hrp, converted, nil
}

// EncodeWithVersion encodes the 5-bit data with the given human-readable part
// and appends the checksum of the requested variant.  The hrp is lowercased
// and must be non-empty and consist of characters in the range 33 to 126.
func EncodeWithVersion(hrp string, data []byte, version Version) (string, error) {
	c, ok := VersionToConsts[version]
	if !ok {
		return "", ErrUnknownVersion(version)
	}
	if err := validateHRP(hrp); err != nil {
		return "", err
	}

	// The resulting bech32 string is the concatenation of the lowercase
	// hrp, the separator 1, data and the 6-byte checksum.
	hrp = strings.ToLower(hrp)
	dataChars, err := toChars(data)
	if err != nil {
		return "", err
	}
	checksum, _ := toChars(calculateChecksum(hrp, data, c))

	var b strings.Builder
	b.Grow(len(hrp) + 1 + len(dataChars) + checksumLength)
	b.WriteString(hrp)
	b.WriteByte(separator)
	b.WriteString(dataChars)
	b.WriteString(checksum)
	return b.String(), nil
}

// Encode encodes a byte slice into a bech32 string with the given
// human-readable part (hrp).  Note that the bytes must each encode 5 bits
// (base32).
func Encode(hrp string, data []byte) (string, error) {
	return EncodeWithVersion(hrp, data, Version0)
}

// EncodeM is the exactly same as the Encode method, but it uses the new
// bech32m constant instead.
func EncodeM(hrp string, data []byte) (string, error) {
	return EncodeWithVersion(hrp, data, VersionM)
}

// EncodeFromBase256WithVersion regroups an arbitrary byte payload into 5-bit
// symbols and encodes it with the given human-readable part and checksum
// variant.  An empty payload is allowed.
func EncodeFromBase256WithVersion(hrp string, data []byte,
	version Version) (string, error) {

	return EncodeWithVersion(hrp, bytesToBits5(data), version)
}

// EncodeFromBase256 converts a base256-encoded byte slice into a base32-encoded
// byte slice and then encodes it into a bech32 string with the given
// human-readable part (hrp).
func EncodeFromBase256(hrp string, data []byte) (string, error) {
	return EncodeFromBase256WithVersion(hrp, data, Version0)
}
