// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// checksumLength is the number of 5-bit symbols in a bech32 checksum.
const checksumLength = 6

// gen holds the generator constants of the BCH code defined in BIP-173.
var gen = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymodStep feeds one 5-bit value into the checksum accumulator.
func polymodStep(chk uint32, v byte) uint32 {
	top := chk >> 25
	chk = (chk&0x1ffffff)<<5 ^ uint32(v)
	for i := 0; i < 5; i++ {
		if (top>>uint(i))&1 == 1 {
			chk ^= gen[i]
		}
	}
	return chk
}

// polymod computes the 30-bit checksum polynomial over the concatenation of
// the passed 5-bit value groups.
func polymod(groups ...[]byte) uint32 {
	chk := uint32(1)
	for _, group := range groups {
		for _, v := range group {
			chk = polymodStep(chk, v)
		}
	}
	return chk
}

// hrpExpand returns the hrp as checksum input: the high 3 bits of every
// character, a zero, then the low 5 bits of every character.
func hrpExpand(hrp string) []byte {
	expanded := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]>>5)
	}
	expanded = append(expanded, 0)
	for i := 0; i < len(hrp); i++ {
		expanded = append(expanded, hrp[i]&31)
	}
	return expanded
}

// calculateChecksum returns the 6 checksum symbols for the lowercase hrp and
// 5-bit data, finalized with the given variant constant.
func calculateChecksum(hrp string, data []byte, c ChecksumConst) []byte {
	var zeros [checksumLength]byte
	mod := polymod(hrpExpand(hrp), data, zeros[:]) ^ uint32(c)

	checksum := make([]byte, checksumLength)
	for i := 0; i < checksumLength; i++ {
		checksum[i] = byte(mod>>uint(5*(checksumLength-1-i))) & 31
	}
	return checksum
}

// verifyChecksum runs the polymod over the hrp and the data including its
// trailing checksum and returns the variant whose constant it produced.
// VersionUnknown means the checksum is invalid.
func verifyChecksum(hrp string, data []byte) Version {
	version, ok := ConstsToVersion[ChecksumConst(polymod(hrpExpand(hrp), data))]
	if !ok {
		return VersionUnknown
	}
	return version
}
