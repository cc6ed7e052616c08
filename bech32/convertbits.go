// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ConvertBits converts a byte slice where each byte is encoding fromBits bits,
// to a byte slice where each byte is encoding toBits bits.  Bits are consumed
// and emitted most significant first.
//
// When pad is true an incomplete final group is filled with zero bits and
// emitted, provided it holds at least one input bit.  When pad is false the
// leftover must be shorter than fromBits and made entirely of zero bits,
// otherwise ErrInvalidIncompleteGroup or ErrInvalidPadding is returned.
// Input values wider than fromBits are rejected with ErrInvalidDataByte.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	// Upper bound on the output size so the slice is allocated once.
	maxSize := len(data)*int(fromBits)/int(toBits) + 1
	regrouped := make([]byte, 0, maxSize)

	// acc only needs its low fromBits+toBits bits, anything shifted out
	// above that has already been emitted.
	var acc uint32
	var bits uint8
	maxv := uint32(1)<<toBits - 1
	for _, b := range data {
		if b>>fromBits != 0 {
			return nil, ErrInvalidDataByte(b)
		}

		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
	}

	switch {
	case pad:
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}

	case bits >= fromBits:
		return nil, ErrInvalidIncompleteGroup{}

	case acc<<(toBits-bits)&maxv != 0:
		return nil, ErrInvalidPadding{}
	}

	return regrouped, nil
}

// bytesToBits5 regroups a byte payload into zero padded 5-bit symbols.
func bytesToBits5(data []byte) []byte {
	// 8 bit values and 5 bit groups are always a valid pairing.
	regrouped, _ := ConvertBits(data, 8, 5, true)
	return regrouped
}

// bits5ToBytes regroups 5-bit symbols back into bytes, rejecting leftovers
// that are not valid padding.
func bits5ToBytes(data []byte) ([]byte, error) {
	return ConvertBits(data, 5, 8, false)
}
