// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 format specified in
BIP 173 and of its bech32m variant specified in BIP 350.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a data part whose last 6 characters are a checksum.  The
data part is encoded with a 32 character alphabet, so each character carries
5 bits.  Arbitrary byte payloads must therefore be regrouped before encoding,
which is what ConvertBits and the *Base256 helpers do.

The two checksum variants differ only in the constant the checksum is
finalized with.  Encoding takes the variant as a Version parameter and
decoding reports the Version that matched, so policy about which variant is
acceptable lives with the caller.  Decode and DecodeToBase256 accept only the
original bech32 variant.

Strings longer than 90 characters are rejected by the Decode functions as
BIP 173 requires.  The NoLimit variants skip that check for protocols which
reuse the format for longer payloads.  Encoding never enforces a length.
*/
package bech32
