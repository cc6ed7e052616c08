// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

// ChecksumConst is the value the checksum polymod is finalized with.  It is
// the only thing that differs between the bech32 and bech32m variants.
type ChecksumConst int

const (
	// Version0Const finalizes a BIP-173 bech32 checksum.
	Version0Const ChecksumConst = 1

	// VersionMConst finalizes a BIP-350 bech32m checksum.
	VersionMConst ChecksumConst = 0x2bc830a3
)

// Version identifies a checksum variant.  It is an input when encoding and an
// output when decoding.
type Version uint8

const (
	// Version0 defines the original bech version.
	Version0 Version = iota

	// VersionM is the new bech32 version defined in BIP-350, also known as
	// bech32m.
	VersionM

	// VersionUnknown denotes an unknown bech version.
	VersionUnknown
)

// VersionToConsts maps each known version to its checksum constant.
var VersionToConsts = map[Version]ChecksumConst{
	Version0: Version0Const,
	VersionM: VersionMConst,
}

// ConstsToVersion is the inverse of VersionToConsts.  A polymod result that is
// not a key here is an invalid checksum.
var ConstsToVersion = map[ChecksumConst]Version{
	Version0Const: Version0,
	VersionMConst: VersionM,
}

// String returns the name of the checksum variant.
func (v Version) String() string {
	switch v {
	case Version0:
		return "bech32"
	case VersionM:
		return "bech32m"
	default:
		return "unknown"
	}
}

// ParseVersion returns the Version with the given name as produced by
// Version.String.  VersionUnknown and false are returned for any other name.
func ParseVersion(name string) (Version, bool) {
	switch name {
	case "bech32":
		return Version0, true
	case "bech32m":
		return VersionM, true
	default:
		return VersionUnknown, false
	}
}
