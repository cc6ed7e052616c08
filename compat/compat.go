// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compat exposes the bech32 codec through the lenient contract used
// by foreign function bindings: every failure is reported as an absent value
// instead of an error, and the checksum variant a caller requires is
// enforced here rather than in the codec.
package compat

import (
	"github.com/btcsuite/bech32codec/bech32"
	"github.com/davecgh/go-spew/spew"
)

// decodeResult groups the values of a successful decode for trace logging.
type decodeResult struct {
	HRP     string
	Payload []byte
	Version bech32.Version
}

// Encode encodes the payload bytes with the original bech32 checksum under
// the given human-readable part.  An empty string is returned when the hrp is
// invalid.
func Encode(hrp string, payload []byte) string {
	return encode(hrp, payload, bech32.Version0)
}

// EncodeM is Encode with the bech32m checksum.
func EncodeM(hrp string, payload []byte) string {
	return encode(hrp, payload, bech32.VersionM)
}

func encode(hrp string, payload []byte, version bech32.Version) string {
	encoded, err := bech32.EncodeFromBase256WithVersion(hrp, payload, version)
	if err != nil {
		log.Debugf("Unable to %v encode payload under hrp %q: %v",
			version, hrp, err)
		return ""
	}
	return encoded
}

// Decode decodes a bech32 string into its payload bytes.  Nil is returned if
// the string does not decode, if it carries a bech32m checksum, or if the
// payload is empty, since an empty result cannot be told apart from a
// failure across a binding boundary.
func Decode(s string) []byte {
	_, payload, ok := DecodeWithVersion(s, bech32.Version0)
	if !ok || len(payload) == 0 {
		return nil
	}
	return payload
}

// DecodeWithVersion decodes s and returns its lowercase human-readable part
// and payload bytes.  The ok result is false if decoding fails for any reason
// or the checksum variant that matched is not want.  No partial results are
// returned on failure.
func DecodeWithVersion(s string, want bech32.Version) (string, []byte, bool) {
	return decodeWithVersion(bech32.DecodeToBase256WithVersion, s, want)
}

// DecodeNoLimitWithVersion is identical to DecodeWithVersion but accepts
// strings longer than 90 characters.
func DecodeNoLimitWithVersion(s string, want bech32.Version) (string, []byte, bool) {
	return decodeWithVersion(bech32.DecodeToBase256NoLimit, s, want)
}

// decodeFunc is the signature shared by the byte level bech32 decoders.
type decodeFunc func(string) (string, []byte, bech32.Version, error)

func decodeWithVersion(decode decodeFunc, s string,
	want bech32.Version) (string, []byte, bool) {

	hrp, payload, version, err := decode(s)
	if err != nil {
		log.Debugf("Rejected bech32 string %q: %v", s, err)
		return "", nil, false
	}
	if version != want {
		log.Debugf("Rejected bech32 string %q: checksum variant is %v, "+
			"want %v", s, version, want)
		return "", nil, false
	}
	log.Tracef("Decoded bech32 string %q: %v", s, newLogClosure(func() string {
		return spew.Sdump(decodeResult{hrp, payload, version})
	}))
	return hrp, payload, true
}
