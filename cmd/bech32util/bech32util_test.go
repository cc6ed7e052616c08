// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btcsuite/bech32codec/bech32"
	"github.com/btcsuite/bech32codec/internal/version"
	"github.com/stretchr/testify/require"
)

// run executes bech32util with the given arguments and returns its output.
func run(args ...string) (string, error) {
	var buf bytes.Buffer
	err := bech32utilMain(&buf, args)
	return buf.String(), err
}

// TestEncodeDecode round trips text and hex payloads through the encode and
// decode commands.
func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name       string
		encodeArgs []string
		payloadHex string
		version    string
	}{{
		name:       "text bech32",
		encodeArgs: []string{"encode", "--hrp=bc", "--text", "Test data"},
		payloadHex: "546573742064617461",
		version:    "bech32",
	}, {
		name:       "hex bech32m",
		encodeArgs: []string{"encode", "--hrp=TB", "-m", "00ff10"},
		payloadHex: "00ff10",
		version:    "bech32m",
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoded, err := run(test.encodeArgs...)
			require.NoError(t, err)
			encoded = strings.TrimSpace(encoded)
			require.Equal(t, strings.ToLower(encoded), encoded)

			out, err := run("decode", encoded)
			require.NoError(t, err)
			require.Contains(t, out, "version: "+test.version+"\n")
			require.Contains(t, out, "payload: "+test.payloadHex+"\n")

			_, err = run("decode", "--require="+test.version, encoded)
			require.NoError(t, err)
		})
	}
}

// TestDecodeReference decodes the reference empty payload vector in both
// cases.
func TestDecodeReference(t *testing.T) {
	want := "hrp: a\nversion: bech32\npayload: \n"
	for _, str := range []string{"a12uel5l", "A12UEL5L"} {
		out, err := run("decode", str)
		require.NoError(t, err)
		require.Equal(t, want, out)
	}
}

// TestDecodeFailures ensures malformed strings and variant mismatches are
// reported as errors without output.
func TestDecodeFailures(t *testing.T) {
	out, err := run("decode", "a12uel5L")
	require.Empty(t, out)
	var mixed bech32.ErrMixedCase
	require.True(t, errors.As(err, &mixed))

	out, err = run("decode", "a12uel5m")
	require.Empty(t, out)
	var csErr bech32.ErrInvalidChecksum
	require.True(t, errors.As(err, &csErr))

	_, err = run("decode", "--require=bech32m", "a12uel5l")
	require.EqualError(t, err, "decode: checksum variant is bech32, "+
		"want bech32m")

	_, err = run("decode", "--require=base58", "a12uel5l")
	require.Error(t, err)

	_, err = run("decode")
	require.Error(t, err)
}

// TestDecodeNoLimit ensures strings over 90 characters are only accepted
// with --nolimit.
func TestDecodeNoLimit(t *testing.T) {
	encoded, err := bech32.EncodeFromBase256("a", bytes.Repeat([]byte{7}, 60))
	require.NoError(t, err)
	require.Greater(t, len(encoded), 90)

	_, err = run("decode", encoded)
	var lenErr bech32.ErrInvalidLength
	require.True(t, errors.As(err, &lenErr))

	out, err := run("decode", "--nolimit", encoded)
	require.NoError(t, err)
	require.Contains(t, out, "payload: "+strings.Repeat("07", 60)+"\n")

	_, err = run("decode", "--nolimit", "--require=bech32", encoded)
	require.NoError(t, err)

	_, err = run("decode", "--nolimit", "--require=bech32m", encoded)
	require.EqualError(t, err, "decode: checksum variant is bech32, "+
		"want bech32m")
}

// TestDecodeRequireLogging ensures a variant mismatch rejected by --require
// is reported through the CMPT subsystem logger.
func TestDecodeRequireLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "bech32util.log")
	_, err := run("-d", "debug", "--logfile="+logFile, "decode",
		"--require=bech32m", "a12uel5l")
	require.Error(t, err)

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(contents), "[DBG] CMPT: Rejected bech32 "+
		"string \"a12uel5l\": checksum variant is bech32, want bech32m")
}

// TestConvert exercises the convert command with its defaults and explicit
// bit widths.
func TestConvert(t *testing.T) {
	out, err := run("convert", "--pad", "ff")
	require.NoError(t, err)
	require.Equal(t, "1f1c\n", out)

	out, err = run("convert", "--from=5", "--to=8", "1f1c")
	require.NoError(t, err)
	require.Equal(t, "ff\n", out)

	_, err = run("convert", "--from=5", "--to=8", "1f1d")
	require.True(t, errors.As(err, new(bech32.ErrInvalidPadding)))

	_, err = run("convert", "zz")
	require.Error(t, err)
}

// TestEncodeFailures ensures invalid encode invocations are rejected.
func TestEncodeFailures(t *testing.T) {
	_, err := run("encode", "00")
	require.EqualError(t, err, "encode: --hrp is required")

	_, err = run("encode", "--hrp=a b", "00")
	require.True(t, errors.As(err, new(bech32.ErrInvalidCharacter)))

	_, err = run("encode", "--hrp=a", "0")
	require.Error(t, err)
}

// TestGlobalOptions covers the version flag, log level validation, log file
// output and the missing command case.
func TestGlobalOptions(t *testing.T) {
	out, err := run("-V")
	require.NoError(t, err)
	require.Contains(t, out, version.String())

	_, err = run("-d", "verbose", "decode", "a12uel5l")
	require.Error(t, err)

	_, err = run()
	require.Equal(t, errNoCommand, err)

	logFile := filepath.Join(t.TempDir(), "bech32util.log")
	_, err = run("-d", "debug", "--logfile="+logFile, "decode", "a12uel5l")
	require.NoError(t, err)

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(contents), "Decoded \"a12uel5l\"")
}
