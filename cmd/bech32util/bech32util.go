// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/btcsuite/bech32codec/bech32"
	"github.com/btcsuite/bech32codec/compat"
	"github.com/btcsuite/bech32codec/internal/log"
	"github.com/btcsuite/bech32codec/internal/version"
	"github.com/davecgh/go-spew/spew"
	flags "github.com/jessevdk/go-flags"
)

var appName = filepath.Base(os.Args[0])

// logClosure is used to provide a closure over expensive logging operations so
// don't have to be performed when the logging level doesn't warrant it.
type logClosure func() string

// String invokes the underlying function and returns the result.
func (c logClosure) String() string {
	return c()
}

// newLogClosure returns a new closure over a function that returns a string
// which itself provides a Stringer interface so that it can be used with the
// logging system.
func newLogClosure(c func() string) logClosure {
	return logClosure(c)
}

// decodeResult groups the values of a successful decode for debug output.
type decodeResult struct {
	HRP     string
	Payload []byte
	Version bech32.Version
}

// runEncode encodes the single payload argument and writes the resulting
// string to w.
func runEncode(w io.Writer, cmd *encodeCommand, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("encode: expected exactly one payload argument, "+
			"got %d", len(args))
	}
	if cmd.HRP == "" {
		return errors.New("encode: --hrp is required")
	}

	payload := []byte(args[0])
	if !cmd.Text {
		var err error
		payload, err = hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("encode: invalid hex payload: %w", err)
		}
	}

	ver := bech32.Version0
	if cmd.Bech32m {
		ver = bech32.VersionM
	}

	encoded, err := bech32.EncodeFromBase256WithVersion(cmd.HRP, payload, ver)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	log.B32uLog.Debugf("Encoded %d byte payload with a %v checksum",
		len(payload), ver)

	_, err = fmt.Fprintln(w, encoded)
	return err
}

// runDecode decodes the single string argument and writes its hrp, checksum
// variant and hex payload to w.
func runDecode(w io.Writer, cmd *decodeCommand, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("decode: expected exactly one string argument, "+
			"got %d", len(args))
	}

	want := bech32.VersionUnknown
	if cmd.Require != "" {
		var ok bool
		want, ok = bech32.ParseVersion(cmd.Require)
		if !ok {
			return fmt.Errorf("decode: unknown checksum variant %q",
				cmd.Require)
		}
	}

	decode := bech32.DecodeToBase256WithVersion
	if cmd.NoLimit {
		decode = bech32.DecodeToBase256NoLimit
	}
	hrp, payload, ver, err := decode(args[0])
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	// The string is well formed at this point, so the variant policy can
	// only reject it for carrying the wrong checksum.
	if want != bech32.VersionUnknown {
		decodeVersion := compat.DecodeWithVersion
		if cmd.NoLimit {
			decodeVersion = compat.DecodeNoLimitWithVersion
		}
		if _, _, ok := decodeVersion(args[0], want); !ok {
			return fmt.Errorf("decode: checksum variant is %v, want %v",
				ver, want)
		}
	}
	log.B32uLog.Debugf("Decoded %q: %v", args[0], newLogClosure(func() string {
		return spew.Sdump(decodeResult{hrp, payload, ver})
	}))

	_, err = fmt.Fprintf(w, "hrp: %s\nversion: %v\npayload: %x\n", hrp, ver,
		payload)
	return err
}

// runConvert regroups the hex encoded argument and writes the hex encoded
// result to w.
func runConvert(w io.Writer, cmd *convertCommand, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("convert: expected exactly one hex argument, "+
			"got %d", len(args))
	}

	data, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("convert: invalid hex input: %w", err)
	}
	regrouped, err := bech32.ConvertBits(data, cmd.From, cmd.To, cmd.Pad)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	_, err = fmt.Fprintln(w, hex.EncodeToString(regrouped))
	return err
}

// bech32utilMain is the real main function for bech32util.  It is necessary
// to work around the fact that deferred functions do not run when os.Exit()
// is called.
func bech32utilMain(w io.Writer, args []string) error {
	cfg, remainingArgs, err := loadConfig(args)
	if err != nil {
		return err
	}

	if cfg.ShowVersion {
		_, err := fmt.Fprintf(w, "%s version %s (Go version %s %s/%s)\n",
			appName, version.String(), runtime.Version(),
			runtime.GOOS, runtime.GOARCH)
		return err
	}

	if cfg.LogFile != "" {
		if err := log.InitLogRotator(cfg.LogFile); err != nil {
			return err
		}
		defer log.CloseLogRotator()
	}
	log.SetLogLevels(cfg.DebugLevel)

	switch cfg.command {
	case "encode":
		return runEncode(w, &cfg.Encode, remainingArgs)
	case "decode":
		return runDecode(w, &cfg.Decode, remainingArgs)
	case "convert":
		return runConvert(w, &cfg.Convert, remainingArgs)
	}
	return errNoCommand
}

func main() {
	if err := bech32utilMain(os.Stdout, os.Args[1:]); err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			// The parser already reported the error.
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
