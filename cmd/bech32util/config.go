// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/bech32codec/internal/log"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel = "info"
	defaultFromBits = 8
	defaultToBits   = 5
)

// errNoCommand is returned when no command was given on the command line.
var errNoCommand = errors.New("no command specified -- choose one of " +
	"encode, decode or convert")

// encodeCommand holds the options of the encode command.
type encodeCommand struct {
	HRP     string `long:"hrp" description:"Human-readable part to encode the payload under"`
	Bech32m bool   `short:"m" long:"bech32m" description:"Use the bech32m checksum instead of bech32"`
	Text    bool   `long:"text" description:"Treat the payload argument as text instead of hex"`
}

// decodeCommand holds the options of the decode command.
type decodeCommand struct {
	NoLimit bool   `long:"nolimit" description:"Accept strings longer than 90 characters"`
	Require string `long:"require" description:"Fail unless the checksum variant is this one {bech32, bech32m}"`
}

// convertCommand holds the options of the convert command.
type convertCommand struct {
	From uint8 `long:"from" description:"Bits per input value {1-8}"`
	To   uint8 `long:"to" description:"Bits per output value {1-8}"`
	Pad  bool  `long:"pad" description:"Zero pad an incomplete final group instead of rejecting it"`
}

// config defines the configuration options for bech32util.
//
// See loadConfig for details on the configuration load process.
type config struct {
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile     string `long:"logfile" description:"Also write log output to this file, rotating it as it grows"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`

	Encode  encodeCommand  `command:"encode" description:"Encode a hex (or text) payload into a bech32 string"`
	Decode  decodeCommand  `command:"decode" description:"Decode a bech32 string into its hrp, checksum variant and hex payload"`
	Convert convertCommand `command:"convert" description:"Regroup hex encoded values between bit widths"`

	// command is the name of the command selected on the command line.
	command string
}

// loadConfig initializes and parses the config using command line options.
// The returned arguments are the positional arguments of the selected
// command.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultLogLevel,
		Convert: convertCommand{
			From: defaultFromBits,
			To:   defaultToBits,
		},
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.SubcommandsOptional = true
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	// Show the version and exit if the version flag was specified.
	if cfg.ShowVersion {
		return &cfg, nil, nil
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		return nil, nil, errNoCommand
	}
	cfg.command = parser.Active.Name

	// Validate debug log level.
	if !log.ValidLogLevel(cfg.DebugLevel) {
		str := "%s: the specified debug level [%v] is invalid"
		err := fmt.Errorf(str, "loadConfig", cfg.DebugLevel)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
