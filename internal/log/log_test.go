// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/stretchr/testify/require"
)

// TestValidLogLevel ensures only the levels understood by btclog are
// accepted.
func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn",
		"error", "critical", "off"} {

		require.True(t, ValidLogLevel(level), level)
		_, ok := btclog.LevelFromString(level)
		require.True(t, ok, level)
	}

	require.False(t, ValidLogLevel("verbose"))
	require.False(t, ValidLogLevel(""))
}

// TestSetLogLevels ensures levels are applied to every subsystem and that
// unknown subsystems are ignored.
func TestSetLogLevels(t *testing.T) {
	defer SetLogLevels("info")

	SetLogLevels("trace")
	for id, logger := range SubsystemLoggers {
		require.Equal(t, btclog.LevelTrace, logger.Level(), id)
	}

	SetLogLevel("B32U", "error")
	require.Equal(t, btclog.LevelError, B32uLog.Level())
	require.Equal(t, btclog.LevelTrace, cmptLog.Level())

	SetLogLevel("NOPE", "debug")
	require.Equal(t, []string{"B32U", "CMPT"}, SupportedSubsystems())
}

// TestInitLogRotator ensures the rotator creates missing directories and
// receives backend output.
func TestInitLogRotator(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "bech32util.log")

	require.NoError(t, InitLogRotator(logFile))
	require.NotNil(t, LogRotator)

	B32uLog.SetLevel(btclog.LevelInfo)
	B32uLog.Infof("rotator test line")
	CloseLogRotator()
	require.Nil(t, LogRotator)

	contents, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(contents), "rotator test line")
}
