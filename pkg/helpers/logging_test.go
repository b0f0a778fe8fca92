// MoleditPy Installer
// Copyright (c) 2026 The MoleditPy Installer Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of MoleditPy Installer.
//
// MoleditPy Installer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MoleditPy Installer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MoleditPy Installer.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/moleditpy/moleditpy-installer/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cannot use t.Parallel() - InitLogging replaces the global logger.
func TestInitLogging(t *testing.T) {
	prevLogger := log.Logger
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	t.Run("writes to log file and extra writers", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "state", "nested")
		var buf bytes.Buffer

		err := InitLogging(logDir, false, &buf)
		require.NoError(t, err)

		log.Info().Str("step", "locate").Msg("searching for executable")
		log.Debug().Msg("hidden at info level")

		data, err := os.ReadFile(filepath.Join(logDir, config.LogFile))
		require.NoError(t, err)
		assert.Contains(t, string(data), "searching for executable")
		assert.NotContains(t, string(data), "hidden at info level")
		assert.Contains(t, buf.String(), `"step":"locate"`)
	})

	t.Run("debug enables debug level", func(t *testing.T) {
		logDir := t.TempDir()
		var buf bytes.Buffer

		err := InitLogging(logDir, true, &buf)
		require.NoError(t, err)

		log.Debug().Msg("visible at debug level")
		assert.Contains(t, buf.String(), "visible at debug level")
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("fails when log dir is a file", func(t *testing.T) {
		root := t.TempDir()
		blocker := filepath.Join(root, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

		err := InitLogging(filepath.Join(blocker, "logs"), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create log directory")
	})
}
