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

package icons

import (
	"errors"
	"path/filepath"
	"testing"

	testhelpers "github.com/moleditpy/moleditpy-installer/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos   string
		want   string
		wantOK bool
	}{
		{goos: "windows", want: "icon.ico", wantOK: true},
		{goos: "darwin", want: "icon.icns", wantOK: true},
		{goos: "linux", want: "icon.png", wantOK: true},
		{goos: "plan9", want: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()
			got, ok := FileName(tt.goos)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func newTestResolver(fs *testhelpers.FSHelper, goos string) *Resolver {
	return &Resolver{
		Fs: fs.Fs,
		LauncherDir: func() (string, error) {
			return "/opt/app/bin", nil
		},
		GOOS:     goos,
		DataDirs: []string{"/home/me/.local/share", "/usr/share"},
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("launcher data dir", func(t *testing.T) {
		t.Parallel()
		fs := testhelpers.NewMemoryFS()
		want := filepath.Join("/opt/app/bin", "data", "icon.png")
		require.NoError(t, fs.CreateFile(want, []byte("png")))
		require.NoError(t, fs.CreateFile("/usr/share/moleditpy-installer/icon.png", []byte("png")))

		assert.Equal(t, want, newTestResolver(fs, "linux").Resolve())
	})

	t.Run("override wins", func(t *testing.T) {
		t.Parallel()
		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.CreateFile("/custom/mine.ico", []byte("ico")))
		require.NoError(t, fs.CreateFile(filepath.Join("/opt/app/bin", "data", "icon.ico"), []byte("ico")))

		r := newTestResolver(fs, "windows")
		r.Override = "/custom/mine.ico"
		assert.Equal(t, "/custom/mine.ico", r.Resolve())
	})

	t.Run("missing override falls through", func(t *testing.T) {
		t.Parallel()
		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.CreateFile("/usr/share/moleditpy-installer/icon.icns", []byte("icns")))

		r := newTestResolver(fs, "darwin")
		r.Override = "/custom/missing.icns"
		assert.Equal(t, "/usr/share/moleditpy-installer/icon.icns", r.Resolve())
	})

	t.Run("share dir next to prefix", func(t *testing.T) {
		t.Parallel()
		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.CreateFile("/opt/app/share/moleditpy-installer/icon.png", []byte("png")))

		assert.Equal(t, "/opt/app/share/moleditpy-installer/icon.png", newTestResolver(fs, "linux").Resolve())
	})

	t.Run("directory named like icon is skipped", func(t *testing.T) {
		t.Parallel()
		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.Fs.MkdirAll(filepath.Join("/opt/app/bin", "data", "icon.png"), 0o755))

		assert.Empty(t, newTestResolver(fs, "linux").Resolve())
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, newTestResolver(testhelpers.NewMemoryFS(), "linux").Resolve())
	})

	t.Run("unsupported os", func(t *testing.T) {
		t.Parallel()
		fs := testhelpers.NewMemoryFS()
		assert.Empty(t, newTestResolver(fs, "plan9").Resolve())
		assert.Nil(t, newTestResolver(fs, "plan9").Candidates())
	})

	t.Run("launcher dir error still searches data dirs", func(t *testing.T) {
		t.Parallel()
		fs := testhelpers.NewMemoryFS()
		require.NoError(t, fs.CreateFile("/home/me/.local/share/moleditpy-installer/icon.png", []byte("png")))

		r := newTestResolver(fs, "linux")
		r.LauncherDir = func() (string, error) { return "", errors.New("boom") }
		assert.Equal(t, "/home/me/.local/share/moleditpy-installer/icon.png", r.Resolve())
	})
}
