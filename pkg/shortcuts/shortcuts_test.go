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

package shortcuts

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/moleditpy/moleditpy-installer/pkg/environment"
	testhelpers "github.com/moleditpy/moleditpy-installer/pkg/testing/helpers"
	"github.com/moleditpy/moleditpy-installer/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExe = "/opt/moleditpy/bin/moleditpy"

func TestPlacementFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Placement{Desktop: true, Terminal: true}, PlacementFor("darwin"))
	assert.Equal(t, Placement{StartMenu: true}, PlacementFor("linux"))
	assert.Equal(t, Placement{StartMenu: true}, PlacementFor("windows"))
}

func TestForOS(t *testing.T) {
	t.Parallel()

	fs := testhelpers.NewMemoryFS()
	opts := Options{
		Fs:       fs.Fs,
		Cmd:      testhelpers.NewMockCommandExecutor(),
		AppData:  "/appdata",
		Home:     "/home/user",
		DataHome: "/home/user/.local/share",
	}

	tests := []struct {
		name     string
		goos     string
		opts     func(Options) Options
		wantPath string
		wantErr  error
	}{
		{
			name:     "windows",
			goos:     "windows",
			wantPath: filepath.Join("/appdata", "Microsoft", "Windows", "Start Menu", "Programs", "MoleditPy.lnk"),
		},
		{
			name:     "linux",
			goos:     "linux",
			wantPath: "/home/user/.local/share/applications/MoleditPy.desktop",
		},
		{
			name:     "darwin",
			goos:     "darwin",
			wantPath: "/home/user/Desktop/MoleditPy.app",
		},
		{
			name: "windows without appdata",
			goos: "windows",
			opts: func(o Options) Options {
				o.AppData = ""
				return o
			},
			wantErr: ErrNoLocation,
		},
		{
			name: "linux without data home",
			goos: "linux",
			opts: func(o Options) Options {
				o.DataHome = ""
				return o
			},
			wantErr: ErrNoLocation,
		},
		{
			name:    "unsupported",
			goos:    "plan9",
			wantErr: ErrUnsupported,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := opts
			if tt.opts != nil {
				o = tt.opts(o)
			}
			m, err := ForOS(tt.goos, o)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, m.Path())
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	fs := testhelpers.NewMemoryFS()
	require.NoError(t, fs.CreateExecutable(testExe))

	bare := environment.Wrap(environment.Context{}, testExe)
	missing := environment.Wrap(environment.Context{}, "/nowhere/moleditpy")
	wrapped := environment.Wrap(environment.Context{Name: "envA", RunnerPath: "/opt/conda/bin/conda"},
		"/nowhere/moleditpy")

	tests := []struct {
		name    string
		d       Descriptor
		wantErr error
	}{
		{name: "valid", d: NewDescriptor(bare, "", "linux")},
		{name: "wrapped target not checked", d: NewDescriptor(wrapped, "", "linux")},
		{name: "missing target", d: NewDescriptor(missing, "", "linux"), wantErr: ErrTargetMissing},
		{name: "empty target", d: NewDescriptor(environment.Target{}, "", "linux"), wantErr: validation.ErrInvalid},
		{
			name:    "empty name",
			d:       Descriptor{Target: bare},
			wantErr: validation.ErrInvalid,
		},
		{
			name:    "name with separator",
			d:       Descriptor{Name: "a/b", Target: bare},
			wantErr: validation.ErrInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := check(fs.Fs, tt.d)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemoveArtifact(t *testing.T) {
	t.Parallel()

	fs := testhelpers.NewMemoryFS()
	require.NoError(t, fs.CreateFile("/a/file", []byte("x")))
	require.NoError(t, fs.CreateFile("/a/dir/nested/file", []byte("x")))

	removed, err := removeArtifact(fs.Fs, "/a/file")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, fs.Exists("/a/file"))

	removed, err = removeArtifact(fs.Fs, "/a/dir")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, fs.Exists("/a/dir/nested/file"))

	removed, err = removeArtifact(fs.Fs, "/a/missing")
	require.NoError(t, err)
	assert.False(t, removed)
}

// errSave is returned by the fake shell link writer in failure tests.
var errSave = errors.New("COM failure")
