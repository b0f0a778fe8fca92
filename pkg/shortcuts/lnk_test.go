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
	"testing"

	"github.com/moleditpy/moleditpy-installer/pkg/environment"
	testhelpers "github.com/moleditpy/moleditpy-installer/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLink stands in for the shell link writer and stores the descriptor
// it was given as the file contents.
func fakeLink(fs afero.Fs, saved *[]Descriptor) func(string, Descriptor) error {
	return func(path string, d Descriptor) error {
		*saved = append(*saved, d)
		return afero.WriteFile(fs, path, []byte(d.Target.CommandLine()), 0o644)
	}
}

func TestStartMenuLinkCreateAndRemove(t *testing.T) {
	t.Parallel()

	fs := testhelpers.NewMemoryFS()
	require.NoError(t, fs.CreateExecutable(testExe))

	var saved []Descriptor
	l := NewStartMenuLink(fs.Fs, "/appdata", "MoleditPy")
	l.save = fakeLink(fs.Fs, &saved)

	target := environment.Wrap(environment.Context{Name: "envA", RunnerPath: "/conda/conda.exe"}, testExe)
	d := NewDescriptor(target, "/icons/icon.ico", "windows")

	require.NoError(t, l.Create(d))
	require.NoError(t, l.Create(d))
	require.Len(t, saved, 2)
	assert.Equal(t, d, saved[0])

	entries, err := afero.ReadDir(fs.Fs, StartMenuDir("/appdata"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := afero.ReadFile(fs.Fs, l.Path())
	require.NoError(t, err)
	assert.Equal(t, `"/conda/conda.exe" run -n envA "`+testExe+`"`, string(data))

	removed, err := l.Remove()
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = l.Remove()
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStartMenuLinkSaveFailure(t *testing.T) {
	t.Parallel()

	fs := testhelpers.NewMemoryFS()
	require.NoError(t, fs.CreateExecutable(testExe))

	l := NewStartMenuLink(fs.Fs, "/appdata", "MoleditPy")
	l.save = func(string, Descriptor) error { return errSave }

	err := l.Create(NewDescriptor(environment.Wrap(environment.Context{}, testExe), "", "windows"))
	require.ErrorIs(t, err, errSave)
	assert.False(t, fs.Exists(l.Path()))
}
