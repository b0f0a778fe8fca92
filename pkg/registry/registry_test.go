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

package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `Software\Classes\MoleditPy.File`, Join("Software", `Classes\`, `\MoleditPy.File`))
	assert.Equal(t, `a\b`, Join("", "a", "", "b"))
	assert.Empty(t, Join())
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	require.NoError(t, s.SetDefault(`A\B\C`, "leaf"))

	v, err := s.Default(`a\b\c`)
	require.NoError(t, err, "lookups are case insensitive")
	assert.Equal(t, "leaf", v)

	v, err = s.Default(`A\B`)
	require.NoError(t, err)
	assert.Empty(t, v, "intermediate keys have no default value")

	_, err = s.Default(`A\X`)
	require.ErrorIs(t, err, ErrNotExist)

	children, err := s.Children("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, children)

	_, err = s.Children("missing")
	require.ErrorIs(t, err, ErrNotExist)

	require.ErrorIs(t, s.DeleteLeaf(`A\B`), ErrHasChildren)
	require.ErrorIs(t, s.DeleteLeaf(`A\missing`), ErrNotExist)
	require.ErrorIs(t, s.DeleteLeaf(`missing\deeper`), ErrNotExist)
	require.NoError(t, s.DeleteLeaf(`A\B\C`))

	assert.Equal(t, []string{"A", `A\B`}, s.Keys())

	require.NoError(t, s.SetDefault(`A\B`, "overwritten"))
	v, err = s.Default(`A\B`)
	require.NoError(t, err)
	assert.Equal(t, "overwritten", v)
}

func TestDeleteTree(t *testing.T) {
	t.Parallel()

	t.Run("removes nested subtree", func(t *testing.T) {
		t.Parallel()

		s := NewMemoryStore()
		require.NoError(t, s.SetDefault(`MoleditPy.File`, "MoleditPy File"))
		require.NoError(t, s.SetDefault(`MoleditPy.File\DefaultIcon`, "icon.ico"))
		require.NoError(t, s.SetDefault(`MoleditPy.File\shell\open\command`, `"x.exe" "%1"`))
		require.NoError(t, s.SetDefault(`MoleditPy.File\shell\edit\command`, `"x.exe" "%1"`))
		require.NoError(t, s.SetDefault(`.pmeprj`, "MoleditPy.File"))

		removed, err := DeleteTree(s, "MoleditPy.File")
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, []string{".pmeprj"}, s.Keys(), "siblings are untouched")
	})

	t.Run("missing tree is not an error", func(t *testing.T) {
		t.Parallel()

		removed, err := DeleteTree(NewMemoryStore(), "MoleditPy.File")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("child delete failure stops and reports", func(t *testing.T) {
		t.Parallel()

		s := NewMemoryStore()
		require.NoError(t, s.SetDefault(`P\shell\open\command`, "cmd"))
		s.FailDelete[`P\shell\open`] = errors.New("access denied")

		removed, err := DeleteTree(s, "P")
		require.Error(t, err)
		assert.False(t, removed)
		assert.Contains(t, err.Error(), "access denied")
		assert.Contains(t, s.Keys(), `P\shell\open`)
		assert.NotContains(t, s.Keys(), `P\shell\open\command`)
	})

	t.Run("wide tree", func(t *testing.T) {
		t.Parallel()

		s := NewMemoryStore()
		for _, k := range []string{"a", "b", "c", "d", "e"} {
			require.NoError(t, s.SetDefault(Join("Root", k, "x"), k))
			require.NoError(t, s.SetDefault(Join("Root", k, "y"), k))
		}

		removed, err := DeleteTree(s, "Root")
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, s.Keys())
	})
}
