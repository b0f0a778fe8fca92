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

// Package registry models a hierarchical key store (the Windows registry,
// or an in-memory tree in tests) and implements recursive key deletion on
// top of it.
package registry

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNotExist = errors.New("registry key does not exist")

// Separator joins key path components.
const Separator = `\`

// UserClassesRoot is the display name of the per-user classes root.
const UserClassesRoot = `HKEY_CURRENT_USER\Software\Classes`

// Store is a tree of keys, each with an optional default string value.
// Key paths are relative to the store root and use Separator.
type Store interface {
	// SetDefault creates key and any missing parents, then sets the key's
	// default value.
	SetDefault(key, value string) error
	// Default returns the default value of key.
	Default(key string) (string, error)
	// Children returns the names (not full paths) of key's direct subkeys.
	Children(key string) ([]string, error)
	// DeleteLeaf deletes key. It fails if key still has subkeys.
	DeleteLeaf(key string) error
}

// Join builds a key path from its components.
func Join(parts ...string) string {
	var cleaned []string
	for _, p := range parts {
		p = strings.Trim(p, Separator)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, Separator)
}

// DeleteTree deletes key and every descendant, children before parents.
// Names are collected from one Children call per level and deleted by
// name, so the result does not depend on how the store indexes subkeys
// while they are being removed. A missing key is not an error; removed
// reports whether key existed.
func DeleteTree(s Store, key string) (removed bool, err error) {
	children, err := s.Children(key)
	if errors.Is(err, ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to list subkeys of %s: %w", key, err)
	}

	for _, child := range children {
		if _, err := DeleteTree(s, Join(key, child)); err != nil {
			return false, err
		}
	}

	err = s.DeleteLeaf(key)
	if errors.Is(err, ErrNotExist) {
		// removed between listing and deleting
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return true, nil
}
