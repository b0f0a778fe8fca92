//go:build windows

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
	"fmt"

	winreg "golang.org/x/sys/windows/registry"
)

// WindowsStore is a Store backed by the real registry, rooted at prefix
// under root.
type WindowsStore struct {
	prefix string
	root   winreg.Key
}

// NewUserClassesStore returns a Store over HKEY_CURRENT_USER\Software\Classes,
// where per-user file associations live. No elevation is needed.
func NewUserClassesStore() *WindowsStore {
	return &WindowsStore{root: winreg.CURRENT_USER, prefix: `Software\Classes`}
}

func (s *WindowsStore) path(key string) string {
	return Join(s.prefix, key)
}

func mapErr(err error) error {
	if errors.Is(err, winreg.ErrNotExist) {
		return ErrNotExist
	}
	return err
}

func (s *WindowsStore) SetDefault(key, value string) error {
	k, _, err := winreg.CreateKey(s.root, s.path(key), winreg.SET_VALUE)
	if err != nil {
		return fmt.Errorf("create key: %w", err)
	}
	defer func() { _ = k.Close() }()

	if err := k.SetStringValue("", value); err != nil {
		return fmt.Errorf("set default value: %w", err)
	}
	return nil
}

func (s *WindowsStore) Default(key string) (string, error) {
	k, err := winreg.OpenKey(s.root, s.path(key), winreg.QUERY_VALUE)
	if err != nil {
		return "", mapErr(err)
	}
	defer func() { _ = k.Close() }()

	v, _, err := k.GetStringValue("")
	if errors.Is(err, winreg.ErrNotExist) {
		// key exists but has no default value
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("read default value: %w", err)
	}
	return v, nil
}

func (s *WindowsStore) Children(key string) ([]string, error) {
	k, err := winreg.OpenKey(s.root, s.path(key), winreg.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil, mapErr(err)
	}
	defer func() { _ = k.Close() }()

	names, err := k.ReadSubKeyNames(0)
	if err != nil {
		return nil, fmt.Errorf("read subkeys: %w", err)
	}
	return names, nil
}

func (s *WindowsStore) DeleteLeaf(key string) error {
	return mapErr(winreg.DeleteKey(s.root, s.path(key)))
}
