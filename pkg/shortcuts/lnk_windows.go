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

package shortcuts

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialized on
// this thread.
const sFalse = 0x00000001

// saveShellLink writes a .lnk through the WScript.Shell automation object.
func saveShellLink(path string, d Descriptor) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("failed to create WScript.Shell: %w", err)
	}
	defer unknown.Release()

	shell, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query WScript.Shell interface: %w", err)
	}
	defer shell.Release()

	linkRaw, err := oleutil.CallMethod(shell, "CreateShortcut", path)
	if err != nil {
		return fmt.Errorf("failed to create shortcut object: %w", err)
	}
	link := linkRaw.ToIDispatch()
	defer link.Release()

	props := []struct {
		value any
		name  string
	}{
		{name: "TargetPath", value: d.Target.Path},
		{name: "Arguments", value: d.Target.Args},
		{name: "WorkingDirectory", value: filepath.Dir(d.Target.Executable)},
		{name: "Description", value: d.Description},
	}
	if d.Icon != "" {
		props = append(props, struct {
			value any
			name  string
		}{name: "IconLocation", value: d.Icon + ",0"})
	}

	for _, p := range props {
		if _, err := oleutil.PutProperty(link, p.name, p.value); err != nil {
			return fmt.Errorf("failed to set %s: %w", p.name, err)
		}
	}

	if _, err := oleutil.CallMethod(link, "Save"); err != nil {
		return fmt.Errorf("failed to save shortcut: %w", err)
	}
	return nil
}
