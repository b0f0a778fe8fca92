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
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// StartMenuLink is a Windows shell link in the user's start menu
// Programs folder.
type StartMenuLink struct {
	fs   afero.Fs
	save func(path string, d Descriptor) error
	dir  string
	name string
}

func NewStartMenuLink(fs afero.Fs, appData, name string) *StartMenuLink {
	return &StartMenuLink{
		fs:   fs,
		save: saveShellLink,
		dir:  StartMenuDir(appData),
		name: name,
	}
}

// StartMenuDir is the per-user start menu Programs folder below appData
// (%APPDATA%).
func StartMenuDir(appData string) string {
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs")
}

func (l *StartMenuLink) Path() string {
	return filepath.Join(l.dir, l.name+".lnk")
}

// Create writes the link. The shell overwrites an existing .lnk in place.
func (l *StartMenuLink) Create(d Descriptor) error {
	if err := check(l.fs, d); err != nil {
		return err
	}
	if err := l.fs.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", l.dir, err)
	}
	if err := l.save(l.Path(), d); err != nil {
		return fmt.Errorf("failed to save %s: %w", l.Path(), err)
	}
	return nil
}

func (l *StartMenuLink) Remove() (bool, error) {
	return removeArtifact(l.fs, l.Path())
}
