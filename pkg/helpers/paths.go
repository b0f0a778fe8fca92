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
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LauncherDir returns the directory of the running executable with
// symlinks resolved, so a launcher linked into ~/.local/bin still points
// back at its real install directory.
func LauncherDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err == nil {
		exe = resolved
	}

	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	return filepath.Dir(abs), nil
}

// NormalizeExeSuffix lowercases an upper-case ".EXE" suffix. Any other
// path is returned unchanged.
func NormalizeExeSuffix(path string) string {
	if strings.HasSuffix(path, ".EXE") {
		return strings.TrimSuffix(path, ".EXE") + ".exe"
	}
	return path
}
