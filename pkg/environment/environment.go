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

// Package environment decides whether the shortcut has to start the
// application through a conda runner instead of invoking it directly.
package environment

import (
	"fmt"

	"github.com/moleditpy/moleditpy-installer/pkg/config"
)

// Context is the detected execution environment. Both fields empty means
// no environment was detected.
type Context struct {
	Name       string
	RunnerPath string
}

// FromConfig builds a Context from the values read at startup.
func FromConfig(vals config.Values) Context {
	return Context{
		Name:       vals.CondaEnv,
		RunnerPath: vals.CondaExe,
	}
}

// NeedsWrapping reports whether the target must be started through the
// runner. The sentinel environment is already active for every process and
// never needs it.
func (c Context) NeedsWrapping() bool {
	return c.Name != "" && c.RunnerPath != "" && c.Name != config.SentinelEnv
}

// Target is what a shortcut executes.
type Target struct {
	// Path is the program the shortcut starts: the runner when wrapped,
	// otherwise the application executable.
	Path string
	// Args is the pre-quoted argument string, empty when not wrapped.
	Args string
	// Argv holds the same arguments unquoted, for formats that take an
	// argument vector.
	Argv []string
	// Executable is always the real application binary.
	Executable string
}

// Wrap returns the Target for exe under c.
func Wrap(c Context, exe string) Target {
	if !c.NeedsWrapping() {
		return Target{
			Path:       exe,
			Executable: exe,
		}
	}

	return Target{
		Path:       c.RunnerPath,
		Args:       fmt.Sprintf(`run -n %s %s`, c.Name, quote(exe)),
		Argv:       []string{"run", "-n", c.Name, exe},
		Executable: exe,
	}
}

func (t Target) Wrapped() bool {
	return t.Args != ""
}

// CommandLine is the full command line. A bare executable is returned
// unquoted so shortcut writers can check the file exists; a wrapped runner
// path is quoted because arguments follow it.
func (t Target) CommandLine() string {
	if !t.Wrapped() {
		return t.Path
	}
	return quote(t.Path) + " " + t.Args
}

func quote(s string) string {
	return `"` + s + `"`
}
