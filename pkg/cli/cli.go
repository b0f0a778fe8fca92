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

package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/moleditpy/moleditpy-installer/pkg/config"
)

// Exit codes. Install and remove always exit with ExitOK, a missing
// executable is reported on stdout but is not a process failure.
const (
	ExitOK    = 0
	ExitUsage = 2
)

type Flags struct {
	Remove  *bool
	Debug   *bool
	Version *bool
	set     *flag.FlagSet
}

// SetupFlags defines the installer flags on a new flag set.
func SetupFlags(out io.Writer) *Flags {
	fs := flag.NewFlagSet(config.AppSlug, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(out, "Usage: %s [--remove] [--debug] [--version]\n\n", config.AppSlug)
		_, _ = fmt.Fprintf(out, "Installer for %s shortcut and file associations.\n\n", config.AppName)
		fs.PrintDefaults()
	}

	return &Flags{
		Remove: fs.Bool(
			"remove",
			false,
			"remove the shortcut and unregister file associations",
		),
		Debug: fs.Bool(
			"debug",
			false,
			"print debug logs to stderr",
		),
		Version: fs.Bool(
			"version",
			false,
			"print version and exit",
		),
		set: fs,
	}
}

// Parse parses args, not including the program name.
func (f *Flags) Parse(args []string) error {
	if err := f.set.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if f.set.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", f.set.Args())
	}
	return nil
}
