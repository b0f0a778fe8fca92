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
	"errors"
	"fmt"
	"io"

	"github.com/moleditpy/moleditpy-installer/pkg/config"
	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/moleditpy/moleditpy-installer/pkg/installer"
	"github.com/rs/zerolog/log"
)

// App is everything a run needs from the outside world.
type App struct {
	Out    io.Writer
	GOOS   string
	Values config.Values
	// ForOS selects the platform. Defaults to installer.ForOS.
	ForOS func(goos string, vals config.Values, out io.Writer) (installer.Platform, error)
}

// Run executes the mode selected by the already parsed flags and returns
// the process exit code.
func (a *App) Run(f *Flags) int {
	console := helpers.NewConsole(a.Out)

	if *f.Version {
		_, _ = fmt.Fprintf(a.Out, "%s v%s (%s)\n", config.AppSlug, config.AppVersion, a.GOOS)
		return ExitOK
	}

	forOS := a.ForOS
	if forOS == nil {
		forOS = installer.ForOS
	}

	p, err := forOS(a.GOOS, a.Values, a.Out)
	if err != nil {
		log.Error().Err(err).Str("os", a.GOOS).Msg("no platform")
		if *f.Remove {
			console.Printf("Removal not fully supported/automated for OS: %s", a.GOOS)
		} else {
			console.Printf("Shortcut creation is not supported on this OS: %s", a.GOOS)
		}
		return ExitOK
	}

	if *f.Remove {
		res := p.Remove()
		log.Info().
			Bool("shortcutRemoved", res.ShortcutRemoved).
			Strs("keysRemoved", res.Associations.Removed).
			AnErr("shortcutErr", res.ShortcutErr).
			AnErr("associationErr", res.AssociationErr).
			Msg("remove finished")
		return ExitOK
	}

	res, err := p.Install()
	switch {
	case errors.Is(err, installer.ErrUnsupportedOS):
		console.Printf("Shortcut creation is not supported on this OS: %s", a.GOOS)
	case err != nil:
		log.Error().Err(err).Msg("install aborted")
	default:
		log.Info().
			Str("executable", res.Executable).
			Str("shortcut", res.Shortcut).
			AnErr("shortcutErr", res.ShortcutErr).
			AnErr("associationErr", res.AssociationErr).
			Msg("install finished")
	}
	return ExitOK
}
