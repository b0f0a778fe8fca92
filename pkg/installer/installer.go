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

// Package installer runs the install and remove flows. The platform
// variant is picked once by ForOS and everything platform specific hangs
// off it, so the flows themselves never look at the OS name again.
package installer

import (
	"errors"
	"fmt"
	"io"

	"github.com/moleditpy/moleditpy-installer/pkg/associations"
	"github.com/moleditpy/moleditpy-installer/pkg/config"
	"github.com/moleditpy/moleditpy-installer/pkg/environment"
	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/moleditpy/moleditpy-installer/pkg/icons"
	"github.com/moleditpy/moleditpy-installer/pkg/locator"
	"github.com/moleditpy/moleditpy-installer/pkg/shortcuts"
	"github.com/rs/zerolog/log"
)

var ErrUnsupportedOS = errors.New("unsupported operating system")

// Result is the outcome of one Install or Remove run.
type Result struct {
	Executable     string
	Target         environment.Target
	Shortcut       string
	ShortcutErr    error
	AssociationErr error
	// ShortcutRemoved is only set by Remove.
	ShortcutRemoved bool
	// Associations is only set by Remove on platforms with file
	// associations.
	Associations associations.Report
}

// Platform is one of WindowsAssociations or DesktopShortcutOnly.
type Platform interface {
	Install() (Result, error)
	Remove() Result
}

// Deps are the collaborators shared by every platform.
type Deps struct {
	Console *helpers.Console
	Locator *locator.Locator
	Icons   *icons.Resolver
	Env     environment.Context
	// Shortcut is nil when no shortcut location could be determined.
	Shortcut shortcuts.Manager
	// ShortcutErr explains a nil Shortcut.
	ShortcutErr error
	GOOS        string
}

// NewDeps builds the production collaborators for goos.
func NewDeps(goos string, vals config.Values, out io.Writer) Deps {
	loc := locator.New()
	loc.GOOS = goos
	res := icons.NewResolver(vals)
	res.GOOS = goos

	d := Deps{
		Console: helpers.NewConsole(out),
		Locator: loc,
		Icons:   res,
		Env:     environment.FromConfig(vals),
		GOOS:    goos,
	}
	d.Shortcut, d.ShortcutErr = shortcuts.ForOS(goos, shortcuts.DefaultOptions(vals))
	return d
}

// ForOS returns the platform variant for goos.
func ForOS(goos string, vals config.Values, out io.Writer) (Platform, error) {
	switch goos {
	case "windows":
		am, err := defaultAssociations(helpers.NewConsole(out))
		if err != nil {
			return nil, err
		}
		return &WindowsAssociations{
			Deps:         NewDeps(goos, vals, out),
			Associations: am,
		}, nil
	case "linux", "darwin":
		return &DesktopShortcutOnly{Deps: NewDeps(goos, vals, out)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// locate resolves the icon and the executable and works out the shortcut
// target. It returns locator.ErrNotFound when there is nothing to point a
// shortcut at.
func (d *Deps) locate() (Result, string, error) {
	var res Result

	icon := d.Icons.Resolve()
	if icon == "" {
		d.Console.Warnf("Could not find a suitable icon file. A default icon will be used.")
	}

	d.Console.Printf("Searching for the executable '%s'...", config.CommandName)
	m, err := d.Locator.Find(config.CommandName)
	if err != nil {
		d.Console.Errorf("Command '%s' not found.", config.CommandName)
		d.Console.Printf("Please ensure '%s' is installed correctly", config.CommandName)
		d.Console.Printf("and that its location is available.")
		return res, icon, err
	}
	d.Console.Printf("Found executable in %s: %s", m.Source, m.Path)
	res.Executable = m.Path

	if d.Env.NeedsWrapping() {
		d.Console.Printf("Conda environment detected: %s", d.Env.Name)
	}
	res.Target = environment.Wrap(d.Env, m.Path)

	return res, icon, nil
}

// createShortcut reports a failure and carries on, the shortcut is not a
// prerequisite for anything else.
func (d *Deps) createShortcut(res *Result, icon, where string) {
	d.Console.Printf("Creating '%s' shortcut...", config.AppName)
	d.Console.Printf("Targeting: %s", res.Target.CommandLine())

	if d.Shortcut == nil {
		res.ShortcutErr = d.ShortcutErr
		if res.ShortcutErr == nil {
			res.ShortcutErr = shortcuts.ErrNoLocation
		}
		d.Console.Failed(res.ShortcutErr, "create shortcut")
		return
	}

	res.Shortcut = d.Shortcut.Path()
	err := d.Shortcut.Create(shortcuts.NewDescriptor(res.Target, icon, d.GOOS))
	if err != nil {
		res.ShortcutErr = err
		d.Console.Failed(err, "create shortcut")
		return
	}
	d.Console.Printf("Successfully created '%s' %s.", config.AppName, where)
}

func (d *Deps) removeShortcut(res *Result) {
	if d.Shortcut == nil {
		log.Debug().Err(d.ShortcutErr).Msg("no shortcut location")
		d.Console.Printf("Shortcut not found at expected location: none")
		return
	}

	res.Shortcut = d.Shortcut.Path()
	removed, err := d.Shortcut.Remove()
	switch {
	case err != nil:
		res.ShortcutErr = err
		d.Console.Failed(err, "remove shortcut %s", res.Shortcut)
	case removed:
		res.ShortcutRemoved = true
		d.Console.Printf("Removed shortcut: %s", res.Shortcut)
	default:
		d.Console.Printf("Shortcut not found at expected location: %s", res.Shortcut)
	}
}

func (d *Deps) where() string {
	if d.GOOS == "darwin" {
		return "on the desktop"
	}
	return "in the application menu"
}

// DesktopShortcutOnly is used where only a shortcut is installed.
type DesktopShortcutOnly struct {
	Deps
}

func (p *DesktopShortcutOnly) Install() (Result, error) {
	res, icon, err := p.locate()
	if err != nil {
		return res, err
	}

	p.createShortcut(&res, icon, p.where())

	p.Console.Printf("")
	p.Console.Printf("You can remove the shortcut by running:")
	p.Console.Printf("  %s --remove", config.AppSlug)
	return res, nil
}

func (p *DesktopShortcutOnly) Remove() Result {
	var res Result
	p.removeShortcut(&res)
	return res
}

// WindowsAssociations installs the start menu shortcut and the file
// associations.
type WindowsAssociations struct {
	Associations *associations.Manager
	Deps
}

func (p *WindowsAssociations) Install() (Result, error) {
	res, icon, err := p.locate()
	if err != nil {
		return res, err
	}

	p.createShortcut(&res, icon, p.where())

	// the shell opens files with the application itself, never through
	// the environment runner
	err = p.Associations.Register(associations.NewRecord(res.Executable, icon))
	if err != nil {
		res.AssociationErr = err
		p.Console.Failed(err, "register file associations")
	}

	p.Console.Printf("")
	p.Console.Printf("You can remove the shortcut and file associations by running:")
	p.Console.Printf("  %s --remove", config.AppSlug)
	return res, nil
}

func (p *WindowsAssociations) Remove() Result {
	var res Result

	res.Associations = p.Associations.Unregister(associations.NewRecord("", ""))
	if !res.Associations.OK() {
		res.AssociationErr = fmt.Errorf("%d registry keys could not be removed", len(res.Associations.Failed))
	}

	p.removeShortcut(&res)
	return res
}
