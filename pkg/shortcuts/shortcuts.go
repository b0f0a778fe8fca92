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

// Package shortcuts creates and removes the application launcher shortcut:
// a .lnk in the Windows start menu, a freedesktop .desktop entry on Linux
// and a small .app bundle on the macOS desktop.
//
// Shortcut paths are derived from the application name by convention, so
// Remove never needs any state saved by Create.
package shortcuts

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/moleditpy/moleditpy-installer/pkg/config"
	"github.com/moleditpy/moleditpy-installer/pkg/environment"
	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/moleditpy/moleditpy-installer/pkg/validation"
	"github.com/spf13/afero"
)

var (
	ErrUnsupported   = errors.New("shortcuts are not supported on this OS")
	ErrNoLocation    = errors.New("shortcut location could not be determined")
	ErrTargetMissing = errors.New("shortcut target does not exist")
)

// Placement says where a shortcut should show up. Each platform only has
// one location it actually writes to; the flags are kept so the
// descriptor documents the intent.
type Placement struct {
	StartMenu bool
	Desktop   bool
	Terminal  bool
}

// PlacementFor returns the placement used on goos.
func PlacementFor(goos string) Placement {
	if goos == "darwin" {
		return Placement{Desktop: true, Terminal: true}
	}
	return Placement{StartMenu: true}
}

type Descriptor struct {
	Name        string `validate:"required,shortcutname"`
	Description string
	Icon        string
	Target      environment.Target
	Placement   Placement
}

// NewDescriptor returns the MoleditPy shortcut for target on goos.
func NewDescriptor(target environment.Target, icon, goos string) Descriptor {
	return Descriptor{
		Name:        config.AppName,
		Description: "Molecular editor",
		Icon:        icon,
		Target:      target,
		Placement:   PlacementFor(goos),
	}
}

// Manager is implemented once per platform.
type Manager interface {
	// Path is the conventional location of the shortcut.
	Path() string
	// Create writes the shortcut, replacing any previous one.
	Create(d Descriptor) error
	// Remove deletes the shortcut. removed is false when there was
	// nothing to delete, which is not an error.
	Remove() (removed bool, err error)
}

type Options struct {
	Fs       afero.Fs
	Cmd      helpers.CommandExecutor
	Name     string
	AppData  string
	Home     string
	DataHome string
}

func DefaultOptions(vals config.Values) Options {
	return Options{
		Fs:       afero.NewOsFs(),
		Cmd:      &helpers.RealCommandExecutor{},
		Name:     config.AppName,
		AppData:  vals.AppData,
		Home:     xdg.Home,
		DataHome: xdg.DataHome,
	}
}

// ForOS returns the Manager for goos.
func ForOS(goos string, opts Options) (Manager, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Name == "" {
		opts.Name = config.AppName
	}

	switch goos {
	case "windows":
		if opts.AppData == "" {
			return nil, fmt.Errorf("%w: %s is not set", ErrNoLocation, config.EnvAppData)
		}
		return NewStartMenuLink(opts.Fs, opts.AppData, opts.Name), nil
	case "linux":
		if opts.DataHome == "" {
			return nil, fmt.Errorf("%w: no XDG data directory", ErrNoLocation)
		}
		return NewDesktopEntry(opts.Fs, opts.Cmd, opts.DataHome, opts.Name), nil
	case "darwin":
		if opts.Home == "" {
			return nil, fmt.Errorf("%w: no home directory", ErrNoLocation)
		}
		return NewAppBundle(opts.Fs, opts.Home, opts.Name), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, goos)
	}
}

// check validates d and, for an unwrapped target, that the executable
// exists. A wrapped target is a runner command line and is not checked.
func check(fs afero.Fs, d Descriptor) error {
	if err := validation.Validate(d); err != nil {
		return fmt.Errorf("invalid shortcut: %w", err)
	}
	if d.Target.Path == "" {
		return fmt.Errorf("invalid shortcut: %w", validation.ErrInvalid)
	}
	if !d.Target.Wrapped() {
		ok, err := afero.Exists(fs, d.Target.Path)
		if err != nil {
			return fmt.Errorf("failed to check shortcut target: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrTargetMissing, d.Target.Path)
		}
	}
	return nil
}

// removeArtifact deletes path, recursively when it is a directory.
func removeArtifact(fs afero.Fs, path string) (bool, error) {
	info, err := fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		err = fs.RemoveAll(path)
	} else {
		err = fs.Remove(path)
	}
	if err != nil {
		return false, fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return true, nil
}
