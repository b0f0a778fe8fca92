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

package icons

import (
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/moleditpy/moleditpy-installer/pkg/config"
	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// FileName returns the icon file used on goos, and false for operating
// systems without a shortcut format.
func FileName(goos string) (string, bool) {
	switch goos {
	case "windows":
		return "icon.ico", true
	case "darwin":
		return "icon.icns", true
	case "linux":
		return "icon.png", true
	default:
		return "", false
	}
}

type Resolver struct {
	Fs          afero.Fs
	LauncherDir func() (string, error)
	GOOS        string
	Override    string
	DataDirs    []string
}

func NewResolver(vals config.Values) *Resolver {
	return &Resolver{
		Fs:          afero.NewOsFs(),
		LauncherDir: helpers.LauncherDir,
		GOOS:        runtime.GOOS,
		Override:    vals.IconOverride,
		DataDirs:    append([]string{xdg.DataHome}, xdg.DataDirs...),
	}
}

// Candidates lists every location checked, in priority order.
func (r *Resolver) Candidates() []string {
	name, ok := FileName(r.GOOS)
	if !ok {
		return nil
	}

	var paths []string
	if r.Override != "" {
		paths = append(paths, r.Override)
	}

	if r.LauncherDir != nil {
		if dir, err := r.LauncherDir(); err == nil {
			paths = append(paths,
				filepath.Join(dir, "data", name),
				filepath.Join(dir, "..", "share", config.AppSlug, name),
			)
		}
	}

	for _, d := range r.DataDirs {
		if d == "" {
			continue
		}
		paths = append(paths, filepath.Join(d, config.AppSlug, name))
	}

	return paths
}

// Resolve returns the first existing icon file or "" when there is none.
func (r *Resolver) Resolve() string {
	if _, ok := FileName(r.GOOS); !ok {
		log.Warn().Str("os", r.GOOS).Msg("unsupported operating system for icon selection")
		return ""
	}

	for _, p := range r.Candidates() {
		info, err := r.Fs.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = filepath.Clean(p)
		}
		log.Debug().Str("path", abs).Msg("resolved icon")
		return abs
	}

	log.Warn().Strs("searched", r.Candidates()).Msg("icon file not found")
	return ""
}
