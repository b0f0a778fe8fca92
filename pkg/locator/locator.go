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

// Package locator finds the installed application executable.
//
// A binary sitting next to the running launcher always wins over a
// same-named binary found on PATH, so several installed copies (for example
// one per conda environment) never pick up each other's executable.
package locator

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrNotFound = errors.New("executable not found")

type Source int

const (
	SourceLocal Source = iota
	SourcePath
)

func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "local directory"
	case SourcePath:
		return "system PATH"
	default:
		return "unknown"
	}
}

type Match struct {
	Path   string
	Source Source
}

// Locator holds the OS hooks used to find an executable. The zero value is
// not usable, use New.
type Locator struct {
	Fs          afero.Fs
	LauncherDir func() (string, error)
	LookPath    func(file string) (string, error)
	GOOS        string
}

func New() *Locator {
	return &Locator{
		Fs:          afero.NewOsFs(),
		LauncherDir: helpers.LauncherDir,
		LookPath:    exec.LookPath,
		GOOS:        runtime.GOOS,
	}
}

// FindExecutable returns the absolute path of name using the default
// Locator.
func FindExecutable(name string) (string, error) {
	m, err := New().Find(name)
	if err != nil {
		return "", err
	}
	return m.Path, nil
}

// Find checks the launcher's own directory first and then PATH. It returns
// ErrNotFound when neither has a usable match.
func (l *Locator) Find(name string) (Match, error) {
	if name == "" {
		return Match{}, fmt.Errorf("%w: empty name", ErrNotFound)
	}

	if candidate, ok := l.localCandidate(name); ok {
		log.Debug().Str("path", candidate).Msg("found executable next to launcher")
		return Match{Path: candidate, Source: SourceLocal}, nil
	}

	found, err := l.LookPath(name)
	if err == nil && found != "" {
		if abs, absErr := filepath.Abs(found); absErr == nil {
			found = abs
		}
		found = helpers.NormalizeExeSuffix(found)
		log.Debug().Str("path", found).Msg("found executable on PATH")
		return Match{Path: found, Source: SourcePath}, nil
	}
	if err != nil {
		log.Debug().Err(err).Str("name", name).Msg("PATH lookup failed")
	}

	return Match{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (l *Locator) localCandidate(name string) (string, bool) {
	dir, err := l.LauncherDir()
	if err != nil {
		log.Warn().Err(err).Msg("could not determine launcher directory")
		return "", false
	}

	candidate := filepath.Join(dir, name)
	if l.GOOS == "windows" && filepath.Ext(candidate) == "" {
		candidate += ".exe"
	}

	if !l.isExecutable(candidate) {
		return "", false
	}

	return helpers.NormalizeExeSuffix(candidate), true
}

func (l *Locator) isExecutable(path string) bool {
	info, err := l.Fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	// Windows has no execute bit, any regular file with the suffix counts.
	if l.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
