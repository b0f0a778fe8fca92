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

package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	AppName      = "MoleditPy"
	AppSlug      = "moleditpy-installer"
	CommandName  = "moleditpy"
	ProgID       = "MoleditPy.File"
	FileTypeName = AppName + " File"
	LogFile      = "installer.log"

	// SentinelEnv is the conda environment that needs no wrapping.
	SentinelEnv = "base"

	EnvCondaName = "CONDA_DEFAULT_ENV"
	EnvCondaExe  = "CONDA_EXE"
	EnvAppData   = "APPDATA"
	EnvIcon      = "MOLEDITPY_INSTALLER_ICON"
	EnvDebug     = "MOLEDITPY_INSTALLER_DEBUG"
)

// AppVersion is overridden at build time with -ldflags.
var AppVersion = "DEVELOPMENT"

// Extensions returns the file extensions bound to ProgID.
func Extensions() []string {
	return []string{".pmeprj", ".pmeraw"}
}

// Values holds everything the installer reads from the process environment.
// The installer keeps no configuration file of its own; all state is read
// once at startup and passed down explicitly.
type Values struct {
	CondaEnv     string
	CondaExe     string
	AppData      string
	IconOverride string
	DebugLogging bool
}

// Load reads Values using getenv. A nil getenv falls back to os.Getenv.
func Load(getenv func(string) string) Values {
	if getenv == nil {
		getenv = os.Getenv
	}

	debug := false
	if v := strings.TrimSpace(getenv(EnvDebug)); v != "" {
		parsed, err := strconv.ParseBool(v)
		debug = err == nil && parsed
	}

	return Values{
		CondaEnv:     strings.TrimSpace(getenv(EnvCondaName)),
		CondaExe:     strings.TrimSpace(getenv(EnvCondaExe)),
		AppData:      getenv(EnvAppData),
		IconOverride: getenv(EnvIcon),
		DebugLogging: debug,
	}
}
