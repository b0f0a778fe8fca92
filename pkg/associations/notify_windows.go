//go:build windows

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

package associations

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows"
)

const (
	shcneAssocChanged = 0x08000000
	shcnfIDList       = 0x0000
)

var (
	modShell32         = windows.NewLazySystemDLL("shell32.dll")
	procSHChangeNotify = modShell32.NewProc("SHChangeNotify")
)

// NotifyShell asks Explorer to reload file associations so new icons show
// up without logging out.
func NotifyShell() {
	if err := procSHChangeNotify.Find(); err != nil {
		log.Debug().Err(err).Msg("SHChangeNotify unavailable")
		return
	}
	_, _, _ = procSHChangeNotify.Call(shcneAssocChanged, shcnfIDList, 0, 0)
	log.Debug().Msg("notified shell of association change")
}
