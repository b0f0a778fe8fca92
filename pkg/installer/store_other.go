//go:build !windows

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

package installer

import (
	"fmt"

	"github.com/moleditpy/moleditpy-installer/pkg/associations"
	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
)

// defaultAssociations fails off Windows, there is no registry to write to.
func defaultAssociations(*helpers.Console) (*associations.Manager, error) {
	return nil, fmt.Errorf("%w: file associations need the Windows registry", ErrUnsupportedOS)
}
