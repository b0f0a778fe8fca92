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

package shortcuts

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

const desktopSection = "Desktop Entry"

func init() {
	// desktop entries are written as Key=Value
	ini.PrettyFormat = false
}

// DesktopEntry is a freedesktop.org .desktop file in the user's
// applications directory, which puts the app in every desktop
// environment's application menu.
type DesktopEntry struct {
	fs   afero.Fs
	cmd  helpers.CommandExecutor
	dir  string
	name string
}

func NewDesktopEntry(fs afero.Fs, cmd helpers.CommandExecutor, dataHome, name string) *DesktopEntry {
	return &DesktopEntry{
		fs:   fs,
		cmd:  cmd,
		dir:  filepath.Join(dataHome, "applications"),
		name: name,
	}
}

func (e *DesktopEntry) Path() string {
	return filepath.Join(e.dir, e.name+".desktop")
}

// Render returns the desktop entry contents for d.
func (*DesktopEntry) Render(d Descriptor) ([]byte, error) {
	cfg := ini.Empty(ini.LoadOptions{IgnoreInlineComment: true})
	sec, err := cfg.NewSection(desktopSection)
	if err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	argv := append([]string{d.Target.Path}, d.Target.Argv...)
	keys := []struct {
		name  string
		value string
	}{
		{"Type", "Application"},
		{"Version", "1.0"},
		{"Name", d.Name},
		{"Comment", d.Description},
		{"Exec", ExecLine(argv)},
		{"Path", filepath.Dir(d.Target.Executable)},
		{"Terminal", fmt.Sprintf("%t", d.Placement.Terminal)},
		{"Categories", "Science;Chemistry;Education;"},
		{"StartupNotify", "true"},
	}
	if d.Icon != "" {
		keys = append(keys, struct {
			name  string
			value string
		}{"Icon", d.Icon})
	}

	for _, k := range keys {
		if k.value == "" {
			continue
		}
		if _, err := sec.NewKey(k.name, k.value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", k.name, err)
		}
	}

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode desktop entry: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *DesktopEntry) Create(d Descriptor) error {
	if err := check(e.fs, d); err != nil {
		return err
	}

	data, err := e.Render(d)
	if err != nil {
		return err
	}

	if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", e.dir, err)
	}

	//nolint:gosec // desktop entries must be executable to be trusted by some launchers
	if err := afero.WriteFile(e.fs, e.Path(), data, 0o755); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.Path(), err)
	}

	e.refresh()
	return nil
}

func (e *DesktopEntry) Remove() (bool, error) {
	removed, err := removeArtifact(e.fs, e.Path())
	if removed {
		e.refresh()
	}
	return removed, err
}

// refresh updates the desktop database cache. It's just for convenience,
// menus pick up the file eventually without it.
func (e *DesktopEntry) refresh() {
	if e.cmd == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.cmd.Run(ctx, "update-desktop-database", e.dir); err != nil {
		log.Debug().Err(err).Msg("update-desktop-database failed")
	}
}

// reserved characters that force an Exec argument to be quoted.
const execReserved = " \t\n\"'\\><~|&;$*?#()`"

// ExecLine encodes argv as a desktop entry Exec value. Arguments with
// reserved characters are double quoted with ", `, $ and \ escaped, % is
// doubled, and the result is escaped once more as a desktop string value.
func ExecLine(argv []string) string {
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		arg = strings.ReplaceAll(arg, "%", "%%")
		if arg == "" || strings.ContainsAny(arg, execReserved) {
			var b strings.Builder
			b.WriteByte('"')
			for _, r := range arg {
				if r == '"' || r == '`' || r == '$' || r == '\\' {
					b.WriteByte('\\')
				}
				b.WriteRune(r)
			}
			b.WriteByte('"')
			arg = b.String()
		}
		quoted = append(quoted, arg)
	}
	return strings.ReplaceAll(strings.Join(quoted, " "), `\`, `\\`)
}
