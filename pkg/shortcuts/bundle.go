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
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	bundleIDPrefix  = "io.github.moleditpy.shortcut."
	terminalCommand = "run.command"
)

var infoPlistTmpl = template.Must(template.New("Info.plist").
	Funcs(template.FuncMap{"xml": xmlEscape}).
	Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleName</key>
	<string>{{xml .Name}}</string>
	<key>CFBundleDisplayName</key>
	<string>{{xml .Name}}</string>
	<key>CFBundleExecutable</key>
	<string>{{xml .Name}}</string>
	<key>CFBundleIdentifier</key>
	<string>{{xml .BundleID}}</string>
	<key>CFBundlePackageType</key>
	<string>APPL</string>
	<key>CFBundleInfoDictionaryVersion</key>
	<string>6.0</string>
{{- if .IconFile}}
	<key>CFBundleIconFile</key>
	<string>{{xml .IconFile}}</string>
{{- end}}
	<key>NSHighResolutionCapable</key>
	<true/>
</dict>
</plist>
`))

func xmlEscape(s string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", fmt.Errorf("failed to escape %q: %w", s, err)
	}
	return b.String(), nil
}

// AppBundle is a minimal .app bundle on the user's desktop whose
// executable is a shell script starting the target.
type AppBundle struct {
	fs   afero.Fs
	dir  string
	name string
}

func NewAppBundle(fs afero.Fs, home, name string) *AppBundle {
	return &AppBundle{
		fs:   fs,
		dir:  filepath.Join(home, "Desktop"),
		name: name,
	}
}

func (b *AppBundle) Path() string {
	return filepath.Join(b.dir, b.name+".app")
}

func (b *AppBundle) contents(parts ...string) string {
	return filepath.Join(append([]string{b.Path(), "Contents"}, parts...)...)
}

// BundleID derives the CFBundleIdentifier from the shortcut name.
func BundleID(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteRune('-')
		}
	}
	return bundleIDPrefix + sb.String()
}

// ShellQuote single quotes s for a POSIX shell.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func execScript(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = ShellQuote(a)
	}
	return "#!/bin/bash\nexec " + strings.Join(quoted, " ") + "\n"
}

// Scripts returns the bundle executable and, when the target runs in a
// terminal, the .command file it opens in Terminal.app.
func (*AppBundle) Scripts(d Descriptor) (launcher, command string) {
	argv := append([]string{d.Target.Path}, d.Target.Argv...)
	if !d.Placement.Terminal {
		return execScript(argv), ""
	}
	launcher = "#!/bin/bash\n" +
		`DIR="$(cd "$(dirname "$0")" && pwd)"` + "\n" +
		`exec open -a Terminal "$DIR/` + terminalCommand + `"` + "\n"
	return launcher, execScript(argv)
}

// Create rebuilds the bundle from scratch so stale files from an older
// run never linger.
func (b *AppBundle) Create(d Descriptor) error {
	if err := check(b.fs, d); err != nil {
		return err
	}

	if _, err := removeArtifact(b.fs, b.Path()); err != nil {
		return err
	}

	for _, dir := range []string{b.contents("MacOS"), b.contents("Resources")} {
		if err := b.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	iconFile := ""
	if d.Icon != "" {
		iconFile = "icon" + filepath.Ext(d.Icon)
		if err := copyFile(b.fs, d.Icon, b.contents("Resources", iconFile)); err != nil {
			log.Warn().Err(err).Str("icon", d.Icon).Msg("failed to copy icon into bundle")
			iconFile = ""
		}
	}

	var plist bytes.Buffer
	err := infoPlistTmpl.Execute(&plist, struct {
		Name     string
		BundleID string
		IconFile string
	}{
		Name:     b.name,
		BundleID: BundleID(b.name),
		IconFile: iconFile,
	})
	if err != nil {
		return fmt.Errorf("failed to render Info.plist: %w", err)
	}
	if err := afero.WriteFile(b.fs, b.contents("Info.plist"), plist.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write Info.plist: %w", err)
	}

	launcher, command := b.Scripts(d)
	//nolint:gosec // bundle executable must be executable
	if err := afero.WriteFile(b.fs, b.contents("MacOS", b.name), []byte(launcher), 0o755); err != nil {
		return fmt.Errorf("failed to write bundle executable: %w", err)
	}
	if command != "" {
		//nolint:gosec // Terminal runs .command files directly
		err := afero.WriteFile(b.fs, b.contents("MacOS", terminalCommand), []byte(command), 0o755)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", terminalCommand, err)
		}
	}

	return nil
}

func (b *AppBundle) Remove() (bool, error) {
	return removeArtifact(b.fs, b.Path())
}

func copyFile(fs afero.Fs, src, dst string) error {
	data, err := afero.ReadFile(fs, src)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}
	if err := afero.WriteFile(fs, dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}
