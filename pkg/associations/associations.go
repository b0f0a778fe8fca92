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

// Package associations binds the application's file extensions to a shell
// program identifier (ProgID) and removes those bindings again.
//
// Layout written under the store root (HKCU\Software\Classes on Windows):
//
//	<ProgID>                       default = display name
//	<ProgID>\DefaultIcon           default = icon path (only if the file exists)
//	<ProgID>\shell\open\command    default = "<exe>" "%1"
//	<ext>                          default = <ProgID>   (one key per extension)
package associations

import (
	"errors"
	"fmt"

	"github.com/moleditpy/moleditpy-installer/pkg/config"
	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/moleditpy/moleditpy-installer/pkg/registry"
	"github.com/moleditpy/moleditpy-installer/pkg/validation"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	defaultIconKey = "DefaultIcon"
	openCommandKey = `shell\open\command`
)

// Record describes one file type registration.
type Record struct {
	ProgID      string   `validate:"required,progid"`
	AppName     string   `validate:"required"`
	DisplayName string   `validate:"required"`
	Executable  string   `validate:"required"`
	Icon        string   `validate:"omitempty"`
	Extensions  []string `validate:"min=1,dive,fileext"`
}

// NewRecord returns the MoleditPy file type record for exe.
func NewRecord(exe, icon string) Record {
	return Record{
		ProgID:      config.ProgID,
		AppName:     config.AppName,
		DisplayName: config.FileTypeName,
		Executable:  exe,
		Icon:        icon,
		Extensions:  config.Extensions(),
	}
}

// OpenCommand returns the shell open command for exe. Both the executable
// and the file placeholder are quoted so paths with spaces survive.
func OpenCommand(exe string) string {
	return fmt.Sprintf(`"%s" "%%1"`, exe)
}

// Manager writes and removes association records in a registry.Store.
type Manager struct {
	Store   registry.Store
	Fs      afero.Fs
	Console *helpers.Console
	// Notify tells the shell that associations changed. Optional.
	Notify func()
	// Root is only used to print full key paths.
	Root string
}

func (m *Manager) display(key string) string {
	return registry.Join(m.Root, key)
}

func (m *Manager) notify() {
	if m.Notify != nil {
		m.Notify()
	}
}

// Register creates or overwrites the record. It stops at the first failing
// write and leaves whatever was already written; running Register again or
// Unregister cleans that up.
func (m *Manager) Register(rec Record) error {
	if err := validation.Validate(rec); err != nil {
		return fmt.Errorf("invalid association record: %w", err)
	}

	m.Console.Printf("Registering file associations...")

	if err := m.Store.SetDefault(rec.ProgID, rec.DisplayName); err != nil {
		return fmt.Errorf("failed to create %s: %w", m.display(rec.ProgID), err)
	}

	if rec.Icon != "" {
		exists, err := afero.Exists(m.Fs, rec.Icon)
		switch {
		case err != nil:
			log.Warn().Err(err).Str("icon", rec.Icon).Msg("could not check icon file")
		case !exists:
			log.Warn().Str("icon", rec.Icon).Msg("icon file missing, skipping default icon")
		default:
			iconKey := registry.Join(rec.ProgID, defaultIconKey)
			if err := m.Store.SetDefault(iconKey, rec.Icon); err != nil {
				return fmt.Errorf("failed to set %s: %w", m.display(iconKey), err)
			}
		}
	}

	cmdKey := registry.Join(rec.ProgID, openCommandKey)
	if err := m.Store.SetDefault(cmdKey, OpenCommand(rec.Executable)); err != nil {
		return fmt.Errorf("failed to set %s: %w", m.display(cmdKey), err)
	}

	for _, ext := range rec.Extensions {
		if err := m.Store.SetDefault(ext, rec.ProgID); err != nil {
			return fmt.Errorf("failed to associate %s: %w", ext, err)
		}
		m.Console.Printf("  Associated %s with %s", ext, rec.AppName)
	}

	m.Console.Printf("File associations registered successfully.")
	m.notify()
	return nil
}

// Report summarises an Unregister run.
type Report struct {
	Failed  map[string]error
	Removed []string
	Missing []string
}

// OK reports whether every key is gone.
func (r Report) OK() bool {
	return len(r.Failed) == 0
}

func (r *Report) fail(key string, err error) {
	if r.Failed == nil {
		r.Failed = make(map[string]error)
	}
	r.Failed[key] = err
}

// Unregister removes the extension keys and then the ProgID tree. It never
// fails: missing keys count as removed and other failures are reported and
// skipped.
func (m *Manager) Unregister(rec Record) Report {
	var report Report

	m.Console.Printf("Unregistering file associations...")

	// Extension keys are deleted as trees too, Explorer may have added
	// subkeys such as OpenWithProgids under them.
	keys := make([]string, 0, len(rec.Extensions)+1)
	keys = append(keys, rec.Extensions...)
	keys = append(keys, rec.ProgID)

	for _, key := range keys {
		if key == "" {
			continue
		}
		removed, err := registry.DeleteTree(m.Store, key)
		switch {
		case err != nil:
			report.fail(key, err)
			m.Console.Failed(err, "remove %s", m.display(key))
		case removed:
			report.Removed = append(report.Removed, key)
			if key == rec.ProgID {
				m.Console.Printf("  Removed registry tree: %s", m.display(key))
			} else {
				m.Console.Printf("  Removed registry key: %s", m.display(key))
			}
		default:
			report.Missing = append(report.Missing, key)
			log.Debug().Str("key", m.display(key)).Msg("registry key already absent")
		}
	}

	m.Console.Printf("File associations unregistered.")
	if len(report.Removed) > 0 {
		m.notify()
	}
	return report
}

// IsInvalid reports whether err came from record validation.
func IsInvalid(err error) bool {
	return errors.Is(err, validation.ErrInvalid)
}
