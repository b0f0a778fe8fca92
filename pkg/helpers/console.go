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

package helpers

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
)

// Console prints the user-facing progress and diagnostic lines of the
// installer. Every line is mirrored to the structured log. A nil Console,
// or one without a writer, only logs.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) write(line string) {
	if c == nil || c.Out == nil {
		return
	}
	_, _ = fmt.Fprintln(c.Out, line)
}

// Printf prints an informational line.
func (c *Console) Printf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	log.Info().Msg(msg)
	c.write(msg)
}

// Warnf prints a line prefixed with "Warning:".
func (c *Console) Warnf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	log.Warn().Msg(msg)
	c.write("Warning: " + msg)
}

// Errorf prints a line prefixed with "Error:".
func (c *Console) Errorf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	log.Error().Msg(msg)
	c.write("Error: " + msg)
}

// Failed prints "Failed to <action>: <err>".
func (c *Console) Failed(err error, action string, a ...any) {
	what := fmt.Sprintf(action, a...)
	log.Error().Err(err).Msgf("failed to %s", what)
	c.write(fmt.Sprintf("Failed to %s: %v", what, err))
}
