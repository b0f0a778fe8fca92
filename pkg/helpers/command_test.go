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

package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var _ CommandExecutor = (*RealCommandExecutor)(nil)

func TestRealCommandExecutorRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     string
		args    []string
		wantErr bool
	}{
		{name: "success", cmd: "true"},
		{name: "non-zero exit", cmd: "false", wantErr: true},
		{name: "missing binary", cmd: "update-desktop-database-missing-12345", wantErr: true},
		{name: "arguments passed", cmd: "test", args: []string{"-d", "/"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			err := (&RealCommandExecutor{}).Run(ctx, tt.cmd, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
