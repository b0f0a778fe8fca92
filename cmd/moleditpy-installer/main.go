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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/moleditpy/moleditpy-installer/pkg/cli"
	"github.com/moleditpy/moleditpy-installer/pkg/config"
	"github.com/moleditpy/moleditpy-installer/pkg/helpers"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := cli.SetupFlags(os.Stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cli.ExitOK
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return cli.ExitUsage
	}

	vals := config.Load(nil)
	debug := *flags.Debug || vals.DebugLogging

	var logWriters []io.Writer
	if debug {
		logWriters = []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}
	}
	if err := helpers.InitLogging(helpers.LogDir(), debug, logWriters...); err != nil {
		// the installer still works without a log file
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("os", runtime.GOOS).
		Bool("remove", *flags.Remove).
		Msg("starting installer")

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	app := &cli.App{
		Out:    os.Stdout,
		GOOS:   runtime.GOOS,
		Values: vals,
	}
	return app.Run(flags)
}
