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

// Package validation checks shortcut and association descriptors using
// go-playground/validator with custom validators for shell identifiers.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalid = errors.New("invalid descriptor")

// Validator handles validation of installer descriptors.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator with registered custom validators.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("fileext", validateFileExt)
	_ = v.RegisterValidation("progid", validateProgID)
	_ = v.RegisterValidation("shortcutname", validateShortcutName)

	return &Validator{validate: v}
}

// DefaultValidator is a shared validator instance.
var DefaultValidator = NewValidator()

// Validate validates a struct and returns a formatted error if validation fails.
func (v *Validator) Validate(params any) error {
	if err := v.validate.Struct(params); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return NewError(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// Validate validates params with DefaultValidator.
func Validate(params any) error {
	return DefaultValidator.Validate(params)
}

// validateFileExt checks for a dotted extension like ".pmeprj".
func validateFileExt(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if len(val) < 2 || val[0] != '.' {
		return false
	}
	return !strings.ContainsAny(val[1:], `./\ :*?"<>|`)
}

// ProgIDs are at most 39 characters of letters, digits and dots, and must
// not start with a digit.
var progIDRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.]{0,38}$`)

func validateProgID(fl validator.FieldLevel) bool {
	return progIDRe.MatchString(fl.Field().String())
}

// validateShortcutName rejects names that cannot be used as a file name
// on any of the supported platforms.
func validateShortcutName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if strings.TrimSpace(val) == "" || val == "." || val == ".." {
		return false
	}
	return !strings.ContainsAny(val, `/\:*?"<>|`)
}
