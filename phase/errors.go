// SPDX-License-Identifier: MIT
// Package phase: sentinel error set.

package phase

import "errors"

// ErrEmptyName is returned by New when the phase name is blank.
var ErrEmptyName = errors.New("phase: name must not be empty")
