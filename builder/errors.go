// SPDX-License-Identifier: MIT
// Package: keepaway/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w.
//   • Option constructors may panic on programmer error; builders never do.

package builder

import "errors"

// ErrTooFewActors indicates n is below the minimum troop size: 2 when
// actors may not throw to themselves, 1 otherwise.
var ErrTooFewActors = errors.New("builder: too few actors")
