/*
Copyright © 2026 the rotstars authors.
This file is part of rotstars.

rotstars is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

rotstars is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with rotstars.  If not, see <http://www.gnu.org/licenses/>.
*/

package roche

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("roche: parameter outside its physical domain")

	// ErrConvergence is matched by every *ConvergenceError.
	ErrConvergence = errors.New("roche: iteration did not converge")

	// ErrDegenerate is matched by every *DegeneracyError.
	ErrDegenerate = errors.New("roche: degenerate fit")
)

// DomainError happens when an input lies outside the range where the
// Roche model is physically meaningful.
type DomainError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("roche: invalid %s = %g: %s", e.Param, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// ConvergenceError happens when a Newton-Raphson iteration exhausts its
// iteration budget, or produces a non-finite iterate.
type ConvergenceError struct {
	Solver     string
	Iterations int

	// Last is the final iterate and Delta the final relative step.
	Last, Delta float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("roche: %s solver did not converge after %d iterations (x = %g, relative step = %g)",
		e.Solver, e.Iterations, e.Last, e.Delta)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// DegeneracyError happens when the surface samples cannot constrain the
// gravity-darkening power law.
type DegeneracyError struct {
	Valid, Required int

	// Reason names the failure: too few valid samples, no spread in
	// surface gravity or a non-finite slope.
	Reason string
}

func (e *DegeneracyError) Error() string {
	return fmt.Sprintf("roche: degenerate gravity-darkening fit (%d valid samples, %d required): %s",
		e.Valid, e.Required, e.Reason)
}

func (e *DegeneracyError) Unwrap() error { return ErrDegenerate }

// checkWfrac returns a *DomainError if wfrac is not within [0, 1].
func checkWfrac(wfrac float64) error {
	if !(wfrac >= 0 && wfrac <= 1) {
		return &DomainError{Param: "wfrac", Value: wfrac, Reason: "must be within [0, 1]"}
	}
	return nil
}
