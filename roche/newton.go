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

import "math"

const (
	// Tolerance is the relative step below which a Newton-Raphson
	// iteration is considered converged.
	Tolerance = 1e-5

	// MaxIterations bounds every Newton-Raphson iteration.
	MaxIterations = 100
)

// newton finds a root of f starting from x0. fdf returns f(x) and f'(x).
// Iteration stops once |x₁ - x₀|/|x₀| < Tolerance. A non-finite iterate or
// an exhausted iteration budget yields a *ConvergenceError.
func newton(solver string, x0 float64, fdf func(x float64) (f, df float64)) (float64, error) {
	x := x0
	delta := math.Inf(1)
	for i := 1; i <= MaxIterations; i++ {
		f, df := fdf(x)
		x1 := x - f/df
		if math.IsNaN(x1) || math.IsInf(x1, 0) {
			return math.NaN(), &ConvergenceError{Solver: solver, Iterations: i, Last: x1, Delta: delta}
		}
		delta = math.Abs(x1-x) / math.Abs(x)
		x = x1
		if delta < Tolerance {
			return x, nil
		}
	}
	return x, &ConvergenceError{Solver: solver, Iterations: MaxIterations, Last: x, Delta: delta}
}
