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

package photosphere

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves every input concurrently, using at most GOMAXPROCS
// goroutines. The results are in the order of inputs. The first error
// cancels the remaining work.
func (s *Solver) SolveAll(ctx context.Context, inputs []Input) ([]*Result, error) {
	results := make([]*Result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.Solve(in)
			if err != nil {
				return fmt.Errorf("photosphere: star %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
