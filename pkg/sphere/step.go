package sphere

import (
	"fmt"
	"runtime"
	"sync"
)

// Transition maps a cell's eight neighbor values plus its current value to
// its next value. The neighbor array follows the Neighbors order: N, NE, E,
// SE, S, SW, W, NW. A transition must be pure and independent of evaluation
// order across cells; that is what licenses parallel execution.
type Transition[T any] func(neighbors [8]T, current T) T

// StepFrom computes one full generation into g: for every cell address it
// reads the nine values from src and stores the transition's result at the
// same address in g. src is left unmodified. g and src must be distinct
// grids of the same side; aliased buffers panic before any write, since a
// partial update would silently mix two generations.
func (g *Grid[T]) StepFrom(src *Grid[T], fn Transition[T]) {
	g.stepFrom(src, fn, runtime.NumCPU())
}

func (g *Grid[T]) stepFrom(src *Grid[T], fn Transition[T], workers int) {
	if g == src || &g.faces[0].cells[0] == &src.faces[0].cells[0] {
		panic("sphere: generation step requires distinct source and destination grids")
	}
	if g.side != src.side {
		panic(fmt.Sprintf("sphere: source side %d does not match destination side %d", src.side, g.side))
	}

	// Partition the 6·side global rows into contiguous strips, one
	// goroutine per strip. Writes target disjoint destination rows and
	// reads touch only the source, so no locking is needed.
	n := g.side
	rows := 6 * n
	if workers < 1 {
		workers = 1
	}
	if workers > rows {
		workers = rows
	}
	per := rows / workers
	if per*workers < rows {
		per++
	}

	var wg sync.WaitGroup
	for start := 0; start < rows; start += per {
		end := start + per
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			var vals [8]T
			for gr := start; gr < end; gr++ {
				face := FaceIndex(gr / n)
				row := gr % n
				for col := 0; col < n; col++ {
					p := Point{Face: face, Row: row, Col: col}
					for i, q := range src.Neighbors(p) {
						vals[i] = src.faces[q.Face].cells[q.Row*n+q.Col]
					}
					cur := src.faces[face].cells[row*n+col]
					g.faces[face].cells[row*n+col] = fn(vals, cur)
				}
			}
		}(start, end)
	}
	wg.Wait()
}
