package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridFull is returned when every cell is occupied and food has nowhere to go.
// It means the snake has outgrown the grid.
var ErrGridFull = errors.New("snake: no free cell for food")

// DefaultMaxAttempts bounds rejection sampling when no limit is configured.
const DefaultMaxAttempts = 64

// FoodPlacer picks uniformly random unoccupied cells.
type FoodPlacer struct {
	grid        core.Grid
	rng         *rand.Rand
	maxAttempts int
	taken       []bool // scratch occupancy bitmap, indexed by grid.Index
}

// NewFoodPlacer creates a placer drawing from rng.
func NewFoodPlacer(grid core.Grid, rng *rand.Rand, maxAttempts int) *FoodPlacer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &FoodPlacer{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
		taken:       make([]bool, grid.Area()),
	}
}

// Place returns a random cell not in occupied.
//
// Rejection sampling is used while the grid is at most half full and gives up
// after maxAttempts draws. Past that, or when sampling gives up, the free
// cells are enumerated and one is chosen uniformly. Both paths are uniform
// over the free cells. Out-of-bounds entries in occupied are ignored.
func (f *FoodPlacer) Place(occupied []core.Point) (core.Point, error) {
	clear(f.taken)
	used := 0
	for _, p := range occupied {
		if !f.grid.InBounds(p) {
			continue
		}
		i := f.grid.Index(p)
		if !f.taken[i] {
			f.taken[i] = true
			used++
		}
	}

	area := f.grid.Area()
	free := area - used
	if free == 0 {
		return core.Point{}, fmt.Errorf("%w (%d of %d cells occupied)", ErrGridFull, used, area)
	}

	if used*2 <= area {
		for n := 0; n < f.maxAttempts; n++ {
			i := f.rng.Intn(area)
			if !f.taken[i] {
				return f.grid.At(i), nil
			}
		}
	}

	return f.pickFree(free), nil
}

// pickFree chooses the k-th free cell for a uniform k in [0, free).
func (f *FoodPlacer) pickFree(free int) core.Point {
	k := f.rng.Intn(free)
	for i, taken := range f.taken {
		if taken {
			continue
		}
		if k == 0 {
			return f.grid.At(i)
		}
		k--
	}
	panic("snake: free cell count out of sync with occupancy")
}
