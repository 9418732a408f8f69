// Package grid holds the in-memory mirror of the LED matrix.
//
// The grid is the single source of truth for what should be lit. The
// physical display is only ever written from a snapshot of this state,
// so the hardware can never show a cell the mirror does not know about.
package grid

import "sync"

// Matrix dimensions. The panel is a fixed 12-column by 8-row array;
// these never change at runtime.
const (
	Width  = 12
	Height = 8
)

// InRange reports whether (x, y) addresses a valid cell.
func InRange(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Grid is the boolean mirror of the panel. The zero value is ready to
// use with every cell off.
//
// All methods are safe for concurrent use. Callers must bounds-check
// coordinates with InRange before calling the per-cell methods.
type Grid struct {
	mu    sync.RWMutex
	cells [Height][Width]bool
}

// New returns an all-off grid.
func New() *Grid {
	return &Grid{}
}

// Get returns the state of the cell at column x, row y.
func (g *Grid) Get(x, y int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cells[y][x]
}

// Set writes the cell at column x, row y.
func (g *Grid) Set(x, y int, on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[y][x] = on
}

// Toggle flips the cell at column x, row y and returns the new value.
func (g *Grid) Toggle(x, y int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cells[y][x] = !g.cells[y][x]
	return g.cells[y][x]
}

// SetAll writes every cell in one step.
func (g *Grid) SetAll(on bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			g.cells[y][x] = on
		}
	}
}

// Snapshot returns a freshly allocated copy of the grid, row-major:
// row 0 first, column 0 first within each row.
func (g *Grid) Snapshot() [][]bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	rows := make([][]bool, Height)
	for y := 0; y < Height; y++ {
		row := make([]bool, Width)
		copy(row, g.cells[y][:])
		rows[y] = row
	}
	return rows
}
