package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsAllOff(t *testing.T) {
	g := New()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			assert.False(t, g.Get(x, y), "cell (%d,%d) should start off", x, y)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	g := New()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			on := g.Toggle(x, y)
			assert.True(t, on, "first toggle of (%d,%d) should turn on", x, y)
			off := g.Toggle(x, y)
			assert.False(t, off, "second toggle of (%d,%d) should turn off", x, y)
		}
	}
	// Grid must be back to all-off.
	for _, row := range g.Snapshot() {
		for _, cell := range row {
			assert.False(t, cell)
		}
	}
}

func TestToggleLeavesOtherCellsUntouched(t *testing.T) {
	g := New()
	g.Toggle(5, 3)

	snap := g.Snapshot()
	for y, row := range snap {
		for x, cell := range row {
			if x == 5 && y == 3 {
				assert.True(t, cell, "toggled cell should be on")
			} else {
				assert.False(t, cell, "cell (%d,%d) should be untouched", x, y)
			}
		}
	}
}

func TestSetAll(t *testing.T) {
	g := New()

	g.SetAll(true)
	for _, row := range g.Snapshot() {
		for _, cell := range row {
			assert.True(t, cell)
		}
	}

	// Idempotent: a second pass yields the same state.
	g.SetAll(true)
	for _, row := range g.Snapshot() {
		for _, cell := range row {
			assert.True(t, cell)
		}
	}

	g.SetAll(false)
	for _, row := range g.Snapshot() {
		for _, cell := range row {
			assert.False(t, cell)
		}
	}
}

func TestSnapshotShape(t *testing.T) {
	g := New()
	snap := g.Snapshot()
	require.Len(t, snap, Height)
	for _, row := range snap {
		require.Len(t, row, Width)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := New()
	snap := g.Snapshot()
	snap[0][0] = true
	assert.False(t, g.Get(0, 0), "mutating a snapshot must not touch the grid")
}

func TestInRange(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{11, 7, true},
		{5, 3, true},
		{12, 0, false},
		{0, 8, false},
		{-1, 0, false},
		{0, -1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InRange(tt.x, tt.y), "InRange(%d,%d)", tt.x, tt.y)
	}
}
