package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muldrow/ledpanel/internal/grid"
)

func TestFramePacking(t *testing.T) {
	g := grid.New()
	g.Set(5, 3, true)
	g.Set(0, 0, true)

	c := Color{R: 0x10, G: 0x20, B: 0x30}
	frame := Frame(g.Snapshot(), c)
	require.Len(t, frame, FrameSize)

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			i := 3 * (y*grid.Width + x)
			if (x == 5 && y == 3) || (x == 0 && y == 0) {
				assert.Equal(t, []byte{0x10, 0x20, 0x30}, frame[i:i+3], "cell (%d,%d)", x, y)
			} else {
				assert.Equal(t, []byte{0, 0, 0}, frame[i:i+3], "cell (%d,%d)", x, y)
			}
		}
	}
}

func TestChainIndexSerpentine(t *testing.T) {
	tests := []struct {
		x, y       int
		serpentine bool
		want       int
	}{
		{0, 0, true, 0},
		{11, 0, true, 11},
		{0, 1, true, 23}, // odd rows run right to left
		{11, 1, true, 12},
		{0, 1, false, 12},
		{5, 3, false, 41},
	}
	for _, tt := range tests {
		got := chainIndex(tt.x, tt.y, tt.serpentine)
		assert.Equal(t, tt.want, got, "chainIndex(%d,%d,%v)", tt.x, tt.y, tt.serpentine)
	}
}

func TestReorderForChainRoundTrip(t *testing.T) {
	g := grid.New()
	g.Set(3, 1, true)
	frame := Frame(g.Snapshot(), Color{R: 0xFF})

	chain := reorderForChain(frame, true)
	require.Len(t, chain, FrameSize)

	// Row 1 is reversed on the chain, so logical x=3 lands at chain
	// position 12 + (11-3) = 20.
	assert.Equal(t, byte(0xFF), chain[3*20])
	assert.Equal(t, byte(0), chain[3*(grid.Width+3)])

	// Non-serpentine reorder is the identity.
	same := reorderForChain(frame, false)
	assert.Equal(t, frame, same)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff8000", Color{0xFF, 0x80, 0x00}, false},
		{"102030", Color{0x10, 0x20, 0x30}, false},
		{"#fff", Color{}, true},
		{"zzzzzz", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseColor(%q)", tt.in)
		} else {
			require.NoError(t, err, "ParseColor(%q)", tt.in)
			assert.Equal(t, tt.want, got)
		}
	}
}

func TestConsoleRender(t *testing.T) {
	g := grid.New()
	g.Set(0, 0, true)

	var buf bytes.Buffer
	c := NewConsole(&buf)
	require.NoError(t, c.Render(Frame(g.Snapshot(), DefaultColor)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, grid.Height)
	assert.True(t, strings.HasPrefix(lines[0], "██"), "lit cell should render as a block")
	assert.False(t, strings.Contains(lines[1], "█"), "row 1 should be dark")
}

func TestConsoleRejectsShortFrame(t *testing.T) {
	c := NewConsole(&bytes.Buffer{})
	assert.Error(t, c.Render(make([]byte, 7)))
}
