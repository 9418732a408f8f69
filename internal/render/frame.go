package render

import (
	"fmt"

	"github.com/muldrow/ledpanel/internal/grid"
)

// FrameSize is the byte length of a packed RGB frame for the panel.
const FrameSize = 3 * grid.Width * grid.Height

// Color is the RGB value used for lit cells. Unlit cells are always
// black.
type Color struct {
	R, G, B byte
}

// DefaultColor is a warm white that stays within a WS2812 chain's
// comfortable current budget at full panel brightness.
var DefaultColor = Color{R: 0x40, G: 0x30, B: 0x20}

// ParseColor parses a "#rrggbb" or "rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want rrggbb hex", s)
	}
	var c Color
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Frame packs a row-major boolean snapshot into an RGB frame. Lit
// cells take the given color, unlit cells are zeroed.
func Frame(snapshot [][]bool, c Color) []byte {
	frame := make([]byte, FrameSize)
	for y, row := range snapshot {
		for x, on := range row {
			if !on {
				continue
			}
			i := 3 * (y*grid.Width + x)
			frame[i+0] = c.R
			frame[i+1] = c.G
			frame[i+2] = c.B
		}
	}
	return frame
}

// chainIndex maps a panel coordinate to its position on the LED chain.
// Strip-wired panels usually snake: even rows run left to right, odd
// rows right to left.
func chainIndex(x, y int, serpentine bool) int {
	if serpentine && y%2 == 1 {
		return y*grid.Width + (grid.Width - 1 - x)
	}
	return y*grid.Width + x
}

// reorderForChain rewrites a row-major frame into chain order.
func reorderForChain(frame []byte, serpentine bool) []byte {
	if !serpentine {
		return frame
	}
	out := make([]byte, len(frame))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			src := 3 * (y*grid.Width + x)
			dst := 3 * chainIndex(x, y, serpentine)
			copy(out[dst:dst+3], frame[src:src+3])
		}
	}
	return out
}
