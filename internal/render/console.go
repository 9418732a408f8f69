package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muldrow/ledpanel/internal/grid"
)

// Console renders frames as unicode blocks to a writer. Intended for
// development without panel hardware.
type Console struct {
	W io.Writer
}

// NewConsole returns a console driver writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{W: w}
}

func (c *Console) Render(frame []byte) error {
	if len(frame) != FrameSize {
		return fmt.Errorf("frame length %d, want %d", len(frame), FrameSize)
	}
	var b strings.Builder
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			i := 3 * (y*grid.Width + x)
			lit := frame[i] != 0 || frame[i+1] != 0 || frame[i+2] != 0
			if lit {
				b.WriteString("██")
			} else {
				b.WriteString("··")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(c.W, b.String())
	return err
}

func (c *Console) Close() error { return nil }
