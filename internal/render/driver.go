// Package render pushes grid frames to a display sink.
//
// A frame is a packed RGB byte slice, 3 bytes per cell, row-major in
// panel order (row 0 first, column 0 first within each row). Drivers
// own any hardware-specific reordering, such as the serpentine chain
// layout of strip-wired panels.
package render

// Driver abstracts the physical display output.
type Driver interface {
	// Render pushes one frame to the display, overwriting whatever
	// was previously shown. len(frame) must be 3*Width*Height.
	Render(frame []byte) error
	// Close releases any hardware resources.
	Close() error
}

// Nop discards every frame. Used when the daemon runs without a
// display attached.
type Nop struct{}

func (Nop) Render([]byte) error { return nil }
func (Nop) Close() error        { return nil }
