package render

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	"github.com/muldrow/ledpanel/internal/grid"
)

// wsRefresh is the WS2812 data rate in kHz. The NRZ encoding expands
// each bit to three SPI bits, plus headroom for the latch gap.
const wsRefresh physic.Frequency = 800

// SPI drives a WS2812-class chain of 96 LEDs wired as a 12x8 panel
// through a spidev port.
type SPI struct {
	port       spi.PortCloser
	dev        *nrzled.Dev
	serpentine bool
}

// NewSPI opens the named SPI port (empty string selects the first
// available port) and prepares the NRZ encoder for the panel chain.
func NewSPI(portName string, serpentine bool) (*SPI, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", portName, err)
	}
	opts := nrzled.Opts{
		NumPixels: grid.Width * grid.Height,
		Channels:  3,
		Freq:      ((wsRefresh * 3) + 100) * physic.KiloHertz,
	}
	dev, err := nrzled.NewSPI(port, &opts)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("init nrzled chain: %w", err)
	}
	if err := dev.Halt(); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("blank nrzled chain: %w", err)
	}
	return &SPI{port: port, dev: dev, serpentine: serpentine}, nil
}

func (s *SPI) Render(frame []byte) error {
	if len(frame) != FrameSize {
		return fmt.Errorf("frame length %d, want %d", len(frame), FrameSize)
	}
	chain := reorderForChain(frame, s.serpentine)

	// The chain presents itself as a NumPixels x 1 drawer.
	img := image.NewNRGBA(s.dev.Bounds())
	for i := 0; i < len(chain)/3; i++ {
		img.SetNRGBA(i, 0, color.NRGBA{
			R: chain[i*3+0],
			G: chain[i*3+1],
			B: chain[i*3+2],
			A: 0xFF,
		})
	}
	if err := s.dev.Draw(s.dev.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	return nil
}

// Close blanks the chain and releases the SPI port.
func (s *SPI) Close() error {
	_ = s.dev.Halt()
	return s.port.Close()
}
