package server

import (
	"encoding/json"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/muldrow/ledpanel/internal/grid"
	"github.com/muldrow/ledpanel/internal/logging"
	"github.com/muldrow/ledpanel/internal/render"
)

// Router dispatches one request line to a handler and writes the raw
// response. Dispatch is a fixed-priority prefix match; the first match
// wins.
type Router struct {
	grid   *grid.Grid
	driver render.Driver
	color  render.Color

	// addr returns the device address embedded in the control page.
	addr func() string
}

// NewRouter wires the router to its state mirror and display driver.
func NewRouter(g *grid.Grid, d render.Driver, color render.Color, addr func() string) *Router {
	if addr == nil {
		addr = func() string { return "" }
	}
	return &Router{grid: g, driver: d, color: color, addr: addr}
}

type toggleResponse struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	State bool `json:"state"`
}

type stateResponse struct {
	States [][]bool `json:"states"`
}

// Route parses the request line and writes the response to w.
func (rt *Router) Route(line string, w io.Writer) error {
	req, err := ParseRequestLine(line)
	if err != nil {
		return writeResponse(w, 400, "", nil)
	}

	switch {
	case req.Method == "GET" && req.Path == "/":
		return rt.handleRoot(w)
	case strings.HasPrefix(req.Path, "/toggle"):
		return rt.handleToggle(req, w)
	case strings.HasPrefix(req.Path, "/state"):
		return rt.handleState(w)
	case strings.HasPrefix(req.Path, "/lightall"):
		return rt.handleSetAll(w, true)
	case strings.HasPrefix(req.Path, "/clearall"):
		return rt.handleSetAll(w, false)
	default:
		return writeResponse(w, 404, "", nil)
	}
}

func (rt *Router) handleRoot(w io.Writer) error {
	return writeResponse(w, 200, contentTypeHTML, rt.controlPage())
}

func (rt *Router) handleToggle(req Request, w io.Writer) error {
	x, okX := req.coord("x")
	y, okY := req.coord("y")
	if !okX || !okY {
		return writeResponse(w, 400, "", nil)
	}
	if !grid.InRange(x, y) {
		return writeResponse(w, 400, "", nil)
	}

	state := rt.grid.Toggle(x, y)
	rt.renderGrid()

	body, err := json.Marshal(toggleResponse{X: x, Y: y, State: state})
	if err != nil {
		return writeResponse(w, 500, "", nil)
	}
	return writeResponse(w, 200, contentTypeJSON, body)
}

func (rt *Router) handleState(w io.Writer) error {
	body, err := json.Marshal(stateResponse{States: rt.grid.Snapshot()})
	if err != nil {
		return writeResponse(w, 500, "", nil)
	}
	return writeResponse(w, 200, contentTypeJSON, body)
}

func (rt *Router) handleSetAll(w io.Writer, on bool) error {
	rt.grid.SetAll(on)
	rt.renderGrid()
	return writeResponse(w, 200, "", nil)
}

// renderGrid pushes the current mirror to the display. The driver is
// treated as infallible at this layer: a render error leaves the
// mirror intact and is only logged.
func (rt *Router) renderGrid() {
	frame := render.Frame(rt.grid.Snapshot(), rt.color)
	if err := rt.driver.Render(frame); err != nil {
		logging.Warn("render failed", zap.Error(err))
	}
}
