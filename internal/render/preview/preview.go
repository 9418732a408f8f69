// Package preview serves a browser view of the panel over WebSocket.
//
// It implements render.Driver: every frame pushed by the daemon is
// broadcast to all connected browsers, which paint it on a canvas. The
// last frame is replayed to clients as they connect so a fresh tab
// shows the current panel state immediately.
package preview

import (
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muldrow/ledpanel/internal/grid"
	"github.com/muldrow/ledpanel/internal/logging"
	"github.com/muldrow/ledpanel/internal/render"
)

//go:embed preview.html
var previewHTML []byte

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// frameMsg is the wire format pushed to browser clients.
type frameMsg struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	RGB    string `json:"rgb"` // base64 of the packed frame
}

// Driver broadcasts frames to WebSocket clients.
type Driver struct {
	mu        sync.Mutex
	listener  net.Listener
	clients   map[*websocket.Conn]bool
	lastFrame []byte
}

// New starts the preview HTTP server on addr (e.g. ":8080") and
// returns the driver. The page is served at / and the frame feed at
// /ws.
func New(addr string) (*Driver, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("preview listen on %s: %w", addr, err)
	}
	d := &Driver{
		listener: ln,
		clients:  map[*websocket.Conn]bool{},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(previewHTML)
	})
	mux.HandleFunc("/ws", d.handleWS)

	go func() {
		if err := http.Serve(ln, mux); err != nil {
			logging.Debug("preview server stopped", zap.Error(err))
		}
	}()

	logging.Info("Preview server listening", zap.String("addr", ln.Addr().String()))
	return d, nil
}

func (d *Driver) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("preview upgrade failed", zap.Error(err))
		return
	}

	// The replay write happens under the lock, before the connection is
	// visible to Render: gorilla permits only one concurrent writer per
	// connection, and Render writes to registered clients under d.mu.
	d.mu.Lock()
	if d.lastFrame != nil {
		_ = conn.WriteJSON(encodeFrame(d.lastFrame))
	}
	d.clients[conn] = true
	d.mu.Unlock()

	logging.Debug("preview client connected", zap.String("remote_addr", conn.RemoteAddr().String()))

	// Drain client messages so pings are answered; drop the client on
	// any read error.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				d.drop(conn)
				return
			}
		}
	}()
}

func (d *Driver) drop(conn *websocket.Conn) {
	d.mu.Lock()
	if d.clients[conn] {
		delete(d.clients, conn)
		_ = conn.Close()
	}
	d.mu.Unlock()
}

func encodeFrame(frame []byte) frameMsg {
	return frameMsg{
		Width:  grid.Width,
		Height: grid.Height,
		RGB:    base64.StdEncoding.EncodeToString(frame),
	}
}

func (d *Driver) Render(frame []byte) error {
	if len(frame) != render.FrameSize {
		return fmt.Errorf("frame length %d, want %d", len(frame), render.FrameSize)
	}
	msg, err := json.Marshal(encodeFrame(frame))
	if err != nil {
		return fmt.Errorf("encode preview frame: %w", err)
	}

	d.mu.Lock()
	d.lastFrame = append([]byte(nil), frame...)
	var stale []*websocket.Conn
	for conn := range d.clients {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			stale = append(stale, conn)
		}
	}
	for _, conn := range stale {
		delete(d.clients, conn)
		_ = conn.Close()
	}
	d.mu.Unlock()
	return nil
}

// Close drops all clients and stops the preview server.
func (d *Driver) Close() error {
	d.mu.Lock()
	for conn := range d.clients {
		_ = conn.Close()
	}
	d.clients = map[*websocket.Conn]bool{}
	d.mu.Unlock()
	return d.listener.Close()
}
