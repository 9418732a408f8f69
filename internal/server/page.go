package server

import (
	"bytes"
	_ "embed"
)

//go:embed page.html
var pageHTML []byte

// addressPlaceholder is substituted with the device address when the
// control page is served.
var addressPlaceholder = []byte("__PANEL_ADDRESS__")

// controlPage returns the control page with the current device address
// embedded as plain text.
func (rt *Router) controlPage() []byte {
	return bytes.ReplaceAll(pageHTML, addressPlaceholder, []byte(rt.addr()))
}
