// Package server implements the HTTP control surface for the panel.
//
// The surface is deliberately not a full HTTP implementation. One
// request line is read per connection; headers and bodies are
// discarded, responses are written as exact raw bytes, and every
// response declares "Connection: close". Clients are served strictly
// one at a time by a sequential accept loop.
//
// # Routes
//
//	GET /                      control page (text/html)
//	/toggle?x=<int>&y=<int>    flip one cell, JSON {"x","y","state"}
//	/state                     JSON {"states": [[bool x12] x8]}, row-major
//	/lightall                  all cells on, empty body
//	/clearall                  all cells off, empty body
//	anything else              404, empty body
//
// Dispatch is a fixed-priority prefix match on the request path, in
// the order listed above. /toggle responds 400 with an empty body when
// either coordinate is missing, non-numeric, or outside the 12x8
// panel; the grid is left untouched in every 400/404 path.
//
// # State
//
// The grid mirror is the only shared mutable state. Handlers either
// validate fully before mutating or perform whole-grid writes, so no
// request can leave the mirror partially updated. Each user-visible
// mutation triggers a synchronous render; there is no independent
// refresh loop.
package server
