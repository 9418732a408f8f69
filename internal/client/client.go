// Package client is a typed HTTP client for the panel control surface.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// State is a full panel snapshot, row-major: 8 rows of 12 columns.
type State struct {
	States [][]bool `json:"states"`
}

// ToggleResult is the panel's answer to one toggle request.
type ToggleResult struct {
	X     int  `json:"x"`
	Y     int  `json:"y"`
	State bool `json:"state"`
}

// Client talks to one panel's control surface.
type Client struct {
	// BaseURL is the panel base URL (e.g. "http://192.168.4.16:80").
	BaseURL string

	// HTTPClient is the underlying HTTP client.
	HTTPClient *http.Client
}

// New creates a client for the panel at host:port.
func New(host string, port int) *Client {
	return &Client{
		BaseURL:    fmt.Sprintf("http://%s:%d", host, port),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// get issues one GET and returns the body for 200 responses.
func (c *Client) get(path string) ([]byte, error) {
	resp, err := c.HTTPClient.Get(c.BaseURL + path)
	if err != nil {
		return nil, ClassifyNetworkError(err, c.BaseURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &PanelError{
			Type:    ErrTypeNetwork,
			Message: "failed to read response body",
			Err:     err,
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &PanelError{
			Type:       ErrTypeHTTP,
			Message:    fmt.Sprintf("panel returned %s for %s", resp.Status, path),
			StatusCode: resp.StatusCode,
		}
	}
	return body, nil
}

// State fetches the full panel snapshot.
func (c *Client) State() (*State, error) {
	body, err := c.get("/state")
	if err != nil {
		return nil, err
	}
	var st State
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, &PanelError{
			Type:    ErrTypeParse,
			Message: "malformed state response",
			Err:     err,
		}
	}
	return &st, nil
}

// Toggle flips one cell and returns its new state.
func (c *Client) Toggle(x, y int) (*ToggleResult, error) {
	body, err := c.get(fmt.Sprintf("/toggle?x=%d&y=%d", x, y))
	if err != nil {
		return nil, err
	}
	var res ToggleResult
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, &PanelError{
			Type:    ErrTypeParse,
			Message: "malformed toggle response",
			Err:     err,
		}
	}
	return &res, nil
}

// LightAll turns every cell on.
func (c *Client) LightAll() error {
	_, err := c.get("/lightall")
	return err
}

// ClearAll turns every cell off.
func (c *Client) ClearAll() error {
	_, err := c.get("/clearall")
	return err
}
