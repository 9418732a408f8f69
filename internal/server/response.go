package server

import (
	"fmt"
	"io"
	"strconv"

	"github.com/muldrow/ledpanel/internal/logging"
)

// Response content types.
const (
	contentTypeHTML = "text/html"
	contentTypeJSON = "application/json"
)

func statusText(code int) string {
	switch code {
	case 200:
		return "OK"
	case 400:
		return "Bad Request"
	case 404:
		return "Not Found"
	default:
		return "Internal Server Error"
	}
}

// writeResponse writes one raw HTTP response. Every response declares
// a non-persistent connection; the caller closes the socket
// immediately afterwards.
//
// The wire format is deliberately exact: status line, Content-Type
// only when there is a body, Content-Length always, CRLF framing.
func writeResponse(w io.Writer, status int, contentType string, body []byte) error {
	head := "HTTP/1.1 " + strconv.Itoa(status) + " " + statusText(status) + "\r\n"
	if len(body) > 0 && contentType != "" {
		head += "Content-Type: " + contentType + "\r\n"
	}
	head += "Content-Length: " + strconv.Itoa(len(body)) + "\r\n" +
		"Connection: close\r\n" +
		"\r\n"

	raw := append([]byte(head), body...)
	logging.LogRawBytes("HTTP response", raw)

	if _, err := w.Write(raw); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	logging.LogResponse(status, len(body))
	return nil
}
