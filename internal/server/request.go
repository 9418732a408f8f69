package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Request is one parsed HTTP request line. Only the first line of the
// request is ever read; headers and bodies are discarded by the
// connection loop.
type Request struct {
	Method string
	Path   string
	Query  url.Values
}

// ParseRequestLine parses a raw request line such as
//
//	GET /toggle?x=5&y=3 HTTP/1.1
//
// The target is the token between the first and second space, so the
// value of the last query parameter always ends at the first space.
// Parameters may appear in any order.
func ParseRequestLine(line string) (Request, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Request{}, fmt.Errorf("malformed request line %q", line)
	}

	req := Request{Method: fields[0]}
	target := fields[1]

	path, rawQuery, _ := strings.Cut(target, "?")
	req.Path = path

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		// A garbage query string is treated the same as missing
		// parameters by the handlers.
		query = url.Values{}
	}
	req.Query = query
	return req, nil
}

// coord extracts the named coordinate parameter. ok is false when the
// parameter is absent or not a plain decimal integer; non-numeric
// input surfaces as 400 rather than silently toggling column 0.
func (r Request) coord(name string) (int, bool) {
	if !r.Query.Has(name) {
		return 0, false
	}
	v, err := strconv.Atoi(r.Query.Get(name))
	if err != nil {
		return 0, false
	}
	return v, true
}
