package server

import "testing"

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr bool
		method  string
		path    string
		wantX   string
		wantY   string
	}{
		{
			name:   "plain root",
			line:   "GET / HTTP/1.1\r\n",
			method: "GET",
			path:   "/",
		},
		{
			name:   "toggle with both params",
			line:   "GET /toggle?x=5&y=3 HTTP/1.1\r\n",
			method: "GET",
			path:   "/toggle",
			wantX:  "5",
			wantY:  "3",
		},
		{
			name:   "params in either order",
			line:   "GET /toggle?y=7&x=11 HTTP/1.1\r\n",
			method: "GET",
			path:   "/toggle",
			wantX:  "11",
			wantY:  "7",
		},
		{
			name:   "last param value ends at first space",
			line:   "GET /toggle?x=1&y=2 HTTP/1.1 extra junk\r\n",
			method: "GET",
			path:   "/toggle",
			wantX:  "1",
			wantY:  "2",
		},
		{
			name:   "no query",
			line:   "GET /toggle HTTP/1.1\r\n",
			method: "GET",
			path:   "/toggle",
		},
		{
			name:    "empty line",
			line:    "\r\n",
			wantErr: true,
		},
		{
			name:    "method only",
			line:    "GET\r\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequestLine(tt.line)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseRequestLine() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRequestLine() error = %v", err)
			}
			if req.Method != tt.method {
				t.Errorf("Method = %q, want %q", req.Method, tt.method)
			}
			if req.Path != tt.path {
				t.Errorf("Path = %q, want %q", req.Path, tt.path)
			}
			if got := req.Query.Get("x"); got != tt.wantX {
				t.Errorf("x = %q, want %q", got, tt.wantX)
			}
			if got := req.Query.Get("y"); got != tt.wantY {
				t.Errorf("y = %q, want %q", got, tt.wantY)
			}
		})
	}
}

func TestCoord(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		param  string
		want   int
		wantOK bool
	}{
		{"present", "GET /toggle?x=5&y=3 HTTP/1.1", "x", 5, true},
		{"zero", "GET /toggle?x=0&y=0 HTTP/1.1", "x", 0, true},
		{"negative is numeric", "GET /toggle?x=-1&y=0 HTTP/1.1", "x", -1, true},
		{"absent", "GET /toggle?y=3 HTTP/1.1", "x", 0, false},
		{"non-numeric rejected", "GET /toggle?x=abc&y=3 HTTP/1.1", "x", 0, false},
		{"trailing garbage rejected", "GET /toggle?x=5zz&y=3 HTTP/1.1", "x", 0, false},
		{"empty value rejected", "GET /toggle?x=&y=3 HTTP/1.1", "x", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseRequestLine(tt.line)
			if err != nil {
				t.Fatalf("ParseRequestLine() error = %v", err)
			}
			got, ok := req.coord(tt.param)
			if ok != tt.wantOK {
				t.Fatalf("coord(%q) ok = %v, want %v", tt.param, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("coord(%q) = %d, want %d", tt.param, got, tt.want)
			}
		})
	}
}
