package http1

import (
	"errors"
	"testing"
)

func TestParseRequestLine(t *testing.T) {
	rl, err := ParseRequestLine("POST /items?x=1 HTTP/1.1\r\n")
	if err != nil {
		t.Fatalf("ParseRequestLine error: %v", err)
	}
	if rl.Method != MethodPost || rl.Token != "POST" {
		t.Fatalf("method=%v token=%q", rl.Method, rl.Token)
	}
	if rl.RequestURI != "/items?x=1" || rl.Proto != "HTTP/1.1" {
		t.Fatalf("uri=%q proto=%q", rl.RequestURI, rl.Proto)
	}
}

func TestParseRequestLine_ExtensionMethod(t *testing.T) {
	rl, err := ParseRequestLine("M-SEARCH * HTTP/1.1")
	if err != nil {
		t.Fatalf("ParseRequestLine error: %v", err)
	}
	if rl.Method != MethodMSearch {
		t.Fatalf("method=%v", rl.Method)
	}
}

func TestParseRequestLine_UnknownMethod(t *testing.T) {
	rl, err := ParseRequestLine("get / HTTP/1.1\n")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("err=%v, want ErrUnknownMethod", err)
	}
	if rl.Token != "get" {
		t.Fatalf("token=%q", rl.Token)
	}
}

func TestParseRequestLine_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"GET /",
		"GET / HTTP/2",
		" / HTTP/1.1",
		"GET  HTTP/1.1",
	} {
		if _, err := ParseRequestLine(line); !errors.Is(err, ErrMalformedRequestLine) {
			t.Fatalf("%q: err=%v, want ErrMalformedRequestLine", line, err)
		}
	}
}
