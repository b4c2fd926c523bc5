package http1

import (
	"errors"
	"strings"
)

var (
	ErrMalformedRequestLine = errors.New("http1: malformed request line")
	ErrUnknownMethod        = errors.New("http1: unknown method")
)

// RequestLine is the first line of an HTTP/1.x request. Token is the raw
// method token as it appeared on the wire; Method is only meaningful
// when parsing succeeded.
type RequestLine struct {
	Method     Method
	Token      string
	RequestURI string
	Proto      string
}

// ParseRequestLine recognizes "METHOD SP target SP HTTP/1.x". A trailing
// CRLF or LF is ignored. When the method token is not in the table the
// returned RequestLine still carries Token.
func ParseRequestLine(line string) (RequestLine, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return RequestLine{}, ErrMalformedRequestLine
	}
	method, uri, proto := parts[0], parts[1], parts[2]
	if method == "" || uri == "" || !strings.HasPrefix(proto, "HTTP/1.") {
		return RequestLine{}, ErrMalformedRequestLine
	}
	rl := RequestLine{Token: method, RequestURI: uri, Proto: proto}
	m, ok := MethodFromToken(method)
	if !ok {
		return rl, ErrUnknownMethod
	}
	rl.Method = m
	return rl, nil
}
