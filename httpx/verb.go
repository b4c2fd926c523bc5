package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"dqx0.com/go/restverb/httpx/internal/http1"
)

// Verb is a request method usable as a routing key. The zero Verb is
// unset: it compares equal to other unset verbs, sorts before every set
// verb and has no name.
//
// Verb is a comparable value and may be used directly as a map key.
// Where ordered iteration is needed, sort with Verb.Compare; the order
// is method-table id order, not alphabetical.
type Verb struct {
	m   Method
	set bool
}

// VerbOf wraps a native method id. The id is not validated.
func VerbOf(m Method) Verb {
	return Verb{m: m, set: true}
}

// ParseVerb looks up the canonical upper-case token s. Matching is
// case-sensitive; "get" is not a method token.
func ParseVerb(s string) (Verb, error) {
	m, ok := http1.MethodFromToken(s)
	if !ok {
		return Verb{}, &UnknownMethodError{Token: s}
	}
	return VerbOf(m), nil
}

// MustParseVerb is like ParseVerb but panics on an unknown token.
func MustParseVerb(s string) Verb {
	v, err := ParseVerb(s)
	if err != nil {
		panic(err)
	}
	return v
}

// VerbFromRequestLine recognizes the method of an HTTP/1.x request line.
func VerbFromRequestLine(line string) (Verb, error) {
	rl, err := http1.ParseRequestLine(line)
	if errors.Is(err, http1.ErrUnknownMethod) {
		return Verb{}, &UnknownMethodError{Token: rl.Token}
	}
	if err != nil {
		return Verb{}, err
	}
	return VerbOf(rl.Method), nil
}

// Verbs returns one Verb per method-table entry, in id order.
func Verbs() []Verb {
	ms := http1.Methods()
	vs := make([]Verb, len(ms))
	for i, m := range ms {
		vs[i] = VerbOf(m)
	}
	return vs
}

// Method returns the native id. ok is false for the zero Verb.
func (v Verb) Method() (m Method, ok bool) {
	return v.m, v.set
}

// IsSet reports whether v was constructed from a method.
func (v Verb) IsSet() bool { return v.set }

// Valid reports whether v is set and names a method-table entry.
func (v Verb) Valid() bool {
	if !v.set {
		return false
	}
	_, ok := http1.MethodName(v.m)
	return ok
}

// Name returns the canonical upper-case token, such as "GET".
func (v Verb) Name() (string, error) {
	if !v.set {
		return "", ErrInvalidVerb
	}
	s, ok := http1.MethodName(v.m)
	if !ok {
		return "", fmt.Errorf("%w: method id %d not in table", ErrInvalidVerb, int(v.m))
	}
	return s, nil
}

func (v Verb) String() string {
	if !v.set {
		return "UNSET"
	}
	if s, ok := http1.MethodName(v.m); ok {
		return s
	}
	return "UNKNOWN(" + strconv.Itoa(int(v.m)) + ")"
}

// Compare returns -1, 0 or +1. Unset verbs sort first.
func (v Verb) Compare(o Verb) int {
	switch {
	case v.set != o.set:
		if !v.set {
			return -1
		}
		return 1
	case v.m < o.m:
		return -1
	case v.m > o.m:
		return 1
	}
	return 0
}

// Less reports whether v sorts before o.
func (v Verb) Less(o Verb) bool { return v.Compare(o) < 0 }

// MarshalText encodes v as its lower-case name, as used in OpenAPI
// documents.
func (v Verb) MarshalText() ([]byte, error) {
	s, err := v.Name()
	if err != nil {
		return nil, err
	}
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return b, nil
}

// UnmarshalText accepts a method name in any ASCII case. On failure v is
// left unchanged and the error carries the upper-cased token.
func (v *Verb) UnmarshalText(text []byte) error {
	b := make([]byte, len(text))
	for i, c := range text {
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		b[i] = c
	}
	nv, err := ParseVerb(string(b))
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

func (v Verb) MarshalJSON() ([]byte, error) {
	b, err := v.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON requires a JSON string. Any other value, null included,
// fails with a *TypeMismatchError.
func (v *Verb) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return &TypeMismatchError{Value: string(data)}
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return v.UnmarshalText([]byte(s))
}
