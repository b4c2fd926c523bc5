package httpx

import (
	"errors"
	"strconv"
)

var (
	ErrUnknownMethod = errors.New("httpx: unknown method")
	ErrTypeMismatch  = errors.New("httpx: type mismatch")
	ErrInvalidVerb   = errors.New("httpx: invalid verb")
)

// UnknownMethodError reports a token that matches no entry in the method
// table. Token is the string that was looked up.
type UnknownMethodError struct {
	Token string
}

func (e *UnknownMethodError) Error() string {
	return "httpx: unknown method " + strconv.Quote(e.Token)
}

func (e *UnknownMethodError) Is(target error) bool { return target == ErrUnknownMethod }

// TypeMismatchError reports an interchange value that is not a string.
// Value holds the raw encoded value.
type TypeMismatchError struct {
	Value string
}

func (e *TypeMismatchError) Error() string {
	return "httpx: cannot decode verb from non-string value " + e.Value
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }
