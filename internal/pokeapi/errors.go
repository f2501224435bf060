package pokeapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies client failures so callers can branch per kind.
// The UI collapses them into a single display string; the kind stays
// intact on the error value itself.
type ErrorKind string

const (
	// ErrorKindNetwork covers connection, DNS and transport failures
	ErrorKindNetwork ErrorKind = "network"

	// ErrorKindHTTP covers non-2xx responses from the API
	ErrorKindHTTP ErrorKind = "http"

	// ErrorKindDecode covers malformed or schema-incompatible payloads
	ErrorKindDecode ErrorKind = "decode"
)

// Error is the typed failure returned by the client.
type Error struct {
	Kind   ErrorKind
	Status int // HTTP status code, set only for ErrorKindHTTP
	URL    string
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindHTTP:
		return fmt.Sprintf("pokeapi: %s returned HTTP %d", e.URL, e.Status)
	case ErrorKindDecode:
		return fmt.Sprintf("pokeapi: decoding response from %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("pokeapi: requesting %s: %v", e.URL, e.Err)
	}
}

// Unwrap exposes the underlying cause for errors.Is/errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or "" if err is not a client error
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}
