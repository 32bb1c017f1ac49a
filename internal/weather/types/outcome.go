package types

import (
	"errors"
	"fmt"
)

// Kind classifies why a single weather fetch did not succeed.
type Kind int

const (
	KindUnknown Kind = iota
	KindTimeout
	KindConnection
	KindNotFound
	KindUnauthorized
	KindHTTP
	KindRequest
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection_failure"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindHTTP:
		return "http_error"
	case KindRequest:
		return "request_error"
	case KindParse:
		return "parse_failure"
	default:
		return "unknown"
	}
}

// FetchError is the failed branch of a fetch outcome.
type FetchError struct {
	Kind       Kind
	City       string
	StatusCode int    // set for KindNotFound, KindUnauthorized and KindHTTP
	Message    string // upstream message or transport error text
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("city not found: %s", e.City)
	case KindUnauthorized:
		return "invalid API key"
	case KindHTTP:
		return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
	case KindTimeout:
		return "request timed out"
	case KindConnection:
		return "connection failed"
	case KindParse:
		return "cannot parse response body"
	default:
		return fmt.Sprintf("request failed: %s", e.Message)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches any FetchError of the same Kind, so the sentinels below work
// with errors.Is regardless of city or status.
func (e *FetchError) Is(target error) bool {
	t, ok := target.(*FetchError)
	return ok && t.Kind == e.Kind
}

var (
	ErrTimeout      = &FetchError{Kind: KindTimeout}
	ErrConnection   = &FetchError{Kind: KindConnection}
	ErrNotFound     = &FetchError{Kind: KindNotFound}
	ErrUnauthorized = &FetchError{Kind: KindUnauthorized}
	ErrHTTP         = &FetchError{Kind: KindHTTP}
	ErrRequest      = &FetchError{Kind: KindRequest}
	ErrParse        = &FetchError{Kind: KindParse}
)

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
