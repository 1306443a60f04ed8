package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyEndpoint is returned by New when no endpoint URL is given.
	ErrEmptyEndpoint = errors.New("fetch: endpoint is empty")

	// ErrHTTP matches every *HTTPError via errors.Is.
	ErrHTTP = errors.New("fetch: non-success http status")

	// ErrParse matches every *ParseError via errors.Is.
	ErrParse = errors.New("fetch: unexpected response body")

	// ErrBodyTooLarge is wrapped by the ParseError for an oversized body.
	ErrBodyTooLarge = errors.New("fetch: body too large")
)

// HTTPError reports a response whose status code is outside 2xx.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("fetch: failed with code: %d", e.StatusCode)
}

func (e *HTTPError) Is(target error) bool { return target == ErrHTTP }

// ParseError reports a body that is not valid JSON or lacks the payload field.
// Err holds the decoder error or ErrBodyTooLarge when there is one.
type ParseError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch: parse %q: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch: parse %q: %s", e.Field, e.Reason)
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }
