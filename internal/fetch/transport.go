package fetch

import "net/http"

// Transport performs one HTTP round trip. *http.Client satisfies it, and
// tests pass a TransportFunc or an httptest-backed client instead of
// swapping a process-wide fetch function.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportFunc adapts a plain function to Transport.
type TransportFunc func(req *http.Request) (*http.Response, error)

func (f TransportFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }
