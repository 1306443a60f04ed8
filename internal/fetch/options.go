package fetch

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures an HTTPFetcher.
type Option func(f *HTTPFetcher)

// WithTransport sets the transport used for the GET. A nil transport is ignored.
func WithTransport(t Transport) Option {
	return func(f *HTTPFetcher) {
		if t != nil {
			f.transport = t
		}
	}
}

// WithField sets the gjson path of the payload inside the response body.
func WithField(path string) Option {
	return func(f *HTTPFetcher) {
		f.field = path
	}
}

// WithNoun sets the word used in log lines ("cat fact", "joke").
func WithNoun(noun string) Option {
	return func(f *HTTPFetcher) {
		f.noun = noun
	}
}

// WithTimeout bounds each fetch. Zero leaves the transport default in place.
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(f *HTTPFetcher) {
		f.logger = l
	}
}
