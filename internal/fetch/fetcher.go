package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	defaultField = "text"
	defaultNoun  = "fact"

	// maxBodySize caps how much of a response body is read.
	maxBodySize = 1 << 20
)

// HTTPFetcher issues one GET to a fixed endpoint and extracts a string
// payload from the JSON response.
type HTTPFetcher struct {
	endpoint  string
	field     string
	noun      string
	userAgent string
	timeout   time.Duration
	transport Transport
	logger    zerolog.Logger
}

// New creates an HTTPFetcher for endpoint. Without options it uses
// http.DefaultClient, reads the "text" field, and logs nothing.
func New(endpoint string, opts ...Option) (*HTTPFetcher, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	f := &HTTPFetcher{
		endpoint:  endpoint,
		field:     defaultField,
		noun:      defaultNoun,
		transport: http.DefaultClient,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.field == "" {
		f.field = defaultField
	}
	return f, nil
}

// Endpoint returns the URL this fetcher requests.
func (f *HTTPFetcher) Endpoint() string { return f.endpoint }

// Fetch performs a single GET. It fails with *HTTPError on a non-2xx status
// and with *ParseError when the body is not JSON or lacks a string at the
// configured field. There are no retries.
func (f *HTTPFetcher) Fetch(ctx context.Context) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("fetch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	f.logger.Info().Str("endpoint", f.endpoint).Msgf("Fetching new %s", f.noun)

	resp, err := f.transport.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return "", &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("fetch: read body: %w", err)
	}
	if len(body) > maxBodySize {
		return "", &ParseError{Field: f.field, Reason: fmt.Sprintf("body exceeds %d bytes", maxBodySize), Err: ErrBodyTooLarge}
	}

	value, err := ExtractField(body, f.field)
	if err != nil {
		return "", err
	}

	f.logger.Info().Msgf("Got a new %s: %s", f.noun, value)
	return value, nil
}

// ExtractField returns the string at path inside a JSON document.
func ExtractField(body []byte, path string) (string, error) {
	if !json.Valid(body) {
		var v any
		return "", &ParseError{Field: path, Reason: "malformed JSON", Err: json.Unmarshal(body, &v)}
	}

	res := gjson.GetBytes(body, path)
	if !res.Exists() {
		return "", &ParseError{Field: path, Reason: "field missing"}
	}
	if res.Type != gjson.String {
		return "", &ParseError{Field: path, Reason: fmt.Sprintf("field is %s, not a string", res.Type)}
	}
	return res.String(), nil
}
