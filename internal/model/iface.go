package model

import "context"

// FactSource produces one displayable piece of text per call.
// Implementations perform a single attempt: no retries, no caching.
type FactSource interface {
	Fetch(ctx context.Context) (string, error)
}
