package model

import "time"

// Shared defaults used by both the factcard and factmock binaries.
const (
	DefaultVariant        = VariantCatFact
	DefaultRequestTimeout = time.Duration(0) // 0 = transport default
	DefaultLogLevel       = "info"
	DefaultUserAgent      = "factcard/dev"
	DefaultMockAddr       = "127.0.0.1:8089"
)
