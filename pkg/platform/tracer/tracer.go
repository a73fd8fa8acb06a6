// Package tracer provides a small tracing abstraction so services can emit
// spans without importing OpenTelemetry directly.
//
// Implementations:
//   - NoopTracer: for tests and the CLI
//   - OTelTracer: OpenTelemetry adapter for the server
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span. A non-nil err marks the span as failed.
	// End must be called exactly once, typically via defer.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashValue returns a short SHA-256 prefix of v so user input can be
// correlated across spans and logs without being recorded verbatim.
func HashValue(v string) string {
	if v == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:8])
}

// Span names.
const (
	SpanVerify        = "verification.verify"
	SpanCatalogSearch = "catalog.search"
	SpanCatalogGet    = "catalog.get"
)

// Attribute keys.
const (
	AttrCodeHash       = "code.hash"
	AttrOutcome        = "verification.outcome"
	AttrSimulatedDelay = "simulated_latency_ms"
	AttrDelayCut       = "delay.cut_short"
	AttrQueryLength    = "catalog.query_length"
	AttrCategory       = "catalog.category"
	AttrResultCount    = "catalog.result_count"
	AttrProductID      = "catalog.product_id"
)

// Event names.
const (
	EventResolved = "verification.resolved"
)
