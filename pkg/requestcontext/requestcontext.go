// Package requestcontext carries per-request values set by middleware.
package requestcontext

import "context"

type (
	requestIDKey   struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	clientLabelKey struct{}
)

// WithRequestID stores the request ID on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestID returns the request ID, or "" when none was set.
func RequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithClientMetadata stores the resolved client IP, raw User-Agent and a
// coarse client label ("Chrome on macOS") on the context.
func WithClientMetadata(ctx context.Context, ip, userAgent, label string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey{}, ip)
	ctx = context.WithValue(ctx, userAgentKey{}, userAgent)
	return context.WithValue(ctx, clientLabelKey{}, label)
}

func ClientIP(ctx context.Context) string {
	if v, ok := ctx.Value(clientIPKey{}).(string); ok {
		return v
	}
	return ""
}

func UserAgent(ctx context.Context) string {
	if v, ok := ctx.Value(userAgentKey{}).(string); ok {
		return v
	}
	return ""
}

func ClientLabel(ctx context.Context) string {
	if v, ok := ctx.Value(clientLabelKey{}).(string); ok {
		return v
	}
	return ""
}
