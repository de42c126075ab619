package http

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const requestContextKey contextKey = "request_context"

// RequestContext is the authenticated caller's identity for one request. The
// middleware builds it from the session token; handlers pass HubID explicitly
// into every service call.
type RequestContext struct {
	UserID      uuid.UUID
	HubID       uuid.UUID
	Permissions []string
}

func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, rc)
}

func RequestContextFrom(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey).(*RequestContext)
	return rc, ok
}
