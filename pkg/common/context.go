package common

import (
	"context"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestIDFromContext returns the request id assigned by the router's
// RequestID middleware, or an empty string when none was assigned.
func RequestIDFromContext(ctx context.Context) string {
	return chimiddleware.GetReqID(ctx)
}
