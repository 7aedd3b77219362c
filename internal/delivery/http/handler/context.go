package handler

import "context"

// contextKey is the type for context keys
type contextKey string

// RequestIDContextKey is the key used to store the request ID in context
const RequestIDContextKey contextKey = "requestID"

// GetRequestID retrieves the request ID from request context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}
