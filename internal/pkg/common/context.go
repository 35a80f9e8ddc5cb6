package common

type contextKey string

// RequestIDKey is the context key under which the API layer stores the
// per-request id for downstream services.
const RequestIDKey contextKey = "request_id"
