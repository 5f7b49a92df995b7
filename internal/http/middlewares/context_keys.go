package middlewares

// gin context keys
const (
	CtxRequestID = "request_id"
)

const RequestIDHeader = "X-Request-Id"
