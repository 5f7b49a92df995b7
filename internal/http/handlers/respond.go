package handlers

import (
	"net/http"

	"github.com/geocoder89/roster/internal/http/middlewares"
	"github.com/gin-gonic/gin"
)

const (
	CodeInvalidID        = "invalid_id"
	CodeMissingParameter = "missing_parameter"
	CodeNotFound         = "not_found"
	CodeInternal         = "internal_error"

	// internal failures always surface with this message and nothing else
	MsgInternal = "internal server error"
)

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

func requestIDFrom(ctx *gin.Context) string {
	v, ok := ctx.Get(middlewares.CtxRequestID)

	if ok {
		s, ok := v.(string)
		if ok && s != "" {
			return s
		}
	}

	// fallback header
	return ctx.GetHeader(middlewares.RequestIDHeader)
}

func RespondError(ctx *gin.Context, status int, code, message string) {
	ctx.JSON(status, gin.H{
		"error": APIError{
			Code:      code,
			Message:   message,
			RequestID: requestIDFrom(ctx),
		},
	})
}

func RespondInvalidID(ctx *gin.Context) {
	RespondError(ctx, http.StatusBadRequest, CodeInvalidID, "invalid user id format")
}

func RespondMissingParameter(ctx *gin.Context, name string) {
	RespondError(ctx, http.StatusBadRequest, CodeMissingParameter, "missing required query parameter: "+name)
}

func RespondNotFound(ctx *gin.Context, message string) {
	RespondError(ctx, http.StatusNotFound, CodeNotFound, message)
}

func RespondInternal(ctx *gin.Context) {
	RespondError(ctx, http.StatusInternalServerError, CodeInternal, MsgInternal)
}

// AbortInternal is RespondInternal for middleware and recovery paths.
func AbortInternal(ctx *gin.Context) {
	RespondInternal(ctx)
	ctx.Abort()
}
