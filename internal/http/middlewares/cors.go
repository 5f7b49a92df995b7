package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	corsAllowMethods  = strings.Join([]string{http.MethodGet, http.MethodOptions}, ",")
	corsAllowHeaders  = strings.Join([]string{"Content-Type", "If-None-Match", RequestIDHeader}, ",")
	corsExposeHeaders = strings.Join([]string{"ETag", RequestIDHeader}, ",")
)

// CORSMiddleware echoes the Origin back only when it is on the allow-list.
// An empty list allows no cross-origin callers.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))

	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(ctx *gin.Context) {
		ctx.Writer.Header().Add("Vary", "Origin")

		origin := ctx.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[origin]; ok {
				ctx.Header("Access-Control-Allow-Origin", origin)
				ctx.Header("Access-Control-Allow-Methods", corsAllowMethods)
				ctx.Header("Access-Control-Allow-Headers", corsAllowHeaders)
				ctx.Header("Access-Control-Expose-Headers", corsExposeHeaders)
			}
		}

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
