package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextRequestIDKey is the key used to store the request id in Gin context.
const ContextRequestIDKey = "request_id"

// RequestIDHeader is the header carrying the request id on responses.
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with a unique id, reusing the client supplied
// one when present, and echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set(ContextRequestIDKey, id)
		ctx.Writer.Header().Set(RequestIDHeader, id)
		ctx.Next()
	}
}
