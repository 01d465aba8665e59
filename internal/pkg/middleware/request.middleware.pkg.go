package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

func RequestInit() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set("requestId", requestID)
		c.Header(RequestIDHeader, requestID)

		version := c.Request.Header.Get("version")
		if version == "" {
			version = "1.0.0"
		}
		c.Set("version", version)
		c.Set("start-time", time.Now())
		c.Next()
	}
}
