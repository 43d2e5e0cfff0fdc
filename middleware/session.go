package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	sessionKey    = "sessionId"
)

// SessionMiddleware tạo sessionId nếu chưa có và gán vào context
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(SessionHeader)
		if sessionId == "" {
			// Tạo sessionId mới
			sessionId = uuid.NewString()
		}

		c.Set(sessionKey, sessionId)

		// Trả lại header để client dùng cho các request sau và cho websocket
		c.Writer.Header().Set(SessionHeader, sessionId)

		c.Next()
	}
}

// SessionID session của request hiện tại
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
