package middleware

import (
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelbooking/response"
	"hotelbooking/services"
)

const (
	staffIDKey     = "staffID"
	permissionsKey = "permissions"
)

// AuthMiddleware xử lý authentication; permissions rỗng thì chỉ cần đăng nhập
func AuthMiddleware(tokens *services.TokenService, permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		info, err := tokens.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Kiểm tra quyền nếu có yêu cầu
		for _, p := range permissions {
			if !slices.Contains(info.Permissions, p) {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		// Lưu thông tin nhân viên vào context
		c.Set(staffIDKey, info.StaffID)
		c.Set(permissionsKey, info.Permissions)
		c.Next()
	}
}

// RequirePermission kiểm tra quyền sau AuthMiddleware
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(permissionsKey)
		if !exists {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		granted, _ := value.([]string)
		if !slices.Contains(granted, permission) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// StaffID id nhân viên đã xác thực, 0 nếu chưa có
func StaffID(c *gin.Context) uint {
	id, _ := c.Get(staffIDKey)
	staffID, _ := id.(uint)
	return staffID
}

// bearerToken lấy token từ header Authorization, không có thì từ cookie access_token
func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}
