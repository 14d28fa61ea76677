package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/service"
)

// ContextAdminKey 认证通过后管理员用户名在 gin.Context 中的键
const ContextAdminKey = "admin_username"

// TokenParser 解析管理员令牌
type TokenParser interface {
	ParseToken(tokenString string) (*service.Claims, error)
}

// bearerToken 从 Authorization: Bearer <token> 中取出令牌
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// AdminAuth 后台接口认证中间件
func AdminAuth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "身份认证信息未提供。"})
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			msg := "认证令牌无效。"
			if errors.Is(err, service.ErrExpiredToken) {
				msg = "认证令牌已过期。"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(ContextAdminKey, claims.Username)
		c.Next()
	}
}
