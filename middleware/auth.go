package middleware

import (
	"net/http"
	"strings"
	"time"

	"Warble/pkg/context"
	"Warble/pkg/jwt"
	"Warble/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 鉴权中间件，所有带 actor 的操作都要求已登录
// 缺失、过期、格式错误统一返回 401，不区分原因
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "访问未授权")
			return
		}
		if time.Until(claims.ExpiresAt.Time) < 5*time.Minute {
			newToken, _ := jwt.GenerateToken(
				secret,
				claims.UserID,
				"access",
				time.Hour,
			)
			c.Header("X-New-Access-Token", newToken)
		}
		c.Set(context.CtxUserID, claims.UserID)

		c.Next()
	}
}

// Optional 可选鉴权，匿名请求放行且不写入身份
// 首页时间线对未登录用户展示落地页数据
func Optional(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, secret); ok {
			c.Set(context.CtxUserID, claims.UserID)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
