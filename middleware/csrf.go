package middleware

import (
	"context"
	"net/http"

	ctxutil "Warble/pkg/context"
	"Warble/pkg/response"

	"github.com/gin-gonic/gin"
)

const CsrfHeader = "X-CSRF-Token"

// CsrfVerifier 防伪令牌校验，*cache.CsrfStorage 是线上实现
type CsrfVerifier interface {
	Verify(ctx context.Context, uid int64, token string) bool
}

// CSRF 防伪校验中间件，挂在每一个变更类路由上
// 必须在 Auth 之后执行；校验失败与未登录同样返回 401
func CSRF(store CsrfVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := ctxutil.GetUserID(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "访问未授权")
			return
		}

		token := c.GetHeader(CsrfHeader)
		if token == "" {
			token = c.PostForm("csrf_token")
		}
		if !store.Verify(c.Request.Context(), uid, token) {
			response.Abort(c, http.StatusUnauthorized, "访问未授权")
			return
		}

		c.Next()
	}
}
