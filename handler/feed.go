package handler

import (
	"Warble/config"
	"Warble/middleware"
	"Warble/models"
	"Warble/pkg/context"
	"Warble/pkg/response"
	"Warble/service"
	"Warble/types"

	"github.com/gin-gonic/gin"
)

type Feed struct {
	Config      *config.Config
	FeedService service.IFeedService
}

func (f *Feed) RegisterRouter(r gin.IRouter) {
	optional := middleware.Optional([]byte(f.Config.Jwt.Secret))
	g := r.Group("/v1/feed")
	g.GET("", optional, context.Wrap(f.Home))
}

// Home 首页时间线
// 已登录：自己和关注的人的最近消息；匿名：空列表，由调用方渲染落地页
func (f *Feed) Home(c *gin.Context) error {
	viewerID, err := context.GetUserID(c)
	if err != nil {
		response.Success(c, types.FeedResponse{
			Messages: []*models.Message{},
			Anon:     true,
		})
		return nil
	}

	messages, err := f.FeedService.Home(c.Request.Context(), viewerID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.FeedResponse{
		Messages: messages,
		Anon:     false,
	})
	return nil
}
