package handler

import (
	"net/http"

	"Warble/config"
	"Warble/dao/cache"
	"Warble/middleware"
	"Warble/pkg/context"
	"Warble/pkg/response"
	"Warble/service"
	"Warble/types"

	"github.com/gin-gonic/gin"
)

type Message struct {
	Config         *config.Config
	MessageService service.IMessageService
	LikeService    service.ILikeService
	CsrfStore      *cache.CsrfStorage
}

func (m *Message) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(m.Config.Jwt.Secret))
	csrf := middleware.CSRF(m.CsrfStore)
	g := r.Group("/v1/messages")
	g.POST("", authorize, csrf, context.Wrap(m.Create))
	g.GET("/:message_id", authorize, context.Wrap(m.Show))
	g.POST("/:message_id/delete", authorize, csrf, context.Wrap(m.Delete))
	g.POST("/:message_id/like", authorize, csrf, context.Wrap(m.ToggleLike))
}

// Create 发布消息
func (m *Message) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	var req types.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	message, err := m.MessageService.Create(c.Request.Context(), userID, req.Text)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"message": message})
	return nil
}

// Show 查看单条消息，带上当前访问者的点赞状态
func (m *Message) Show(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	messageID, err := paramID(c, "message_id")
	if err != nil {
		return err
	}

	message, err := m.MessageService.Get(c.Request.Context(), messageID)
	if err != nil {
		return bizError(err)
	}
	liked, err := m.LikeService.IsLiked(c.Request.Context(), userID, messageID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.MessageResponse{
		Message: message,
		Liked:   liked,
	})
	return nil
}

// Delete 删除消息，仅作者本人
func (m *Message) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	messageID, err := paramID(c, "message_id")
	if err != nil {
		return err
	}

	if err := m.MessageService.Delete(c.Request.Context(), userID, messageID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

// ToggleLike 点赞开关，location 原样带回给调用方回跳
func (m *Message) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	messageID, err := paramID(c, "message_id")
	if err != nil {
		return err
	}

	var req types.LikeRequest
	_ = c.ShouldBindJSON(&req)

	liked, err := m.LikeService.Toggle(c.Request.Context(), userID, messageID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.LikeResponse{
		Liked:    liked,
		Location: req.Location,
	})
	return nil
}
