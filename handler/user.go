package handler

import (
	"fmt"
	"net/http"

	"Warble/config"
	"Warble/dao/cache"
	"Warble/middleware"
	"Warble/pkg/context"
	"Warble/pkg/log"
	"Warble/pkg/response"
	"Warble/service"
	"Warble/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type User struct {
	Config         *config.Config
	UserService    service.IUserService
	FollowService  service.IFollowService
	MessageService service.IMessageService
	FeedService    service.IFeedService
	CsrfStore      *cache.CsrfStorage
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret))
	csrf := middleware.CSRF(u.CsrfStore)
	g := r.Group("/v1/users")
	g.GET("", authorize, context.Wrap(u.List))
	g.GET("/:user_id", authorize, context.Wrap(u.Show))
	g.GET("/:user_id/following", authorize, context.Wrap(u.Following))
	g.GET("/:user_id/followers", authorize, context.Wrap(u.Followers))
	g.GET("/:user_id/liked", authorize, context.Wrap(u.Liked))
	g.POST("/:user_id/follow", authorize, csrf, context.Wrap(u.Follow))
	g.POST("/:user_id/unfollow", authorize, csrf, context.Wrap(u.Unfollow))
	g.POST("/profile", authorize, csrf, context.Wrap(u.EditProfile))
	g.POST("/delete", authorize, csrf, context.Wrap(u.Delete))
}

// List 用户列表，q 参数按用户名模糊搜索
func (u *User) List(c *gin.Context) error {
	users, err := u.UserService.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.ListUsersResponse{Users: users})
	return nil
}

// Show 个人主页：资料、统计和消息列表
func (u *User) Show(c *gin.Context) error {
	viewerID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	user, err := u.UserService.GetByID(c.Request.Context(), targetID)
	if err != nil {
		return bizError(err)
	}
	stats, err := u.FeedService.ProfileStats(c.Request.Context(), targetID)
	if err != nil {
		return bizError(err)
	}
	messages, err := u.MessageService.ByUser(c.Request.Context(), targetID)
	if err != nil {
		return bizError(err)
	}
	isFollowing, err := u.FollowService.IsFollowing(c.Request.Context(), viewerID, targetID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.ProfileResponse{
		User:        user,
		Stats:       stats,
		Messages:    messages,
		IsFollowing: isFollowing,
	})
	return nil
}

// Following 关注列表
func (u *User) Following(c *gin.Context) error {
	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	users, err := u.FollowService.Following(c.Request.Context(), targetID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.ListUsersResponse{Users: users})
	return nil
}

// Followers 粉丝列表
func (u *User) Followers(c *gin.Context) error {
	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	users, err := u.FollowService.Followers(c.Request.Context(), targetID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, types.ListUsersResponse{Users: users})
	return nil
}

// Liked 点赞过的消息列表
func (u *User) Liked(c *gin.Context) error {
	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	messages, err := u.FeedService.LikedFeed(c.Request.Context(), targetID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"messages": messages})
	return nil
}

// Follow 关注用户
func (u *User) Follow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := u.FollowService.Follow(c.Request.Context(), userID, targetID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"followed": true})
	return nil
}

// Unfollow 取消关注
func (u *User) Unfollow(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	targetID, err := paramID(c, "user_id")
	if err != nil {
		return err
	}

	if err := u.FollowService.Unfollow(c.Request.Context(), userID, targetID); err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"followed": false})
	return nil
}

// EditProfile 修改个人资料，当前密码作确认
func (u *User) EditProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	var req types.EditProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := u.UserService.EditProfile(c.Request.Context(), userID, &service.UserEditOpt{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ImageURL:       req.ImageURL,
		HeaderImageURL: req.HeaderImageURL,
		Bio:            req.Bio,
		Location:       req.Location,
	})
	if err != nil {
		return bizError(err)
	}

	response.Success(c, gin.H{"user": user})
	return nil
}

// Delete 注销账号，级联清理所有关联数据
func (u *User) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	if err := u.UserService.Delete(c.Request.Context(), userID); err != nil {
		return bizError(err)
	}
	// 账号已删除，令牌清理失败只记日志，等它随 TTL 过期
	if err := u.CsrfStore.Revoke(c.Request.Context(), userID); err != nil {
		log.L.Warn("revoke csrf token", zap.Int64("user_id", userID), zap.Error(err))
	}

	response.Success(c, gin.H{"deleted": true})
	return nil
}

func paramID(c *gin.Context, name string) (int64, error) {
	param := c.Param(name)
	if param == "" {
		return 0, response.NewError(http.StatusBadRequest, "缺少 "+name)
	}
	var id int64
	if _, err := fmt.Sscanf(param, "%d", &id); err != nil {
		return 0, response.NewError(http.StatusBadRequest, name+" 格式错误")
	}
	return id, nil
}
