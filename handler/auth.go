package handler

import (
	"net/http"
	"time"

	"Warble/config"
	"Warble/dao/cache"
	"Warble/middleware"
	"Warble/models"
	"Warble/pkg/context"
	"Warble/pkg/jwt"
	"Warble/pkg/response"
	"Warble/service"
	"Warble/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
	CsrfStore   *cache.CsrfStorage
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(a.Config.Jwt.Secret))
	csrf := middleware.CSRF(a.CsrfStore)
	g := r.Group("/v1/auth")
	g.POST("/signup", context.Wrap(a.Signup))
	g.POST("/login", context.Wrap(a.Login))
	g.POST("/logout", authorize, csrf, context.Wrap(a.Logout))
}

// Signup 注册并直接登录
func (a *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := a.UserService.Signup(c.Request.Context(), &service.UserSignupOpt{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return bizError(err)
	}

	return a.session(c, user)
}

// Login 登录
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := a.UserService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return bizError(err)
	}

	return a.session(c, user)
}

// Logout 注销会话，CSRF 令牌同时作废
func (a *Auth) Logout(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "访问未授权")
	}

	if err := a.CsrfStore.Revoke(c.Request.Context(), uid); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"logout": true})
	return nil
}

func (a *Auth) session(c *gin.Context, user *models.User) error {
	expire := time.Duration(a.Config.Jwt.Expire) * time.Second

	token, err := jwt.GenerateToken([]byte(a.Config.Jwt.Secret), user.ID, "access", expire)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	csrfToken, err := a.CsrfStore.Issue(c.Request.Context(), user.ID, expire)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.AuthResponse{
		Token:     token,
		CsrfToken: csrfToken,
		User:      user,
	})
	return nil
}
