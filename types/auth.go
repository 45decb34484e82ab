package types

import "Warble/models"

type SignupRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	ImageURL string `json:"image_url"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse 登录/注册成功后的会话凭证
// CsrfToken 在每个变更请求里通过 X-CSRF-Token 带回
type AuthResponse struct {
	Token     string       `json:"token"`
	CsrfToken string       `json:"csrf_token"`
	User      *models.User `json:"user"`
}
