package types

import (
	"Warble/models"
	"Warble/service"
)

type EditProfileRequest struct {
	Username       string `json:"username" binding:"required,max=50"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"` // 当前密码，仅作确认
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
}

// ProfileResponse 个人主页数据
type ProfileResponse struct {
	User        *models.User      `json:"user"`
	Stats       *service.Stats    `json:"stats"`
	Messages    []*models.Message `json:"messages"`
	IsFollowing bool              `json:"is_following"`
}

type ListUsersResponse struct {
	Users []*models.User `json:"users"`
}
