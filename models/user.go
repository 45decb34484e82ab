package models

import (
	"time"
)

const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             int64     `gorm:"column:id;primary_key" json:"id"`
	Username       string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uk_username" json:"username"`
	Email          string    `gorm:"column:email;type:varchar(100);not null;uniqueIndex:uk_email" json:"email"`
	Password       string    `gorm:"column:password;type:varchar(100);not null" json:"-"`
	ImageURL       string    `gorm:"column:image_url;type:varchar(255);not null;default:''" json:"image_url"`
	HeaderImageURL string    `gorm:"column:header_image_url;type:varchar(255);not null;default:''" json:"header_image_url"`
	Bio            string    `gorm:"column:bio;type:text" json:"bio"`
	Location       string    `gorm:"column:location;type:varchar(100);not null;default:''" json:"location"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
