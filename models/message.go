package models

import (
	"time"
)

// MaxMessageLen 单条消息的最大长度
const MaxMessageLen = 140

type Message struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Text      string    `gorm:"column:text;type:varchar(140);not null" json:"text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}
