package models

import "time"

// MessageLike 点赞记录
// 唯一键: user_id + message_id，取消点赞直接删行
type MessageLike struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_message,priority:1" json:"user_id"`
	MessageID int64     `gorm:"column:message_id;not null;uniqueIndex:uk_user_message,priority:2" json:"message_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (m MessageLike) TableName() string { return "message_likes" }
