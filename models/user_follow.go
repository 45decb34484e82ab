package models

import (
	"time"
)

// UserFollow 关注关系
// 唯一键: follower_id + followee_id，取消关注直接删行
type UserFollow struct {
	ID         int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_followee,priority:1" json:"follower_id"` // 关注人
	FolloweeID int64     `gorm:"column:followee_id;not null;uniqueIndex:uk_follower_followee,priority:2" json:"followee_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}
