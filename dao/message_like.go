package dao

import (
	"context"
	"time"

	"Warble/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MessageLikeDAO struct {
	Repo[models.MessageLike]
}

func NewMessageLikeDAO(db *gorm.DB) *MessageLikeDAO {
	return &MessageLikeDAO{Repo: NewRepo[models.MessageLike](db)}
}

// IsLiked 是否已点赞
func (d *MessageLikeDAO) IsLiked(ctx context.Context, userID, messageID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND message_id = ?", userID, messageID)
}

// Toggle 点赞开关：有则删，无则插，单事务内完成
// 插入走唯一索引 + DoNothing，并发重复点赞只留一条记录
// 返回切换后的点赞状态
func (d *MessageLikeDAO) Toggle(ctx context.Context, userID, messageID int64) (bool, error) {
	liked := false
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND message_id = ?", userID, messageID).
			Delete(&models.MessageLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		like := models.MessageLike{
			UserID:    userID,
			MessageID: messageID,
			CreatedAt: time.Now(),
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return nil
	})
	return liked, err
}

// GetLikedMessages 用户点赞过的消息，按消息发布时间倒序
func (d *MessageLikeDAO) GetLikedMessages(ctx context.Context, userID int64, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	err := d.Db.WithContext(ctx).
		Table("messages m").
		Select("m.*").
		Joins("INNER JOIN message_likes ml ON ml.message_id = m.id").
		Where("ml.user_id = ?", userID).
		Order("m.created_at DESC").
		Limit(limit).
		Scan(&messages).Error
	return messages, err
}

// GetLikedCount 用户点赞总数
func (d *MessageLikeDAO) GetLikedCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.MessageLike{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
