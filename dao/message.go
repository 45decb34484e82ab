package dao

import (
	"context"

	"Warble/models"

	"gorm.io/gorm"
)

type MessageDAO struct {
	Repo[models.Message]
}

func NewMessageDAO(db *gorm.DB) *MessageDAO {
	return &MessageDAO{Repo: NewRepo[models.Message](db)}
}

// FindByUserID 根据用户ID查询消息列表，按发布时间倒序
func (d *MessageDAO) FindByUserID(ctx context.Context, userID int64, limit int) ([]*models.Message, error) {
	var messages []*models.Message
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// FindByAuthors 查询一组作者的消息，时间线查询用
func (d *MessageDAO) FindByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]*models.Message, error) {
	if len(authorIDs) == 0 {
		return []*models.Message{}, nil
	}
	var messages []*models.Message
	err := d.Db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// CountByUserID 用户发布的消息数
func (d *MessageDAO) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Message{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
