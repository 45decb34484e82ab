package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"Warble/dao"
	"Warble/models"
	"Warble/pkg/snowflake"

	"gorm.io/gorm"
)

var _ IMessageService = (*MessageService)(nil)

type IMessageService interface {
	Create(ctx context.Context, userID int64, text string) (*models.Message, error)
	Delete(ctx context.Context, userID, messageID int64) error
	Get(ctx context.Context, messageID int64) (*models.Message, error)
	ByUser(ctx context.Context, userID int64) ([]*models.Message, error)
}

type MessageService struct {
	MessageDAO *dao.MessageDAO
}

// Create 发布消息，长度上限 140
func (s *MessageService) Create(ctx context.Context, userID int64, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}
	if len([]rune(text)) > models.MaxMessageLen {
		return nil, ErrMessageTooLong
	}

	message := &models.Message{
		ID:        snowflake.GenID(),
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.MessageDAO.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Delete 删除消息，只有作者本人可以删
func (s *MessageService) Delete(ctx context.Context, userID, messageID int64) error {
	message, err := s.MessageDAO.FindById(ctx, messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if message.UserID != userID {
		return ErrForbidden
	}

	_, err = s.MessageDAO.DeleteById(ctx, messageID)
	return err
}

func (s *MessageService) Get(ctx context.Context, messageID int64) (*models.Message, error) {
	message, err := s.MessageDAO.FindById(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return message, err
}

// ByUser 用户主页消息列表，按发布时间倒序，最多 100 条
func (s *MessageService) ByUser(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.MessageDAO.FindByUserID(ctx, userID, FeedLimit)
}
