package service

import (
	"context"

	"Warble/dao"
	"Warble/models"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, userID, messageID int64) (bool, error)
	IsLiked(ctx context.Context, userID, messageID int64) (bool, error)
	Liked(ctx context.Context, userID int64) ([]*models.Message, error)
}

type LikeService struct {
	LikeDAO    *dao.MessageLikeDAO
	MessageDAO *dao.MessageDAO
}

// Toggle 点赞开关：已点赞则取消，未点赞则点赞
// 返回切换后的状态
func (s *LikeService) Toggle(ctx context.Context, userID, messageID int64) (bool, error) {
	// 校验消息存在
	exist, err := s.MessageDAO.IsExist(ctx, "id = ?", messageID)
	if err != nil {
		return false, err
	}
	if !exist {
		return false, ErrNotFound
	}

	return s.LikeDAO.Toggle(ctx, userID, messageID)
}

func (s *LikeService) IsLiked(ctx context.Context, userID, messageID int64) (bool, error) {
	return s.LikeDAO.IsLiked(ctx, userID, messageID)
}

// Liked 用户点赞过的消息，按发布时间倒序，最多 100 条
func (s *LikeService) Liked(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.LikeDAO.GetLikedMessages(ctx, userID, FeedLimit)
}
