package service

import (
	"context"

	"Warble/dao"
	"Warble/models"
)

// FeedLimit 各类时间线统一只取最近 100 条
const FeedLimit = 100

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	Home(ctx context.Context, viewerID int64) ([]*models.Message, error)
	LikedFeed(ctx context.Context, userID int64) ([]*models.Message, error)
	ProfileStats(ctx context.Context, userID int64) (*Stats, error)
}

// Stats 个人主页统计，每次实时计算，不走缓存
type Stats struct {
	Messages  int64 `json:"messages"`
	Following int64 `json:"following"`
	Followers int64 `json:"followers"`
	Liked     int64 `json:"liked"`
}

type FeedService struct {
	MessageDAO *dao.MessageDAO
	FollowDAO  *dao.UserFollowDAO
	LikeDAO    *dao.MessageLikeDAO
	UsersDAO   *dao.UsersDAO
}

// Home 首页时间线：自己和关注的人的消息，按发布时间倒序
func (s *FeedService) Home(ctx context.Context, viewerID int64) ([]*models.Message, error) {
	ids, err := s.FollowDAO.GetFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, viewerID)

	return s.MessageDAO.FindByAuthors(ctx, ids, FeedLimit)
}

// LikedFeed 个人主页的点赞列表，排序和条数与首页时间线一致
func (s *FeedService) LikedFeed(ctx context.Context, userID int64) ([]*models.Message, error) {
	return s.LikeDAO.GetLikedMessages(ctx, userID, FeedLimit)
}

// ProfileStats 个人主页统计
func (s *FeedService) ProfileStats(ctx context.Context, userID int64) (*Stats, error) {
	exist, err := s.UsersDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, ErrNotFound
	}

	messages, err := s.MessageDAO.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowDAO.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.FollowDAO.GetFollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked, err := s.LikeDAO.GetLikedCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Messages:  messages,
		Following: following,
		Followers: followers,
		Liked:     liked,
	}, nil
}
