package service

import (
	"context"

	"Warble/dao"
	"Warble/models"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error)
	Following(ctx context.Context, userID int64) ([]*models.User, error)
	Followers(ctx context.Context, userID int64) ([]*models.User, error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	UsersDAO  *dao.UsersDAO
}

// Follow 关注用户
// 幂等：重复关注落在唯一索引上，不产生第二条边
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	// 不能关注自己
	if followerID == followeeID {
		return ErrSelfFollow
	}

	// 校验被关注用户是否存在
	exist, err := s.UsersDAO.IsExist(ctx, "id = ?", followeeID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrNotFound
	}

	return s.FollowDAO.CreateIgnore(ctx, followerID, followeeID)
}

// Unfollow 取消关注，没有关注过时为空操作
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	exist, err := s.UsersDAO.IsExist(ctx, "id = ?", followeeID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrNotFound
	}

	return s.FollowDAO.Delete(ctx, followerID, followeeID)
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followeeID)
}

// Following 用户关注的人
func (s *FollowService) Following(ctx context.Context, userID int64) ([]*models.User, error) {
	return s.FollowDAO.GetFollowingList(ctx, userID)
}

// Followers 用户的粉丝
func (s *FollowService) Followers(ctx context.Context, userID int64) ([]*models.User, error) {
	return s.FollowDAO.GetFollowerList(ctx, userID)
}
