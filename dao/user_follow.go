package dao

import (
	"context"
	"time"

	"Warble/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var follow models.UserFollow
	err := d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		First(&follow).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateIgnore 插入关注边，依赖唯一索引，冲突时不做任何事
// 并发重复请求最多留下一条边
func (d *UserFollowDAO) CreateIgnore(ctx context.Context, followerID, followeeID int64) error {
	follow := models.UserFollow{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now(),
	}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
}

// Delete 删除关注边，不存在时为空操作
func (d *UserFollowDAO) Delete(ctx context.Context, followerID, followeeID int64) error {
	return d.Db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.UserFollow{}).Error
}

// GetFollowerCount 获取粉丝数
func (d *UserFollowDAO) GetFollowerCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("followee_id = ?", userID).
		Count(&count).Error
	return count, err
}

// GetFollowingCount 获取关注数
func (d *UserFollowDAO) GetFollowingCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

// GetFollowingList 获取用户关注的用户列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, userID int64) ([]*models.User, error) {
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Table("users u").
		Select("u.*").
		Joins("INNER JOIN user_follows uf ON uf.followee_id = u.id").
		Where("uf.follower_id = ?", userID).
		Order("uf.created_at DESC").
		Scan(&users).Error
	return users, err
}

// GetFollowerList 获取用户的粉丝列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowerList(ctx context.Context, userID int64) ([]*models.User, error) {
	var users []*models.User
	err := d.Db.WithContext(ctx).
		Table("users u").
		Select("u.*").
		Joins("INNER JOIN user_follows uf ON uf.follower_id = u.id").
		Where("uf.followee_id = ?", userID).
		Order("uf.created_at DESC").
		Scan(&users).Error
	return users, err
}

// GetFollowingIDs 获取关注的用户ID列表，时间线查询用
func (d *UserFollowDAO) GetFollowingIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error
	return ids, err
}
