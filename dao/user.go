package dao

import (
	"context"
	"fmt"

	"Warble/models"

	"gorm.io/gorm"
)

type UsersDAO struct {
	Repo[models.User]
}

func NewUsersDAO(db *gorm.DB) *UsersDAO {
	return &UsersDAO{
		Repo: NewRepo[models.User](db),
	}
}

// FindByUsername 用户名查询
func (u *UsersDAO) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// Search 用户列表，q 非空时按用户名模糊查询
func (u *UsersDAO) Search(ctx context.Context, q string) ([]*models.User, error) {
	var users []*models.User
	db := u.Db.WithContext(ctx)
	if q != "" {
		db = db.Where("username LIKE ?", "%"+q+"%")
	}
	err := db.Order("username ASC").Find(&users).Error
	return users, err
}

func (u *UsersDAO) Update(ctx context.Context, userID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("dao.UsersDAO.Update error: %w", err)
	}

	return nil
}

// DeleteWithRelations 删除用户及其全部关联数据，单事务内完成
// 顺序: 用户发出的赞 -> 用户消息收到的赞 -> 双向关注边 -> 用户消息 -> 用户本身
func (u *UsersDAO) DeleteWithRelations(ctx context.Context, userID int64) error {
	return u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.MessageLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id IN (?)",
			tx.Model(&models.Message{}).Select("id").Where("user_id = ?", userID),
		).Delete(&models.MessageLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followee_id = ?", userID, userID).
			Delete(&models.UserFollow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", userID).Delete(&models.User{}).Error
	})
}
