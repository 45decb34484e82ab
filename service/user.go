package service

import (
	"context"
	"errors"
	"time"

	"Warble/dao"
	"Warble/models"
	"Warble/pkg/encrypt"
	"Warble/pkg/snowflake"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Signup(ctx context.Context, opt *UserSignupOpt) (*models.User, error)
	Authenticate(ctx context.Context, username string, password string) (*models.User, error)
	EditProfile(ctx context.Context, userID int64, opt *UserEditOpt) (*models.User, error)
	Delete(ctx context.Context, userID int64) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, q string) ([]*models.User, error)
}

type UserService struct {
	UsersDAO *dao.UsersDAO
}

type UserSignupOpt struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ImageURL string `json:"image_url"`
}

type UserEditOpt struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"` // 当前密码，仅作确认，不参与修改
	ImageURL       string `json:"image_url"`
	HeaderImageURL string `json:"header_image_url"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
}

// Signup 注册用户
// 重名检测依赖唯一索引，插入后捕获冲突，不做预查询
func (s *UserService) Signup(ctx context.Context, opt *UserSignupOpt) (*models.User, error) {
	imageURL := opt.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		ID:             snowflake.GenID(),
		Username:       opt.Username,
		Email:          opt.Email,
		Password:       encrypt.HashPassword(opt.Password),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := s.UsersDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	return user, nil
}

// Authenticate 登录校验
// 用户不存在和密码错误对调用方不可区分
func (s *UserService) Authenticate(ctx context.Context, username string, password string) (*models.User, error) {
	user, err := s.UsersDAO.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// EditProfile 修改个人资料
// 先用当前密码做二次确认，通过后所有字段一次性更新
func (s *UserService) EditProfile(ctx context.Context, userID int64, opt *UserEditOpt) (*models.User, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, opt.Password) {
		return nil, ErrInvalidPassword
	}

	imageURL := opt.ImageURL
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}
	headerImageURL := opt.HeaderImageURL
	if headerImageURL == "" {
		headerImageURL = models.DefaultHeaderImageURL
	}

	err = s.UsersDAO.Update(ctx, userID, map[string]any{
		"username":         opt.Username,
		"email":            opt.Email,
		"image_url":        imageURL,
		"header_image_url": headerImageURL,
		"bio":              opt.Bio,
		"location":         opt.Location,
		"updated_at":       time.Now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	return s.UsersDAO.FindById(ctx, userID)
}

// Delete 注销账号，级联删除消息、双向关注边和点赞
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	exist, err := s.UsersDAO.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return err
	}
	if !exist {
		return ErrNotFound
	}
	return s.UsersDAO.DeleteWithRelations(ctx, userID)
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.UsersDAO.FindByUsername(ctx, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// List 用户列表，q 非空时按用户名模糊搜索
func (s *UserService) List(ctx context.Context, q string) ([]*models.User, error) {
	return s.UsersDAO.Search(ctx, q)
}
