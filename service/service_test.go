package service

import (
	"fmt"
	"testing"

	"Warble/dao"
	"Warble/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv 测试用的服务集合，底层是内存 SQLite
type testEnv struct {
	db      *gorm.DB
	user    *UserService
	follow  *FollowService
	like    *LikeService
	message *MessageService
	feed    *FeedService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.UserFollow{},
		&models.MessageLike{},
	)
	if err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	usersDAO := dao.NewUsersDAO(db)
	followDAO := dao.NewUserFollowDAO(db)
	messageDAO := dao.NewMessageDAO(db)
	likeDAO := dao.NewMessageLikeDAO(db)

	return &testEnv{
		db:      db,
		user:    &UserService{UsersDAO: usersDAO},
		follow:  &FollowService{FollowDAO: followDAO, UsersDAO: usersDAO},
		like:    &LikeService{LikeDAO: likeDAO, MessageDAO: messageDAO},
		message: &MessageService{MessageDAO: messageDAO},
		feed: &FeedService{
			MessageDAO: messageDAO,
			FollowDAO:  followDAO,
			LikeDAO:    likeDAO,
			UsersDAO:   usersDAO,
		},
	}
}

// signup 快捷注册一个测试用户
func (e *testEnv) signup(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := e.user.Signup(t.Context(), &UserSignupOpt{
		Username: username,
		Email:    username + "@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("signup %s: %v", username, err)
	}
	return user
}

// post 快捷发一条消息
func (e *testEnv) post(t *testing.T, userID int64, text string) *models.Message {
	t.Helper()
	message, err := e.message.Create(t.Context(), userID, text)
	if err != nil {
		t.Fatalf("create message: %v", err)
	}
	return message
}
