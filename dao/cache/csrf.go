package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CsrfStorage 防伪令牌存储
// 登录时签发，随会话有效期过期，每个变更请求都要带上校验
type CsrfStorage struct {
	redis *redis.Client
}

func NewCsrfStorage(redis *redis.Client) *CsrfStorage {
	return &CsrfStorage{redis: redis}
}

// Issue 为用户签发新令牌，旧令牌同时失效
func (c *CsrfStorage) Issue(ctx context.Context, uid int64, expire time.Duration) (string, error) {
	token := uuid.NewString()
	if err := c.redis.Set(ctx, c.key(uid), token, expire).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Verify 校验令牌，任何失败原因对调用方都不可区分
func (c *CsrfStorage) Verify(ctx context.Context, uid int64, token string) bool {
	if token == "" {
		return false
	}
	val, err := c.redis.Get(ctx, c.key(uid)).Result()
	return err == nil && val == token
}

// Revoke 注销令牌
func (c *CsrfStorage) Revoke(ctx context.Context, uid int64) error {
	return c.redis.Del(ctx, c.key(uid)).Err()
}

func (c *CsrfStorage) key(uid int64) string {
	return fmt.Sprintf("csrf:user:%d", uid)
}
