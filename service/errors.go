package service

import "errors"

var (
	ErrNotFound           = errors.New("记录不存在")
	ErrDuplicateIdentity  = errors.New("用户名或邮箱已被占用")
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrInvalidPassword    = errors.New("密码验证不正确")
	ErrForbidden          = errors.New("无权操作")
	ErrSelfFollow         = errors.New("不能关注自己")
	ErrEmptyMessage       = errors.New("消息内容不能为空")
	ErrMessageTooLong     = errors.New("消息内容超出长度限制")
)
