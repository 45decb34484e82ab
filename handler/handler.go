package handler

import (
	"errors"
	"net/http"

	"Warble/pkg/response"
	"Warble/service"
)

// bizError 业务错误到响应码的统一映射，存储层错误不外漏
func bizError(err error) *response.BizError {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateIdentity):
		return response.NewError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return response.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrSelfFollow):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrMessageTooLong):
		return response.NewError(http.StatusBadRequest, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}
