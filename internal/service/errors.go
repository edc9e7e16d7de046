package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrCustomerNotFound    = errors.New("客户不存在")
	ErrUpstreamUnavailable = errors.New("上游发布平台暂不可用")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrCustomerNotFound:    NotFound,
	ErrUpstreamUnavailable: BadGateway,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
