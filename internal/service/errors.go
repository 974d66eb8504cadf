package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
	BadGateway          = 502
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrWindowInvalid       = errors.New("日期窗口无效")
	ErrProviderUnavailable = errors.New("上游数据源不可用")
	ErrProviderData        = errors.New("上游数据格式异常")
	ErrStorageUnavailable  = errors.New("存储服务不可用")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrWindowInvalid:       BadRequest,
	ErrProviderUnavailable: BadGateway,
	ErrProviderData:        BadGateway,
	ErrStorageUnavailable:  InternalServerError,
	UnExpectedError:        InternalServerError,
}
