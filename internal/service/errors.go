package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrMediaInvalid      = errors.New("媒体链接不合法")
	ErrProfileNotFound   = errors.New("用户档案不存在")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrTeamNotFound      = errors.New("球队不存在")
	ErrMatchNotFound     = errors.New("比赛不存在")
	ErrReportNotFound    = errors.New("举报不存在")
	ErrTemplateNotFound  = errors.New("模板不存在")
	ErrAccountRestricted = errors.New("账号受限，无法执行该操作")
	ErrReportDuplicate   = errors.New("请勿重复举报")
	ErrReportReviewed    = errors.New("举报已有人处理")
	ErrRateLimited       = errors.New("操作过于频繁，请稍后再试")
	ErrCaptionOverflow   = errors.New("文案数量超过模板槽位")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrMediaInvalid:      BadRequest,
	ErrProfileNotFound:   NotFound,
	ErrPostNotFound:      NotFound,
	ErrTeamNotFound:      NotFound,
	ErrMatchNotFound:     NotFound,
	ErrReportNotFound:    NotFound,
	ErrTemplateNotFound:  NotFound,
	ErrAccountRestricted: Forbidden,
	ErrReportDuplicate:   Conflict,
	ErrReportReviewed:    Conflict,
	ErrRateLimited:       TooManyRequests,
	ErrCaptionOverflow:   BadRequest,
	UnauthorizedError:    Forbidden,
	UnExpectedError:      InternalServerError,
}
