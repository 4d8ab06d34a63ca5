package repository

import (
	"errors"
)

// 仓储层公共错误，service 层负责翻译成业务错误
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrNotReviewable = errors.New("report is not reviewable")
	ErrAuthorMissing = errors.New("post author profile missing")
)
