package operator

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 操作员领域错误定义
var (
	// ErrOperatorNotFound 操作员不存在
	ErrOperatorNotFound = apperrors.New(apperrors.ErrCodeNotFound, "操作员不存在")

	// ErrDuplicateUsername 用户名已被占用
	ErrDuplicateUsername = apperrors.New(apperrors.ErrCodeDuplicateKey, "用户名已存在")

	// ErrWeakPassword 密码强度不足
	ErrWeakPassword = apperrors.New(apperrors.ErrCodeInvalidValue, "密码强度不足(需8-20位且包含字母和数字)")
)
