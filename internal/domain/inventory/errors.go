package inventory

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 库存领域错误定义
var (
	// ErrAlreadyAssigned 图书已在该门店书架上(按归一化书名判定)
	ErrAlreadyAssigned = apperrors.New(apperrors.ErrCodeAlreadyAssigned, "图书已分配到该门店")

	// ErrInvalidScope 未知的购买副作用范围配置
	ErrInvalidScope = apperrors.New(apperrors.ErrCodeInvalidValue, "无效的购买副作用范围")
)
