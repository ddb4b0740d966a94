package catalog

import (
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 目录领域错误定义
var (
	// 资源不存在
	ErrBookNotFound     = apperrors.New(apperrors.ErrCodeNotFound, "图书不存在")
	ErrAuthorNotFound   = apperrors.New(apperrors.ErrCodeNotFound, "作者不存在")
	ErrGenreNotFound    = apperrors.New(apperrors.ErrCodeNotFound, "分类不存在")
	ErrCustomerNotFound = apperrors.New(apperrors.ErrCodeNotFound, "顾客不存在")
	ErrStoreNotFound    = apperrors.New(apperrors.ErrCodeNotFound, "门店不存在")

	// 名称冲突(插入拒绝,不覆盖已有实体)
	ErrDuplicateTitle    = apperrors.New(apperrors.ErrCodeDuplicateKey, "同名图书已存在")
	ErrDuplicateAuthor   = apperrors.New(apperrors.ErrCodeDuplicateKey, "同名作者已存在")
	ErrDuplicateGenre    = apperrors.New(apperrors.ErrCodeDuplicateKey, "同名分类已存在")
	ErrDuplicateCustomer = apperrors.New(apperrors.ErrCodeDuplicateKey, "同名顾客已存在")
	ErrDuplicateStore    = apperrors.New(apperrors.ErrCodeDuplicateKey, "同名门店已存在")

	// 参数错误
	ErrEmptyName    = apperrors.New(apperrors.ErrCodeInvalidValue, "名称不能为空")
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidValue, "价格不能为负数")
)
