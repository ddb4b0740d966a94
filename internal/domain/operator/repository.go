package operator

import (
	"context"
)

// Repository 操作员仓储接口
// 接口定义在domain层,具体实现在infrastructure/persistence/mysql层,
// domain层不依赖任何外部框架,便于单元测试Mock
type Repository interface {
	// Create 创建操作员
	// 用户名已存在时返回ErrDuplicateUsername
	Create(ctx context.Context, op *Operator) error

	// FindByID 根据ID查找操作员
	// 不存在时返回ErrOperatorNotFound
	FindByID(ctx context.Context, id uint) (*Operator, error)

	// FindByUsername 根据用户名查找操作员
	// 不存在时返回ErrOperatorNotFound
	FindByUsername(ctx context.Context, username string) (*Operator, error)

	// Update 更新操作员信息
	Update(ctx context.Context, op *Operator) error
}
