package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/operator"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// operatorRepository 操作员仓储实现(MySQL)
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository 创建操作员仓储
func NewOperatorRepository(db *gorm.DB) operator.Repository {
	return &operatorRepository{db: db}
}

// Create 创建操作员
func (r *operatorRepository) Create(ctx context.Context, op *operator.Operator) error {
	model := &OperatorModel{
		Username: op.Username,
		Password: op.Password,
		Nickname: op.Nickname,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return operator.ErrDuplicateUsername
		}
		return apperrors.Wrap(err, "创建操作员失败")
	}

	op.ID = model.ID
	op.CreatedAt = model.CreatedAt
	op.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找操作员
func (r *operatorRepository) FindByID(ctx context.Context, id uint) (*operator.Operator, error) {
	var model OperatorModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, operator.ErrOperatorNotFound
		}
		return nil, apperrors.Wrap(err, "查询操作员失败")
	}
	return toOperatorEntity(&model), nil
}

// FindByUsername 根据用户名查找操作员
func (r *operatorRepository) FindByUsername(ctx context.Context, username string) (*operator.Operator, error) {
	var model OperatorModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, operator.ErrOperatorNotFound
		}
		return nil, apperrors.Wrap(err, "查询操作员失败")
	}
	return toOperatorEntity(&model), nil
}

// Update 更新操作员信息
func (r *operatorRepository) Update(ctx context.Context, op *operator.Operator) error {
	model := &OperatorModel{
		ID:        op.ID,
		Username:  op.Username,
		Password:  op.Password,
		Nickname:  op.Nickname,
		CreatedAt: op.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新操作员失败")
	}
	op.UpdatedAt = model.UpdatedAt
	return nil
}

// toOperatorEntity GORM模型 → 领域实体
func toOperatorEntity(model *OperatorModel) *operator.Operator {
	return &operator.Operator{
		ID:        model.ID,
		Username:  model.Username,
		Password:  model.Password,
		Nickname:  model.Nickname,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
