package operator

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/operator"
)

// RegisterUseCase 操作员注册用例
// 设计说明:应用层负责用例编排;当前注册只调用一个领域服务,
// 未来可能扩展审计日志、初始化权限等
type RegisterUseCase struct {
	operatorService operator.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(operatorService operator.Service) *RegisterUseCase {
	return &RegisterUseCase{
		operatorService: operatorService,
	}
}

// Execute 执行注册
// 返回应用层DTO而不是领域实体,领域模型变更不影响API契约
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	op, err := uc.operatorService.Register(ctx, req.Username, req.Password, req.Nickname)
	if err != nil {
		return nil, err
	}

	return &RegisterResponse{
		ID:       op.ID,
		Username: op.Username,
		Nickname: op.Nickname,
	}, nil
}

// =========================================
// 应用层DTO
// =========================================

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string
	Password string
	Nickname string
}

// RegisterResponse 注册响应
// 不返回密码字段
type RegisterResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}
