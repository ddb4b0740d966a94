package operator

import (
	"context"
	"time"

	"github.com/xiebiao/bookshop/internal/domain/operator"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/pkg/jwt"
)

// LoginUseCase 操作员登录用例
// 设计说明:
// 1. 验证用户名密码
// 2. 生成JWT Token对
// 3. 保存会话到Redis
type LoginUseCase struct {
	operatorService operator.Service
	jwtManager      *jwt.Manager
	sessionStore    *redis.SessionStore
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(
	operatorService operator.Service,
	jwtManager *jwt.Manager,
	sessionStore *redis.SessionStore,
) *LoginUseCase {
	return &LoginUseCase{
		operatorService: operatorService,
		jwtManager:      jwtManager,
		sessionStore:    sessionStore,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	// 1. 验证用户名密码(调用领域服务)
	op, err := uc.operatorService.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	// 2. 生成JWT Token对
	tokenPair, err := uc.jwtManager.GenerateToken(op.ID, op.Username, op.Nickname)
	if err != nil {
		return nil, err
	}

	// 3. 保存会话到Redis(有效期与Refresh Token一致)
	sessionData := map[string]interface{}{
		"operator_id": op.ID,
		"username":    op.Username,
		"nickname":    op.Nickname,
		"login_at":    time.Now().Unix(),
	}
	// 会话保存失败不影响登录
	_ = uc.sessionStore.SaveSession(ctx, op.ID, sessionData, 7*24*time.Hour)

	return &LoginResponse{
		Operator: OperatorInfo{
			ID:       op.ID,
			Username: op.Username,
			Nickname: op.Nickname,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}

// LogoutUseCase 操作员登出用例
type LogoutUseCase struct {
	sessionStore *redis.SessionStore
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(sessionStore *redis.SessionStore) *LogoutUseCase {
	return &LogoutUseCase{sessionStore: sessionStore}
}

// Execute 执行登出
func (uc *LogoutUseCase) Execute(ctx context.Context, operatorID uint, accessToken string) error {
	// 1. 删除会话
	if err := uc.sessionStore.DeleteSession(ctx, operatorID); err != nil {
		return err
	}

	// 2. Access Token加入黑名单,防止过期前继续使用
	if err := uc.sessionStore.AddToBlacklist(ctx, accessToken, 2*time.Hour); err != nil {
		return err
	}

	return nil
}

// =========================================
// 应用层DTO
// =========================================

// LoginRequest 登录请求
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	Operator     OperatorInfo `json:"operator"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"` // Access Token过期时间(秒)
}

// OperatorInfo 操作员信息
type OperatorInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
}
