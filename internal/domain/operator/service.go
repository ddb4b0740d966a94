package operator

import (
	"context"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Service 操作员领域服务
// 设计说明:
// 1. 密码加密/验证等不属于单个实体的业务逻辑放在这里
// 2. 依赖Repository接口,不依赖具体实现
type Service interface {
	// Register 注册操作员
	Register(ctx context.Context, username, password, nickname string) (*Operator, error)

	// Login 操作员登录
	Login(ctx context.Context, username, password string) (*Operator, error)

	// ValidatePassword 验证密码
	ValidatePassword(hashedPassword, plainPassword string) error
}

type service struct {
	repo Repository
}

// NewService 创建操作员服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register 注册操作员
// 业务规则:
// 1. 用户名3-32位,字母数字下划线
// 2. 密码强度校验(8-20位,包含字母和数字)
// 3. 密码bcrypt加密(cost=12)
// 4. 用户名唯一性由数据库UNIQUE索引保证,Repository转换冲突错误
func (s *service) Register(ctx context.Context, username, password, nickname string) (*Operator, error) {
	if !isValidUsername(username) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidValue, "用户名格式不正确(3-32位字母数字下划线)")
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	if len(nickname) < 2 || len(nickname) > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidValue, "昵称长度应为2-50个字符")
	}

	// bcrypt自动加盐,cost=12平衡安全性与耗时
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, apperrors.Wrap(err, "密码加密失败")
	}

	op := NewOperator(username, string(hashedPassword), nickname)
	if err := s.repo.Create(ctx, op); err != nil {
		return nil, err // Repository已转换为业务错误
	}
	return op, nil
}

// Login 操作员登录
func (s *service) Login(ctx context.Context, username, password string) (*Operator, error) {
	op, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := s.ValidatePassword(op.Password, password); err != nil {
		return nil, err
	}
	return op, nil
}

// ValidatePassword 验证明文密码与哈希值是否匹配
func (s *service) ValidatePassword(hashedPassword, plainPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	if err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			return apperrors.ErrInvalidPassword
		}
		return apperrors.Wrap(err, "密码验证失败")
	}
	return nil
}

// =========================================
// 辅助函数:业务规则校验
// =========================================

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

func isValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// validatePasswordStrength 密码强度校验:8-20位,必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return ErrWeakPassword
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
