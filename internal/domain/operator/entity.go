package operator

import (
	"time"
)

// Operator 后台操作员实体(聚合根)
// 设计说明:
// 1. 操作员是登录使用管理后台的店员/管理员,与顾客(目录实体)无关
// 2. 密码只保存bcrypt哈希,不提供任何暴露明文的方法
// 3. 领域实体不挂GORM tag,映射在infrastructure层的模型上处理
type Operator struct {
	ID        uint
	Username  string
	Password  string // bcrypt哈希值
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOperator 创建操作员(工厂方法)
// hashedPassword必须是bcrypt加密后的密码
func NewOperator(username, hashedPassword, nickname string) *Operator {
	now := time.Now()
	return &Operator{
		Username:  username,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateNickname 更新昵称(领域行为)
func (o *Operator) UpdateNickname(nickname string) {
	o.Nickname = nickname
	o.UpdatedAt = time.Now()
}
