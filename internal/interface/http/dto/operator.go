package dto

// RegisterRequest HTTP操作员注册请求
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=32" example:"clerk01"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"passw0rd123"`
	Nickname string `json:"nickname" binding:"required,min=2,max=50" example:"小王"`
}

// LoginRequest HTTP操作员登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"clerk01"`
	Password string `json:"password" binding:"required" example:"passw0rd123"`
}

// RefreshTokenRequest HTTP刷新Token请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
