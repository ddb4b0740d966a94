package handler

import (
	"github.com/gin-gonic/gin"

	appoperator "github.com/xiebiao/bookshop/internal/application/operator"
	"github.com/xiebiao/bookshop/internal/interface/http/dto"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/response"
)

// OperatorHandler 操作员HTTP处理器
type OperatorHandler struct {
	registerUseCase *appoperator.RegisterUseCase
	loginUseCase    *appoperator.LoginUseCase
	logoutUseCase   *appoperator.LogoutUseCase
	jwtManager      *jwt.Manager
}

// NewOperatorHandler 创建操作员处理器
func NewOperatorHandler(
	registerUseCase *appoperator.RegisterUseCase,
	loginUseCase *appoperator.LoginUseCase,
	logoutUseCase *appoperator.LogoutUseCase,
	jwtManager *jwt.Manager,
) *OperatorHandler {
	return &OperatorHandler{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		logoutUseCase:   logoutUseCase,
		jwtManager:      jwtManager,
	}
}

// Register 操作员注册
// @Summary      操作员注册
// @Tags         操作员
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      200 {object} response.Response{data=appoperator.RegisterResponse}
// @Failure      200 {object} response.Response "40009 用户名已存在 / 40900 密码强度不足"
// @Router       /api/v1/operators/register [post]
func (h *OperatorHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), appoperator.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Login 操作员登录
// @Summary      操作员登录
// @Tags         操作员
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=appoperator.LoginResponse}
// @Failure      200 {object} response.Response "40400 操作员不存在 / 40103 密码错误"
// @Router       /api/v1/operators/login [post]
func (h *OperatorHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appoperator.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Logout 操作员登出
// @Summary      操作员登出
// @Description  删除会话并将当前Token加入黑名单
// @Tags         操作员
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/operators/logout [post]
func (h *OperatorHandler) Logout(c *gin.Context) {
	operatorID := middleware.MustGetOperatorID(c)
	accessToken := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), operatorID, accessToken); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RefreshToken 刷新Access Token
// @Summary      刷新Token
// @Tags         操作员
// @Accept       json
// @Produce      json
// @Param        request body dto.RefreshTokenRequest true "Refresh Token"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "40101 Token无效 / 40102 Token过期"
// @Router       /api/v1/operators/refresh [post]
func (h *OperatorHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40901, "参数错误: "+err.Error())
		return
	}

	accessToken, err := h.jwtManager.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"access_token": accessToken})
}
