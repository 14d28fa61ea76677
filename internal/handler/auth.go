package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/algonotes/backend/internal/service"
)

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler 管理员登录
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler 创建 Handler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login 校验账号密码并返回 JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		writeError(c, err)
		return
	}
	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RegisterRoutes 注册登录路由，登录接口本身不需要认证
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	handle(router, http.MethodPost, "/login", h.Login)
}
