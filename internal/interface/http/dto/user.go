package dto

// RegisterRequest HTTP层注册请求
// 角色只开放buyer/seller，admin账号由运维预置
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"buyer@example.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"pass1234"`
	Nickname string `json:"nickname" binding:"required,min=2,max=50" example:"小明"`
	Role     string `json:"role" binding:"required,oneof=buyer seller" example:"buyer"`
}

// LoginRequest HTTP层登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"buyer@example.com"`
	Password string `json:"password" binding:"required" example:"pass1234"`
}

// UserResponse 用户响应（不包含密码）
type UserResponse struct {
	ID       uint   `json:"id" example:"1"`
	Email    string `json:"email" example:"buyer@example.com"`
	Nickname string `json:"nickname" example:"小明"`
	Role     string `json:"role" example:"buyer"`
}

// RefreshTokenRequest 刷新Token请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
