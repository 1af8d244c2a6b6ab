package user

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/user"
)

// RegisterUseCase 用户注册用例
// 设计说明：
// 1. 角色在注册时声明（buyer/seller），admin不开放自助注册
// 2. 密码强度、邮箱格式、角色合法性由领域服务校验
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase 创建注册用例
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{
		userService: userService,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Nickname string
	Role     string // buyer或seller
}

// RegisterResponse 注册响应（不含密码字段）
type RegisterResponse struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// Execute 执行注册
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.Nickname, auth.Role(req.Role))
	if err != nil {
		return nil, err
	}

	// 领域实体 → 应用层DTO，领域模型变更不影响API契约
	return &RegisterResponse{
		ID:       u.ID,
		Email:    u.Email,
		Nickname: u.Nickname,
		Role:     string(u.Role),
	}, nil
}
