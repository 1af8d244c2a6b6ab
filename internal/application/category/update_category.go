package category

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/category"
)

// UpdateCategoryUseCase 更新分类用例
type UpdateCategoryUseCase struct {
	categoryService category.Service
}

// NewUpdateCategoryUseCase 创建更新分类用例
func NewUpdateCategoryUseCase(categoryService category.Service) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{categoryService: categoryService}
}

// UpdateCategoryRequest 更新分类请求DTO
type UpdateCategoryRequest struct {
	Actor       auth.Actor
	ID          uint
	Name        string
	Description string
	ParentID    *uint
}

// Execute 执行更新分类
// 校验顺序：角色 → 目标在线 → 父分类引用（领域服务内完成后两步）
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, req UpdateCategoryRequest) (*CategoryResponse, error) {
	if err := auth.Authorize(req.Actor, auth.ActionCategoryUpdate); err != nil {
		return nil, err
	}

	c, err := uc.categoryService.Update(ctx, req.ID, req.Name, req.Description, req.ParentID)
	if err != nil {
		return nil, err
	}

	return toCategoryResponse(c), nil
}
