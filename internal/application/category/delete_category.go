package category

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/category"
)

// DeleteCategoryUseCase 下线分类用例
// 设计说明:
// 1. 软删除：行保留，IsActive置false，之后对外表现与不存在完全一致
// 2. 不级联：分类下的商品、子分类保持在线（悬空引用被接受）
// 3. 重复删除返回分类不存在错误（下线是终态）
type DeleteCategoryUseCase struct {
	categoryService category.Service
}

// NewDeleteCategoryUseCase 创建下线分类用例
func NewDeleteCategoryUseCase(categoryService category.Service) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{categoryService: categoryService}
}

// DeleteCategoryRequest 下线分类请求DTO
type DeleteCategoryRequest struct {
	Actor auth.Actor
	ID    uint
}

// Execute 执行下线分类
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, req DeleteCategoryRequest) error {
	if err := auth.Authorize(req.Actor, auth.ActionCategoryDelete); err != nil {
		return err
	}

	return uc.categoryService.Delete(ctx, req.ID)
}
