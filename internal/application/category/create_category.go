package category

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/category"
)

// CreateCategoryUseCase 创建分类用例
// 设计说明:
// 1. 角色门禁在用例入口：被拒绝的请求不触达领域服务，更不触达存储
// 2. 引用一致性（父分类必须在线）由领域服务保证
type CreateCategoryUseCase struct {
	categoryService category.Service
}

// NewCreateCategoryUseCase 创建分类用例
func NewCreateCategoryUseCase(categoryService category.Service) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryService: categoryService}
}

// CreateCategoryRequest 创建分类请求DTO
type CreateCategoryRequest struct {
	Actor       auth.Actor // 操作者(从JWT中提取)
	Name        string
	Description string
	ParentID    *uint // 顶级分类为nil
}

// CategoryResponse 分类响应DTO
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parent_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// Execute 执行创建分类
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	// 角色校验先于一切副作用
	if err := auth.Authorize(req.Actor, auth.ActionCategoryCreate); err != nil {
		return nil, err
	}

	c, err := uc.categoryService.Create(ctx, req.Name, req.Description, req.ParentID)
	if err != nil {
		return nil, err
	}

	return toCategoryResponse(c), nil
}

// toCategoryResponse 领域实体 → 响应DTO
func toCategoryResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		CreatedAt:   c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
