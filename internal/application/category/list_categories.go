package category

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/category"
)

// ListCategoriesUseCase 分类列表查询用例
// 匿名可访问：只返回在线分类，已下线分类对读路径不可见
type ListCategoriesUseCase struct {
	categoryService category.Service
}

// NewListCategoriesUseCase 创建分类列表用例
func NewListCategoriesUseCase(categoryService category.Service) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{categoryService: categoryService}
}

// ListCategoriesResponse 分类列表响应DTO
type ListCategoriesResponse struct {
	List []CategoryResponse `json:"list"`
}

// Execute 执行分类列表查询
func (uc *ListCategoriesUseCase) Execute(ctx context.Context) (*ListCategoriesResponse, error) {
	categories, err := uc.categoryService.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = *toCategoryResponse(c)
	}

	return &ListCategoriesResponse{List: list}, nil
}

// GetCategoryUseCase 分类详情查询用例
type GetCategoryUseCase struct {
	categoryService category.Service
}

// NewGetCategoryUseCase 创建分类详情用例
func NewGetCategoryUseCase(categoryService category.Service) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryService: categoryService}
}

// Execute 执行分类详情查询
func (uc *GetCategoryUseCase) Execute(ctx context.Context, id uint) (*CategoryResponse, error) {
	c, err := uc.categoryService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toCategoryResponse(c), nil
}
