package product

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/product"
)

// UpdateProductUseCase 更新商品用例
type UpdateProductUseCase struct {
	productService product.Service
	cache          DetailCache
}

// NewUpdateProductUseCase 创建更新商品用例
func NewUpdateProductUseCase(productService product.Service, cache DetailCache) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productService: productService,
		cache:          cache,
	}
}

// UpdateProductRequest 更新商品请求DTO
type UpdateProductRequest struct {
	Actor       auth.Actor
	ID          uint
	Name        string
	Description string
	Price       int64
	Stock       int
	ImageURL    string
	CategoryID  uint
}

// Execute 执行更新商品
// 校验顺序：角色 → 目标在线 → 归属 → 分类引用（后三步在领域服务内）
// 归属校验失败返回无权限错误，与商品不存在严格区分
func (uc *UpdateProductUseCase) Execute(ctx context.Context, req UpdateProductRequest) (*ProductResponse, error) {
	if err := auth.Authorize(req.Actor, auth.ActionProductUpdate); err != nil {
		return nil, err
	}

	p, err := uc.productService.Update(ctx, req.Actor, req.ID, req.Name,
		req.Description, req.Price, req.Stock, req.ImageURL, req.CategoryID)
	if err != nil {
		return nil, err
	}

	// 写后失效：删除旧快照，下次读取回源
	_ = uc.cache.Delete(ctx, req.ID)

	return toProductResponse(p), nil
}
