package product

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/product"
)

// DetailCache 商品详情缓存接口
// 由Redis实现；缓存层的任何故障都表现为未命中，不向上传播
type DetailCache interface {
	Get(ctx context.Context, id uint) (*product.Product, bool)
	Set(ctx context.Context, p *product.Product)
	Delete(ctx context.Context, id uint) error
}

// GetProductUseCase 商品详情查询用例
// 设计说明:
// 1. Cache-Aside：先查缓存，未命中回源数据库再回填
// 2. 缓存的是领域实体快照；评分变化（评论增删）和商品变更都会删除缓存Key
type GetProductUseCase struct {
	productService product.Service
	cache          DetailCache
}

// NewGetProductUseCase 创建商品详情用例
func NewGetProductUseCase(productService product.Service, cache DetailCache) *GetProductUseCase {
	return &GetProductUseCase{
		productService: productService,
		cache:          cache,
	}
}

// Execute 执行商品详情查询
func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*ProductResponse, error) {
	if p, ok := uc.cache.Get(ctx, id); ok {
		return toProductResponse(p), nil
	}

	p, err := uc.productService.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, p)
	return toProductResponse(p), nil
}
