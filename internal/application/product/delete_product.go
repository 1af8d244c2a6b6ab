package product

import (
	"context"
	"time"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/product"
	"github.com/xiebiao/mall/internal/infrastructure/eventbus"
)

// DeleteProductUseCase 下架商品用例
// 设计说明:
// 1. 软删除：行保留，之后对所有读路径不可见，重复下架返回商品不存在
// 2. 不级联：商品的评论保持原状
// 3. 下架成功后发布product.deleted事件（旁路，失败不回滚）
type DeleteProductUseCase struct {
	productService product.Service
	cache          DetailCache
	events         eventbus.Publisher
}

// NewDeleteProductUseCase 创建下架商品用例
func NewDeleteProductUseCase(productService product.Service, cache DetailCache, events eventbus.Publisher) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productService: productService,
		cache:          cache,
		events:         events,
	}
}

// DeleteProductRequest 下架商品请求DTO
type DeleteProductRequest struct {
	Actor auth.Actor
	ID    uint
}

// Execute 执行下架商品
func (uc *DeleteProductUseCase) Execute(ctx context.Context, req DeleteProductRequest) error {
	if err := auth.Authorize(req.Actor, auth.ActionProductDelete); err != nil {
		return err
	}

	if err := uc.productService.Delete(ctx, req.Actor, req.ID); err != nil {
		return err
	}

	_ = uc.cache.Delete(ctx, req.ID)

	uc.events.Publish(eventbus.RoutingProductDeleted, eventbus.ProductDeletedEvent{
		ProductID: req.ID,
		SellerID:  req.Actor.ID,
		DeletedAt: time.Now(),
	})

	return nil
}
