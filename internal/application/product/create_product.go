package product

import (
	"context"
	"fmt"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/product"
)

// CreateProductUseCase 上架商品用例
// 设计说明:
// 1. 角色门禁在入口（仅卖家），归属自动绑定为操作者本人
// 2. 分类引用校验由领域服务完成
type CreateProductUseCase struct {
	productService product.Service
}

// NewCreateProductUseCase 创建上架商品用例
func NewCreateProductUseCase(productService product.Service) *CreateProductUseCase {
	return &CreateProductUseCase{productService: productService}
}

// CreateProductRequest 上架商品请求DTO
type CreateProductRequest struct {
	Actor       auth.Actor // 操作者(从JWT中提取)，即卖家本人
	Name        string
	Description string
	Price       int64 // 价格(分)
	Stock       int
	ImageURL    string
	CategoryID  uint
}

// ProductResponse 商品响应DTO
type ProductResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // 价格(分)
	PriceYuan   string `json:"price_yuan"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image_url"`
	CategoryID  uint   `json:"category_id"`
	SellerID    uint   `json:"seller_id"`
	Rating      string `json:"rating"` // 两位小数，无在线评论时为"0.00"
	CreatedAt   string `json:"created_at"`
}

// Execute 执行上架商品
func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := auth.Authorize(req.Actor, auth.ActionProductCreate); err != nil {
		return nil, err
	}

	// SellerID取操作者本人，不接受请求体指定归属
	p, err := uc.productService.Create(ctx, req.Name, req.Description, req.Price,
		req.Stock, req.ImageURL, req.CategoryID, req.Actor.ID)
	if err != nil {
		return nil, err
	}

	return toProductResponse(p), nil
}

// toProductResponse 领域实体 → 响应DTO
func toProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PriceYuan:   formatPrice(p.Price),
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		SellerID:    p.SellerID,
		Rating:      fmt.Sprintf("%.2f", p.Rating),
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
