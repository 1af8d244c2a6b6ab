package product

import (
	"context"
	"fmt"

	"github.com/xiebiao/mall/internal/domain/product"
)

// ListProductsUseCase 商品列表查询用例
// 设计说明:
// 1. 支持分页、关键词搜索、排序
// 2. 列表项不返回description（减少数据传输量）
// 3. 只返回在线商品
type ListProductsUseCase struct {
	productService product.Service
}

// NewListProductsUseCase 创建商品列表用例
func NewListProductsUseCase(productService product.Service) *ListProductsUseCase {
	return &ListProductsUseCase{productService: productService}
}

// ListProductsRequest 商品列表请求DTO
type ListProductsRequest struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(匹配名称、描述)
	SortBy   string // 排序方式(price_asc, price_desc, rating_desc, created_at_desc)
}

// ProductListItem 商品列表项DTO(不含description)
type ProductListItem struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	PriceYuan  string `json:"price_yuan"`
	Stock      int    `json:"stock"`
	ImageURL   string `json:"image_url"`
	CategoryID uint   `json:"category_id"`
	Rating     string `json:"rating"`
	CreatedAt  string `json:"created_at"`
}

// ListProductsResponse 商品列表响应DTO
type ListProductsResponse struct {
	List       []ProductListItem `json:"list"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// Execute 执行商品列表查询
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	// 参数默认值与范围限制
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	params := product.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
		SortBy:   req.SortBy,
	}

	products, total, err := uc.productService.List(ctx, params)
	if err != nil {
		return nil, err
	}

	list := make([]ProductListItem, len(products))
	for i, p := range products {
		list[i] = toProductListItem(p)
	}

	totalPages := int(total) / req.PageSize
	if int(total)%req.PageSize != 0 {
		totalPages++
	}

	return &ListProductsResponse{
		List:       list,
		Total:      total,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: totalPages,
	}, nil
}

// ListCategoryProductsUseCase 分类商品查询用例
// 分类必须在线，否则返回分类引用失效错误
type ListCategoryProductsUseCase struct {
	productService product.Service
}

// NewListCategoryProductsUseCase 创建分类商品用例
func NewListCategoryProductsUseCase(productService product.Service) *ListCategoryProductsUseCase {
	return &ListCategoryProductsUseCase{productService: productService}
}

// Execute 执行分类商品查询
func (uc *ListCategoryProductsUseCase) Execute(ctx context.Context, categoryID uint) ([]ProductListItem, error) {
	products, err := uc.productService.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	list := make([]ProductListItem, len(products))
	for i, p := range products {
		list[i] = toProductListItem(p)
	}

	return list, nil
}

// toProductListItem 领域实体 → 列表项DTO
func toProductListItem(p *product.Product) ProductListItem {
	return ProductListItem{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		PriceYuan:  formatPrice(p.Price),
		Stock:      p.Stock,
		ImageURL:   p.ImageURL,
		CategoryID: p.CategoryID,
		Rating:     fmt.Sprintf("%.2f", p.Rating),
		CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
