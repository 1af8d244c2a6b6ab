package dto

import "fmt"

// CreateProductRequest HTTP上架商品请求
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200" example:"机械键盘"`
	Description string `json:"description" binding:"max=5000" example:"87键茶轴机械键盘"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"29900"` // 价格(分)
	Stock       int    `json:"stock" binding:"min=0" example:"50"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=500" example:"https://example.com/kb.jpg"`
	CategoryID  uint   `json:"category_id" binding:"required,min=1" example:"1"`
}

// UpdateProductRequest HTTP更新商品请求
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200" example:"机械键盘"`
	Description string `json:"description" binding:"max=5000" example:"87键茶轴机械键盘"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"27900"`
	Stock       int    `json:"stock" binding:"min=0" example:"30"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=500" example:"https://example.com/kb.jpg"`
	CategoryID  uint   `json:"category_id" binding:"required,min=1" example:"1"`
}

// ProductResponse HTTP商品详情响应
type ProductResponse struct {
	ID          uint   `json:"id" example:"1"`
	Name        string `json:"name" example:"机械键盘"`
	Description string `json:"description" example:"87键茶轴机械键盘"`
	Price       int64  `json:"price" example:"29900"`
	PriceYuan   string `json:"price_yuan" example:"299.00"`
	Stock       int    `json:"stock" example:"50"`
	ImageURL    string `json:"image_url" example:"https://example.com/kb.jpg"`
	CategoryID  uint   `json:"category_id" example:"1"`
	SellerID    uint   `json:"seller_id" example:"2"`
	Rating      string `json:"rating" example:"4.50"` // 在线评论打分均值，无评论时"0.00"
	CreatedAt   string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// ProductListItem HTTP商品列表项（不含description）
type ProductListItem struct {
	ID         uint   `json:"id" example:"1"`
	Name       string `json:"name" example:"机械键盘"`
	Price      int64  `json:"price" example:"29900"`
	PriceYuan  string `json:"price_yuan" example:"299.00"`
	Stock      int    `json:"stock" example:"50"`
	ImageURL   string `json:"image_url" example:"https://example.com/kb.jpg"`
	CategoryID uint   `json:"category_id" example:"1"`
	Rating     string `json:"rating" example:"4.50"`
	CreatedAt  string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// ListProductsRequest HTTP商品列表请求
type ListProductsRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	Keyword  string `form:"keyword" binding:"omitempty,max=100" example:"键盘"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc rating_desc created_at_desc" example:"created_at_desc"`
}

// FormatPriceYuan 格式化价格(分→元)
func FormatPriceYuan(priceFen int64) string {
	return fmt.Sprintf("%.2f", float64(priceFen)/100.0)
}
