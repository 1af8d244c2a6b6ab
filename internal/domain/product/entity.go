package product

import (
	"time"
)

// Product 商品实体（聚合根）
// DDD设计说明:
// 1. 价格使用int64存储"分"为单位（避免浮点数精度问题）
// 2. CategoryID引用分类（建立引用时分类必须在线）
// 3. SellerID是商品归属，创建时写入，之后不可变更
// 4. Rating是派生值：当前在线评论打分的算术平均，只由评论的创建/删除驱动重算，
//    任何调用方都不能直接设置
type Product struct {
	ID          uint
	Name        string  // 商品名称
	Description string  // 商品描述
	Price       int64   // 价格（单位:分，1元=100分）
	Stock       int     // 库存数量
	ImageURL    string  // 商品图片URL
	CategoryID  uint    // 所属分类ID
	SellerID    uint    // 卖家用户ID（创建后不可变）
	Rating      float64 // 评分（派生值，无在线评论时为0.00）
	IsActive    bool    // 软删除标记
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct 创建新商品（工厂方法）
// 调用方需先通过Service校验分类引用与价格/库存范围
func NewProduct(name, description string, price int64, stock int, imageURL string, categoryID, sellerID uint) *Product {
	now := time.Now()
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
		ImageURL:    imageURL,
		CategoryID:  categoryID,
		SellerID:    sellerID,
		Rating:      0,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新商品信息（领域行为）
// SellerID与Rating不在可更新范围内
func (p *Product) UpdateInfo(name, description string, price int64, stock int, imageURL string, categoryID uint) error {
	if price < 1 || price > 99999999 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.Stock = stock
	p.ImageURL = imageURL
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	return nil
}

// IsOwnedBy 检查商品是否属于指定卖家
func (p *Product) IsOwnedBy(sellerID uint) bool {
	return p.SellerID == sellerID
}
