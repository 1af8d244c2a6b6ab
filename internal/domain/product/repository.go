package product

import (
	"context"
)

// Repository 商品仓储接口（依赖倒置原则）
// 设计说明:
// 1. 所有Find/List/Lock方法只返回IsActive=true的行（软删除过滤统一收口）
// 2. LockActiveByID与UpdateRating配合TxManager，在同一事务内完成
//    "锁行→重算评分→写回"，防止并发评论互相覆盖评分
type Repository interface {
	// Create 创建商品
	Create(ctx context.Context, p *Product) error

	// FindActiveByID 根据ID查找在线商品
	// 不存在或已下线均返回ErrProductNotFound
	FindActiveByID(ctx context.Context, id uint) (*Product, error)

	// LockActiveByID 悲观锁查询在线商品（SELECT FOR UPDATE）
	// 必须在事务内调用；用于评论创建/删除时串行化同一商品的评分重算
	LockActiveByID(ctx context.Context, id uint) (*Product, error)

	// ListActive 分页查询在线商品
	ListActive(ctx context.Context, params ListParams) ([]*Product, int64, error)

	// ListActiveByCategory 查询分类下的在线商品
	ListActiveByCategory(ctx context.Context, categoryID uint) ([]*Product, error)

	// Update 更新商品信息（不触碰IsActive与Rating）
	Update(ctx context.Context, p *Product) error

	// UpdateRating 写入重算后的评分（派生值的唯一写入口）
	UpdateRating(ctx context.Context, id uint, rating float64) error

	// Deactivate 软删除：IsActive置false，行不删除
	// 目标不存在或已经下线时返回ErrProductNotFound（重复删除不会静默成功）
	Deactivate(ctx context.Context, id uint) error
}

// ListParams 商品列表查询参数
type ListParams struct {
	Page     int    // 页码（从1开始）
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词（匹配名称、描述）
	SortBy   string // 排序字段（price_asc, price_desc, rating_desc, created_at_desc）
}
