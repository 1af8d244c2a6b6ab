package category

import (
	"context"
)

// Repository 分类仓储接口（依赖倒置原则）
// 设计说明:
// 1. 由domain层定义接口，infrastructure层实现
// 2. 所有Find/List方法只返回IsActive=true的行（软删除过滤在仓储层统一收口，
//    调用方写不出漏掉过滤条件的查询）
// 3. 便于Mock测试，不依赖具体数据库实现
type Repository interface {
	// Create 创建分类
	Create(ctx context.Context, c *Category) error

	// FindActiveByID 根据ID查找在线分类
	// 不存在或已下线均返回ErrCategoryNotFound（两者对调用方不可区分）
	FindActiveByID(ctx context.Context, id uint) (*Category, error)

	// ListActive 查询所有在线分类
	ListActive(ctx context.Context) ([]*Category, error)

	// Update 更新分类信息（不触碰IsActive）
	Update(ctx context.Context, c *Category) error

	// Deactivate 软删除：IsActive置false，行不删除
	// 目标不存在或已经下线时返回ErrCategoryNotFound（重复删除不会静默成功）
	Deactivate(ctx context.Context, id uint) error
}
