package category

import (
	"time"
)

// Category 商品分类实体（聚合根）
// DDD设计说明:
// 1. 分类树通过ParentID弱引用自身构成（仅存ID，不是持有子分类的指针）
// 2. ParentID可为空：空表示顶级分类
// 3. IsActive是软删除标记：删除分类只是把它置为false，行永远保留
//    之后所有正常读路径都必须过滤IsActive=true（由仓储层统一保证）
type Category struct {
	ID          uint
	Name        string // 分类名称
	Description string // 分类描述
	ParentID    *uint  // 父分类ID（可空，弱引用）
	IsActive    bool   // 软删除标记
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory 创建新分类（工厂方法）
// 调用方需先通过Service校验父分类引用的有效性
func NewCategory(name, description string, parentID *uint) *Category {
	now := time.Now()
	return &Category{
		Name:        name,
		Description: description,
		ParentID:    parentID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdateInfo 更新分类基本信息（领域行为）
func (c *Category) UpdateInfo(name, description string, parentID *uint) {
	c.Name = name
	c.Description = description
	c.ParentID = parentID
	c.UpdatedAt = time.Now()
}
