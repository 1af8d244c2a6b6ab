package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/mall/internal/domain/category"
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// categoryRepository 分类仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/category/repository.go定义的接口
// 2. 所有查询套scopeActive：不存在与已下线对调用方不可区分，
//    统一返回ErrCategoryNotFound
// 3. "删除"是UPDATE is_active=0，行永不物理删除
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &categoryRepository{db: db}
}

// Create 创建分类
func (r *categoryRepository) Create(ctx context.Context, c *category.Category) error {
	model := &CategoryModel{
		Name:        c.Name,
		Description: c.Description,
		ParentID:    c.ParentID,
		IsActive:    c.IsActive,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建分类失败")
	}

	// 回填自增ID
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt

	return nil
}

// FindActiveByID 根据ID查找在线分类
func (r *categoryRepository) FindActiveByID(ctx context.Context, id uint) (*category.Category, error) {
	var model CategoryModel
	err := getDB(ctx, r.db).Scopes(scopeActive).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	return toCategoryEntity(&model), nil
}

// ListActive 查询所有在线分类
func (r *categoryRepository) ListActive(ctx context.Context) ([]*category.Category, error) {
	var models []CategoryModel
	err := getDB(ctx, r.db).Scopes(scopeActive).Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	categories := make([]*category.Category, len(models))
	for i := range models {
		categories[i] = toCategoryEntity(&models[i])
	}
	return categories, nil
}

// Update 更新分类信息
// 只更新业务字段，不触碰is_active
func (r *categoryRepository) Update(ctx context.Context, c *category.Category) error {
	result := getDB(ctx, r.db).Model(&CategoryModel{}).
		Scopes(scopeActive).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"parent_id":   c.ParentID,
			"updated_at":  c.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// Deactivate 软删除分类
// WHERE带is_active=1：已下线的行第二次删除影响0行，返回NotFound而不是静默成功
func (r *categoryRepository) Deactivate(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Model(&CategoryModel{}).
		Scopes(scopeActive).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除分类失败")
	}
	if result.RowsAffected == 0 {
		return category.ErrCategoryNotFound
	}
	return nil
}

// toCategoryEntity GORM模型 → 领域实体
func toCategoryEntity(model *CategoryModel) *category.Category {
	return &category.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		ParentID:    model.ParentID,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
