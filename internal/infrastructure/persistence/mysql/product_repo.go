package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/mall/internal/domain/product"
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// productRepository 商品仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/product/repository.go定义的接口
// 2. 所有查询套scopeActive（软删除统一过滤）
// 3. LockActiveByID/UpdateRating通过getDB(ctx)参与事务：
//    评分重算必须与评论写入同事务、且在商品行锁保护下进行
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

// Create 创建商品
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := &ProductModel{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		SellerID:    p.SellerID,
		Rating:      p.Rating,
		IsActive:    p.IsActive,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建商品失败")
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt

	return nil
}

// FindActiveByID 根据ID查找在线商品
func (r *productRepository) FindActiveByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).Scopes(scopeActive).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "查询商品失败")
	}

	return toProductEntity(&model), nil
}

// LockActiveByID 悲观锁查询在线商品
// SELECT ... FOR UPDATE锁定商品行；必须在TxManager的事务内调用
// 同一商品上并发的评论创建/删除在这里排队，评分重算因此串行化
func (r *productRepository) LockActiveByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(scopeActive).
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "锁定商品失败")
	}

	return toProductEntity(&model), nil
}

// ListActive 分页查询在线商品
func (r *productRepository) ListActive(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	var models []ProductModel
	var total int64

	query := getDB(ctx, r.db).Model(&ProductModel{}).Scopes(scopeActive)

	// 关键词搜索（匹配名称、描述）
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", keyword, keyword)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询商品总数失败")
	}

	switch params.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "rating_desc":
		query = query.Order("rating DESC")
	case "created_at_desc":
		query = query.Order("created_at DESC")
	default:
		query = query.Order("created_at DESC")
	}

	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询商品列表失败")
	}

	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}

	return products, total, nil
}

// ListActiveByCategory 查询分类下的在线商品
func (r *productRepository) ListActiveByCategory(ctx context.Context, categoryID uint) ([]*product.Product, error) {
	var models []ProductModel
	err := getDB(ctx, r.db).
		Scopes(scopeActive).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询分类商品失败")
	}

	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}
	return products, nil
}

// Update 更新商品信息
// SellerID与Rating不在更新列中：归属不可变，评分只走UpdateRating
func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	result := getDB(ctx, r.db).Model(&ProductModel{}).
		Scopes(scopeActive).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"stock":       p.Stock,
			"image_url":   p.ImageURL,
			"category_id": p.CategoryID,
			"updated_at":  p.UpdatedAt,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新商品失败")
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// UpdateRating 写入重算后的评分
// 评分派生值的唯一写入口；调用方保证处于锁定该商品行的事务内
func (r *productRepository) UpdateRating(ctx context.Context, id uint, rating float64) error {
	result := getDB(ctx, r.db).Model(&ProductModel{}).
		Scopes(scopeActive).
		Where("id = ?", id).
		Update("rating", rating)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新评分失败")
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// Deactivate 软删除商品
func (r *productRepository) Deactivate(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Model(&ProductModel{}).
		Scopes(scopeActive).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除商品失败")
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// toProductEntity GORM模型 → 领域实体
func toProductEntity(model *ProductModel) *product.Product {
	return &product.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Price:       model.Price,
		Stock:       model.Stock,
		ImageURL:    model.ImageURL,
		CategoryID:  model.CategoryID,
		SellerID:    model.SellerID,
		Rating:      model.Rating,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
