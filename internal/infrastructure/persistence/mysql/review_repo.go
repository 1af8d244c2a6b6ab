package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/mall/internal/domain/review"
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// reviewRepository 评论仓储实现(MySQL)
// ActiveGradesByProduct是评分重算的数据源：
// 直接Pluck评分列，避免加载整行；excludeID用于删除场景下
// 把"即将失效但尚未落库"的那条评论从集合中剔除
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评论
func (r *reviewRepository) Create(ctx context.Context, rev *review.Review) error {
	model := &ReviewModel{
		UserID:      rev.UserID,
		ProductID:   rev.ProductID,
		Grade:       rev.Grade,
		Comment:     rev.Comment,
		CommentDate: rev.CommentDate,
		IsActive:    rev.IsActive,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建评论失败")
	}

	rev.ID = model.ID
	rev.CreatedAt = model.CreatedAt
	rev.UpdatedAt = model.UpdatedAt

	return nil
}

// FindActiveByID 根据ID查找有效评论
func (r *reviewRepository) FindActiveByID(ctx context.Context, id uint) (*review.Review, error) {
	var model ReviewModel
	err := getDB(ctx, r.db).Scopes(scopeActive).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	return toReviewEntity(&model), nil
}

// ListActive 查询所有有效评论
func (r *reviewRepository) ListActive(ctx context.Context) ([]*review.Review, error) {
	var models []ReviewModel
	err := getDB(ctx, r.db).
		Scopes(scopeActive).
		Order("comment_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}

	return reviews, nil
}

// ListActiveByProduct 查询商品下的有效评论
func (r *reviewRepository) ListActiveByProduct(ctx context.Context, productID uint) ([]*review.Review, error) {
	var models []ReviewModel
	err := getDB(ctx, r.db).
		Scopes(scopeActive).
		Where("product_id = ?", productID).
		Order("comment_date DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	reviews := make([]*review.Review, len(models))
	for i := range models {
		reviews[i] = toReviewEntity(&models[i])
	}

	return reviews, nil
}

// ActiveGradesByProduct 查询商品下所有有效评论的评分
// excludeID > 0 时排除指定评论（删除评论时重算用）
// 必须在持有商品行锁的事务内调用，保证读到的集合与落库时一致
func (r *reviewRepository) ActiveGradesByProduct(ctx context.Context, productID uint, excludeID uint) ([]int, error) {
	query := getDB(ctx, r.db).Model(&ReviewModel{}).
		Scopes(scopeActive).
		Where("product_id = ?", productID)

	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var grades []int
	if err := query.Pluck("grade", &grades).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询评分集合失败")
	}

	return grades, nil
}

// Deactivate 软删除评论
func (r *reviewRepository) Deactivate(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Model(&ReviewModel{}).
		Scopes(scopeActive).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除评论失败")
	}
	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:          model.ID,
		UserID:      model.UserID,
		ProductID:   model.ProductID,
		Grade:       model.Grade,
		Comment:     model.Comment,
		CommentDate: model.CommentDate,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
