package review

import (
	"context"
	"time"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/product"
	"github.com/xiebiao/mall/internal/domain/review"
	"github.com/xiebiao/mall/internal/infrastructure/eventbus"
	apperrors "github.com/xiebiao/mall/pkg/errors"
	"github.com/xiebiao/mall/pkg/metrics"
	"github.com/xiebiao/mall/pkg/tracing"
)

// DeleteReviewUseCase 删除评论用例
// 设计说明:
// 1. 软删除：行保留，IsActive置false；重复删除返回评论不存在（删除是终态）
// 2. 评分重算与评论下线在同一事务、同一把商品行锁内完成：
//    重算读到的集合排除即将下线的这条评论
// 3. 商品已下架时只下线评论、跳过重算（评分对外不可见，无需维护）
type DeleteReviewUseCase struct {
	reviewRepo  review.Repository
	productRepo product.Repository
	txManager   Transactor
	cache       DetailCache
	events      eventbus.Publisher
}

// NewDeleteReviewUseCase 创建删除评论用例
func NewDeleteReviewUseCase(
	reviewRepo review.Repository,
	productRepo product.Repository,
	txManager Transactor,
	cache DetailCache,
	events eventbus.Publisher,
) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		txManager:   txManager,
		cache:       cache,
		events:      events,
	}
}

// DeleteReviewRequest 删除评论请求DTO
type DeleteReviewRequest struct {
	Actor auth.Actor
	ID    uint
}

// Execute 执行删除评论
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, req DeleteReviewRequest) error {
	// 角色校验（仅管理员），先于一切副作用
	if err := auth.Authorize(req.Actor, auth.ActionReviewDelete); err != nil {
		return err
	}

	ctx, span := tracing.StartSpan(ctx, "mall", "review.delete")
	defer span.End()

	start := time.Now()
	var productID uint
	var rating float64
	var recomputed bool

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 目标必须在线（已删除的评论与不存在不可区分）
		r, err := uc.reviewRepo.FindActiveByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		productID = r.ProductID

		// 锁定商品行，与并发的评论创建/删除串行化
		p, err := uc.productRepo.LockActiveByID(txCtx, r.ProductID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				// 商品已下架：评论照常下线，评分不再维护
				return uc.reviewRepo.Deactivate(txCtx, req.ID)
			}
			return err
		}

		// 重算集合排除即将下线的评论
		grades, err := uc.reviewRepo.ActiveGradesByProduct(txCtx, p.ID, req.ID)
		if err != nil {
			return err
		}

		if err := uc.reviewRepo.Deactivate(txCtx, req.ID); err != nil {
			return err
		}

		// 最后一条评论删除后评分归零（0.00是明确状态，不是null）
		rating = review.Mean(grades)
		recomputed = true
		return uc.productRepo.UpdateRating(txCtx, p.ID, rating)
	})
	if err != nil {
		return err
	}

	metrics.IncCounter(metrics.ReviewsDeletedTotal)
	if recomputed {
		metrics.ObserveHistogram(metrics.RatingRecomputeDuration, time.Since(start).Seconds())
	}

	_ = uc.cache.Delete(ctx, productID)
	uc.events.Publish(eventbus.RoutingReviewDeleted, eventbus.ReviewDeletedEvent{
		ReviewID:  req.ID,
		ProductID: productID,
		Rating:    rating,
		DeletedAt: time.Now(),
	})

	return nil
}
