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

// Transactor 事务管理接口
// 由MySQL的TxManager实现；fn内通过ctx取事务连接
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DetailCache 商品详情缓存接口（评分变化后失效用）
type DetailCache interface {
	Delete(ctx context.Context, id uint) error
}

// CreateReviewUseCase 创建评论用例
// 这是整个项目最核心的用例之一，涉及事务、行锁、派生值重算
//
// 核心问题：评分错乱
// 场景：同一商品上两条评论并发创建
// 错误实现：
//  1. 读商品当前评分和评论数
//  2. 在内存里算新平均值
//  3. 写回评分
//     两个请求都基于旧快照计算，后写的覆盖先写的，评分从此偏离真实集合
//
// 正确实现：行锁+权威集合重算
//  1. SELECT FOR UPDATE 锁定商品行（并发评论在此排队）
//  2. 从存储读取当前全部在线打分
//  3. 写入新评论
//  4. 评分 = 含新打分的集合平均，写回商品
//  5. COMMIT释放锁
type CreateReviewUseCase struct {
	reviewRepo  review.Repository
	productRepo product.Repository
	txManager   Transactor
	cache       DetailCache
	events      eventbus.Publisher
}

// NewCreateReviewUseCase 创建评论用例
func NewCreateReviewUseCase(
	reviewRepo review.Repository,
	productRepo product.Repository,
	txManager Transactor,
	cache DetailCache,
	events eventbus.Publisher,
) *CreateReviewUseCase {
	return &CreateReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		txManager:   txManager,
		cache:       cache,
		events:      events,
	}
}

// CreateReviewRequest 创建评论请求DTO
type CreateReviewRequest struct {
	Actor     auth.Actor // 操作者(从JWT中提取)，即买家本人
	ProductID uint
	Grade     int // 打分(1-5)
	Comment   string
}

// ReviewResponse 评论响应DTO
type ReviewResponse struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	ProductID   uint   `json:"product_id"`
	Grade       int    `json:"grade"`
	Comment     string `json:"comment"`
	CommentDate string `json:"comment_date"`
}

// Execute 执行创建评论
// 校验顺序：角色 → 打分/内容 → 商品引用（锁内）→ 写入+重算
// 任何一步失败都不产生副作用：拒绝先于变更
func (uc *CreateReviewUseCase) Execute(ctx context.Context, req CreateReviewRequest) (*ReviewResponse, error) {
	// 1. 角色校验（仅买家）
	if err := auth.Authorize(req.Actor, auth.ActionReviewCreate); err != nil {
		metrics.IncCounterVec(metrics.ReviewsRejectedTotal,
			map[string]string{"reason": "forbidden"})
		return nil, err
	}

	// 2. 参数校验：越界打分在触达存储前拒绝
	newReview, err := review.NewReview(req.Actor.ID, req.ProductID, req.Grade, req.Comment)
	if err != nil {
		metrics.IncCounterVec(metrics.ReviewsRejectedTotal,
			map[string]string{"reason": "invalid_params"})
		return nil, err
	}

	// 3. 事务内：锁定商品 → 读权威打分集合 → 写评论 → 重算评分
	ctx, span := tracing.StartSpan(ctx, "mall", "review.create")
	defer span.End()

	start := time.Now()
	var rating float64
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 行锁串行化同一商品上的并发评论创建/删除
		p, err := uc.productRepo.LockActiveByID(txCtx, req.ProductID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				// 商品对本操作是引用而非目标：转换为引用失效错误
				metrics.IncCounterVec(metrics.ReviewsRejectedTotal,
					map[string]string{"reason": "product_not_found"})
				return review.ErrProductNotFound
			}
			return err
		}

		// 存量在线打分（不含本条）
		grades, err := uc.reviewRepo.ActiveGradesByProduct(txCtx, p.ID, 0)
		if err != nil {
			return err
		}

		if err := uc.reviewRepo.Create(txCtx, newReview); err != nil {
			return err
		}

		// 评分 = 在线打分集合（含新打分）的算术平均
		rating = review.MeanWith(grades, newReview.Grade)
		return uc.productRepo.UpdateRating(txCtx, p.ID, rating)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.ReviewsCreatedTotal)
	metrics.ObserveHistogram(metrics.RatingRecomputeDuration, time.Since(start).Seconds())

	// 4. 事务提交后的旁路：缓存失效、事件发布
	_ = uc.cache.Delete(ctx, req.ProductID)
	uc.events.Publish(eventbus.RoutingReviewCreated, eventbus.ReviewCreatedEvent{
		ReviewID:  newReview.ID,
		ProductID: newReview.ProductID,
		UserID:    newReview.UserID,
		Grade:     newReview.Grade,
		Rating:    rating,
		CreatedAt: newReview.CreatedAt,
	})

	return toReviewResponse(newReview), nil
}

// toReviewResponse 领域实体 → 响应DTO
func toReviewResponse(r *review.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		ProductID:   r.ProductID,
		Grade:       r.Grade,
		Comment:     r.Comment,
		CommentDate: r.CommentDate.Format("2006-01-02 15:04:05"),
	}
}
