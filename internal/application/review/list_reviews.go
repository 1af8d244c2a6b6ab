package review

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/product"
	"github.com/xiebiao/mall/internal/domain/review"
)

// ListProductReviewsUseCase 商品评论列表查询用例
// 匿名可访问：商品必须在线，只返回在线评论
type ListProductReviewsUseCase struct {
	reviewRepo  review.Repository
	productRepo product.Repository
}

// NewListProductReviewsUseCase 创建商品评论列表用例
func NewListProductReviewsUseCase(reviewRepo review.Repository, productRepo product.Repository) *ListProductReviewsUseCase {
	return &ListProductReviewsUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// ListProductReviewsResponse 商品评论列表响应DTO
type ListProductReviewsResponse struct {
	List []ReviewResponse `json:"list"`
}

// Execute 执行商品评论列表查询
// 商品是本次查询的目标：不存在或已下架返回商品不存在（404类）
func (uc *ListProductReviewsUseCase) Execute(ctx context.Context, productID uint) (*ListProductReviewsResponse, error) {
	if _, err := uc.productRepo.FindActiveByID(ctx, productID); err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListActiveByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	list := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		list[i] = *toReviewResponse(r)
	}

	return &ListProductReviewsResponse{List: list}, nil
}

// ListReviewsUseCase 全量评论列表查询用例
// 匿名可访问：返回所有在线评论，按评论时间倒序
type ListReviewsUseCase struct {
	reviewRepo review.Repository
}

// NewListReviewsUseCase 创建评论列表用例
func NewListReviewsUseCase(reviewRepo review.Repository) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewRepo: reviewRepo}
}

// Execute 执行评论列表查询
func (uc *ListReviewsUseCase) Execute(ctx context.Context) (*ListProductReviewsResponse, error) {
	reviews, err := uc.reviewRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		list[i] = *toReviewResponse(r)
	}

	return &ListProductReviewsResponse{List: list}, nil
}

// GetReviewUseCase 评论详情查询用例
type GetReviewUseCase struct {
	reviewRepo review.Repository
}

// NewGetReviewUseCase 创建评论详情用例
func NewGetReviewUseCase(reviewRepo review.Repository) *GetReviewUseCase {
	return &GetReviewUseCase{reviewRepo: reviewRepo}
}

// Execute 执行评论详情查询
func (uc *GetReviewUseCase) Execute(ctx context.Context, id uint) (*ReviewResponse, error) {
	r, err := uc.reviewRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReviewResponse(r), nil
}
