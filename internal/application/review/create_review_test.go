package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/product"
	"github.com/xiebiao/mall/internal/domain/review"
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

func activeProduct(id uint) *product.Product {
	return &product.Product{ID: id, Name: "测试商品", CategoryID: 1, SellerID: 10, IsActive: true}
}

func buyer(id uint) auth.Actor {
	return auth.Actor{ID: id, Role: auth.RoleBuyer}
}

func newCreateUC(reviewRepo *fakeReviewRepo, productRepo *fakeProductRepo, tx *fakeTx) (*CreateReviewUseCase, *fakeCache, *fakePublisher) {
	cache := &fakeCache{}
	events := &fakePublisher{}
	return NewCreateReviewUseCase(reviewRepo, productRepo, tx, cache, events), cache, events
}

// TestCreateReview_RecomputesRating 创建评论后评分是在线打分集合的平均
func TestCreateReview_RecomputesRating(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(activeProduct(1))
	tx := &fakeTx{}
	uc, cache, events := newCreateUC(reviewRepo, productRepo, tx)

	// 已有两条评论：4分、5分
	_, err := uc.Execute(context.Background(), CreateReviewRequest{
		Actor: buyer(100), ProductID: 1, Grade: 4, Comment: "不错",
	})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), CreateReviewRequest{
		Actor: buyer(101), ProductID: 1, Grade: 5, Comment: "很好",
	})
	require.NoError(t, err)

	// 新增3分评论：(4+5+3)/3 = 4.0
	resp, err := uc.Execute(context.Background(), CreateReviewRequest{
		Actor: buyer(102), ProductID: 1, Grade: 3, Comment: "一般",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Grade)

	assert.InDelta(t, 4.0, productRepo.products[1].Rating, 0.001)
	// 每次创建都在事务内完成，商品行被锁定
	assert.Equal(t, 3, tx.calls)
	assert.Equal(t, 3, productRepo.lockCalls)
	// 旁路：缓存失效与事件发布
	assert.Len(t, cache.deleted, 3)
	assert.Equal(t, []string{"review.created", "review.created", "review.created"}, events.published)
}

// TestCreateReview_InvalidGrade 越界打分在触达存储前被拒绝
func TestCreateReview_InvalidGrade(t *testing.T) {
	for _, grade := range []int{0, 6, 100, -3} {
		reviewRepo := newFakeReviewRepo()
		productRepo := newFakeProductRepo(activeProduct(1))
		tx := &fakeTx{}
		uc, _, _ := newCreateUC(reviewRepo, productRepo, tx)

		_, err := uc.Execute(context.Background(), CreateReviewRequest{
			Actor: buyer(100), ProductID: 1, Grade: grade,
		})

		require.Error(t, err, "grade=%d", grade)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
		// 拒绝先于变更：没有事务、没有写入
		assert.Equal(t, 0, tx.calls)
		assert.Equal(t, 0, reviewRepo.createCalls)
	}
}

// TestCreateReview_ProductNotFound 引用的商品不存在返回引用失效错误
func TestCreateReview_ProductNotFound(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo() // 无任何商品
	tx := &fakeTx{}
	uc, cache, events := newCreateUC(reviewRepo, productRepo, tx)

	_, err := uc.Execute(context.Background(), CreateReviewRequest{
		Actor: buyer(100), ProductID: 999, Grade: 5,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsRefNotFound(err), "期望引用失效错误，实际%v", err)
	assert.Equal(t, 0, reviewRepo.createCalls)
	assert.Empty(t, cache.deleted)
	assert.Empty(t, events.published)
}

// TestCreateReview_DeactivatedProduct 已下架商品与不存在不可区分
func TestCreateReview_DeactivatedProduct(t *testing.T) {
	p := activeProduct(1)
	p.IsActive = false
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(p)
	tx := &fakeTx{}
	uc, _, _ := newCreateUC(reviewRepo, productRepo, tx)

	_, err := uc.Execute(context.Background(), CreateReviewRequest{
		Actor: buyer(100), ProductID: 1, Grade: 5,
	})

	require.Error(t, err)
	assert.True(t, apperrors.IsRefNotFound(err))
}

// TestCreateReview_Forbidden 非买家角色被拒绝，不产生任何副作用
func TestCreateReview_Forbidden(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleSeller, auth.RoleAdmin} {
		reviewRepo := newFakeReviewRepo()
		productRepo := newFakeProductRepo(activeProduct(1))
		tx := &fakeTx{}
		uc, cache, events := newCreateUC(reviewRepo, productRepo, tx)

		_, err := uc.Execute(context.Background(), CreateReviewRequest{
			Actor: auth.Actor{ID: 1, Role: role}, ProductID: 1, Grade: 5,
		})

		require.Error(t, err, "role=%s", role)
		assert.True(t, apperrors.IsForbidden(err))
		assert.Equal(t, 0, tx.calls)
		assert.Equal(t, 0, reviewRepo.createCalls)
		assert.Empty(t, cache.deleted)
		assert.Empty(t, events.published)
	}
}

// TestCreateReview_FirstReview 首条评论：评分等于该打分
func TestCreateReview_FirstReview(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(activeProduct(1))
	tx := &fakeTx{}
	uc, _, _ := newCreateUC(reviewRepo, productRepo, tx)

	_, err := uc.Execute(context.Background(), CreateReviewRequest{
		Actor: buyer(100), ProductID: 1, Grade: 4,
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, productRepo.products[1].Rating, 0.001)
}

var _ review.Repository = (*fakeReviewRepo)(nil)
var _ product.Repository = (*fakeProductRepo)(nil)
