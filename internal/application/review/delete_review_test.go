package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/mall/internal/domain/auth"
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

func admin() auth.Actor {
	return auth.Actor{ID: 1, Role: auth.RoleAdmin}
}

func newDeleteUC(reviewRepo *fakeReviewRepo, productRepo *fakeProductRepo, tx *fakeTx) (*DeleteReviewUseCase, *fakeCache, *fakePublisher) {
	cache := &fakeCache{}
	events := &fakePublisher{}
	return NewDeleteReviewUseCase(reviewRepo, productRepo, tx, cache, events), cache, events
}

// seedReviews 通过创建用例灌入评论，保证评分与集合一致
func seedReviews(t *testing.T, reviewRepo *fakeReviewRepo, productRepo *fakeProductRepo, grades ...int) {
	t.Helper()
	uc, _, _ := newCreateUC(reviewRepo, productRepo, &fakeTx{})
	for i, g := range grades {
		_, err := uc.Execute(context.Background(), CreateReviewRequest{
			Actor: buyer(uint(100 + i)), ProductID: 1, Grade: g,
		})
		require.NoError(t, err)
	}
}

// TestDeleteReview_RecomputesRating 删除后评分基于剩余在线打分重算
func TestDeleteReview_RecomputesRating(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(activeProduct(1))
	seedReviews(t, reviewRepo, productRepo, 3, 4) // 评分3.5

	tx := &fakeTx{}
	uc, cache, events := newDeleteUC(reviewRepo, productRepo, tx)

	// 删除3分评论(ID=1)：剩余[4]，评分4.0
	err := uc.Execute(context.Background(), DeleteReviewRequest{Actor: admin(), ID: 1})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, productRepo.products[1].Rating, 0.001)
	assert.False(t, reviewRepo.reviews[1].IsActive)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []uint{1}, cache.deleted)
	assert.Equal(t, []string{"review.deleted"}, events.published)
}

// TestDeleteReview_LastReviewZeroesRating 最后一条评论删除后评分归零
func TestDeleteReview_LastReviewZeroesRating(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(activeProduct(1))
	seedReviews(t, reviewRepo, productRepo, 5)

	uc, _, _ := newDeleteUC(reviewRepo, productRepo, &fakeTx{})

	err := uc.Execute(context.Background(), DeleteReviewRequest{Actor: admin(), ID: 1})
	require.NoError(t, err)

	assert.InDelta(t, 0.0, productRepo.products[1].Rating, 0.001)
}

// TestDeleteReview_RepeatDeleteNotFound 重复删除返回评论不存在（删除是终态）
func TestDeleteReview_RepeatDeleteNotFound(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(activeProduct(1))
	seedReviews(t, reviewRepo, productRepo, 5)

	uc, _, _ := newDeleteUC(reviewRepo, productRepo, &fakeTx{})

	require.NoError(t, uc.Execute(context.Background(), DeleteReviewRequest{Actor: admin(), ID: 1}))

	err := uc.Execute(context.Background(), DeleteReviewRequest{Actor: admin(), ID: 1})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

// TestDeleteReview_Forbidden 非管理员被拒绝，评论保持在线
func TestDeleteReview_Forbidden(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleBuyer, auth.RoleSeller} {
		reviewRepo := newFakeReviewRepo()
		productRepo := newFakeProductRepo(activeProduct(1))
		seedReviews(t, reviewRepo, productRepo, 5)

		tx := &fakeTx{}
		uc, cache, events := newDeleteUC(reviewRepo, productRepo, tx)

		err := uc.Execute(context.Background(), DeleteReviewRequest{
			Actor: auth.Actor{ID: 2, Role: role}, ID: 1,
		})

		require.Error(t, err, "role=%s", role)
		assert.True(t, apperrors.IsForbidden(err))
		assert.True(t, reviewRepo.reviews[1].IsActive)
		assert.Equal(t, 0, tx.calls)
		assert.Empty(t, cache.deleted)
		assert.Empty(t, events.published)
	}
}

// TestDeleteReview_NotFound 不存在的评论返回404类错误
func TestDeleteReview_NotFound(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(activeProduct(1))

	uc, _, _ := newDeleteUC(reviewRepo, productRepo, &fakeTx{})

	err := uc.Execute(context.Background(), DeleteReviewRequest{Actor: admin(), ID: 999})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

// TestDeleteReview_DeactivatedProduct 商品已下架：评论照常下线，评分不再维护
func TestDeleteReview_DeactivatedProduct(t *testing.T) {
	reviewRepo := newFakeReviewRepo()
	productRepo := newFakeProductRepo(activeProduct(1))
	seedReviews(t, reviewRepo, productRepo, 5)

	// 商品下架
	productRepo.products[1].IsActive = false
	ratingBefore := productRepo.products[1].Rating

	uc, _, _ := newDeleteUC(reviewRepo, productRepo, &fakeTx{})

	err := uc.Execute(context.Background(), DeleteReviewRequest{Actor: admin(), ID: 1})
	require.NoError(t, err)

	assert.False(t, reviewRepo.reviews[1].IsActive)
	assert.Equal(t, ratingBefore, productRepo.products[1].Rating)
}
