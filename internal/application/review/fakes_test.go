package review

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/product"
	"github.com/xiebiao/mall/internal/domain/review"
	"github.com/xiebiao/mall/pkg/metrics"
)

func init() {
	// 用例代码会记录指标，测试前完成注册
	metrics.InitMetrics()
}

// fakeTx 直接执行fn的事务替身，记录事务是否开启
type fakeTx struct {
	calls int
}

func (t *fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// fakeReviewRepo 内存评论仓储替身
type fakeReviewRepo struct {
	reviews     map[uint]*review.Review
	nextID      uint
	createCalls int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uint]*review.Review), nextID: 1}
}

func (r *fakeReviewRepo) Create(ctx context.Context, rev *review.Review) error {
	r.createCalls++
	rev.ID = r.nextID
	r.nextID++
	stored := *rev
	r.reviews[rev.ID] = &stored
	return nil
}

func (r *fakeReviewRepo) FindActiveByID(ctx context.Context, id uint) (*review.Review, error) {
	rev, ok := r.reviews[id]
	if !ok || !rev.IsActive {
		return nil, review.ErrReviewNotFound
	}
	copied := *rev
	return &copied, nil
}

func (r *fakeReviewRepo) ListActive(ctx context.Context) ([]*review.Review, error) {
	var out []*review.Review
	for _, rev := range r.reviews {
		if rev.IsActive {
			copied := *rev
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListActiveByProduct(ctx context.Context, productID uint) ([]*review.Review, error) {
	var out []*review.Review
	for _, rev := range r.reviews {
		if rev.IsActive && rev.ProductID == productID {
			copied := *rev
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ActiveGradesByProduct(ctx context.Context, productID uint, excludeID uint) ([]int, error) {
	grades := []int{}
	for _, rev := range r.reviews {
		if rev.IsActive && rev.ProductID == productID && rev.ID != excludeID {
			grades = append(grades, rev.Grade)
		}
	}
	return grades, nil
}

func (r *fakeReviewRepo) Deactivate(ctx context.Context, id uint) error {
	rev, ok := r.reviews[id]
	if !ok || !rev.IsActive {
		return review.ErrReviewNotFound
	}
	rev.IsActive = false
	return nil
}

// fakeProductRepo 内存商品仓储替身
type fakeProductRepo struct {
	products    map[uint]*product.Product
	lockCalls   int
	ratingCalls []float64
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	m := make(map[uint]*product.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindActiveByID(ctx context.Context, id uint) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok || !p.IsActive {
		return nil, product.ErrProductNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) LockActiveByID(ctx context.Context, id uint) (*product.Product, error) {
	r.lockCalls++
	return r.FindActiveByID(ctx, id)
}

func (r *fakeProductRepo) ListActive(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ListActiveByCategory(ctx context.Context, categoryID uint) ([]*product.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateRating(ctx context.Context, id uint, rating float64) error {
	p, ok := r.products[id]
	if !ok || !p.IsActive {
		return product.ErrProductNotFound
	}
	p.Rating = rating
	r.ratingCalls = append(r.ratingCalls, rating)
	return nil
}

func (r *fakeProductRepo) Deactivate(ctx context.Context, id uint) error {
	p, ok := r.products[id]
	if !ok || !p.IsActive {
		return product.ErrProductNotFound
	}
	p.IsActive = false
	return nil
}

// fakeCache 缓存替身，记录失效的商品ID
type fakeCache struct {
	deleted []uint
}

func (c *fakeCache) Delete(ctx context.Context, id uint) error {
	c.deleted = append(c.deleted, id)
	return nil
}

// fakePublisher 事件替身，记录发布的路由键
type fakePublisher struct {
	published []string
}

func (p *fakePublisher) Publish(routingKey string, event interface{}) {
	p.published = append(p.published, routingKey)
}
