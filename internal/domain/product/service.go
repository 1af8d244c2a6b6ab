package product

import (
	"context"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/domain/category"
)

// Service 商品领域服务接口
// 设计说明:
// 1. 封装跨聚合的引用一致性规则（商品→分类）与归属校验（商品→卖家）
// 2. 固定编排顺序：归属/目标校验 → 引用校验 → 写入；角色门禁由应用层在进入
//    本服务之前完成，被拒绝的请求不会触达这里
type Service interface {
	// Create 上架商品
	// 业务规则：
	// - 名称1-200字符，价格1-99999999分，库存>=0
	// - 引用的分类必须存在且在线，否则返回引用失效错误
	Create(ctx context.Context, name, description string, price int64, stock int, imageURL string, categoryID, sellerID uint) (*Product, error)

	// Update 更新商品
	// 业务规则：目标必须在线；只有归属卖家可以修改；分类引用规则同Create
	Update(ctx context.Context, actor auth.Actor, id uint, name, description string, price int64, stock int, imageURL string, categoryID uint) (*Product, error)

	// Delete 下架商品（软删除）
	// 业务规则：只有归属卖家可以下架；不级联下架其评论
	Delete(ctx context.Context, actor auth.Actor, id uint) error

	// GetByID 查询在线商品详情
	// 与原型行为一致：详情页同时要求商品所属分类仍然在线
	GetByID(ctx context.Context, id uint) (*Product, error)

	// List 分页查询在线商品
	List(ctx context.Context, params ListParams) ([]*Product, int64, error)

	// ListByCategory 查询在线分类下的在线商品
	ListByCategory(ctx context.Context, categoryID uint) ([]*Product, error)
}

type service struct {
	repo         Repository
	categoryRepo category.Repository
}

// NewService 创建商品领域服务
func NewService(repo Repository, categoryRepo category.Repository) Service {
	return &service{repo: repo, categoryRepo: categoryRepo}
}

// Create 上架商品
func (s *service) Create(ctx context.Context, name, description string, price int64, stock int, imageURL string, categoryID, sellerID uint) (*Product, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}
	if price < 1 || price > 99999999 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	// 分类引用校验：必须指向在线分类
	// 校验与写入之间存在并发下线窗口，接受（见分类服务的同类说明）
	if err := s.validateCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	p := NewProduct(name, description, price, stock, imageURL, categoryID, sellerID)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Update 更新商品
// 编排顺序固定：加载目标 → 归属校验 → 引用校验 → 写入
// 归属校验失败返回Forbidden（目标存在但无权改动），与NotFound严格区分
func (s *service) Update(ctx context.Context, actor auth.Actor, id uint, name, description string, price int64, stock int, imageURL string, categoryID uint) (*Product, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	p, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeOwner(actor, auth.ActionProductUpdate, p.SellerID); err != nil {
		return nil, err
	}

	if err := s.validateCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	if err := p.UpdateInfo(name, description, price, stock, imageURL, categoryID); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete 下架商品
func (s *service) Delete(ctx context.Context, actor auth.Actor, id uint) error {
	p, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeOwner(actor, auth.ActionProductDelete, p.SellerID); err != nil {
		return err
	}

	// 评论不级联下线：商品下架后其评论保持原状（孤儿引用被接受）
	return s.repo.Deactivate(ctx, id)
}

// GetByID 查询在线商品详情
func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 所属分类已下线的商品不对外展示详情
	if err := s.validateCategory(ctx, p.CategoryID); err != nil {
		return nil, err
	}

	return p, nil
}

// List 分页查询在线商品
func (s *service) List(ctx context.Context, params ListParams) ([]*Product, int64, error) {
	return s.repo.ListActive(ctx, params)
}

// ListByCategory 查询分类下的在线商品
func (s *service) ListByCategory(ctx context.Context, categoryID uint) ([]*Product, error) {
	if err := s.validateCategory(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.repo.ListActiveByCategory(ctx, categoryID)
}

// validateCategory 校验分类引用
func (s *service) validateCategory(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepo.FindActiveByID(ctx, categoryID); err != nil {
		return ErrCategoryNotFound
	}
	return nil
}

// isValidName 商品名称校验
func isValidName(name string) bool {
	return len(name) >= 1 && len(name) <= 200
}
