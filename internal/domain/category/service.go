package category

import (
	"context"
)

// Service 分类领域服务接口
// 设计说明:
// 1. 封装引用一致性规则：父分类引用在建立时必须指向在线分类
// 2. 不做角色校验（角色校验由auth策略在应用层入口完成）
type Service interface {
	// Create 创建分类
	// 业务规则：
	// - 名称1-100字符
	// - parentID非空时，父分类必须存在且在线
	Create(ctx context.Context, name, description string, parentID *uint) (*Category, error)

	// Update 更新分类
	// 业务规则：目标必须在线；父分类引用规则同Create；不允许自引用
	Update(ctx context.Context, id uint, name, description string, parentID *uint) (*Category, error)

	// Delete 下线分类（软删除）
	// 不级联：已有商品仍引用该分类时照常下线，商品保持在线（孤儿引用被接受）
	Delete(ctx context.Context, id uint) error

	// GetByID 查询在线分类
	GetByID(ctx context.Context, id uint) (*Category, error)

	// List 查询所有在线分类
	List(ctx context.Context) ([]*Category, error)
}

type service struct {
	repo Repository
}

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create 创建分类
func (s *service) Create(ctx context.Context, name, description string, parentID *uint) (*Category, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	// 父分类引用校验：必须指向在线分类
	// 读取与后续写入之间没有跨请求锁，父分类可能在校验后被并发下线，
	// 这里接受这个窗口（最终一致的引用完整性），不做写后复检
	if err := s.validateParent(ctx, parentID); err != nil {
		return nil, err
	}

	c := NewCategory(name, description, parentID)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Update 更新分类
func (s *service) Update(ctx context.Context, id uint, name, description string, parentID *uint) (*Category, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	// 禁止自引用；更深的环不校验（当前没有任何遍历整条链的逻辑）
	if parentID != nil && *parentID == id {
		return nil, ErrSelfParent
	}

	// 目标必须在线
	c, err := s.repo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateParent(ctx, parentID); err != nil {
		return nil, err
	}

	c.UpdateInfo(name, description, parentID)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Delete 下线分类
// 注意：父分类下线后，其子分类的ParentID会变成悬空引用——这是接受的行为，
// 引用有效性只在建立引用的那一刻校验
func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Deactivate(ctx, id)
}

// GetByID 查询在线分类
func (s *service) GetByID(ctx context.Context, id uint) (*Category, error) {
	return s.repo.FindActiveByID(ctx, id)
}

// List 查询所有在线分类
func (s *service) List(ctx context.Context) ([]*Category, error) {
	return s.repo.ListActive(ctx)
}

// validateParent 校验父分类引用
// parentID为空时始终通过（顶级分类）
func (s *service) validateParent(ctx context.Context, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	if _, err := s.repo.FindActiveByID(ctx, *parentID); err != nil {
		// 目标缺失错误转换为引用失效错误：
		// 对本次操作而言父分类不是"操作目标"，而是一条失效的引用
		return ErrParentNotFound
	}
	return nil
}

// isValidName 分类名称校验
func isValidName(name string) bool {
	return len(name) >= 1 && len(name) <= 100
}
