package review

import (
	"context"
)

// Repository 评论仓储接口（依赖倒置原则）
// 设计说明:
// 1. 所有Find/List方法只返回IsActive=true的行（软删除过滤统一收口）
// 2. ActiveGradesByProduct是评分重算的数据源：永远从存储里的在线评论集合
//    重新读取，而不是在内存里维护增量计数
// 3. Create/Deactivate/ActiveGradesByProduct都通过ctx参与事务（getDB模式），
//    评分重算与评论写入必须在同一事务内
type Repository interface {
	// Create 创建评论
	Create(ctx context.Context, r *Review) error

	// FindActiveByID 根据ID查找在线评论
	// 不存在或已删除均返回ErrReviewNotFound
	FindActiveByID(ctx context.Context, id uint) (*Review, error)

	// ListActive 查询所有在线评论
	ListActive(ctx context.Context) ([]*Review, error)

	// ListActiveByProduct 查询商品下的在线评论
	ListActiveByProduct(ctx context.Context, productID uint) ([]*Review, error)

	// ActiveGradesByProduct 读取商品当前全部在线评论的打分
	// excludeID非0时排除指定评论（用于删除评论时的重算）
	ActiveGradesByProduct(ctx context.Context, productID uint, excludeID uint) ([]int, error)

	// Deactivate 软删除：IsActive置false，行不删除
	// 目标不存在或已经删除时返回ErrReviewNotFound（重复删除不会静默成功）
	Deactivate(ctx context.Context, id uint) error
}
