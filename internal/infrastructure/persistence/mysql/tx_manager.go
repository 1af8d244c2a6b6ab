package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务DB在context中的键（非导出类型，避免键冲突）
type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB（避免全局变量）
// 3. fn返回error时自动ROLLBACK，返回nil时自动COMMIT
//
// 评论创建/删除用它把"锁商品行→读在线打分→重算评分→写评论→写评分"
// 收进一个工作单元：中途任何一步失败整体回滚，不会出现
// 评论已写入而评分还是旧值的中间状态
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn函数内通过同一ctx调用的所有Repository操作都会落在同一事务中
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 将事务DB注入Context，Repository的getDB会优先取它
		txCtx := context.WithValue(ctx, txKey{}, tx)
		return fn(txCtx)
	})
}
