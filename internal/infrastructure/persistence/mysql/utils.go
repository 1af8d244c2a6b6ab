package mysql

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// getDB 从context获取事务DB，没有则使用默认DB
// 所有Repository的读写都经过这里，保证同一事务内的操作共用连接
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}

// scopeActive 在线行过滤
// 软删除的统一收口：所有正常读路径（查详情、列表、锁行、更新目标定位）
// 都必须套这个scope，调用方写不出漏掉is_active过滤的查询
func scopeActive(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// isDuplicateError 判断是否为MySQL唯一索引冲突错误
// MySQL错误码:
// - 1062: Duplicate entry 'xxx' for key 'yyy'
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	// GORM v2的错误判断
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 兼容检查:错误信息包含"Duplicate entry"
	return strings.Contains(err.Error(), "Duplicate entry")
}
