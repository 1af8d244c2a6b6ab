package product

import (
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在或已下线（操作目标缺失）
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "商品不存在")

	// ErrCategoryNotFound 商品引用的分类不存在或已下线（引用失效）
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeRefNotFound, "分类不存在")

	// ErrInvalidName 商品名称不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "商品名称长度应为1-200个字符")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须大于0")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")
)
