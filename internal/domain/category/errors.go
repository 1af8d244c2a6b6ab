package category

import (
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// 分类领域错误定义
var (
	// ErrCategoryNotFound 分类不存在或已下线（操作目标缺失）
	ErrCategoryNotFound = apperrors.New(apperrors.ErrCodeCategoryNotFound, "分类不存在")

	// ErrParentNotFound 父分类不存在或已下线（引用失效）
	// 注意：对调用方而言"不存在"与"已下线"不可区分，统一用引用错误码
	ErrParentNotFound = apperrors.New(apperrors.ErrCodeRefNotFound, "父分类不存在")

	// ErrInvalidName 分类名称不合法
	ErrInvalidName = apperrors.New(apperrors.ErrCodeInvalidParams, "分类名称长度应为1-100个字符")

	// ErrSelfParent 分类不能以自身为父分类
	ErrSelfParent = apperrors.New(apperrors.ErrCodeInvalidParams, "分类不能以自身为父分类")
)
