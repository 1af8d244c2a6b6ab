package review

import (
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// 评论领域错误定义
var (
	// ErrReviewNotFound 评论不存在或已删除（操作目标缺失）
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "评论不存在")

	// ErrProductNotFound 评论引用的商品不存在或已下架（引用失效）
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeRefNotFound, "商品不存在")

	// ErrInvalidGrade 打分越界
	ErrInvalidGrade = apperrors.New(apperrors.ErrCodeInvalidParams, "打分必须是1-5的整数")

	// ErrCommentTooLong 评论内容过长
	ErrCommentTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "评论内容不能超过2000个字符")
)
