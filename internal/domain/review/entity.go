package review

import (
	"time"
)

// Review 商品评论实体
// DDD设计说明:
// 1. Grade是闭区间[1,5]内的整数打分，任何时刻都不允许越界
// 2. ProductID引用商品（创建评论时商品必须在线）
// 3. IsActive是软删除标记：只有在线评论参与商品评分的计算
// 4. 评论没有编辑路径：只支持创建与删除（打分修改走删除+重发）
type Review struct {
	ID          uint
	UserID      uint      // 评论作者用户ID
	ProductID   uint      // 被评论商品ID
	Grade       int       // 打分（1-5的整数）
	Comment     string    // 评论内容（可空）
	CommentDate time.Time // 评论时间
	IsActive    bool      // 软删除标记
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReview 创建新评论（工厂方法）
// 打分越界在触达存储之前就被拒绝
func NewReview(userID, productID uint, grade int, comment string) (*Review, error) {
	if !ValidGrade(grade) {
		return nil, ErrInvalidGrade
	}
	now := time.Now()
	return &Review{
		UserID:      userID,
		ProductID:   productID,
		Grade:       grade,
		Comment:     comment,
		CommentDate: now,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ValidGrade 打分是否在[1,5]区间内
func ValidGrade(grade int) bool {
	return grade >= 1 && grade <= 5
}
