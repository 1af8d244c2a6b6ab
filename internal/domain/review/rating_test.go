package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMean 评分计算：在线打分集合的算术平均
func TestMean(t *testing.T) {
	cases := []struct {
		name   string
		grades []int
		want   float64
	}{
		{"空集合评分为0.00", nil, 0},
		{"单条评论", []int{4}, 4.0},
		{"整除", []int{4, 5, 3}, 4.0},
		{"非整除", []int{3, 4}, 3.5},
		{"删除5分后剩[3,4]", []int{3, 4}, 3.5},
		{"全1分", []int{1, 1, 1}, 1.0},
		{"全5分", []int{5, 5, 5, 5}, 5.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Mean(tc.grades), 1e-9)
		})
	}
}

// TestMeanWith 评论创建时的评分：(sum(已有) + 新打分) / (n + 1)
func TestMeanWith(t *testing.T) {
	// 已有[4,5]，新增3 → (4+5+3)/3 = 4.0
	assert.InDelta(t, 4.0, MeanWith([]int{4, 5}, 3), 1e-9)

	// 第一条评论：已有为空 → 新打分本身
	assert.InDelta(t, 5.0, MeanWith(nil, 5), 1e-9)

	// 结果不要求落在整数上
	assert.InDelta(t, 4.5, MeanWith([]int{4}, 5), 1e-9)

	// MeanWith不修改传入的切片
	existing := []int{4, 5}
	_ = MeanWith(existing, 3)
	assert.Equal(t, []int{4, 5}, existing)
}

// TestValidGrade 打分区间[1,5]
func TestValidGrade(t *testing.T) {
	assert.False(t, ValidGrade(0))
	assert.True(t, ValidGrade(1))
	assert.True(t, ValidGrade(5))
	assert.False(t, ValidGrade(6))
	assert.False(t, ValidGrade(-1))
}

// TestNewReview_GradeValidation 越界打分在工厂方法处即被拒绝
func TestNewReview_GradeValidation(t *testing.T) {
	for _, grade := range []int{0, 6, 100, -3} {
		r, err := NewReview(1, 1, grade, "无效打分")
		assert.Nil(t, r)
		assert.ErrorIs(t, err, ErrInvalidGrade)
	}

	r, err := NewReview(1, 2, 5, "很好")
	assert.NoError(t, err)
	assert.True(t, r.IsActive)
	assert.Equal(t, 5, r.Grade)
	assert.Equal(t, uint(2), r.ProductID)
}
