package review

// 评分聚合计算
//
// 商品评分 = 当前在线评论打分的算术平均，每次评论创建/删除都从存储中的
// 权威集合整体重算，而不是维护一个只存在于内存的滑动计数。
// 空集合的评分是明确的0.00（不是null也不是"无评分"）。
//
// 这里只做纯计算；加锁与事务边界由调用方（评论用例+商品仓储行锁）负责。

// Mean 计算打分集合的算术平均
// 空集合返回0.00
func Mean(grades []int) float64 {
	if len(grades) == 0 {
		return 0
	}
	sum := 0
	for _, g := range grades {
		sum += g
	}
	return float64(sum) / float64(len(grades))
}

// MeanWith 在现有打分集合的基础上追加一个打分后的平均
// 即 (sum(existing) + grade) / (len(existing) + 1)
// 用于评论创建：existing是不含新评论的在线打分集合
func MeanWith(existing []int, grade int) float64 {
	sum := grade
	for _, g := range existing {
		sum += g
	}
	return float64(sum) / float64(len(existing)+1)
}
