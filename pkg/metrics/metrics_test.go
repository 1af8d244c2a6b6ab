package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if ReviewsCreatedTotal == nil {
		t.Error("ReviewsCreatedTotal未初始化")
	}
	if RatingRecomputeDuration == nil {
		t.Error("RatingRecomputeDuration未初始化")
	}
	if CircuitBreakerState == nil {
		t.Error("CircuitBreakerState未初始化")
	}
}

// TestInitMetricsIdempotent 重复初始化不应panic（重复注册会panic）
func TestInitMetricsIdempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
}

// TestCounter 测试Counter递增
func TestCounter(t *testing.T) {
	InitMetrics()

	before := testutil.ToFloat64(ReviewsCreatedTotal)

	IncCounter(ReviewsCreatedTotal)
	IncCounter(ReviewsCreatedTotal)
	IncCounter(ReviewsCreatedTotal)

	got := testutil.ToFloat64(ReviewsCreatedTotal)
	if got-before != 3 {
		t.Errorf("Counter递增错误: expected=+3, got=+%f", got-before)
	}
}

// TestCounterVec 测试带标签的Counter
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"reason": "forbidden"}
	before := testutil.ToFloat64(ReviewsRejectedTotal.With(labels))

	IncCounterVec(ReviewsRejectedTotal, labels)

	got := testutil.ToFloat64(ReviewsRejectedTotal.With(labels))
	if got-before != 1 {
		t.Errorf("CounterVec递增错误: expected=+1, got=+%f", got-before)
	}
}

// TestGaugeVec 测试熔断器状态Gauge
func TestGaugeVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"name": "product-cache"}
	SetGaugeVec(CircuitBreakerState, labels, 1)

	got := testutil.ToFloat64(CircuitBreakerState.With(labels))
	if got != 1 {
		t.Errorf("GaugeVec设置错误: expected=1, got=%f", got)
	}
}
