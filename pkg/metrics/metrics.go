// Package metrics 提供基于Prometheus的指标收集
//
// 设计说明：
// 1. 程序启动时调用InitMetrics()一次性注册所有指标
// 2. /metrics端点由promhttp.Handler()暴露，Prometheus定期抓取
// 3. 标签只用有限枚举值（method、path、status），避免高基数标签
//
// 指标命名规范：
// - Counter以_total结尾（reviews_created_total）
// - Histogram以单位结尾（rating_recompute_duration_seconds）
// - Gauge使用现在时态（http_requests_in_progress）
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 防止重复注册
	initialized bool

	// HTTP请求指标

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 评论与评分指标

	// ReviewsCreatedTotal 评论创建总数
	ReviewsCreatedTotal prometheus.Counter

	// ReviewsDeletedTotal 评论删除总数
	ReviewsDeletedTotal prometheus.Counter

	// ReviewsRejectedTotal 评论被拒绝总数
	// 标签：reason（forbidden/invalid_grade/product_not_found）
	ReviewsRejectedTotal *prometheus.CounterVec

	// RatingRecomputeDuration 评分重算事务耗时
	RatingRecomputeDuration prometheus.Histogram

	// 缓存指标

	// CacheHitsTotal 缓存命中总数（标签：cache名称）
	CacheHitsTotal *prometheus.CounterVec

	// CacheMissesTotal 缓存未命中总数（标签：cache名称）
	CacheMissesTotal *prometheus.CounterVec

	// 熔断器指标

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 熔断器请求总数
	// 标签：name、result（success/failure/rejected）
	CircuitBreakerRequests *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数
	// 标签：exchange、routing_key
	MessagesPublishedTotal *prometheus.CounterVec

	// MessagePublishFailures 消息发布失败总数
	MessagePublishFailures *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，注册所有指标到默认Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	ReviewsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "评论创建总数",
		},
	)

	ReviewsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviews_deleted_total",
			Help: "评论删除总数",
		},
	)

	ReviewsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_rejected_total",
			Help: "评论被拒绝总数",
		},
		[]string{"reason"},
	)

	RatingRecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "rating_recompute_duration_seconds",
			Help: "评分重算事务耗时（秒）",
			// 重算在行锁事务内完成，正常应落在100ms以内
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "缓存命中总数",
		},
		[]string{"cache"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "缓存未命中总数",
		},
		[]string{"cache"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		},
		[]string{"name", "result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"},
	)

	MessagePublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "message_publish_failures_total",
			Help: "消息发布失败总数",
		},
		[]string{"exchange", "routing_key"},
	)
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}
