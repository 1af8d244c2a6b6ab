package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/xiebiao/mall/pkg/metrics"
	"github.com/xiebiao/mall/pkg/tracing"
)

// Metrics HTTP指标中间件
// 记录请求量、耗时、并发数；path使用路由模板（/api/v1/products/:id）
// 而非原始URL，避免高基数标签
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.HTTPRequestsInProgress.Inc()

		c.Next()

		metrics.HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		labels := map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		metrics.IncCounterVec(metrics.HTTPRequestsTotal, labels)

		metrics.HTTPRequestDuration.With(map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}).Observe(time.Since(start).Seconds())
	}
}

// Tracing HTTP追踪中间件
// 每个请求创建根Span；TraceID写入响应头便于问题排查
func Tracing(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		spanName := c.Request.Method + " " + c.FullPath()
		ctx, span := tracing.StartSpan(c.Request.Context(), serviceName, spanName)
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.client_ip", c.ClientIP()),
		)

		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Trace-ID", tracing.ExtractTraceID(ctx))

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int("http.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}
	}
}
