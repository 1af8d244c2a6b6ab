package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/mall/internal/domain/product"
	"github.com/xiebiao/mall/pkg/circuitbreaker"
	"github.com/xiebiao/mall/pkg/metrics"
)

// ProductCache 商品详情缓存
// 设计说明：
// 1. Key设计：product:{id}，值为商品实体的JSON
// 2. 只缓存读路径；商品更新/删除、评论增删（评分变化）时删除Key
// 3. 所有Redis调用经过熔断器：Redis故障时快速降级为直查数据库，
//    缓存层的任何错误都不会传给调用方
type ProductCache struct {
	client  *redis.Client
	breaker *circuitbreaker.CircuitBreaker
	ttl     time.Duration
}

// NewProductCache 创建商品缓存
func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	cb := circuitbreaker.NewCircuitBreaker("product-cache", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts circuitbreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		metrics.SetGaugeVec(metrics.CircuitBreakerState,
			map[string]string{"name": name}, float64(to))
	})

	return &ProductCache{
		client:  client,
		breaker: cb,
		ttl:     ttl,
	}
}

func productKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// Get 查询缓存中的商品详情
// 未命中、Redis故障、熔断器打开均返回(nil, false)，调用方回源数据库
func (c *ProductCache) Get(ctx context.Context, id uint) (*product.Product, bool) {
	var data []byte
	var miss bool

	err := c.breaker.Execute(func() error {
		result, err := c.client.Get(ctx, productKey(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			// Key不存在是正常未命中，不计入熔断器失败
			miss = true
			return nil
		}
		if err != nil {
			return err
		}
		data = result
		return nil
	})

	if err != nil {
		return nil, false
	}
	if miss {
		metrics.IncCounterVec(metrics.CacheMissesTotal,
			map[string]string{"cache": "product"})
		return nil, false
	}

	var p product.Product
	if err := json.Unmarshal(data, &p); err != nil {
		// 缓存内容损坏，当作未命中并删除
		_ = c.Delete(ctx, id)
		return nil, false
	}

	metrics.IncCounterVec(metrics.CacheHitsTotal,
		map[string]string{"cache": "product"})
	return &p, true
}

// Set 写入商品详情缓存
// 写入失败只影响命中率，不影响业务，错误吞掉
func (c *ProductCache) Set(ctx context.Context, p *product.Product) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}

	_ = c.breaker.Execute(func() error {
		return c.client.Set(ctx, productKey(p.ID), data, c.ttl).Err()
	})
}

// Delete 删除商品缓存
// 商品更新/删除、评论增删导致评分变化时调用
func (c *ProductCache) Delete(ctx context.Context, id uint) error {
	return c.breaker.Execute(func() error {
		return c.client.Del(ctx, productKey(id)).Err()
	})
}
