// Package eventbus 定义领域事件及其发布接口
//
// 设计说明：
// 1. 事件在业务事务提交后发布（最终一致性），发布失败只记录不回滚
// 2. MQ可配置关闭，关闭时注入NoopPublisher，调用方无需判空
// 3. routing_key命名：<实体>.<动作>，如 review.created
package eventbus

import (
	"log"
	"time"

	"github.com/xiebiao/mall/pkg/metrics"
	"github.com/xiebiao/mall/pkg/mq"
)

// 事件路由键
const (
	RoutingReviewCreated  = "review.created"
	RoutingReviewDeleted  = "review.deleted"
	RoutingProductDeleted = "product.deleted"
)

// ReviewCreatedEvent 评论创建事件
type ReviewCreatedEvent struct {
	ReviewID  uint      `json:"review_id"`
	ProductID uint      `json:"product_id"`
	UserID    uint      `json:"user_id"`
	Grade     int       `json:"grade"`
	Rating    float64   `json:"rating"` // 重算后的商品评分
	CreatedAt time.Time `json:"created_at"`
}

// ReviewDeletedEvent 评论删除事件
type ReviewDeletedEvent struct {
	ReviewID  uint      `json:"review_id"`
	ProductID uint      `json:"product_id"`
	Rating    float64   `json:"rating"` // 重算后的商品评分
	DeletedAt time.Time `json:"deleted_at"`
}

// ProductDeletedEvent 商品删除事件
type ProductDeletedEvent struct {
	ProductID uint      `json:"product_id"`
	SellerID  uint      `json:"seller_id"`
	DeletedAt time.Time `json:"deleted_at"`
}

// Publisher 事件发布接口
type Publisher interface {
	Publish(routingKey string, event interface{})
}

// AMQPPublisher 基于RabbitMQ的事件发布者
type AMQPPublisher struct {
	publisher *mq.Publisher
}

// NewAMQPPublisher 创建事件发布者
func NewAMQPPublisher(publisher *mq.Publisher) *AMQPPublisher {
	return &AMQPPublisher{publisher: publisher}
}

// Publish 发布事件
// 事件发布是业务流程的旁路：失败记录日志和指标，不影响主流程
func (p *AMQPPublisher) Publish(routingKey string, event interface{}) {
	labels := map[string]string{
		"exchange":    p.publisher.Exchange(),
		"routing_key": routingKey,
	}

	if err := p.publisher.Publish(routingKey, event); err != nil {
		log.Printf("事件发布失败: routing_key=%s, err=%v", routingKey, err)
		metrics.IncCounterVec(metrics.MessagePublishFailures, labels)
		return
	}

	metrics.IncCounterVec(metrics.MessagesPublishedTotal, labels)
}

// NoopPublisher MQ关闭时的空实现
type NoopPublisher struct{}

// Publish 丢弃事件
func (NoopPublisher) Publish(routingKey string, event interface{}) {}
