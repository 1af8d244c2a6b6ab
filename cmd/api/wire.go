//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 设计说明：
// 1. Wire在编译期生成依赖组装代码，零运行时开销
// 2. 运行 `wire gen ./cmd/api` 生成wire_gen.go
// 3. 评论用例依赖的是接口（Transactor/DetailCache/Publisher），
//    需要wire.Bind把具体实现绑定到接口上

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appcategory "github.com/xiebiao/mall/internal/application/category"
	appproduct "github.com/xiebiao/mall/internal/application/product"
	appreview "github.com/xiebiao/mall/internal/application/review"
	appuser "github.com/xiebiao/mall/internal/application/user"
	"github.com/xiebiao/mall/internal/domain/category"
	"github.com/xiebiao/mall/internal/domain/product"
	"github.com/xiebiao/mall/internal/domain/user"
	"github.com/xiebiao/mall/internal/infrastructure/config"
	"github.com/xiebiao/mall/internal/infrastructure/eventbus"
	"github.com/xiebiao/mall/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/mall/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/mall/internal/interface/http/handler"
	"github.com/xiebiao/mall/internal/interface/http/middleware"
	"github.com/xiebiao/mall/pkg/jwt"
	"github.com/xiebiao/mall/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewCategoryRepository,
	mysql.NewProductRepository,
	mysql.NewReviewRepository,
	mysql.NewTxManager,
	wire.Bind(new(appreview.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	category.NewService,
	product.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,

	appcategory.NewCreateCategoryUseCase,
	appcategory.NewUpdateCategoryUseCase,
	appcategory.NewDeleteCategoryUseCase,
	appcategory.NewListCategoriesUseCase,
	appcategory.NewGetCategoryUseCase,

	appproduct.NewCreateProductUseCase,
	appproduct.NewUpdateProductUseCase,
	appproduct.NewDeleteProductUseCase,
	appproduct.NewGetProductUseCase,
	appproduct.NewListProductsUseCase,
	appproduct.NewListCategoryProductsUseCase,

	appreview.NewCreateReviewUseCase,
	appreview.NewDeleteReviewUseCase,
	appreview.NewListReviewsUseCase,
	appreview.NewListProductReviewsUseCase,
	appreview.NewGetReviewUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewCategoryHandler,
	handler.NewProductHandler,
	handler.NewReviewHandler,
)

// cacheSet 缓存与事件依赖
// ProductCache同时满足商品用例和评论用例声明的DetailCache接口
var cacheSet = wire.NewSet(
	provideProductCache,
	wire.Bind(new(appproduct.DetailCache), new(*redis.ProductCache)),
	wire.Bind(new(appreview.DetailCache), new(*redis.ProductCache)),
	provideEventPublisher,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideProductCache 从配置创建商品详情缓存
func provideProductCache(client *goredis.Client, cfg *config.Config) *redis.ProductCache {
	return redis.NewProductCache(client, cfg.Cache.ProductDetailTTL)
}

// provideEventPublisher 根据配置创建事件发布器
// MQ关闭时返回NoopPublisher，业务路径无需判空
func provideEventPublisher(cfg *config.Config) (eventbus.Publisher, error) {
	if !cfg.MQ.Enabled {
		return eventbus.NoopPublisher{}, nil
	}
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
	if err != nil {
		return nil, err
	}
	return eventbus.NewAMQPPublisher(publisher), nil
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(serviceName))
	}

	registerRoutes(r, userHandler, categoryHandler, productHandler, reviewHandler, authMiddleware)

	return r
}

// InitializeApp 初始化整个应用
// Wire会按依赖关系生成所有构造函数的调用顺序
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		cacheSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
