package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/mall/docs"
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
	"github.com/xiebiao/mall/pkg/metrics"
	"github.com/xiebiao/mall/pkg/mq"
	"github.com/xiebiao/mall/pkg/response"
	"github.com/xiebiao/mall/pkg/tracing"
)

const serviceName = "mall-api"

// main 主程序入口
// 说明：手动依赖注入，与cmd/api/wire.go描述的依赖链一致
// （wire gen生成的代码可替代本函数中的组装段）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化可观测性组件
	metrics.InitMetrics()

	var tracerShutdown func(context.Context) error
	if cfg.Tracing.Enabled {
		tracerShutdown, err = tracing.InitTracer(serviceName, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化Tracer失败: %v", err)
		}
		fmt.Printf("  - Tracing: %s\n", cfg.Tracing.Endpoint)
	}

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 初始化事件发布器
	// MQ关闭时注入NoopPublisher，业务路径不感知差异
	var events eventbus.Publisher = eventbus.NoopPublisher{}
	var mqPublisher *mq.Publisher
	if cfg.MQ.Enabled {
		mqPublisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("连接RabbitMQ失败: %v", err)
		}
		events = eventbus.NewAMQPPublisher(mqPublisher)
		fmt.Printf("  - MQ Exchange: %s\n", cfg.MQ.Exchange)
	}

	// 6. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	productRepo := mysql.NewProductRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	productCache := redis.NewProductCache(redisClient, cfg.Cache.ProductDetailTTL)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	categoryService := category.NewService(categoryRepo)
	productService := product.NewService(productRepo, categoryRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)

	createCategoryUseCase := appcategory.NewCreateCategoryUseCase(categoryService)
	updateCategoryUseCase := appcategory.NewUpdateCategoryUseCase(categoryService)
	deleteCategoryUseCase := appcategory.NewDeleteCategoryUseCase(categoryService)
	listCategoriesUseCase := appcategory.NewListCategoriesUseCase(categoryService)
	getCategoryUseCase := appcategory.NewGetCategoryUseCase(categoryService)

	createProductUseCase := appproduct.NewCreateProductUseCase(productService)
	updateProductUseCase := appproduct.NewUpdateProductUseCase(productService, productCache)
	deleteProductUseCase := appproduct.NewDeleteProductUseCase(productService, productCache, events)
	getProductUseCase := appproduct.NewGetProductUseCase(productService, productCache)
	listProductsUseCase := appproduct.NewListProductsUseCase(productService)
	listCategoryProductsUseCase := appproduct.NewListCategoryProductsUseCase(productService)

	createReviewUseCase := appreview.NewCreateReviewUseCase(reviewRepo, productRepo, txManager, productCache, events)
	deleteReviewUseCase := appreview.NewDeleteReviewUseCase(reviewRepo, productRepo, txManager, productCache, events)
	listReviewsUseCase := appreview.NewListReviewsUseCase(reviewRepo)
	listProductReviewsUseCase := appreview.NewListProductReviewsUseCase(reviewRepo, productRepo)
	getReviewUseCase := appreview.NewGetReviewUseCase(reviewRepo)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	categoryHandler := handler.NewCategoryHandler(
		createCategoryUseCase, updateCategoryUseCase, deleteCategoryUseCase,
		listCategoriesUseCase, getCategoryUseCase, listCategoryProductsUseCase,
	)
	productHandler := handler.NewProductHandler(
		createProductUseCase, updateProductUseCase, deleteProductUseCase,
		getProductUseCase, listProductsUseCase,
	)
	reviewHandler := handler.NewReviewHandler(
		createReviewUseCase, deleteReviewUseCase, listReviewsUseCase,
		listProductReviewsUseCase, getReviewUseCase,
	)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(serviceName))
	}

	// 8. 注册路由
	registerRoutes(r, userHandler, categoryHandler, productHandler, reviewHandler, authMiddleware)

	// 9. 启动服务（优雅关闭）
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		fmt.Printf("\n🚀 服务启动成功！\n")
		fmt.Printf("   访问地址: http://localhost%s\n", addr)
		fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
		fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
		fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
		fmt.Printf("\n按Ctrl+C停止服务\n\n")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("启动服务失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("关闭HTTP服务失败: %v", err)
	}
	if mqPublisher != nil {
		if err := mqPublisher.Close(); err != nil {
			log.Printf("关闭MQ连接失败: %v", err)
		}
	}
	if tracerShutdown != nil {
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("关闭Tracer失败: %v", err)
		}
	}
	log.Println("服务已退出")
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	categoryHandler *handler.CategoryHandler,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 分类模块
		categories := v1.Group("/categories")
		{
			// 读路径匿名可访问
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.GET("/:id/products", categoryHandler.ListProducts)

			// 写路径需要登录（角色校验在应用层）
			categories.POST("", authMiddleware.RequireAuth(), categoryHandler.Create)
			categories.PUT("/:id", authMiddleware.RequireAuth(), categoryHandler.Update)
			categories.DELETE("/:id", authMiddleware.RequireAuth(), categoryHandler.Delete)
		}

		// 商品模块
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.GET("/:id/reviews", reviewHandler.ListByProduct)

			products.POST("", authMiddleware.RequireAuth(), productHandler.Create)
			products.PUT("/:id", authMiddleware.RequireAuth(), productHandler.Update)
			products.DELETE("/:id", authMiddleware.RequireAuth(), productHandler.Delete)
		}

		// 评论模块
		reviews := v1.Group("/reviews")
		{
			reviews.GET("", reviewHandler.List)
			reviews.GET("/:id", reviewHandler.Get)

			reviews.POST("", authMiddleware.RequireAuth(), reviewHandler.Create)
			reviews.DELETE("/:id", authMiddleware.RequireAuth(), reviewHandler.Delete)
		}
	}
}
