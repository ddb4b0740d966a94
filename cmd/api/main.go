package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcatalog "github.com/xiebiao/bookshop/internal/application/catalog"
	appinventory "github.com/xiebiao/bookshop/internal/application/inventory"
	appoperator "github.com/xiebiao/bookshop/internal/application/operator"
	"github.com/xiebiao/bookshop/internal/domain/catalog"
	"github.com/xiebiao/bookshop/internal/domain/inventory"
	"github.com/xiebiao/bookshop/internal/domain/operator"
	"github.com/xiebiao/bookshop/internal/infrastructure/config"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshop/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookshop/internal/interface/http/handler"
	"github.com/xiebiao/bookshop/internal/interface/http/middleware"
	"github.com/xiebiao/bookshop/pkg/jwt"
	"github.com/xiebiao/bookshop/pkg/metrics"
	"github.com/xiebiao/bookshop/pkg/mq"
	"github.com/xiebiao/bookshop/pkg/response"
)

// main 主程序入口
// 说明:手动依赖注入;wire.go提供等价的Wire注入器(wire gen生成)
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
	fmt.Printf("  - 购买副作用范围: %s\n", cfg.Inventory.PurchaseScope)

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

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

	// 5. 依赖注入(手动组装)
	// 依赖链:Gateway/Repository ← Service ← UseCase ← Handler

	// 基础设施层
	catalogGateway := mysql.NewCatalogGateway(db)
	inventoryGateway := mysql.NewInventoryGateway(db)
	operatorRepo := mysql.NewOperatorRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	catalogCache := redis.NewCatalogCache(redisClient, 5*time.Minute)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 消息队列(可选能力,默认关闭)
	var publisher *mq.Publisher
	if cfg.MQ.Enabled {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化消息队列失败: %v", err)
		}
		defer publisher.Close()
	}

	// 领域层
	norm := catalog.NewNormalizer(cfg.Catalog.CaseInsensitive)
	catalogService := catalog.NewService(catalogGateway, norm)
	scope, err := inventory.ParsePurchaseScope(cfg.Inventory.PurchaseScope)
	if err != nil {
		log.Fatalf("解析购买副作用范围失败: %v", err)
	}
	inventoryService := inventory.NewService(catalogService, inventoryGateway, scope)
	operatorService := operator.NewService(operatorRepo)

	// 6. 从库表全量重建内存目录
	ctx := context.Background()
	if err := catalogService.Load(ctx); err != nil {
		log.Fatalf("加载目录失败: %v", err)
	}
	fmt.Printf("✓ 目录加载完成: %d本图书, %d位作者, %d家门店\n",
		catalogService.CountBooks(), catalogService.CountAuthors(), catalogService.CountStores())
	appcatalog.SyncEntityGauges(catalogService)

	// 7. 空目录时写入示例数据(演示/联调用)
	if cfg.Catalog.Seed && catalogService.CountBooks() == 0 {
		if err := seedCatalog(ctx, catalogService, inventoryService); err != nil {
			log.Printf("写入示例数据失败: %v", err)
		}
	}

	// 应用层
	// 说明:mq.Publisher为nil时不能直接赋给接口变量(非nil接口包nil指针),先判空
	var eventPublisher appcatalog.EventPublisher
	var invPublisher appinventory.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
		invPublisher = publisher
	}

	addBookUseCase := appcatalog.NewAddBookUseCase(catalogService, catalogCache, eventPublisher)
	updateBookUseCase := appcatalog.NewUpdateBookUseCase(catalogService, catalogCache, eventPublisher)
	removeBookUseCase := appcatalog.NewRemoveBookUseCase(catalogService, catalogCache, eventPublisher)
	listBooksUseCase := appcatalog.NewListBooksUseCase(catalogService, catalogCache)
	findBookUseCase := appcatalog.NewFindBookUseCase(catalogService)
	combineBooksUseCase := appcatalog.NewCombineBooksUseCase(catalogService)
	authorUseCase := appcatalog.NewAuthorUseCase(catalogService, catalogCache)
	genreUseCase := appcatalog.NewGenreUseCase(catalogService, catalogCache)
	customerUseCase := appcatalog.NewCustomerUseCase(catalogService)
	storeUseCase := appcatalog.NewStoreUseCase(catalogService, catalogCache)

	assignUseCase := appinventory.NewAssignBookUseCase(inventoryService, catalogCache, invPublisher)
	unassignUseCase := appinventory.NewUnassignBookUseCase(inventoryService, catalogCache, invPublisher)
	storeLibraryUseCase := appinventory.NewStoreLibraryUseCase(inventoryService, catalogService, catalogCache)
	purchaseUseCase := appinventory.NewPurchaseUseCase(inventoryService, catalogCache, invPublisher)
	purchaseHistoryUseCase := appinventory.NewPurchaseHistoryUseCase(inventoryService)

	registerUseCase := appoperator.NewRegisterUseCase(operatorService)
	loginUseCase := appoperator.NewLoginUseCase(operatorService, jwtManager, sessionStore)
	logoutUseCase := appoperator.NewLogoutUseCase(sessionStore)

	// 接口层
	bookHandler := handler.NewBookHandler(
		addBookUseCase, updateBookUseCase, removeBookUseCase,
		listBooksUseCase, findBookUseCase, combineBooksUseCase,
	)
	entityHandler := handler.NewEntityHandler(authorUseCase, genreUseCase, customerUseCase, storeUseCase)
	inventoryHandler := handler.NewInventoryHandler(
		assignUseCase, unassignUseCase, storeLibraryUseCase,
		purchaseUseCase, purchaseHistoryUseCase,
	)
	operatorHandler := handler.NewOperatorHandler(registerUseCase, loginUseCase, logoutUseCase, jwtManager)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 9. 注册路由
	registerRoutes(r, bookHandler, entityHandler, inventoryHandler, operatorHandler, authMiddleware)

	// 10. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	bookHandler *handler.BookHandler,
	entityHandler *handler.EntityHandler,
	inventoryHandler *handler.InventoryHandler,
	operatorHandler *handler.OperatorHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档(生产环境建议禁用或加访问控制)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 操作员模块(注册/登录公开,登出需要登录)
		operators := v1.Group("/operators")
		{
			operators.POST("/register", operatorHandler.Register)
			operators.POST("/login", operatorHandler.Login)
			operators.POST("/refresh", operatorHandler.RefreshToken)
			operators.POST("/logout", authMiddleware.RequireAuth(), operatorHandler.Logout)
		}

		// 图书模块(查询公开,写操作需要登录)
		books := v1.Group("/books")
		{
			books.GET("", bookHandler.ListBooks)
			books.POST("/combine", bookHandler.CombineBooks)
			books.GET("/:title", bookHandler.GetBook)
			books.POST("", authMiddleware.RequireAuth(), bookHandler.AddBook)
			books.PUT("/:title", authMiddleware.RequireAuth(), bookHandler.UpdateBook)
			books.DELETE("/:title", authMiddleware.RequireAuth(), bookHandler.RemoveBook)
		}

		// 作者模块
		authors := v1.Group("/authors")
		{
			authors.GET("", entityHandler.ListAuthors)
			authors.POST("", authMiddleware.RequireAuth(), entityHandler.AddAuthor)
			authors.PUT("/:name", authMiddleware.RequireAuth(), entityHandler.RenameAuthor)
			authors.DELETE("/:name", authMiddleware.RequireAuth(), entityHandler.RemoveAuthor)
		}

		// 分类模块
		genres := v1.Group("/genres")
		{
			genres.GET("", entityHandler.ListGenres)
			genres.POST("", authMiddleware.RequireAuth(), entityHandler.AddGenre)
			genres.DELETE("/:name", authMiddleware.RequireAuth(), entityHandler.RemoveGenre)
		}

		// 顾客模块
		customers := v1.Group("/customers")
		{
			customers.GET("", entityHandler.ListCustomers)
			customers.GET("/:name/purchases", inventoryHandler.PurchaseHistory)
			customers.POST("", authMiddleware.RequireAuth(), entityHandler.AddCustomer)
			customers.DELETE("/:name", authMiddleware.RequireAuth(), entityHandler.RemoveCustomer)
		}

		// 门店模块(含书架)
		stores := v1.Group("/stores")
		{
			stores.GET("", entityHandler.ListStores)
			stores.GET("/:name/books", inventoryHandler.StoreLibrary)
			stores.POST("", authMiddleware.RequireAuth(), entityHandler.AddStore)
			stores.DELETE("/:name", authMiddleware.RequireAuth(), entityHandler.RemoveStore)
			stores.POST("/:name/books", authMiddleware.RequireAuth(), inventoryHandler.AssignBook)
			stores.DELETE("/:name/books/:title", authMiddleware.RequireAuth(), inventoryHandler.UnassignBook)
		}

		// 购买模块
		v1.POST("/purchases", authMiddleware.RequireAuth(), inventoryHandler.Purchase)
	}
}

// seedCatalog 写入示例数据
func seedCatalog(ctx context.Context, cat *catalog.Service, inv *inventory.Service) error {
	orwell, err := cat.AddAuthor(ctx, "乔治·奥威尔")
	if err != nil {
		return err
	}
	dystopia, err := cat.AddGenre(ctx, "反乌托邦")
	if err != nil {
		return err
	}
	if _, err := cat.AddBook(ctx, "1984", orwell.ID, dystopia.ID, 1250); err != nil {
		return err
	}
	if _, err := cat.AddBook(ctx, "动物农场", orwell.ID, dystopia.ID, 980); err != nil {
		return err
	}
	if _, err := cat.AddStore(ctx, "中央门店"); err != nil {
		return err
	}
	if err := inv.AssignToStore(ctx, "中央门店", "1984"); err != nil {
		return err
	}

	fmt.Println("✓ 示例数据写入完成")
	return nil
}
