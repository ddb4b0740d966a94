//go:build wireinject
// +build wireinject

package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
	"github.com/xiebiao/bookshop/pkg/mq"
)

// wire.go Wire依赖注入配置
// 运行 `wire gen ./cmd/api` 生成 wire_gen.go;main.go中的手动组装与此等价

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// gatewaySet 持久化网关依赖
var gatewaySet = wire.NewSet(
	mysql.NewCatalogGateway,
	mysql.NewInventoryGateway,
	mysql.NewOperatorRepository,
)

// domainSet 领域服务依赖
var domainSet = wire.NewSet(
	provideNormalizer,
	providePurchaseScope,
	catalog.NewService,
	inventory.NewService,
	operator.NewService,
)

// applicationSet 应用用例依赖
var applicationSet = wire.NewSet(
	appcatalog.NewAddBookUseCase,
	appcatalog.NewUpdateBookUseCase,
	appcatalog.NewRemoveBookUseCase,
	appcatalog.NewListBooksUseCase,
	appcatalog.NewFindBookUseCase,
	appcatalog.NewCombineBooksUseCase,
	appcatalog.NewAuthorUseCase,
	appcatalog.NewGenreUseCase,
	appcatalog.NewCustomerUseCase,
	appcatalog.NewStoreUseCase,
	appinventory.NewAssignBookUseCase,
	appinventory.NewUnassignBookUseCase,
	appinventory.NewStoreLibraryUseCase,
	appinventory.NewPurchaseUseCase,
	appinventory.NewPurchaseHistoryUseCase,
	appoperator.NewRegisterUseCase,
	appoperator.NewLoginUseCase,
	appoperator.NewLogoutUseCase,
)

// middlewareSet 中间件与横切依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	redis.NewSessionStore,
	provideCatalogCache,
	provideCatalogEventPublisher,
	provideInventoryEventPublisher,
	middleware.NewAuthMiddleware,
	wire.Bind(new(appcatalog.ListCache), new(*redis.CatalogCache)),
	wire.Bind(new(appinventory.LibraryCache), new(*redis.CatalogCache)),
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewEntityHandler,
	handler.NewInventoryHandler,
	handler.NewOperatorHandler,
)

// provideNormalizer 按配置构造名称归一化器
func provideNormalizer(cfg *config.Config) catalog.Normalizer {
	return catalog.NewNormalizer(cfg.Catalog.CaseInsensitive)
}

// providePurchaseScope 解析购买副作用范围配置
func providePurchaseScope(cfg *config.Config) (inventory.PurchaseScope, error) {
	return inventory.ParsePurchaseScope(cfg.Inventory.PurchaseScope)
}

// provideJWTManager 创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideCatalogCache 创建目录缓存
func provideCatalogCache(client *goredis.Client) *redis.CatalogCache {
	return redis.NewCatalogCache(client, 5*time.Minute)
}

// provideCatalogEventPublisher 创建目录事件发布器(消息队列关闭时为nil)
func provideCatalogEventPublisher(cfg *config.Config) (appcatalog.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
}

// provideInventoryEventPublisher 创建库存事件发布器(消息队列关闭时为nil)
func provideInventoryEventPublisher(cfg *config.Config) (appinventory.EventPublisher, error) {
	if !cfg.MQ.Enabled {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
}

// provideGinEngine 创建Gin引擎并注册路由
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	entityHandler *handler.EntityHandler,
	inventoryHandler *handler.InventoryHandler,
	operatorHandler *handler.OperatorHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	registerRoutes(r, bookHandler, entityHandler, inventoryHandler, operatorHandler, authMiddleware)
	return r
}

// InitializeApp Wire注入器入口
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		gatewaySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
