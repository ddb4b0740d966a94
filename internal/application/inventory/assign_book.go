package inventory

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
	"github.com/xiebiao/bookshop/internal/domain/inventory"
)

// EventPublisher 变更事件发布接口(消息队列未启用时注入nil)
type EventPublisher interface {
	Publish(routingKey string, message interface{}) error
}

// LibraryCache 门店书架缓存接口,由redis.CatalogCache实现
type LibraryCache interface {
	GetLibrary(ctx context.Context, storeKey string) ([]catalog.BookView, error)
	SetLibrary(ctx context.Context, storeKey string, views []catalog.BookView) error
	InvalidateLibraries(ctx context.Context) error
	InvalidateBookList(ctx context.Context) error
}

// AssignBookUseCase 图书上架用例
// 把在册图书分配到门店书架;同名图书重复分配被领域服务拒绝
type AssignBookUseCase struct {
	inventoryService *inventory.Service
	cache            LibraryCache
	publisher        EventPublisher
}

// NewAssignBookUseCase 创建图书上架用例
func NewAssignBookUseCase(inventoryService *inventory.Service, cache LibraryCache, publisher EventPublisher) *AssignBookUseCase {
	return &AssignBookUseCase{
		inventoryService: inventoryService,
		cache:            cache,
		publisher:        publisher,
	}
}

// AssignBookRequest 上架请求DTO
type AssignBookRequest struct {
	Store string // 门店名
	Title string // 书名
}

// Execute 执行图书上架
func (uc *AssignBookUseCase) Execute(ctx context.Context, req AssignBookRequest) error {
	if err := uc.inventoryService.AssignToStore(ctx, req.Store, req.Title); err != nil {
		return err
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateLibraries(ctx)
	}
	if uc.publisher != nil {
		_ = uc.publisher.Publish("inventory.book.assigned", map[string]interface{}{
			"store": req.Store,
			"title": req.Title,
		})
	}
	return nil
}

// UnassignBookUseCase 图书下架用例
// 移除书架上所有匹配条目;没有匹配时静默无操作
type UnassignBookUseCase struct {
	inventoryService *inventory.Service
	cache            LibraryCache
	publisher        EventPublisher
}

// NewUnassignBookUseCase 创建图书下架用例
func NewUnassignBookUseCase(inventoryService *inventory.Service, cache LibraryCache, publisher EventPublisher) *UnassignBookUseCase {
	return &UnassignBookUseCase{
		inventoryService: inventoryService,
		cache:            cache,
		publisher:        publisher,
	}
}

// Execute 执行图书下架
func (uc *UnassignBookUseCase) Execute(ctx context.Context, req AssignBookRequest) error {
	if err := uc.inventoryService.UnassignFromStore(ctx, req.Store, req.Title); err != nil {
		return err
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateLibraries(ctx)
	}
	if uc.publisher != nil {
		_ = uc.publisher.Publish("inventory.book.unassigned", map[string]interface{}{
			"store": req.Store,
			"title": req.Title,
		})
	}
	return nil
}

// StoreLibraryUseCase 门店书架查询用例(Cache-Aside)
type StoreLibraryUseCase struct {
	inventoryService *inventory.Service
	catalogService   *catalog.Service
	cache            LibraryCache
}

// NewStoreLibraryUseCase 创建门店书架查询用例
func NewStoreLibraryUseCase(inventoryService *inventory.Service, catalogService *catalog.Service, cache LibraryCache) *StoreLibraryUseCase {
	return &StoreLibraryUseCase{
		inventoryService: inventoryService,
		catalogService:   catalogService,
		cache:            cache,
	}
}

// StoreLibraryResponse 门店书架响应DTO
type StoreLibraryResponse struct {
	Store string             `json:"store"`
	Books []catalog.BookView `json:"books"`
}

// Execute 执行门店书架查询
func (uc *StoreLibraryUseCase) Execute(ctx context.Context, storeName string) (*StoreLibraryResponse, error) {
	storeKey := uc.catalogService.Norm().Key(storeName)

	if uc.cache != nil {
		if views, err := uc.cache.GetLibrary(ctx, storeKey); err == nil && views != nil {
			return &StoreLibraryResponse{Store: storeName, Books: views}, nil
		}
	}

	views, err := uc.inventoryService.StoreLibrary(storeName)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.SetLibrary(ctx, storeKey, views)
	}
	return &StoreLibraryResponse{Store: storeName, Books: views}, nil
}
