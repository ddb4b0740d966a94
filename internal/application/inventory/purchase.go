package inventory

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
	"github.com/xiebiao/bookshop/internal/domain/inventory"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// PurchaseUseCase 购买用例
// 设计说明:
// 1. 领域服务追加购买记录并按配置的副作用范围处理书架/目录
// 2. 副作用范围为store/catalog时书架或目录发生变化,删对应缓存
// 3. 购买事件广播给下游(报表、通知)
type PurchaseUseCase struct {
	inventoryService *inventory.Service
	cache            LibraryCache
	publisher        EventPublisher
}

// NewPurchaseUseCase 创建购买用例
func NewPurchaseUseCase(inventoryService *inventory.Service, cache LibraryCache, publisher EventPublisher) *PurchaseUseCase {
	return &PurchaseUseCase{
		inventoryService: inventoryService,
		cache:            cache,
		publisher:        publisher,
	}
}

// PurchaseRequest 购买请求DTO
type PurchaseRequest struct {
	Customer string // 顾客名
	Store    string // 门店名
	Title    string // 书名
}

// Execute 执行购买
func (uc *PurchaseUseCase) Execute(ctx context.Context, req PurchaseRequest) error {
	if err := uc.inventoryService.RecordPurchase(ctx, req.Customer, req.Store, req.Title); err != nil {
		return err
	}

	if metrics.PurchasesTotal != nil {
		metrics.PurchasesTotal.Inc()
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateLibraries(ctx)
		_ = uc.cache.InvalidateBookList(ctx)
	}
	if uc.publisher != nil {
		_ = uc.publisher.Publish("inventory.book.purchased", map[string]interface{}{
			"customer": req.Customer,
			"store":    req.Store,
			"title":    req.Title,
		})
	}
	return nil
}

// PurchaseHistoryUseCase 顾客购买历史查询用例
type PurchaseHistoryUseCase struct {
	inventoryService *inventory.Service
}

// NewPurchaseHistoryUseCase 创建购买历史查询用例
func NewPurchaseHistoryUseCase(inventoryService *inventory.Service) *PurchaseHistoryUseCase {
	return &PurchaseHistoryUseCase{inventoryService: inventoryService}
}

// PurchaseHistoryResponse 购买历史响应DTO
type PurchaseHistoryResponse struct {
	Customer string             `json:"customer"`
	Books    []catalog.BookView `json:"books"`
}

// Execute 执行购买历史查询(按购买顺序)
func (uc *PurchaseHistoryUseCase) Execute(ctx context.Context, customerName string) (*PurchaseHistoryResponse, error) {
	views, err := uc.inventoryService.PurchaseHistory(customerName)
	if err != nil {
		return nil, err
	}
	return &PurchaseHistoryResponse{Customer: customerName, Books: views}, nil
}
