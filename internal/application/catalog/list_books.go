package catalog

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
)

// ListCache 列表缓存接口
// 由redis.CatalogCache实现;缓存不可用时注入nil,用例直接走内存目录
type ListCache interface {
	GetBookList(ctx context.Context) ([]catalog.BookView, error)
	SetBookList(ctx context.Context, views []catalog.BookView) error
	InvalidateBookList(ctx context.Context) error
	GetLibrary(ctx context.Context, storeKey string) ([]catalog.BookView, error)
	SetLibrary(ctx context.Context, storeKey string, views []catalog.BookView) error
	InvalidateLibraries(ctx context.Context) error
}

// ListBooksUseCase 图书列表用例
// 设计说明:
// 1. Cache-Aside:先查Redis缓存,未命中再走内存目录并回填
// 2. 返回展示视图(作者/分类已解析为名称),悬空引用解析为空串
type ListBooksUseCase struct {
	catalogService *catalog.Service
	cache          ListCache
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(catalogService *catalog.Service, cache ListCache) *ListBooksUseCase {
	return &ListBooksUseCase{
		catalogService: catalogService,
		cache:          cache,
	}
}

// ListBooksResponse 图书列表响应DTO
type ListBooksResponse struct {
	Books []catalog.BookView `json:"books"`
	Total int                `json:"total"`
}

// Execute 执行图书列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) (*ListBooksResponse, error) {
	// 1. 查缓存
	if uc.cache != nil {
		if views, err := uc.cache.GetBookList(ctx); err == nil && views != nil {
			return &ListBooksResponse{Books: views, Total: len(views)}, nil
		}
		// 缓存故障降级为直接走内存目录
	}

	// 2. 走内存目录(按加入顺序)
	books := uc.catalogService.ListBooks()
	views := make([]catalog.BookView, len(books))
	for i, b := range books {
		views[i] = uc.catalogService.ViewOf(b)
	}

	// 3. 回填缓存
	if uc.cache != nil {
		_ = uc.cache.SetBookList(ctx, views)
	}

	return &ListBooksResponse{Books: views, Total: len(views)}, nil
}

// FindBookUseCase 图书查询用例
type FindBookUseCase struct {
	catalogService *catalog.Service
}

// NewFindBookUseCase 创建图书查询用例
func NewFindBookUseCase(catalogService *catalog.Service) *FindBookUseCase {
	return &FindBookUseCase{catalogService: catalogService}
}

// Execute 按书名查询图书;未命中返回NotFound错误
func (uc *FindBookUseCase) Execute(ctx context.Context, title string) (*catalog.BookView, error) {
	b, err := uc.catalogService.FindBook(title)
	if err != nil {
		return nil, err
	}
	view := uc.catalogService.ViewOf(b)
	return &view, nil
}
