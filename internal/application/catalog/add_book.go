package catalog

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
)

// EventPublisher 变更事件发布接口
// 由pkg/mq的Publisher实现;消息队列未启用时注入nil,用例内判空跳过
type EventPublisher interface {
	Publish(routingKey string, message interface{}) error
}

// AddBookUseCase 图书录入用例
// 设计说明:
// 1. 应用层负责用例编排:按名称解析作者/分类,再调用领域服务
// 2. 作者/分类不存在时顺手创建(柜台录入图书时不强求先单独建档)
// 3. 写操作成功后删除列表缓存,并广播变更事件(消息队列可选)
type AddBookUseCase struct {
	catalogService *catalog.Service
	cache          ListCache
	publisher      EventPublisher
}

// NewAddBookUseCase 创建图书录入用例
func NewAddBookUseCase(catalogService *catalog.Service, cache ListCache, publisher EventPublisher) *AddBookUseCase {
	return &AddBookUseCase{
		catalogService: catalogService,
		cache:          cache,
		publisher:      publisher,
	}
}

// AddBookRequest 图书录入请求DTO
type AddBookRequest struct {
	Title  string // 书名
	Author string // 作者名
	Genre  string // 分类名
	Price  int64  // 价格(分)
}

// AddBookResponse 图书录入响应DTO
type AddBookResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"created_at"`
}

// Execute 执行图书录入
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*AddBookResponse, error) {
	// 1. 解析作者,不存在则创建
	author, err := uc.catalogService.FindAuthor(req.Author)
	if err != nil {
		author, err = uc.catalogService.AddAuthor(ctx, req.Author)
		if err != nil {
			return nil, err
		}
	}

	// 2. 解析分类,不存在则创建
	genre, err := uc.catalogService.FindGenre(req.Genre)
	if err != nil {
		genre, err = uc.catalogService.AddGenre(ctx, req.Genre)
		if err != nil {
			return nil, err
		}
	}

	// 3. 调用领域服务录入图书
	// 领域服务处理:书名去空白/查重、价格校验、写内存、转发网关
	b, err := uc.catalogService.AddBook(ctx, req.Title, author.ID, genre.ID, req.Price)
	observeWrite("add", err)
	if err != nil {
		return nil, err
	}
	SyncEntityGauges(uc.catalogService)

	// 4. 删除列表缓存(下次查询重建)
	if uc.cache != nil {
		_ = uc.cache.InvalidateBookList(ctx)
	}

	// 5. 广播变更事件
	if uc.publisher != nil {
		_ = uc.publisher.Publish("catalog.book.added", map[string]interface{}{
			"book_id": b.ID,
			"title":   b.Title,
		})
	}

	return &AddBookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    author.Name,
		Genre:     genre.Name,
		Price:     b.Price,
		CreatedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}
