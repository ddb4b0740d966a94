package catalog

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
)

// UpdateBookUseCase 图书更新用例
// 设计说明:
// 1. 请求中省略的字段保持原值(空更新是无操作,不报错)
// 2. 作者/分类按名称解析,不存在则创建(与录入一致)
type UpdateBookUseCase struct {
	catalogService *catalog.Service
	cache          ListCache
	publisher      EventPublisher
}

// NewUpdateBookUseCase 创建图书更新用例
func NewUpdateBookUseCase(catalogService *catalog.Service, cache ListCache, publisher EventPublisher) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		catalogService: catalogService,
		cache:          cache,
		publisher:      publisher,
	}
}

// UpdateBookRequest 图书更新请求DTO
// 指针/空串表示"不改这个字段"
type UpdateBookRequest struct {
	Title    string // 要更新的图书书名(定位用)
	NewTitle string // 新书名,空串表示不改
	Author   string // 新作者名,空串表示不改
	Genre    string // 新分类名,空串表示不改
	Price    *int64 // 新价格(分),nil表示不改
}

// UpdateBookResponse 图书更新响应DTO
type UpdateBookResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Price     int64  `json:"price"`
	UpdatedAt string `json:"updated_at"`
}

// Execute 执行图书更新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*UpdateBookResponse, error) {
	params := catalog.UpdateBookParams{
		Title: req.NewTitle,
		Price: req.Price,
	}

	// 解析作者/分类名称为ID
	if req.Author != "" {
		author, err := uc.catalogService.FindAuthor(req.Author)
		if err != nil {
			author, err = uc.catalogService.AddAuthor(ctx, req.Author)
			if err != nil {
				return nil, err
			}
		}
		params.AuthorID = &author.ID
	}
	if req.Genre != "" {
		genre, err := uc.catalogService.FindGenre(req.Genre)
		if err != nil {
			genre, err = uc.catalogService.AddGenre(ctx, req.Genre)
			if err != nil {
				return nil, err
			}
		}
		params.GenreID = &genre.ID
	}

	b, err := uc.catalogService.UpdateBook(ctx, req.Title, params)
	observeWrite("update", err)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		_ = uc.cache.InvalidateBookList(ctx)
		_ = uc.cache.InvalidateLibraries(ctx)
	}
	if uc.publisher != nil {
		_ = uc.publisher.Publish("catalog.book.updated", map[string]interface{}{
			"book_id": b.ID,
			"title":   b.Title,
		})
	}

	view := uc.catalogService.ViewOf(b)
	return &UpdateBookResponse{
		ID:        b.ID,
		Title:     view.Title,
		Author:    view.Author,
		Genre:     view.Genre,
		Price:     view.Price,
		UpdatedAt: b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}, nil
}

// RemoveBookUseCase 图书删除用例
// 删除不级联:门店书架与购买历史中的残留引用在展示时跳过
type RemoveBookUseCase struct {
	catalogService *catalog.Service
	cache          ListCache
	publisher      EventPublisher
}

// NewRemoveBookUseCase 创建图书删除用例
func NewRemoveBookUseCase(catalogService *catalog.Service, cache ListCache, publisher EventPublisher) *RemoveBookUseCase {
	return &RemoveBookUseCase{
		catalogService: catalogService,
		cache:          cache,
		publisher:      publisher,
	}
}

// Execute 执行图书删除
func (uc *RemoveBookUseCase) Execute(ctx context.Context, title string) error {
	err := uc.catalogService.RemoveBook(ctx, title)
	observeWrite("remove", err)
	if err != nil {
		return err
	}
	SyncEntityGauges(uc.catalogService)

	if uc.cache != nil {
		_ = uc.cache.InvalidateBookList(ctx)
		_ = uc.cache.InvalidateLibraries(ctx)
	}
	if uc.publisher != nil {
		_ = uc.publisher.Publish("catalog.book.removed", map[string]interface{}{
			"title": title,
		})
	}
	return nil
}
