package catalog

import (
	"context"
)

// Gateway 持久化网关接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(MySQL)
// 2. 每类实体提供 插入/整行覆盖/删除/全量读取 四个原语,
//    没有部分更新原语:每次更新都是整行覆盖
// 3. 网关只负责同步镜像内存目录,权威状态在Service的内存索引中;
//    网关调用失败由Service包装为持久化错误上报,不自动重试
type Gateway interface {
	// 图书表 books
	CreateBook(ctx context.Context, b *Book) error
	SaveBook(ctx context.Context, b *Book) error
	DeleteBook(ctx context.Context, id uint) error
	AllBooks(ctx context.Context) ([]*Book, error)

	// 作者表 authors
	CreateAuthor(ctx context.Context, a *Author) error
	SaveAuthor(ctx context.Context, a *Author) error
	DeleteAuthor(ctx context.Context, id uint) error
	AllAuthors(ctx context.Context) ([]*Author, error)

	// 分类表 genres
	CreateGenre(ctx context.Context, g *Genre) error
	DeleteGenre(ctx context.Context, id uint) error
	AllGenres(ctx context.Context) ([]*Genre, error)

	// 顾客表 customers
	CreateCustomer(ctx context.Context, c *Customer) error
	SaveCustomer(ctx context.Context, c *Customer) error
	DeleteCustomer(ctx context.Context, id uint) error
	AllCustomers(ctx context.Context) ([]*Customer, error)

	// 门店表 stores
	CreateStore(ctx context.Context, s *Store) error
	SaveStore(ctx context.Context, s *Store) error
	DeleteStore(ctx context.Context, id uint) error
	AllStores(ctx context.Context) ([]*Store, error)
}
