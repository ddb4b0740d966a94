package catalog

import (
	"sync/atomic"
	"time"
)

// 目录实体定义
// DDD设计说明:
// 1. 五类实体(图书/作者/分类/顾客/门店)共用同一套标识规则:
//    稳定的自增ID + 可变的展示名称
// 2. 实体间引用一律存ID不存名称,改名不会造成悬空引用
//    (按名称查找由Service维护的名称索引负责)
// 3. 价格使用int64存储"分"为单位(避免浮点数精度问题)

// Book 图书实体(聚合根)
type Book struct {
	ID        uint
	Title     string // 书名(目录内唯一)
	AuthorID  uint   // 作者ID(不校验存在性,由调用方负责)
	GenreID   uint   // 分类ID
	Price     int64  // 价格(单位:分,1元=100分)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// totalBooks 进程级图书构造计数
// 说明:只增不减,删除图书不会回退;不等于目录当前图书数
var totalBooks atomic.Int64

// NewBook 创建新图书(工厂方法)
// 每次构造使进程级计数加一
func NewBook(title string, authorID, genreID uint, price int64) *Book {
	totalBooks.Add(1)
	now := time.Now()
	return &Book{
		Title:     title,
		AuthorID:  authorID,
		GenreID:   genreID,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TotalBooksCreated 返回进程启动以来构造过的图书总数
func TotalBooksCreated() int64 {
	return totalBooks.Load()
}

// ResetTotalBooksCreated 重置构造计数
// 说明:仅供测试初始化使用
func ResetTotalBooksCreated() {
	totalBooks.Store(0)
}

// UpdateBookParams 图书部分更新参数
// 字段为零值(空串/nil)表示保持原值不变
type UpdateBookParams struct {
	Title    string
	AuthorID *uint
	GenreID  *uint
	Price    *int64
}

// IsEmpty 是否没有任何字段需要更新
func (p UpdateBookParams) IsEmpty() bool {
	return p.Title == "" && p.AuthorID == nil && p.GenreID == nil && p.Price == nil
}

// Update 按字段更新图书(领域行为)
// 说明:不校验新的作者/分类是否存在于目录,由调用方负责
func (b *Book) Update(p UpdateBookParams) {
	if p.Title != "" {
		b.Title = p.Title
	}
	if p.AuthorID != nil {
		b.AuthorID = *p.AuthorID
	}
	if p.GenreID != nil {
		b.GenreID = *p.GenreID
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	b.UpdatedAt = time.Now()
}

// EqualBooks 图书相等性比较
// 按(书名,作者,分类,价格)逐项比较;仅用于展示层对比功能,不用于身份判定
func EqualBooks(a, b *Book) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Title == b.Title &&
		a.AuthorID == b.AuthorID &&
		a.GenreID == b.GenreID &&
		a.Price == b.Price
}

// Author 作者实体
type Author struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthor 创建作者
func NewAuthor(name string) *Author {
	now := time.Now()
	return &Author{Name: name, CreatedAt: now, UpdatedAt: now}
}

// Rename 修改展示名称
// 说明:引用该作者的图书存的是ID,改名后自动解析到新名称
func (a *Author) Rename(name string) {
	a.Name = name
	a.UpdatedAt = time.Now()
}

// Genre 分类实体
// 说明:分类创建后不提供改名操作
type Genre struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGenre 创建分类
func NewGenre(name string) *Genre {
	return &Genre{Name: name, CreatedAt: time.Now()}
}

// Customer 顾客实体
type Customer struct {
	ID        uint
	Name      string
	Purchases []uint // 购买记录(图书ID,按购买顺序追加,只增不删)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCustomer 创建顾客
func NewCustomer(name string) *Customer {
	now := time.Now()
	return &Customer{Name: name, CreatedAt: now, UpdatedAt: now}
}

// RecordPurchase 追加一条购买记录(领域行为)
// 每次调用恰好追加一条,顺序即购买顺序
func (c *Customer) RecordPurchase(bookID uint) {
	c.Purchases = append(c.Purchases, bookID)
	c.UpdatedAt = time.Now()
}

// Store 门店实体
type Store struct {
	ID        uint
	Name      string
	Library   []uint // 书架(图书ID,保留加入顺序用于展示)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewStore 创建门店
func NewStore(name string) *Store {
	now := time.Now()
	return &Store{Name: name, CreatedAt: now, UpdatedAt: now}
}

// AddToLibrary 将图书加入书架
// 说明:是否重复由Inventory服务按书名判断,此处只负责追加
func (s *Store) AddToLibrary(bookID uint) {
	s.Library = append(s.Library, bookID)
	s.UpdatedAt = time.Now()
}

// RemoveFromLibrary 从书架移除指定图书的全部条目
// 返回移除数量;没有匹配时返回0(不是错误)
func (s *Store) RemoveFromLibrary(bookID uint) int {
	kept := s.Library[:0]
	removed := 0
	for _, id := range s.Library {
		if id == bookID {
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.Library = kept
	if removed > 0 {
		s.UpdatedAt = time.Now()
	}
	return removed
}
