package catalog

import (
	"context"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// Service 目录领域服务
// 设计说明:
// 1. 权威状态是内存中的五套名称索引,持久化网关只是同步镜像:
//    每次写操作先查重/写内存,再转发给网关
// 2. 网关失败时返回持久化错误但不回滚内存写入——这是从旧系统
//    刻意保留下来的已知缺陷,内存与库表可能不一致,直到下一次Load
// 3. 单操作串行执行(单人单会话),服务内部不加锁
type Service struct {
	gw   Gateway
	norm Normalizer

	books     *nameIndex[Book]
	authors   *nameIndex[Author]
	genres    *nameIndex[Genre]
	customers *nameIndex[Customer]
	stores    *nameIndex[Store]
}

// NewService 创建目录服务
func NewService(gw Gateway, norm Normalizer) *Service {
	return &Service{
		gw:        gw,
		norm:      norm,
		books:     newNameIndex[Book](),
		authors:   newNameIndex[Author](),
		genres:    newNameIndex[Genre](),
		customers: newNameIndex[Customer](),
		stores:    newNameIndex[Store](),
	}
}

// Load 从持久化网关全量重建内存索引
// 进程启动时调用一次;也是修复内存/库表不一致的唯一手段
func (s *Service) Load(ctx context.Context) error {
	authors, err := s.gw.AllAuthors(ctx)
	if err != nil {
		return apperrors.WrapPersistence(err, "加载作者失败")
	}
	genres, err := s.gw.AllGenres(ctx)
	if err != nil {
		return apperrors.WrapPersistence(err, "加载分类失败")
	}
	books, err := s.gw.AllBooks(ctx)
	if err != nil {
		return apperrors.WrapPersistence(err, "加载图书失败")
	}
	customers, err := s.gw.AllCustomers(ctx)
	if err != nil {
		return apperrors.WrapPersistence(err, "加载顾客失败")
	}
	stores, err := s.gw.AllStores(ctx)
	if err != nil {
		return apperrors.WrapPersistence(err, "加载门店失败")
	}

	s.authors = newNameIndex[Author]()
	for _, a := range authors {
		s.authors.insert(s.norm.Key(a.Name), a)
		s.authors.rebindID(a.ID, a)
	}
	s.genres = newNameIndex[Genre]()
	for _, g := range genres {
		s.genres.insert(s.norm.Key(g.Name), g)
		s.genres.rebindID(g.ID, g)
	}
	s.books = newNameIndex[Book]()
	for _, b := range books {
		s.books.insert(s.norm.Key(b.Title), b)
		s.books.rebindID(b.ID, b)
	}
	s.customers = newNameIndex[Customer]()
	for _, c := range customers {
		s.customers.insert(s.norm.Key(c.Name), c)
		s.customers.rebindID(c.ID, c)
	}
	s.stores = newNameIndex[Store]()
	for _, st := range stores {
		s.stores.insert(s.norm.Key(st.Name), st)
		s.stores.rebindID(st.ID, st)
	}
	return nil
}

// =========================================
// 图书操作
// =========================================

// AddBook 新增图书
// 业务规则:
// - 书名去空白后不能为空,目录内不能重名(重名拒绝,不覆盖)
// - 价格不能为负数
// - 不校验作者/分类ID的存在性(按名称解析由应用层完成)
func (s *Service) AddBook(ctx context.Context, title string, authorID, genreID uint, price int64) (*Book, error) {
	title = s.norm.Clean(title)
	if title == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	key := s.norm.Key(title)
	if s.books.has(key) {
		return nil, ErrDuplicateTitle
	}

	b := NewBook(title, authorID, genreID, price)
	s.books.insert(key, b)

	// 先写内存再转发网关;失败不回滚(见Service设计说明2)
	if err := s.gw.CreateBook(ctx, b); err != nil {
		return nil, apperrors.WrapPersistence(err, "图书写入失败")
	}
	s.books.rebindID(b.ID, b)
	return b, nil
}

// FindBook 按书名查找图书
// 未命中返回ErrBookNotFound,不panic
func (s *Service) FindBook(title string) (*Book, error) {
	b, ok := s.books.get(s.norm.Key(title))
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

// FindBookByID 按ID查找图书
func (s *Service) FindBookByID(id uint) (*Book, error) {
	b, ok := s.books.getByID(id)
	if !ok {
		return nil, ErrBookNotFound
	}
	return b, nil
}

// UpdateBook 按字段更新图书
// 说明:网关没有部分更新原语,更新后整行覆盖重写
func (s *Service) UpdateBook(ctx context.Context, title string, p UpdateBookParams) (*Book, error) {
	oldKey := s.norm.Key(title)
	b, ok := s.books.get(oldKey)
	if !ok {
		return nil, ErrBookNotFound
	}

	if p.Price != nil && *p.Price < 0 {
		return nil, ErrInvalidPrice
	}

	newKey := oldKey
	if p.Title != "" {
		p.Title = s.norm.Clean(p.Title)
		if p.Title != "" {
			newKey = s.norm.Key(p.Title)
			if newKey != oldKey && s.books.has(newKey) {
				return nil, ErrDuplicateTitle
			}
		}
	}

	b.Update(p)
	if newKey != oldKey {
		s.books.rekey(oldKey, newKey, b)
	}

	if err := s.gw.SaveBook(ctx, b); err != nil {
		return nil, apperrors.WrapPersistence(err, "图书更新写入失败")
	}
	return b, nil
}

// RemoveBook 删除图书
// 说明:不级联清理门店书架与顾客购买记录,残留的陈旧引用
// 在展示时解析不到即跳过(接受的边界情况)
func (s *Service) RemoveBook(ctx context.Context, title string) error {
	key := s.norm.Key(title)
	b, ok := s.books.get(key)
	if !ok {
		return ErrBookNotFound
	}

	s.books.remove(key, b.ID)
	if err := s.gw.DeleteBook(ctx, b.ID); err != nil {
		return apperrors.WrapPersistence(err, "图书删除写入失败")
	}
	return nil
}

// ListBooks 返回按加入顺序排列的图书快照
func (s *Service) ListBooks() []*Book {
	return s.books.list()
}

// CountBooks 目录当前图书数(O(1))
func (s *Service) CountBooks() int {
	return s.books.count()
}
