package catalog

import (
	"context"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// 作者/分类/顾客/门店操作
// 四类实体的增删查流程一致:去空白校验 → 查重 → 写内存 → 转发网关

// =========================================
// 作者操作
// =========================================

// AddAuthor 新增作者
func (s *Service) AddAuthor(ctx context.Context, name string) (*Author, error) {
	name = s.norm.Clean(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	key := s.norm.Key(name)
	if s.authors.has(key) {
		return nil, ErrDuplicateAuthor
	}

	a := NewAuthor(name)
	s.authors.insert(key, a)
	if err := s.gw.CreateAuthor(ctx, a); err != nil {
		return nil, apperrors.WrapPersistence(err, "作者写入失败")
	}
	s.authors.rebindID(a.ID, a)
	return a, nil
}

// FindAuthor 按名称查找作者
func (s *Service) FindAuthor(name string) (*Author, error) {
	a, ok := s.authors.get(s.norm.Key(name))
	if !ok {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

// FindAuthorByID 按ID查找作者
func (s *Service) FindAuthorByID(id uint) (*Author, error) {
	a, ok := s.authors.getByID(id)
	if !ok {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

// RenameAuthor 作者改名
// 说明:图书引用作者ID,改名后展示自动跟随;库表的books行不受影响
func (s *Service) RenameAuthor(ctx context.Context, name, newName string) (*Author, error) {
	oldKey := s.norm.Key(name)
	a, ok := s.authors.get(oldKey)
	if !ok {
		return nil, ErrAuthorNotFound
	}

	newName = s.norm.Clean(newName)
	if newName == "" {
		return nil, ErrEmptyName
	}
	newKey := s.norm.Key(newName)
	if newKey != oldKey && s.authors.has(newKey) {
		return nil, ErrDuplicateAuthor
	}

	a.Rename(newName)
	if newKey != oldKey {
		s.authors.rekey(oldKey, newKey, a)
	}
	if err := s.gw.SaveAuthor(ctx, a); err != nil {
		return nil, apperrors.WrapPersistence(err, "作者更新写入失败")
	}
	return a, nil
}

// RemoveAuthor 删除作者
// 说明:不级联处理引用该作者的图书,展示时解析不到即留空
func (s *Service) RemoveAuthor(ctx context.Context, name string) error {
	key := s.norm.Key(name)
	a, ok := s.authors.get(key)
	if !ok {
		return ErrAuthorNotFound
	}

	s.authors.remove(key, a.ID)
	if err := s.gw.DeleteAuthor(ctx, a.ID); err != nil {
		return apperrors.WrapPersistence(err, "作者删除写入失败")
	}
	return nil
}

// ListAuthors 作者快照(加入顺序)
func (s *Service) ListAuthors() []*Author {
	return s.authors.list()
}

// CountAuthors 当前作者数
func (s *Service) CountAuthors() int {
	return s.authors.count()
}

// =========================================
// 分类操作(创建后不提供改名)
// =========================================

// AddGenre 新增分类
func (s *Service) AddGenre(ctx context.Context, name string) (*Genre, error) {
	name = s.norm.Clean(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	key := s.norm.Key(name)
	if s.genres.has(key) {
		return nil, ErrDuplicateGenre
	}

	g := NewGenre(name)
	s.genres.insert(key, g)
	if err := s.gw.CreateGenre(ctx, g); err != nil {
		return nil, apperrors.WrapPersistence(err, "分类写入失败")
	}
	s.genres.rebindID(g.ID, g)
	return g, nil
}

// FindGenre 按名称查找分类
func (s *Service) FindGenre(name string) (*Genre, error) {
	g, ok := s.genres.get(s.norm.Key(name))
	if !ok {
		return nil, ErrGenreNotFound
	}
	return g, nil
}

// FindGenreByID 按ID查找分类
func (s *Service) FindGenreByID(id uint) (*Genre, error) {
	g, ok := s.genres.getByID(id)
	if !ok {
		return nil, ErrGenreNotFound
	}
	return g, nil
}

// RemoveGenre 删除分类
func (s *Service) RemoveGenre(ctx context.Context, name string) error {
	key := s.norm.Key(name)
	g, ok := s.genres.get(key)
	if !ok {
		return ErrGenreNotFound
	}

	s.genres.remove(key, g.ID)
	if err := s.gw.DeleteGenre(ctx, g.ID); err != nil {
		return apperrors.WrapPersistence(err, "分类删除写入失败")
	}
	return nil
}

// ListGenres 分类快照(加入顺序)
func (s *Service) ListGenres() []*Genre {
	return s.genres.list()
}

// CountGenres 当前分类数
func (s *Service) CountGenres() int {
	return s.genres.count()
}

// =========================================
// 顾客操作
// =========================================

// AddCustomer 新增顾客
func (s *Service) AddCustomer(ctx context.Context, name string) (*Customer, error) {
	name = s.norm.Clean(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	key := s.norm.Key(name)
	if s.customers.has(key) {
		return nil, ErrDuplicateCustomer
	}

	c := NewCustomer(name)
	s.customers.insert(key, c)
	if err := s.gw.CreateCustomer(ctx, c); err != nil {
		return nil, apperrors.WrapPersistence(err, "顾客写入失败")
	}
	s.customers.rebindID(c.ID, c)
	return c, nil
}

// FindCustomer 按名称查找顾客
func (s *Service) FindCustomer(name string) (*Customer, error) {
	c, ok := s.customers.get(s.norm.Key(name))
	if !ok {
		return nil, ErrCustomerNotFound
	}
	return c, nil
}

// RemoveCustomer 删除顾客
// 说明:购买历史随实体移除,但不反向清理任何图书状态
func (s *Service) RemoveCustomer(ctx context.Context, name string) error {
	key := s.norm.Key(name)
	c, ok := s.customers.get(key)
	if !ok {
		return ErrCustomerNotFound
	}

	s.customers.remove(key, c.ID)
	if err := s.gw.DeleteCustomer(ctx, c.ID); err != nil {
		return apperrors.WrapPersistence(err, "顾客删除写入失败")
	}
	return nil
}

// ListCustomers 顾客快照(加入顺序)
func (s *Service) ListCustomers() []*Customer {
	return s.customers.list()
}

// CountCustomers 当前顾客数
func (s *Service) CountCustomers() int {
	return s.customers.count()
}

// SaveCustomer 顾客购买记录变更后整行重写
// 说明:供Inventory服务在追加购买记录后调用
func (s *Service) SaveCustomer(ctx context.Context, c *Customer) error {
	if err := s.gw.SaveCustomer(ctx, c); err != nil {
		return apperrors.WrapPersistence(err, "顾客更新写入失败")
	}
	return nil
}

// =========================================
// 门店操作
// =========================================

// AddStore 新增门店
func (s *Service) AddStore(ctx context.Context, name string) (*Store, error) {
	name = s.norm.Clean(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	key := s.norm.Key(name)
	if s.stores.has(key) {
		return nil, ErrDuplicateStore
	}

	st := NewStore(name)
	s.stores.insert(key, st)
	if err := s.gw.CreateStore(ctx, st); err != nil {
		return nil, apperrors.WrapPersistence(err, "门店写入失败")
	}
	s.stores.rebindID(st.ID, st)
	return st, nil
}

// FindStore 按名称查找门店
func (s *Service) FindStore(name string) (*Store, error) {
	st, ok := s.stores.get(s.norm.Key(name))
	if !ok {
		return nil, ErrStoreNotFound
	}
	return st, nil
}

// RemoveStore 删除门店
func (s *Service) RemoveStore(ctx context.Context, name string) error {
	key := s.norm.Key(name)
	st, ok := s.stores.get(key)
	if !ok {
		return ErrStoreNotFound
	}

	s.stores.remove(key, st.ID)
	if err := s.gw.DeleteStore(ctx, st.ID); err != nil {
		return apperrors.WrapPersistence(err, "门店删除写入失败")
	}
	return nil
}

// ListStores 门店快照(加入顺序)
func (s *Service) ListStores() []*Store {
	return s.stores.list()
}

// CountStores 当前门店数
func (s *Service) CountStores() int {
	return s.stores.count()
}

// Norm 返回目录使用的归一化策略(供Inventory服务按同一策略比较书名)
func (s *Service) Norm() Normalizer {
	return s.norm
}
