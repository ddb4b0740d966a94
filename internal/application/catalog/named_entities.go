package catalog

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
)

// 作者/分类/顾客/门店的管理用例
// 这四类实体只有名称一个业务属性,逐操作拆用例会产生大量
// 雷同的样板,这里每类实体一个用例结构,方法对应操作

// NamedEntity 名称型实体的通用DTO
type NamedEntity struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// =========================================
// 作者管理
// =========================================

// AuthorUseCase 作者管理用例
type AuthorUseCase struct {
	catalogService *catalog.Service
	cache          ListCache
}

// NewAuthorUseCase 创建作者管理用例
func NewAuthorUseCase(catalogService *catalog.Service, cache ListCache) *AuthorUseCase {
	return &AuthorUseCase{catalogService: catalogService, cache: cache}
}

// Add 新增作者
func (uc *AuthorUseCase) Add(ctx context.Context, name string) (*NamedEntity, error) {
	a, err := uc.catalogService.AddAuthor(ctx, name)
	if err != nil {
		return nil, err
	}
	SyncEntityGauges(uc.catalogService)
	return &NamedEntity{ID: a.ID, Name: a.Name}, nil
}

// Rename 作者改名
// 图书通过ID引用作者,改名后列表展示自动跟随,需要删列表缓存
func (uc *AuthorUseCase) Rename(ctx context.Context, name, newName string) (*NamedEntity, error) {
	a, err := uc.catalogService.RenameAuthor(ctx, name, newName)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.InvalidateBookList(ctx)
		_ = uc.cache.InvalidateLibraries(ctx)
	}
	return &NamedEntity{ID: a.ID, Name: a.Name}, nil
}

// Remove 删除作者(不级联图书)
func (uc *AuthorUseCase) Remove(ctx context.Context, name string) error {
	if err := uc.catalogService.RemoveAuthor(ctx, name); err != nil {
		return err
	}
	if uc.cache != nil {
		_ = uc.cache.InvalidateBookList(ctx)
		_ = uc.cache.InvalidateLibraries(ctx)
	}
	SyncEntityGauges(uc.catalogService)
	return nil
}

// List 作者列表(加入顺序)
func (uc *AuthorUseCase) List(ctx context.Context) []NamedEntity {
	authors := uc.catalogService.ListAuthors()
	out := make([]NamedEntity, len(authors))
	for i, a := range authors {
		out[i] = NamedEntity{ID: a.ID, Name: a.Name}
	}
	return out
}

// =========================================
// 分类管理(创建后不提供改名)
// =========================================

// GenreUseCase 分类管理用例
type GenreUseCase struct {
	catalogService *catalog.Service
	cache          ListCache
}

// NewGenreUseCase 创建分类管理用例
func NewGenreUseCase(catalogService *catalog.Service, cache ListCache) *GenreUseCase {
	return &GenreUseCase{catalogService: catalogService, cache: cache}
}

// Add 新增分类
func (uc *GenreUseCase) Add(ctx context.Context, name string) (*NamedEntity, error) {
	g, err := uc.catalogService.AddGenre(ctx, name)
	if err != nil {
		return nil, err
	}
	SyncEntityGauges(uc.catalogService)
	return &NamedEntity{ID: g.ID, Name: g.Name}, nil
}

// Remove 删除分类(不级联图书)
func (uc *GenreUseCase) Remove(ctx context.Context, name string) error {
	if err := uc.catalogService.RemoveGenre(ctx, name); err != nil {
		return err
	}
	if uc.cache != nil {
		_ = uc.cache.InvalidateBookList(ctx)
	}
	SyncEntityGauges(uc.catalogService)
	return nil
}

// List 分类列表(加入顺序)
func (uc *GenreUseCase) List(ctx context.Context) []NamedEntity {
	genres := uc.catalogService.ListGenres()
	out := make([]NamedEntity, len(genres))
	for i, g := range genres {
		out[i] = NamedEntity{ID: g.ID, Name: g.Name}
	}
	return out
}

// =========================================
// 顾客管理
// =========================================

// CustomerUseCase 顾客管理用例
type CustomerUseCase struct {
	catalogService *catalog.Service
}

// NewCustomerUseCase 创建顾客管理用例
func NewCustomerUseCase(catalogService *catalog.Service) *CustomerUseCase {
	return &CustomerUseCase{catalogService: catalogService}
}

// Add 新增顾客
func (uc *CustomerUseCase) Add(ctx context.Context, name string) (*NamedEntity, error) {
	c, err := uc.catalogService.AddCustomer(ctx, name)
	if err != nil {
		return nil, err
	}
	SyncEntityGauges(uc.catalogService)
	return &NamedEntity{ID: c.ID, Name: c.Name}, nil
}

// Remove 删除顾客(购买历史随实体移除)
func (uc *CustomerUseCase) Remove(ctx context.Context, name string) error {
	if err := uc.catalogService.RemoveCustomer(ctx, name); err != nil {
		return err
	}
	SyncEntityGauges(uc.catalogService)
	return nil
}

// List 顾客列表(加入顺序)
func (uc *CustomerUseCase) List(ctx context.Context) []NamedEntity {
	customers := uc.catalogService.ListCustomers()
	out := make([]NamedEntity, len(customers))
	for i, c := range customers {
		out[i] = NamedEntity{ID: c.ID, Name: c.Name}
	}
	return out
}

// =========================================
// 门店管理
// =========================================

// StoreUseCase 门店管理用例
type StoreUseCase struct {
	catalogService *catalog.Service
	cache          ListCache
}

// NewStoreUseCase 创建门店管理用例
func NewStoreUseCase(catalogService *catalog.Service, cache ListCache) *StoreUseCase {
	return &StoreUseCase{catalogService: catalogService, cache: cache}
}

// Add 新增门店
func (uc *StoreUseCase) Add(ctx context.Context, name string) (*NamedEntity, error) {
	st, err := uc.catalogService.AddStore(ctx, name)
	if err != nil {
		return nil, err
	}
	SyncEntityGauges(uc.catalogService)
	return &NamedEntity{ID: st.ID, Name: st.Name}, nil
}

// Remove 删除门店(书架关系随实体移除,不级联图书)
func (uc *StoreUseCase) Remove(ctx context.Context, name string) error {
	if err := uc.catalogService.RemoveStore(ctx, name); err != nil {
		return err
	}
	if uc.cache != nil {
		_ = uc.cache.InvalidateLibraries(ctx)
	}
	SyncEntityGauges(uc.catalogService)
	return nil
}

// List 门店列表(加入顺序)
func (uc *StoreUseCase) List(ctx context.Context) []NamedEntity {
	stores := uc.catalogService.ListStores()
	out := make([]NamedEntity, len(stores))
	for i, st := range stores {
		out[i] = NamedEntity{ID: st.ID, Name: st.Name}
	}
	return out
}
