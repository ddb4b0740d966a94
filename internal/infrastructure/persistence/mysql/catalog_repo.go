package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// catalogGateway 目录持久化网关实现(MySQL)
// 设计说明:
// 1. 实现domain/catalog/gateway.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 唯一索引冲突转换为对应的重名业务错误(应用层查重之外的数据库兜底)
// 4. Delete不校验影响行数:内存索引是权威状态,库表行缺失
//    属于已知的不一致形态,由下一次全量加载修复
type catalogGateway struct {
	db *gorm.DB
}

// NewCatalogGateway 创建目录持久化网关
func NewCatalogGateway(db *gorm.DB) catalog.Gateway {
	return &catalogGateway{db: db}
}

// =========================================
// 图书
// =========================================

// CreateBook 插入图书行并回填自增ID
func (g *catalogGateway) CreateBook(ctx context.Context, b *catalog.Book) error {
	model := &BookModel{
		Title:    b.Title,
		AuthorID: b.AuthorID,
		GenreID:  b.GenreID,
		Price:    b.Price,
	}
	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateTitle
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// SaveBook 整行覆盖重写
func (g *catalogGateway) SaveBook(ctx context.Context, b *catalog.Book) error {
	model := &BookModel{
		ID:        b.ID,
		Title:     b.Title,
		AuthorID:  b.AuthorID,
		GenreID:   b.GenreID,
		Price:     b.Price,
		CreatedAt: b.CreatedAt,
	}
	if err := g.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateTitle
		}
		return apperrors.Wrap(err, "更新图书失败")
	}
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// DeleteBook 删除图书行
func (g *catalogGateway) DeleteBook(ctx context.Context, id uint) error {
	if err := g.db.WithContext(ctx).Delete(&BookModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除图书失败")
	}
	return nil
}

// AllBooks 全量加载图书(按ID升序,即插入顺序)
func (g *catalogGateway) AllBooks(ctx context.Context) ([]*catalog.Book, error) {
	var models []BookModel
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*catalog.Book, len(models))
	for i, m := range models {
		books[i] = &catalog.Book{
			ID:        m.ID,
			Title:     m.Title,
			AuthorID:  m.AuthorID,
			GenreID:   m.GenreID,
			Price:     m.Price,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return books, nil
}

// =========================================
// 作者
// =========================================

func (g *catalogGateway) CreateAuthor(ctx context.Context, a *catalog.Author) error {
	model := &AuthorModel{Name: a.Name}
	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateAuthor
		}
		return apperrors.Wrap(err, "创建作者失败")
	}
	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (g *catalogGateway) SaveAuthor(ctx context.Context, a *catalog.Author) error {
	model := &AuthorModel{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt}
	if err := g.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateAuthor
		}
		return apperrors.Wrap(err, "更新作者失败")
	}
	a.UpdatedAt = model.UpdatedAt
	return nil
}

func (g *catalogGateway) DeleteAuthor(ctx context.Context, id uint) error {
	if err := g.db.WithContext(ctx).Delete(&AuthorModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除作者失败")
	}
	return nil
}

func (g *catalogGateway) AllAuthors(ctx context.Context) ([]*catalog.Author, error) {
	var models []AuthorModel
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*catalog.Author, len(models))
	for i, m := range models {
		authors[i] = &catalog.Author{
			ID:        m.ID,
			Name:      m.Name,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return authors, nil
}

// =========================================
// 分类
// =========================================

func (g *catalogGateway) CreateGenre(ctx context.Context, gn *catalog.Genre) error {
	model := &GenreModel{Name: gn.Name}
	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateGenre
		}
		return apperrors.Wrap(err, "创建分类失败")
	}
	gn.ID = model.ID
	gn.CreatedAt = model.CreatedAt
	gn.UpdatedAt = model.UpdatedAt
	return nil
}

func (g *catalogGateway) DeleteGenre(ctx context.Context, id uint) error {
	if err := g.db.WithContext(ctx).Delete(&GenreModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除分类失败")
	}
	return nil
}

func (g *catalogGateway) AllGenres(ctx context.Context) ([]*catalog.Genre, error) {
	var models []GenreModel
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类列表失败")
	}

	genres := make([]*catalog.Genre, len(models))
	for i, m := range models {
		genres[i] = &catalog.Genre{
			ID:        m.ID,
			Name:      m.Name,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return genres, nil
}

// =========================================
// 顾客
// =========================================

func (g *catalogGateway) CreateCustomer(ctx context.Context, c *catalog.Customer) error {
	model := &CustomerModel{Name: c.Name}
	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateCustomer
		}
		return apperrors.Wrap(err, "创建顾客失败")
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (g *catalogGateway) SaveCustomer(ctx context.Context, c *catalog.Customer) error {
	model := &CustomerModel{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
	if err := g.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateCustomer
		}
		return apperrors.Wrap(err, "更新顾客失败")
	}
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (g *catalogGateway) DeleteCustomer(ctx context.Context, id uint) error {
	if err := g.db.WithContext(ctx).Delete(&CustomerModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除顾客失败")
	}
	return nil
}

// AllCustomers 全量加载顾客并装配购买历史
// 购买记录按purchases表自增ID升序回放,保持购买顺序
func (g *catalogGateway) AllCustomers(ctx context.Context) ([]*catalog.Customer, error) {
	var models []CustomerModel
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询顾客列表失败")
	}

	var links []PurchaseModel
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&links).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询购买记录失败")
	}
	byCustomer := make(map[uint][]uint)
	for _, l := range links {
		byCustomer[l.CustomerID] = append(byCustomer[l.CustomerID], l.BookID)
	}

	customers := make([]*catalog.Customer, len(models))
	for i, m := range models {
		customers[i] = &catalog.Customer{
			ID:        m.ID,
			Name:      m.Name,
			Purchases: byCustomer[m.ID],
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return customers, nil
}

// =========================================
// 门店
// =========================================

func (g *catalogGateway) CreateStore(ctx context.Context, st *catalog.Store) error {
	model := &StoreModel{Name: st.Name}
	if err := g.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateStore
		}
		return apperrors.Wrap(err, "创建门店失败")
	}
	st.ID = model.ID
	st.CreatedAt = model.CreatedAt
	st.UpdatedAt = model.UpdatedAt
	return nil
}

func (g *catalogGateway) SaveStore(ctx context.Context, st *catalog.Store) error {
	model := &StoreModel{ID: st.ID, Name: st.Name, CreatedAt: st.CreatedAt}
	if err := g.db.WithContext(ctx).Save(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrDuplicateStore
		}
		return apperrors.Wrap(err, "更新门店失败")
	}
	st.UpdatedAt = model.UpdatedAt
	return nil
}

func (g *catalogGateway) DeleteStore(ctx context.Context, id uint) error {
	if err := g.db.WithContext(ctx).Delete(&StoreModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除门店失败")
	}
	return nil
}

// AllStores 全量加载门店并装配书架
// 书架条目按store_books表自增ID升序回放,保持分配顺序
func (g *catalogGateway) AllStores(ctx context.Context) ([]*catalog.Store, error) {
	var models []StoreModel
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询门店列表失败")
	}

	var links []StoreBookModel
	if err := g.db.WithContext(ctx).Order("id ASC").Find(&links).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询门店书架失败")
	}
	byStore := make(map[uint][]uint)
	for _, l := range links {
		byStore[l.StoreID] = append(byStore[l.StoreID], l.BookID)
	}

	stores := make([]*catalog.Store, len(models))
	for i, m := range models {
		stores[i] = &catalog.Store{
			ID:        m.ID,
			Name:      m.Name,
			Library:   byStore[m.ID],
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
	}
	return stores, nil
}
