package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// fakeGateway 回填自增ID的空操作目录网关
type fakeGateway struct {
	nextID uint
}

func (g *fakeGateway) assignID() uint {
	g.nextID++
	return g.nextID
}

func (g *fakeGateway) CreateBook(_ context.Context, b *catalog.Book) error {
	b.ID = g.assignID()
	return nil
}
func (g *fakeGateway) SaveBook(context.Context, *catalog.Book) error { return nil }
func (g *fakeGateway) DeleteBook(context.Context, uint) error { return nil }
func (g *fakeGateway) AllBooks(context.Context) ([]*catalog.Book, error) { return nil, nil }
func (g *fakeGateway) CreateAuthor(_ context.Context, a *catalog.Author) error {
	a.ID = g.assignID()
	return nil
}
func (g *fakeGateway) SaveAuthor(context.Context, *catalog.Author) error { return nil }
func (g *fakeGateway) DeleteAuthor(context.Context, uint) error { return nil }
func (g *fakeGateway) AllAuthors(context.Context) ([]*catalog.Author, error) { return nil, nil }
func (g *fakeGateway) CreateGenre(_ context.Context, gn *catalog.Genre) error {
	gn.ID = g.assignID()
	return nil
}
func (g *fakeGateway) DeleteGenre(context.Context, uint) error { return nil }
func (g *fakeGateway) AllGenres(context.Context) ([]*catalog.Genre, error) { return nil, nil }
func (g *fakeGateway) CreateCustomer(_ context.Context, c *catalog.Customer) error {
	c.ID = g.assignID()
	return nil
}
func (g *fakeGateway) SaveCustomer(context.Context, *catalog.Customer) error { return nil }
func (g *fakeGateway) DeleteCustomer(context.Context, uint) error { return nil }
func (g *fakeGateway) AllCustomers(context.Context) ([]*catalog.Customer, error) { return nil, nil }
func (g *fakeGateway) CreateStore(_ context.Context, st *catalog.Store) error {
	st.ID = g.assignID()
	return nil
}
func (g *fakeGateway) SaveStore(context.Context, *catalog.Store) error { return nil }
func (g *fakeGateway) DeleteStore(context.Context, uint) error { return nil }
func (g *fakeGateway) AllStores(context.Context) ([]*catalog.Store, error) { return nil, nil }

// fakeCache 记录失效次数的列表缓存
type fakeCache struct {
	bookList          []catalog.BookView
	listInvalidations int
	libInvalidations  int
	setBookListCalls  int
}

func (c *fakeCache) GetBookList(context.Context) ([]catalog.BookView, error) {
	return c.bookList, nil
}

func (c *fakeCache) SetBookList(_ context.Context, views []catalog.BookView) error {
	c.bookList = views
	c.setBookListCalls++
	return nil
}

func (c *fakeCache) InvalidateBookList(context.Context) error {
	c.bookList = nil
	c.listInvalidations++
	return nil
}

func (c *fakeCache) GetLibrary(context.Context, string) ([]catalog.BookView, error) {
	return nil, nil
}
func (c *fakeCache) SetLibrary(context.Context, string, []catalog.BookView) error { return nil }
func (c *fakeCache) InvalidateLibraries(context.Context) error {
	c.libInvalidations++
	return nil
}

// fakePublisher 记录广播过的路由键
type fakePublisher struct {
	routingKeys []string
}

func (p *fakePublisher) Publish(routingKey string, _ interface{}) error {
	p.routingKeys = append(p.routingKeys, routingKey)
	return nil
}

func newTestCatalog() *catalog.Service {
	return catalog.NewService(&fakeGateway{}, catalog.NewNormalizer(true))
}

// TestAddBookUseCase 测试图书录入用例
func TestAddBookUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("作者分类不存在时顺手创建", func(t *testing.T) {
		svc := newTestCatalog()
		cache := &fakeCache{}
		pub := &fakePublisher{}
		uc := NewAddBookUseCase(svc, cache, pub)

		resp, err := uc.Execute(ctx, AddBookRequest{
			Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250,
		})
		require.NoError(t, err)
		assert.Equal(t, "奥威尔", resp.Author)
		assert.Equal(t, "反乌托邦", resp.Genre)

		_, err = svc.FindAuthor("奥威尔")
		assert.NoError(t, err, "作者应已建档")
		_, err = svc.FindGenre("反乌托邦")
		assert.NoError(t, err, "分类应已建档")

		assert.Equal(t, 1, cache.listInvalidations, "录入后应失效列表缓存")
		assert.Equal(t, []string{"catalog.book.added"}, pub.routingKeys)
	})

	t.Run("复用已有作者", func(t *testing.T) {
		svc := newTestCatalog()
		uc := NewAddBookUseCase(svc, nil, nil)

		_, err := uc.Execute(ctx, AddBookRequest{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, AddBookRequest{Title: "动物农场", Author: "奥威尔", Genre: "寓言", Price: 980})
		require.NoError(t, err)

		assert.Equal(t, 1, svc.CountAuthors(), "同名作者不重复建档")
		assert.Equal(t, 2, svc.CountGenres())
	})

	t.Run("缓存与消息队列未注入时正常工作", func(t *testing.T) {
		uc := NewAddBookUseCase(newTestCatalog(), nil, nil)
		_, err := uc.Execute(ctx, AddBookRequest{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250})
		assert.NoError(t, err)
	})
}

// TestListBooksUseCase 测试图书列表用例
func TestListBooksUseCase(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalog()
	cache := &fakeCache{}
	addUC := NewAddBookUseCase(svc, cache, nil)
	listUC := NewListBooksUseCase(svc, cache)

	_, err := addUC.Execute(ctx, AddBookRequest{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250})
	require.NoError(t, err)

	// 第一次查询:缓存未命中,走内存目录并回填
	resp, err := listUC.Execute(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "奥威尔", resp.Books[0].Author, "视图应解析作者名称")
	assert.Equal(t, 1, cache.setBookListCalls, "未命中后应回填缓存")

	// 第二次查询:缓存命中,不再回填
	_, err = listUC.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.setBookListCalls, "命中时不应再回填")
}

// TestUpdateBookUseCase 测试图书更新用例
func TestUpdateBookUseCase(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalog()
	cache := &fakeCache{}
	pub := &fakePublisher{}
	addUC := NewAddBookUseCase(svc, cache, nil)
	updateUC := NewUpdateBookUseCase(svc, cache, pub)

	_, err := addUC.Execute(ctx, AddBookRequest{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250})
	require.NoError(t, err)

	newPrice := int64(1500)
	resp, err := updateUC.Execute(ctx, UpdateBookRequest{
		Title:    "1984",
		NewTitle: "一九八四",
		Author:   "乔治·奥威尔", // 新作者名,自动建档
		Price:    &newPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, "一九八四", resp.Title)
	assert.Equal(t, "乔治·奥威尔", resp.Author)
	assert.Equal(t, int64(1500), resp.Price)

	assert.Equal(t, 1, cache.listInvalidations)
	assert.Equal(t, 1, cache.libInvalidations, "改名改价会影响书架视图,一并失效")
	assert.Equal(t, []string{"catalog.book.updated"}, pub.routingKeys)

	_, err = svc.FindBook("一九八四")
	assert.NoError(t, err)
}

// TestRemoveBookUseCase 测试图书删除用例
func TestRemoveBookUseCase(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalog()
	cache := &fakeCache{}
	addUC := NewAddBookUseCase(svc, cache, nil)
	removeUC := NewRemoveBookUseCase(svc, cache, nil)

	_, err := addUC.Execute(ctx, AddBookRequest{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250})
	require.NoError(t, err)

	require.NoError(t, removeUC.Execute(ctx, "1984"))
	assert.Equal(t, 0, svc.CountBooks())

	err = removeUC.Execute(ctx, "1984")
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound), "重复删除应报不存在")
}

// TestCombineBooksUseCase 测试图书组合用例
func TestCombineBooksUseCase(t *testing.T) {
	ctx := context.Background()
	svc := newTestCatalog()
	addUC := NewAddBookUseCase(svc, nil, nil)
	combineUC := NewCombineBooksUseCase(svc)

	_, err := addUC.Execute(ctx, AddBookRequest{Title: "1984", Author: "奥威尔", Genre: "反乌托邦", Price: 1250})
	require.NoError(t, err)
	_, err = addUC.Execute(ctx, AddBookRequest{Title: "动物农场", Author: "奥威尔", Genre: "寓言", Price: 980})
	require.NoError(t, err)

	t.Run("合并", func(t *testing.T) {
		view, err := combineUC.Execute(ctx, CombineBooksRequest{Op: "combine", TitleA: "1984", TitleB: "动物农场"})
		require.NoError(t, err)
		assert.Equal(t, "1984 动物农场", view.Title)
		assert.Equal(t, int64(2230), view.Price)
	})

	t.Run("求差", func(t *testing.T) {
		view, err := combineUC.Execute(ctx, CombineBooksRequest{Op: "difference", TitleA: "1984", TitleB: "动物农场"})
		require.NoError(t, err)
		assert.Equal(t, int64(270), view.Price)
	})

	t.Run("缩放", func(t *testing.T) {
		view, err := combineUC.Execute(ctx, CombineBooksRequest{Op: "scale", TitleA: "1984", Factor: 3})
		require.NoError(t, err)
		assert.Equal(t, int64(3750), view.Price)
		assert.Equal(t, "1984", view.Title)
	})

	t.Run("合成结果不进目录", func(t *testing.T) {
		assert.Equal(t, 2, svc.CountBooks())
		_, err := svc.FindBook("1984 动物农场")
		assert.Error(t, err)
	})

	t.Run("无效操作拒绝", func(t *testing.T) {
		_, err := combineUC.Execute(ctx, CombineBooksRequest{Op: "merge", TitleA: "1984", TitleB: "动物农场"})
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidValue))
	})
}
