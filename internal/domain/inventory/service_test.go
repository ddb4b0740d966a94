package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// fakeCatalogGateway 最小化的目录网关:回填自增ID,其余为空操作
type fakeCatalogGateway struct {
	nextID uint
}

func (g *fakeCatalogGateway) assignID() uint {
	g.nextID++
	return g.nextID
}

func (g *fakeCatalogGateway) CreateBook(_ context.Context, b *catalog.Book) error {
	b.ID = g.assignID()
	return nil
}
func (g *fakeCatalogGateway) SaveBook(context.Context, *catalog.Book) error { return nil }
func (g *fakeCatalogGateway) DeleteBook(context.Context, uint) error { return nil }
func (g *fakeCatalogGateway) AllBooks(context.Context) ([]*catalog.Book, error) {
	return nil, nil
}

func (g *fakeCatalogGateway) CreateAuthor(_ context.Context, a *catalog.Author) error {
	a.ID = g.assignID()
	return nil
}
func (g *fakeCatalogGateway) SaveAuthor(context.Context, *catalog.Author) error { return nil }
func (g *fakeCatalogGateway) DeleteAuthor(context.Context, uint) error { return nil }
func (g *fakeCatalogGateway) AllAuthors(context.Context) ([]*catalog.Author, error) {
	return nil, nil
}

func (g *fakeCatalogGateway) CreateGenre(_ context.Context, gn *catalog.Genre) error {
	gn.ID = g.assignID()
	return nil
}
func (g *fakeCatalogGateway) DeleteGenre(context.Context, uint) error { return nil }
func (g *fakeCatalogGateway) AllGenres(context.Context) ([]*catalog.Genre, error) {
	return nil, nil
}

func (g *fakeCatalogGateway) CreateCustomer(_ context.Context, c *catalog.Customer) error {
	c.ID = g.assignID()
	return nil
}
func (g *fakeCatalogGateway) SaveCustomer(context.Context, *catalog.Customer) error { return nil }
func (g *fakeCatalogGateway) DeleteCustomer(context.Context, uint) error { return nil }
func (g *fakeCatalogGateway) AllCustomers(context.Context) ([]*catalog.Customer, error) {
	return nil, nil
}

func (g *fakeCatalogGateway) CreateStore(_ context.Context, st *catalog.Store) error {
	st.ID = g.assignID()
	return nil
}
func (g *fakeCatalogGateway) SaveStore(context.Context, *catalog.Store) error { return nil }
func (g *fakeCatalogGateway) DeleteStore(context.Context, uint) error { return nil }
func (g *fakeCatalogGateway) AllStores(context.Context) ([]*catalog.Store, error) {
	return nil, nil
}

// link 门店书架/购买记录的(主体ID,图书ID)对
type link struct {
	ownerID uint
	bookID  uint
}

// fakeInvGateway 记录库存网关收到的全部写操作
type fakeInvGateway struct {
	storeLinks   []link
	deletedLinks []link
	purchases    []link
}

func (g *fakeInvGateway) CreateStoreLink(_ context.Context, storeID, bookID uint) error {
	g.storeLinks = append(g.storeLinks, link{storeID, bookID})
	return nil
}

func (g *fakeInvGateway) DeleteStoreLink(_ context.Context, storeID, bookID uint) error {
	g.deletedLinks = append(g.deletedLinks, link{storeID, bookID})
	return nil
}

func (g *fakeInvGateway) CreatePurchase(_ context.Context, customerID, bookID uint) error {
	g.purchases = append(g.purchases, link{customerID, bookID})
	return nil
}

// newTestEnv 搭建目录+库存服务,预置一家门店和一本书
func newTestEnv(t *testing.T, scope PurchaseScope) (*catalog.Service, *Service, *fakeInvGateway) {
	t.Helper()
	cat := catalog.NewService(&fakeCatalogGateway{}, catalog.NewNormalizer(true))
	gw := &fakeInvGateway{}
	svc := NewService(cat, gw, scope)

	ctx := context.Background()
	_, err := cat.AddStore(ctx, "中央门店")
	require.NoError(t, err)
	_, err = cat.AddBook(ctx, "1984", 0, 0, 1250)
	require.NoError(t, err)
	return cat, svc, gw
}

// TestParsePurchaseScope 测试副作用范围配置解析
func TestParsePurchaseScope(t *testing.T) {
	cases := []struct {
		in   string
		want PurchaseScope
	}{
		{"", ScopeNone},
		{"none", ScopeNone},
		{"store", ScopeStore},
		{"catalog", ScopeCatalog},
	}
	for _, c := range cases {
		got, err := ParsePurchaseScope(c.in)
		require.NoError(t, err, "输入: %q", c.in)
		assert.Equal(t, c.want, got)
	}

	_, err := ParsePurchaseScope("everything")
	assert.ErrorIs(t, err, ErrInvalidScope)
}

// TestAssignToStore 测试图书上架
func TestAssignToStore(t *testing.T) {
	ctx := context.Background()

	t.Run("正常上架", func(t *testing.T) {
		cat, svc, gw := newTestEnv(t, ScopeNone)

		require.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"))

		st, err := cat.FindStore("中央门店")
		require.NoError(t, err)
		assert.Len(t, st.Library, 1)
		assert.Len(t, gw.storeLinks, 1, "上架应同步写入关联表")
	})

	t.Run("重复上架拒绝且书架不变", func(t *testing.T) {
		cat, svc, _ := newTestEnv(t, ScopeNone)

		require.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"))
		err := svc.AssignToStore(ctx, "中央门店", "1984")
		require.ErrorIs(t, err, ErrAlreadyAssigned)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeAlreadyAssigned))

		st, findErr := cat.FindStore("中央门店")
		require.NoError(t, findErr)
		assert.Len(t, st.Library, 1, "拒绝后书架长度不变")
	})

	t.Run("同名判定按归一化书名", func(t *testing.T) {
		_, svc, _ := newTestEnv(t, ScopeNone)

		require.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"))
		// 带空白的同一本书,仍应判定为已上架
		err := svc.AssignToStore(ctx, "中央门店", "  1984  ")
		assert.ErrorIs(t, err, ErrAlreadyAssigned)
	})

	t.Run("门店或图书不存在", func(t *testing.T) {
		_, svc, _ := newTestEnv(t, ScopeNone)

		err := svc.AssignToStore(ctx, "不存在的门店", "1984")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

		err = svc.AssignToStore(ctx, "中央门店", "不存在的书")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
	})
}

// TestUnassignFromStore 测试图书下架
func TestUnassignFromStore(t *testing.T) {
	ctx := context.Background()

	t.Run("下架后可重新上架", func(t *testing.T) {
		cat, svc, gw := newTestEnv(t, ScopeNone)

		require.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"))
		require.NoError(t, svc.UnassignFromStore(ctx, "中央门店", "1984"))

		st, err := cat.FindStore("中央门店")
		require.NoError(t, err)
		assert.Empty(t, st.Library)
		assert.Len(t, gw.deletedLinks, 1)

		assert.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"), "下架后重新上架应成功")
	})

	t.Run("未上架时静默无操作", func(t *testing.T) {
		_, svc, gw := newTestEnv(t, ScopeNone)

		require.NoError(t, svc.UnassignFromStore(ctx, "中央门店", "1984"), "没有匹配不是错误")
		assert.Empty(t, gw.deletedLinks, "无匹配时不应有删除落库")
	})
}

// TestStoreLibraryView 测试书架展示视图
func TestStoreLibraryView(t *testing.T) {
	ctx := context.Background()
	cat, svc, _ := newTestEnv(t, ScopeNone)

	_, err := cat.AddBook(ctx, "动物农场", 0, 0, 980)
	require.NoError(t, err)
	require.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"))
	require.NoError(t, svc.AssignToStore(ctx, "中央门店", "动物农场"))

	views, err := svc.StoreLibrary("中央门店")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "1984", views[0].Title, "书架保持上架顺序")
	assert.Equal(t, "动物农场", views[1].Title)

	// 图书从目录删除后,书架上的陈旧引用展示时跳过
	require.NoError(t, cat.RemoveBook(ctx, "1984"))
	views, err = svc.StoreLibrary("中央门店")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "动物农场", views[0].Title)
}

// TestRecordPurchase 测试购买记录与副作用范围
func TestRecordPurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("每次调用恰好追加一条且保序", func(t *testing.T) {
		cat, svc, gw := newTestEnv(t, ScopeNone)
		_, err := cat.AddCustomer(ctx, "张三")
		require.NoError(t, err)
		_, err = cat.AddBook(ctx, "动物农场", 0, 0, 980)
		require.NoError(t, err)

		require.NoError(t, svc.RecordPurchase(ctx, "张三", "中央门店", "动物农场"))
		require.NoError(t, svc.RecordPurchase(ctx, "张三", "中央门店", "1984"))
		require.NoError(t, svc.RecordPurchase(ctx, "张三", "中央门店", "动物农场"))

		views, err := svc.PurchaseHistory("张三")
		require.NoError(t, err)
		require.Len(t, views, 3, "三次购买应有三条记录")
		assert.Equal(t, "动物农场", views[0].Title)
		assert.Equal(t, "1984", views[1].Title)
		assert.Equal(t, "动物农场", views[2].Title, "同一本书重复购买各记一条")
		assert.Len(t, gw.purchases, 3, "每条记录都应落库")
	})

	t.Run("none范围只记录不移除", func(t *testing.T) {
		cat, svc, _ := newTestEnv(t, ScopeNone)
		_, err := cat.AddCustomer(ctx, "张三")
		require.NoError(t, err)
		require.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"))

		require.NoError(t, svc.RecordPurchase(ctx, "张三", "中央门店", "1984"))

		st, err := cat.FindStore("中央门店")
		require.NoError(t, err)
		assert.Len(t, st.Library, 1, "书架不受影响")
		assert.Equal(t, 1, cat.CountBooks(), "目录不受影响")
	})

	t.Run("store范围购买后撤下书架", func(t *testing.T) {
		cat, svc, gw := newTestEnv(t, ScopeStore)
		_, err := cat.AddCustomer(ctx, "张三")
		require.NoError(t, err)
		require.NoError(t, svc.AssignToStore(ctx, "中央门店", "1984"))

		require.NoError(t, svc.RecordPurchase(ctx, "张三", "中央门店", "1984"))

		st, err := cat.FindStore("中央门店")
		require.NoError(t, err)
		assert.Empty(t, st.Library, "购买后该书从门店书架移除")
		assert.Len(t, gw.deletedLinks, 1)
		assert.Equal(t, 1, cat.CountBooks(), "目录仍保留该书")
	})

	t.Run("store范围书不在架时不删关联", func(t *testing.T) {
		cat, svc, gw := newTestEnv(t, ScopeStore)
		_, err := cat.AddCustomer(ctx, "张三")
		require.NoError(t, err)

		require.NoError(t, svc.RecordPurchase(ctx, "张三", "中央门店", "1984"))

		assert.Empty(t, gw.deletedLinks, "书架上本来没有,无删除落库")
		views, err := svc.PurchaseHistory("张三")
		require.NoError(t, err)
		assert.Len(t, views, 1, "购买记录照常追加")
	})

	t.Run("catalog范围购买后从目录删除", func(t *testing.T) {
		cat, svc, _ := newTestEnv(t, ScopeCatalog)
		_, err := cat.AddCustomer(ctx, "张三")
		require.NoError(t, err)

		require.NoError(t, svc.RecordPurchase(ctx, "张三", "中央门店", "1984"))

		assert.Equal(t, 0, cat.CountBooks(), "购买后图书从目录整体删除")

		// 历史里的引用随之悬空,展示时跳过
		views, err := svc.PurchaseHistory("张三")
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	t.Run("顾客门店图书任一不存在则拒绝", func(t *testing.T) {
		cat, svc, gw := newTestEnv(t, ScopeNone)
		_, err := cat.AddCustomer(ctx, "张三")
		require.NoError(t, err)

		err = svc.RecordPurchase(ctx, "李四", "中央门店", "1984")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

		err = svc.RecordPurchase(ctx, "张三", "不存在的门店", "1984")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

		err = svc.RecordPurchase(ctx, "张三", "中央门店", "不存在的书")
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

		assert.Empty(t, gw.purchases, "拒绝的购买不应留下记录")
	})
}
