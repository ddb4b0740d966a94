package inventory

import (
	"context"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// PurchaseScope 购买副作用范围
// 旧系统的各版本对"买走一本书"的处理不一致:有的只追加购买记录,
// 有的把书从门店书架上撤下(单副本假设),有的直接从目录整体删除。
// 这里做成显式配置,不替用户猜
type PurchaseScope string

const (
	// ScopeNone 只记录购买,不做任何移除
	ScopeNone PurchaseScope = "none"
	// ScopeStore 购买后从该门店书架移除
	ScopeStore PurchaseScope = "store"
	// ScopeCatalog 购买后从整个目录删除该图书
	ScopeCatalog PurchaseScope = "catalog"
)

// ParsePurchaseScope 解析配置值;空串按none处理
func ParsePurchaseScope(s string) (PurchaseScope, error) {
	switch PurchaseScope(s) {
	case ScopeNone, "":
		return ScopeNone, nil
	case ScopeStore:
		return ScopeStore, nil
	case ScopeCatalog:
		return ScopeCatalog, nil
	default:
		return "", ErrInvalidScope
	}
}

// Service 库存分配领域服务
// 设计说明:
// 1. 维护门店书架(多对多)与顾客购买记录(单向追加)两类关系,
//    实体本身的增删查归目录服务管,这里只动关系
// 2. 书名比较沿用目录的归一化策略,保证"同一本书"的判定口径一致
// 3. 与目录服务相同:先写内存再转发网关,失败不回滚
type Service struct {
	catalog *catalog.Service
	gw      Gateway
	scope   PurchaseScope
}

// NewService 创建库存服务
func NewService(cat *catalog.Service, gw Gateway, scope PurchaseScope) *Service {
	return &Service{catalog: cat, gw: gw, scope: scope}
}

// AssignToStore 将图书分配到门店书架
// 业务规则:同一门店不能重复持有同名图书(按归一化书名判定,
// 不是指针相等);重复分配拒绝且书架长度不变
func (s *Service) AssignToStore(ctx context.Context, storeName, title string) error {
	st, err := s.catalog.FindStore(storeName)
	if err != nil {
		return err
	}
	b, err := s.catalog.FindBook(title)
	if err != nil {
		return err
	}

	key := s.catalog.Norm().Key(b.Title)
	for _, id := range st.Library {
		held, err := s.catalog.FindBookByID(id)
		if err != nil {
			// 书架上残留的已删图书引用,跳过
			continue
		}
		if s.catalog.Norm().Key(held.Title) == key {
			return ErrAlreadyAssigned
		}
	}

	st.AddToLibrary(b.ID)
	if err := s.gw.CreateStoreLink(ctx, st.ID, b.ID); err != nil {
		return apperrors.WrapPersistence(err, "门店书架写入失败")
	}
	return nil
}

// UnassignFromStore 从门店书架撤下图书
// 移除所有匹配条目;没有匹配时静默无操作,不报错
func (s *Service) UnassignFromStore(ctx context.Context, storeName, title string) error {
	st, err := s.catalog.FindStore(storeName)
	if err != nil {
		return err
	}
	b, err := s.catalog.FindBook(title)
	if err != nil {
		return err
	}

	if st.RemoveFromLibrary(b.ID) == 0 {
		return nil
	}
	if err := s.gw.DeleteStoreLink(ctx, st.ID, b.ID); err != nil {
		return apperrors.WrapPersistence(err, "门店书架删除写入失败")
	}
	return nil
}

// StoreLibrary 门店书架的展示视图
// 残留的已删图书引用解析不到,直接跳过
func (s *Service) StoreLibrary(storeName string) ([]catalog.BookView, error) {
	st, err := s.catalog.FindStore(storeName)
	if err != nil {
		return nil, err
	}
	views := make([]catalog.BookView, 0, len(st.Library))
	for _, id := range st.Library {
		b, err := s.catalog.FindBookByID(id)
		if err != nil {
			continue
		}
		views = append(views, s.catalog.ViewOf(b))
	}
	return views, nil
}

// RecordPurchase 记录顾客在门店购买图书
// 每次调用恰好追加一条购买记录,历史顺序与调用顺序一致;
// 随后按配置的副作用范围处理书架/目录,各步独立落库,不跨行事务
func (s *Service) RecordPurchase(ctx context.Context, customerName, storeName, title string) error {
	c, err := s.catalog.FindCustomer(customerName)
	if err != nil {
		return err
	}
	st, err := s.catalog.FindStore(storeName)
	if err != nil {
		return err
	}
	b, err := s.catalog.FindBook(title)
	if err != nil {
		return err
	}

	c.RecordPurchase(b.ID)
	if err := s.gw.CreatePurchase(ctx, c.ID, b.ID); err != nil {
		return apperrors.WrapPersistence(err, "购买记录写入失败")
	}
	if err := s.catalog.SaveCustomer(ctx, c); err != nil {
		return err
	}

	switch s.scope {
	case ScopeStore:
		if st.RemoveFromLibrary(b.ID) > 0 {
			if err := s.gw.DeleteStoreLink(ctx, st.ID, b.ID); err != nil {
				return apperrors.WrapPersistence(err, "门店书架删除写入失败")
			}
		}
	case ScopeCatalog:
		if err := s.catalog.RemoveBook(ctx, b.Title); err != nil {
			return err
		}
	}
	return nil
}

// PurchaseHistory 顾客购买历史的展示视图(按购买顺序)
func (s *Service) PurchaseHistory(customerName string) ([]catalog.BookView, error) {
	c, err := s.catalog.FindCustomer(customerName)
	if err != nil {
		return nil, err
	}
	views := make([]catalog.BookView, 0, len(c.Purchases))
	for _, id := range c.Purchases {
		b, err := s.catalog.FindBookByID(id)
		if err != nil {
			continue
		}
		views = append(views, s.catalog.ViewOf(b))
	}
	return views, nil
}
