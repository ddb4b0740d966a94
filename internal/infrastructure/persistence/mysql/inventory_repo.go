package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshop/internal/domain/inventory"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// inventoryGateway 库存关系持久化网关实现(MySQL)
// 门店书架与购买记录各落一张关联表,逐行写入,不跨行事务
type inventoryGateway struct {
	db *gorm.DB
}

// NewInventoryGateway 创建库存持久化网关
func NewInventoryGateway(db *gorm.DB) inventory.Gateway {
	return &inventoryGateway{db: db}
}

// CreateStoreLink 新增门店-图书关联行
func (g *inventoryGateway) CreateStoreLink(ctx context.Context, storeID, bookID uint) error {
	link := &StoreBookModel{StoreID: storeID, BookID: bookID}
	if err := g.db.WithContext(ctx).Create(link).Error; err != nil {
		return apperrors.Wrap(err, "创建门店书架关联失败")
	}
	return nil
}

// DeleteStoreLink 删除门店-图书关联(所有匹配行)
func (g *inventoryGateway) DeleteStoreLink(ctx context.Context, storeID, bookID uint) error {
	err := g.db.WithContext(ctx).
		Where("store_id = ? AND book_id = ?", storeID, bookID).
		Delete(&StoreBookModel{}).Error
	if err != nil {
		return apperrors.Wrap(err, "删除门店书架关联失败")
	}
	return nil
}

// CreatePurchase 追加一条购买记录行
func (g *inventoryGateway) CreatePurchase(ctx context.Context, customerID, bookID uint) error {
	p := &PurchaseModel{CustomerID: customerID, BookID: bookID}
	if err := g.db.WithContext(ctx).Create(p).Error; err != nil {
		return apperrors.Wrap(err, "创建购买记录失败")
	}
	return nil
}
