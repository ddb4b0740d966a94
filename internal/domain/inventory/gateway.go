package inventory

import "context"

// Gateway 库存关系持久化网关
// 门店书架与购买记录各自落在一张关联表上,逐行写入,不跨行事务
type Gateway interface {
	// CreateStoreLink 新增门店-图书关联
	CreateStoreLink(ctx context.Context, storeID, bookID uint) error
	// DeleteStoreLink 删除门店-图书关联(所有匹配行)
	DeleteStoreLink(ctx context.Context, storeID, bookID uint) error
	// CreatePurchase 追加一条购买记录
	CreatePurchase(ctx context.Context, customerID, bookID uint) error
}
