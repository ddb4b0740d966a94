package catalog

import (
	"github.com/xiebiao/bookshop/internal/domain/catalog"
	apperrors "github.com/xiebiao/bookshop/pkg/errors"
	"github.com/xiebiao/bookshop/pkg/metrics"
)

// 目录写操作的指标上报
// 指标未初始化时(单元测试里直接构造用例)全部跳过

// observeWrite 上报一次目录写操作的结果
// 持久化失败单独计数:非零说明内存与库表出现过不一致窗口
func observeWrite(op string, err error) {
	if metrics.CatalogWritesTotal == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
		if apperrors.IsCode(err, apperrors.ErrCodePersistence) && metrics.PersistenceFailuresTotal != nil {
			metrics.PersistenceFailuresTotal.Inc()
		}
	}
	metrics.IncCounterVec(metrics.CatalogWritesTotal, map[string]string{"op": op, "result": result})
}

// SyncEntityGauges 按实体类型刷新目录实体数指标
// 写操作成功后与启动加载后调用
func SyncEntityGauges(svc *catalog.Service) {
	if metrics.CatalogEntities == nil {
		return
	}
	metrics.SetGaugeVec(metrics.CatalogEntities, map[string]string{"kind": "book"}, float64(svc.CountBooks()))
	metrics.SetGaugeVec(metrics.CatalogEntities, map[string]string{"kind": "author"}, float64(svc.CountAuthors()))
	metrics.SetGaugeVec(metrics.CatalogEntities, map[string]string{"kind": "genre"}, float64(svc.CountGenres()))
	metrics.SetGaugeVec(metrics.CatalogEntities, map[string]string{"kind": "customer"}, float64(svc.CountCustomers()))
	metrics.SetGaugeVec(metrics.CatalogEntities, map[string]string{"kind": "store"}, float64(svc.CountStores()))
}
