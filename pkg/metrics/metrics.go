// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念:
// - Counter(计数器):只增不减的累计值,如HTTP请求总数
// - Gauge(仪表盘):可增可减的瞬时值,如正在处理的请求数
// - Histogram(直方图):观测值的分布,自动计算分位数(P50/P90/P99)
//
// 指标命名规范:
// - Counter以_total结尾(http_requests_total)
// - Histogram以单位结尾(http_request_duration_seconds)
// - 避免高基数标签(不要用顾客名/书名做标签)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var initialized bool

// HTTP与业务指标
var (
	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// CatalogEntities 目录当前实体数(按实体类型)
	CatalogEntities *prometheus.GaugeVec

	// CatalogWritesTotal 目录写操作总数(按操作与结果)
	CatalogWritesTotal *prometheus.CounterVec

	// PurchasesTotal 购买记录总数
	PurchasesTotal prometheus.Counter

	// PersistenceFailuresTotal 持久化网关失败总数
	// 内存写入成功但落库失败的次数,非零说明内存与库表可能不一致
	PersistenceFailuresTotal prometheus.Counter
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次,用于注册所有指标到全局Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时(秒)",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	CatalogEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_entities",
			Help: "目录当前实体数",
		},
		[]string{"kind"}, // book | author | genre | customer | store
	)

	CatalogWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_writes_total",
			Help: "目录写操作总数",
		},
		[]string{"op", "result"}, // op: add/update/remove, result: success/failure
	)

	PurchasesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "purchases_total",
			Help: "购买记录总数",
		},
	)

	PersistenceFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "persistence_failures_total",
			Help: "持久化网关失败总数(内存已写入但落库失败)",
		},
	)
}

// IncCounterVec 递增CounterVec(带标签)
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// SetGaugeVec 设置GaugeVec值(带标签)
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值(带标签)
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
