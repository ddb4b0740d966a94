package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if CatalogEntities == nil {
		t.Error("CatalogEntities未初始化")
	}
	if PurchasesTotal == nil {
		t.Error("PurchasesTotal未初始化")
	}

	// 重复初始化不应panic(promauto重复注册会panic,由initialized守卫)
	InitMetrics()
}

// TestCounterVec 测试带标签的计数器
func TestCounterVec(t *testing.T) {
	InitMetrics()

	IncCounterVec(CatalogWritesTotal, map[string]string{"op": "add", "result": "success"})
	IncCounterVec(CatalogWritesTotal, map[string]string{"op": "add", "result": "success"})
	IncCounterVec(CatalogWritesTotal, map[string]string{"op": "remove", "result": "failure"})

	value := getCounterVecValue(t, CatalogWritesTotal, map[string]string{"op": "add", "result": "success"})
	if value != 2 {
		t.Errorf("CounterVec值错误: expected=2, got=%f", value)
	}
}

// TestGaugeVec 测试按实体类型的实体数指标
func TestGaugeVec(t *testing.T) {
	InitMetrics()

	SetGaugeVec(CatalogEntities, map[string]string{"kind": "book"}, 3)
	SetGaugeVec(CatalogEntities, map[string]string{"kind": "store"}, 1)

	if v := getGaugeVecValue(t, CatalogEntities, map[string]string{"kind": "book"}); v != 3 {
		t.Errorf("GaugeVec值错误: expected=3, got=%f", v)
	}
	if v := getGaugeVecValue(t, CatalogEntities, map[string]string{"kind": "store"}); v != 1 {
		t.Errorf("GaugeVec值错误: expected=1, got=%f", v)
	}
}

// TestHistogramVec 测试请求耗时直方图
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"method": "GET", "path": "/api/v1/books"}
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.05)
	ObserveHistogramVec(HTTPRequestDuration, labels, 0.2)

	count := getHistogramVecCount(t, HTTPRequestDuration, labels)
	if count != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", count)
	}
}

// 辅助函数:获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	counter := counterVec.With(labels)
	if err := counter.(prometheus.Counter).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数:获取GaugeVec值
func getGaugeVecValue(t *testing.T, gaugeVec *prometheus.GaugeVec, labels map[string]string) float64 {
	var metric dto.Metric
	gauge := gaugeVec.With(labels)
	if err := gauge.(prometheus.Gauge).Write(&metric); err != nil {
		t.Fatalf("读取GaugeVec值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

// 辅助函数:获取HistogramVec观测次数
func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	if err := histogram.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}
