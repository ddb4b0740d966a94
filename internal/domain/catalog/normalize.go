package catalog

import "strings"

// Normalizer 名称归一化策略
// 设计说明:
// 1. 展示名称一律去掉首尾空白后原样保存(保留大小写)
// 2. 索引键按配置决定是否大小写不敏感(默认不敏感),
//    同一策略对五类实体统一生效,不做逐类特判
type Normalizer struct {
	caseInsensitive bool
}

// NewNormalizer 创建归一化策略
func NewNormalizer(caseInsensitive bool) Normalizer {
	return Normalizer{caseInsensitive: caseInsensitive}
}

// Clean 返回用于保存与展示的名称(仅去首尾空白)
func (n Normalizer) Clean(name string) string {
	return strings.TrimSpace(name)
}

// Key 返回用于索引比较的键
func (n Normalizer) Key(name string) string {
	key := strings.TrimSpace(name)
	if n.caseInsensitive {
		key = strings.ToLower(key)
	}
	return key
}
