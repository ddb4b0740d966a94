package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookshop/internal/domain/catalog"
)

// CatalogCache 目录列表缓存
// 设计说明:
// 1. Cache-Aside策略:应用层先查缓存,未命中再走内存目录并回填
// 2. 任何目录写操作后删除对应列表缓存,不做原地更新
//    (更新操作并发执行时原地更新可能产生脏数据,删除简单可靠)
// 3. Key设计:catalog:books、catalog:library:{store}等,冒号分隔命名空间
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache 创建目录缓存
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

// GetBookList 获取图书列表缓存;未命中返回(nil, nil),由调用方回源
func (c *CatalogCache) GetBookList(ctx context.Context) ([]catalog.BookView, error) {
	val, err := c.client.Get(ctx, bookListKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	var views []catalog.BookView
	if err := json.Unmarshal([]byte(val), &views); err != nil {
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}
	return views, nil
}

// SetBookList 回填图书列表缓存
func (c *CatalogCache) SetBookList(ctx context.Context, views []catalog.BookView) error {
	val, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	if err := c.client.Set(ctx, bookListKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

// GetLibrary 获取门店书架缓存;未命中返回(nil, nil)
func (c *CatalogCache) GetLibrary(ctx context.Context, storeKey string) ([]catalog.BookView, error) {
	val, err := c.client.Get(ctx, libraryKey(storeKey)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("获取缓存失败: %w", err)
	}

	var views []catalog.BookView
	if err := json.Unmarshal([]byte(val), &views); err != nil {
		return nil, fmt.Errorf("反序列化失败: %w", err)
	}
	return views, nil
}

// SetLibrary 回填门店书架缓存
func (c *CatalogCache) SetLibrary(ctx context.Context, storeKey string, views []catalog.BookView) error {
	val, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	if err := c.client.Set(ctx, libraryKey(storeKey), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

// InvalidateBookList 删除图书列表缓存(图书/作者/分类写操作后调用)
func (c *CatalogCache) InvalidateBookList(ctx context.Context) error {
	if err := c.client.Del(ctx, bookListKey).Err(); err != nil {
		return fmt.Errorf("删除缓存失败: %w", err)
	}
	return nil
}

// InvalidateLibraries 删除所有门店书架缓存
// 使用SCAN遍历匹配key,UNLINK异步删除不阻塞
func (c *CatalogCache) InvalidateLibraries(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "catalog:library:*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("扫描缓存key失败: %w", err)
	}

	if len(keys) > 0 {
		if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("删除缓存失败: %w", err)
		}
	}
	return nil
}

const bookListKey = "catalog:books"

// libraryKey 门店书架缓存key,格式:catalog:library:{归一化门店名}
func libraryKey(storeKey string) string {
	return fmt.Sprintf("catalog:library:%s", storeKey)
}
