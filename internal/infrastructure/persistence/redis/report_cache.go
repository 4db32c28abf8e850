package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookstore-manager/internal/domain/sale"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// revenueKey 按类型收入报表的缓存键
const revenueKey = "report:revenue_by_genre"

// ReportCache 收入报表缓存
// 设计说明：
// 1. 按类型收入是聚合查询(JOIN+GROUP BY),缓存结果避免反复扫表
// 2. 每处理一笔销售后调用InvalidateRevenue使缓存失效
// 3. 缓存未命中返回(nil, nil),由调用方回源查库
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache 创建报表缓存
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// GetRevenue 读取缓存的按类型收入结果
func (c *ReportCache) GetRevenue(ctx context.Context) ([]sale.GenreRevenue, error) {
	data, err := c.client.Get(ctx, revenueKey).Bytes()
	if err == redis.Nil {
		return nil, nil // 未命中
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "读取报表缓存失败")
	}

	var rows []sale.GenreRevenue
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, apperrors.Wrap(err, "解析报表缓存失败")
	}
	return rows, nil
}

// SetRevenue 写入按类型收入结果
func (c *ReportCache) SetRevenue(ctx context.Context, rows []sale.GenreRevenue) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return apperrors.Wrap(err, "序列化报表缓存失败")
	}

	if err := c.client.Set(ctx, revenueKey, data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入报表缓存失败")
	}
	return nil
}

// InvalidateRevenue 使收入缓存失效
// 说明：每笔销售提交后调用,保证报表不会长时间落后于账本
func (c *ReportCache) InvalidateRevenue(ctx context.Context) error {
	if err := c.client.Del(ctx, revenueKey).Err(); err != nil {
		return apperrors.Wrap(err, "清除报表缓存失败")
	}
	return nil
}
