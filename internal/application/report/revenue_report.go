package report

import (
	"context"
	"fmt"
	"log"

	"github.com/xiebiao/bookstore-manager/internal/domain/sale"
)

// RevenueCache 收入报表缓存接口
// 说明:由redis.ReportCache实现;可为nil(无缓存部署时直接查库)
type RevenueCache interface {
	GetRevenue(ctx context.Context) ([]sale.GenreRevenue, error)
	SetRevenue(ctx context.Context, rows []sale.GenreRevenue) error
}

// RevenueReportUseCase 按类型收入报表用例
// 设计说明:
// 1. 销售菜单的"按类型统计收入"和报表菜单的"收入报表"是同一个聚合,
//    共用本用例和仓储的同一条SQL,不在两处重复维护
// 2. 结果经Redis缓存,每笔销售提交后失效;缓存故障降级为直接查库
type RevenueReportUseCase struct {
	saleRepo sale.Repository
	cache    RevenueCache
}

// NewRevenueReportUseCase 创建收入报表用例
func NewRevenueReportUseCase(saleRepo sale.Repository, cache RevenueCache) *RevenueReportUseCase {
	return &RevenueReportUseCase{
		saleRepo: saleRepo,
		cache:    cache,
	}
}

// GenreRevenueItem 收入报表项DTO
type GenreRevenueItem struct {
	Genre        string `json:"genre"`
	TotalRevenue int64  `json:"total_revenue"`
	TotalYuan    string `json:"total_yuan"`
}

// RevenueReportResponse 收入报表响应DTO
// 没有任何销售记录的类型不会出现在结果中
type RevenueReportResponse struct {
	Items []GenreRevenueItem `json:"items"`
}

// Execute 执行收入报表用例
func (uc *RevenueReportUseCase) Execute(ctx context.Context) (*RevenueReportResponse, error) {
	// 1. 尝试读缓存(缓存故障不阻塞报表,降级查库)
	var rows []sale.GenreRevenue
	if uc.cache != nil {
		cached, err := uc.cache.GetRevenue(ctx)
		if err != nil {
			log.Printf("读取报表缓存失败,回源查库: %v", err)
		} else {
			rows = cached
		}
	}

	// 2. 缓存未命中,查库并回填
	if rows == nil {
		fresh, err := uc.saleRepo.RevenueByGenre(ctx)
		if err != nil {
			return nil, err
		}
		rows = fresh

		if uc.cache != nil {
			if err := uc.cache.SetRevenue(ctx, rows); err != nil {
				log.Printf("写入报表缓存失败: %v", err)
			}
		}
	}

	// 3. 转换为DTO
	items := make([]GenreRevenueItem, len(rows))
	for i, row := range rows {
		items[i] = GenreRevenueItem{
			Genre:        row.Genre,
			TotalRevenue: row.TotalRevenue,
			TotalYuan:    formatPrice(row.TotalRevenue),
		}
	}

	return &RevenueReportResponse{Items: items}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
