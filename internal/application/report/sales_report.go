package report

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/sale"
)

// SalesReportUseCase 图书销售报表用例
// 设计说明:纯只读三表连接(销售、图书、客户),不做过滤,每条销售记录一行
type SalesReportUseCase struct {
	saleRepo sale.Repository
}

// NewSalesReportUseCase 创建销售报表用例
func NewSalesReportUseCase(saleRepo sale.Repository) *SalesReportUseCase {
	return &SalesReportUseCase{saleRepo: saleRepo}
}

// SalesReportItem 销售报表项DTO
type SalesReportItem struct {
	SaleID       uint   `json:"sale_id"`
	BookTitle    string `json:"book_title"`
	CustomerName string `json:"customer_name"`
	DateOfSale   string `json:"date_of_sale"` // YYYY-MM-DD
}

// SalesReportResponse 销售报表响应DTO
type SalesReportResponse struct {
	Items []SalesReportItem `json:"items"`
}

// Execute 执行销售报表用例
func (uc *SalesReportUseCase) Execute(ctx context.Context) (*SalesReportResponse, error) {
	rows, err := uc.saleRepo.Report(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]SalesReportItem, len(rows))
	for i, row := range rows {
		items[i] = SalesReportItem{
			SaleID:       row.SaleID,
			BookTitle:    row.BookTitle,
			CustomerName: row.CustomerName,
			DateOfSale:   row.DateOfSale.Format("2006-01-02"),
		}
	}

	return &SalesReportResponse{Items: items}, nil
}
