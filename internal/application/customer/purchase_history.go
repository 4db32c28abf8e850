package customer

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/sale"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// PurchaseHistoryUseCase 客户购买历史查询用例
// 设计说明:只读查询,按销售日期升序返回该客户的全部销售记录
type PurchaseHistoryUseCase struct {
	saleRepo sale.Repository
}

// NewPurchaseHistoryUseCase 创建购买历史查询用例
func NewPurchaseHistoryUseCase(saleRepo sale.Repository) *PurchaseHistoryUseCase {
	return &PurchaseHistoryUseCase{saleRepo: saleRepo}
}

// PurchaseItem 购买历史项DTO
type PurchaseItem struct {
	SaleID     uint   `json:"sale_id"`
	BookID     uint   `json:"book_id"`
	DateOfSale string `json:"date_of_sale"` // YYYY-MM-DD
	Quantity   int    `json:"quantity"`
}

// PurchaseHistoryResponse 购买历史响应DTO
// 没有购买记录时Items为空切片,不是错误
type PurchaseHistoryResponse struct {
	CustomerID uint           `json:"customer_id"`
	Items      []PurchaseItem `json:"items"`
}

// Execute 执行购买历史查询用例
func (uc *PurchaseHistoryUseCase) Execute(ctx context.Context, customerID uint) (*PurchaseHistoryResponse, error) {
	if customerID == 0 {
		return nil, apperrors.ErrInvalidParams
	}

	sales, err := uc.saleRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]PurchaseItem, len(sales))
	for i, s := range sales {
		items[i] = PurchaseItem{
			SaleID:     s.ID,
			BookID:     s.BookID,
			DateOfSale: s.DateOfSale.Format("2006-01-02"),
			Quantity:   s.Quantity,
		}
	}

	return &PurchaseHistoryResponse{
		CustomerID: customerID,
		Items:      items,
	}, nil
}
