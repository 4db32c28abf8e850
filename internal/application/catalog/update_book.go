package catalog

import (
	"context"
	"fmt"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// UpdateBookUseCase 更新图书详情用例
// 设计说明:
// 1. 全量覆盖更新:五个字段全部写入,不做部分更新、不做乐观锁检查
// 2. 图书不存在不是异常,返回ErrBookNotFound由控制台层提示"未找到图书"
// 3. 负数价格/库存在进入仓储前拦截(防御性校验)
type UpdateBookUseCase struct {
	bookRepo book.Repository
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(bookRepo book.Repository) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookRepo: bookRepo}
}

// UpdateBookRequest 更新图书请求DTO
type UpdateBookRequest struct {
	BookID uint   // 要更新的图书ID
	Title  string // 新书名
	Author string // 新作者
	Genre  string // 新类型
	Price  int64  // 新价格(分)
	Stock  int    // 新库存
}

// UpdateBookResponse 更新图书响应DTO
type UpdateBookResponse struct {
	BookID    uint   `json:"book_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	Stock     int    `json:"stock"`
}

// Execute 执行更新图书用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*UpdateBookResponse, error) {
	// 1. 参数校验
	if req.BookID == 0 {
		return nil, apperrors.ErrInvalidParams
	}

	// 2. 构造实体并应用领域规则(负数价格/库存被拒绝)
	b := &book.Book{ID: req.BookID}
	if err := b.UpdateDetails(req.Title, req.Author, req.Genre, req.Price, req.Stock); err != nil {
		return nil, err
	}

	// 3. 持久化(影响行数为0时仓储返回ErrBookNotFound)
	if err := uc.bookRepo.Update(ctx, b); err != nil {
		return nil, err
	}

	return &UpdateBookResponse{
		BookID:    b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Price:     b.Price,
		PriceYuan: formatPrice(b.Price),
		Stock:     b.Stock,
	}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
