package catalog

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// SearchField 搜索字段(封闭枚举)
// 设计说明:
// 搜索字段只允许"类型"和"作者"两种,每种映射到一条固定的参数化查询,
// 调用方传入的字符串永远不会拼接进SQL文本(防注入)
type SearchField int

const (
	SearchByGenre  SearchField = iota + 1 // 按类型搜索
	SearchByAuthor                        // 按作者搜索
)

// String 实现Stringer接口(方便日志输出)
func (f SearchField) String() string {
	switch f {
	case SearchByGenre:
		return "类型"
	case SearchByAuthor:
		return "作者"
	default:
		return "未知字段"
	}
}

// SearchBooksUseCase 图书搜索用例
type SearchBooksUseCase struct {
	bookRepo book.Repository
}

// NewSearchBooksUseCase 创建图书搜索用例
func NewSearchBooksUseCase(bookRepo book.Repository) *SearchBooksUseCase {
	return &SearchBooksUseCase{bookRepo: bookRepo}
}

// SearchBooksRequest 搜索请求DTO
type SearchBooksRequest struct {
	Field SearchField // 搜索字段(类型/作者)
	Value string      // 搜索值(等值匹配)
}

// BookItem 搜索结果项DTO
type BookItem struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Genre     string `json:"genre"`
	Price     int64  `json:"price"`
	PriceYuan string `json:"price_yuan"`
	Stock     int    `json:"stock"`
}

// SearchBooksResponse 搜索响应DTO
// 没有匹配结果时Items为空切片,不是错误
type SearchBooksResponse struct {
	Items []BookItem `json:"items"`
}

// Execute 执行图书搜索用例
// 说明:控制台层已把输入限制为genre/author,这里仍对非法枚举值兜底
func (uc *SearchBooksUseCase) Execute(ctx context.Context, req SearchBooksRequest) (*SearchBooksResponse, error) {
	var (
		books []*book.Book
		err   error
	)

	switch req.Field {
	case SearchByGenre:
		books, err = uc.bookRepo.FindByGenre(ctx, req.Value)
	case SearchByAuthor:
		books, err = uc.bookRepo.FindByAuthor(ctx, req.Value)
	default:
		return nil, apperrors.ErrInvalidParams
	}

	if err != nil {
		return nil, err
	}

	items := make([]BookItem, len(books))
	for i, b := range books {
		items[i] = BookItem{
			ID:        b.ID,
			Title:     b.Title,
			Author:    b.Author,
			Genre:     b.Genre,
			Price:     b.Price,
			PriceYuan: formatPrice(b.Price),
			Stock:     b.Stock,
		}
	}

	return &SearchBooksResponse{Items: items}, nil
}
