package book

import (
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Book是图书聚合的根实体,包含图书的核心属性
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. Genre用于搜索和收入报表的分组统计
type Book struct {
	ID        uint
	Title     string // 书名
	Author    string // 作者
	Genre     string // 类型(小说、科技、历史等)
	Price     int64  // 价格(单位:分,1元=100分)
	Stock     int    // 库存数量
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateDetails 更新图书全部字段(领域行为)
// 业务规则:
// - 价格不能为负数
// - 库存不能为负数
// 说明:这是全量覆盖更新,五个字段全部写入,不做部分更新
func (b *Book) UpdateDetails(title, author, genre string, price int64, stock int) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	b.Title = title
	b.Author = author
	b.Genre = genre
	b.Price = price
	b.Stock = stock
	b.UpdatedAt = time.Now()
	return nil
}

// DecrStock 扣减库存(用于销售处理)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	b.UpdatedAt = time.Now()
	return nil
}

// HasStock 检查库存是否足够本次购买
func (b *Book) HasStock(quantity int) bool {
	return quantity > 0 && b.Stock >= quantity
}
