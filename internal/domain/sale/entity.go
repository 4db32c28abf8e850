package sale

import (
	"time"
)

// Sale 销售记录实体(聚合根)
// 设计说明:
// 1. 销售记录只由销售处理用例在事务内创建,创建后不可变、不删除(追加账本)
// 2. TotalPrice冗余存储"成交时"的总价(单价×数量的历史快照,商家改价不影响历史记录)
// 3. BookID/CustomerID是对图书、客户聚合的引用,不做跨聚合对象嵌套
type Sale struct {
	ID         uint
	BookID     uint      // 图书ID
	CustomerID uint      // 客户ID
	DateOfSale time.Time // 销售日期(日期精度)
	Quantity   int       // 销售数量
	TotalPrice int64     // 成交总价(分),= 成交时单价 × 数量
	CreatedAt  time.Time
}

// NewSale 创建销售记录(工厂方法)
// 业务规则:
// - 数量必须大于0
// - 单价不能为负数
// 总价在这里一次性算定,之后不再重算
func NewSale(bookID, customerID uint, dateOfSale time.Time, quantity int, unitPrice int64) (*Sale, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidUnitPrice
	}
	return &Sale{
		BookID:     bookID,
		CustomerID: customerID,
		DateOfSale: dateOfSale,
		Quantity:   quantity,
		TotalPrice: unitPrice * int64(quantity),
		CreatedAt:  time.Now(),
	}, nil
}

// GenreRevenue 按类型汇总的收入行
// 由Sales JOIN Books GROUP BY Genre产生,没有销售记录的类型不会出现
type GenreRevenue struct {
	Genre        string // 图书类型
	TotalRevenue int64  // 该类型的收入合计(分)
}

// ReportRow 图书销售报表行
// 由Sales、Books、Customers三表连接产生,每条销售记录一行
type ReportRow struct {
	SaleID       uint      // 销售记录ID
	BookTitle    string    // 书名
	CustomerName string    // 客户姓名
	DateOfSale   time.Time // 销售日期
}
