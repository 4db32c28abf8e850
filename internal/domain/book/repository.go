package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 按类型/按作者搜索是两条固定的参数化查询,
//    字段名不从调用方字符串拼接进SQL(防注入)
type Repository interface {
	// FindByID 根据ID查找图书
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByGenre 按类型精确匹配查找图书
	FindByGenre(ctx context.Context, genre string) ([]*Book, error)

	// FindByAuthor 按作者精确匹配查找图书
	FindByAuthor(ctx context.Context, author string) ([]*Book, error)

	// Update 全量更新图书信息(按主键覆盖五个字段)
	// 图书不存在时返回ErrBookNotFound(影响行数为0)
	Update(ctx context.Context, b *Book) error

	// LockByID 悲观锁查询图书(用于销售处理时锁定库存)
	// 使用SELECT FOR UPDATE锁定行,防止并发超卖
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加,负数表示减少
	// 内部会检查库存是否充足,不足则返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}
