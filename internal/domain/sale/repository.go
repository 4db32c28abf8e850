package sale

import (
	"context"
)

// Repository 销售记录仓储接口(依赖倒置原则)
// 设计说明:
// 1. Create必须在销售事务中调用(通过context传递事务)
// 2. 报表查询是只读聚合,直接在仓储层用SQL完成(JOIN/GROUP BY交给数据库)
// 3. RevenueByGenre是唯一的按类型收入查询,销售菜单和报表菜单共用,
//    不在两处重复维护同一条SQL
type Repository interface {
	// Create 创建销售记录
	Create(ctx context.Context, s *Sale) error

	// ListByCustomerID 查询某客户的全部购买历史(按销售日期升序)
	ListByCustomerID(ctx context.Context, customerID uint) ([]*Sale, error)

	// RevenueByGenre 按图书类型汇总收入
	// Sales JOIN Books ON BookID, GROUP BY Genre, SUM(TotalPrice)
	RevenueByGenre(ctx context.Context) ([]GenreRevenue, error)

	// Report 图书销售报表(三表连接,不过滤)
	// 每条销售记录产生一行:销售ID、书名、客户姓名、销售日期
	Report(ctx context.Context) ([]ReportRow, error)
}
