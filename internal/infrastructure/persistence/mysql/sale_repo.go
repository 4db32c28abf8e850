package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-manager/internal/domain/sale"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// saleRepository 销售记录仓储实现(MySQL)
// 设计说明:
// 1. Create必须在事务中调用(通过getDB从context获取事务DB)
// 2. 聚合报表直接用原生SQL实现,JOIN/GROUP BY交给数据库
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建销售记录仓储
func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &saleRepository{db: db}
}

// Create 创建销售记录
// 说明:自增主键即销售单号,插入后回填到实体
func (r *saleRepository) Create(ctx context.Context, s *sale.Sale) error {
	model := &SaleModel{
		BookID:     s.BookID,
		CustomerID: s.CustomerID,
		DateOfSale: s.DateOfSale,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		CreatedAt:  s.CreatedAt,
	}

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "写入销售记录失败")
	}

	// 回填自增ID
	s.ID = model.ID
	return nil
}

// ListByCustomerID 查询某客户的全部购买历史
func (r *saleRepository) ListByCustomerID(ctx context.Context, customerID uint) ([]*sale.Sale, error) {
	var models []SaleModel
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("date_of_sale ASC, id ASC").
		Find(&models).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "查询购买历史失败")
	}

	sales := make([]*sale.Sale, len(models))
	for i := range models {
		sales[i] = toSaleEntity(&models[i])
	}
	return sales, nil
}

// RevenueByGenre 按图书类型汇总收入
// SELECT books.genre, SUM(sales.total_price) FROM sales
// JOIN books ON sales.book_id = books.id GROUP BY books.genre
// 说明:销售菜单和报表菜单共用这一条查询,不在两处重复维护SQL
func (r *saleRepository) RevenueByGenre(ctx context.Context) ([]sale.GenreRevenue, error) {
	var rows []struct {
		Genre        string
		TotalRevenue int64
	}

	err := r.db.WithContext(ctx).
		Table("sales").
		Select("books.genre AS genre, SUM(sales.total_price) AS total_revenue").
		Joins("JOIN books ON sales.book_id = books.id").
		Group("books.genre").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "统计类型收入失败")
	}

	result := make([]sale.GenreRevenue, len(rows))
	for i, row := range rows {
		result[i] = sale.GenreRevenue{
			Genre:        row.Genre,
			TotalRevenue: row.TotalRevenue,
		}
	}
	return result, nil
}

// Report 图书销售报表(三表连接)
// SELECT sales.id, books.title, customers.name, sales.date_of_sale FROM sales
// JOIN books ON sales.book_id = books.id
// JOIN customers ON sales.customer_id = customers.id
func (r *saleRepository) Report(ctx context.Context) ([]sale.ReportRow, error) {
	var rows []struct {
		SaleID       uint
		BookTitle    string
		CustomerName string
		DateOfSale   time.Time
	}

	err := r.db.WithContext(ctx).
		Table("sales").
		Select("sales.id AS sale_id, books.title AS book_title, customers.name AS customer_name, sales.date_of_sale AS date_of_sale").
		Joins("JOIN books ON sales.book_id = books.id").
		Joins("JOIN customers ON sales.customer_id = customers.id").
		Order("sales.id ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "生成销售报表失败")
	}

	result := make([]sale.ReportRow, len(rows))
	for i, row := range rows {
		result[i] = sale.ReportRow{
			SaleID:       row.SaleID,
			BookTitle:    row.BookTitle,
			CustomerName: row.CustomerName,
			DateOfSale:   row.DateOfSale,
		}
	}
	return result, nil
}

// toSaleEntity GORM模型 → 领域实体
func toSaleEntity(model *SaleModel) *sale.Sale {
	return &sale.Sale{
		ID:         model.ID,
		BookID:     model.BookID,
		CustomerID: model.CustomerID,
		DateOfSale: model.DateOfSale,
		Quantity:   model.Quantity,
		TotalPrice: model.TotalPrice,
		CreatedAt:  model.CreatedAt,
	}
}
