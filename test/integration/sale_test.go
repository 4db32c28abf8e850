package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsale "github.com/xiebiao/bookstore-manager/internal/application/sale"
	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/mysql"
)

// 教学说明：销售事务集成测试
//
// 测试场景覆盖：
// 1. 完整销售流程(锁定→校验→扣库存→记账→提交)
// 2. 库存不足拒绝且无任何写入
// 3. 并发销售不超卖(SELECT FOR UPDATE行锁)

// TestProcessSale_EndToEnd 测试完整销售事务
func TestProcessSale_EndToEnd(t *testing.T) {
	db := SetupDB(t)

	bookID := SeedBook(t, db, "Go语言实战", "张三", "科技", 1000, 5)
	customerID := SeedCustomer(t, db, "王五", "wangwu@example.com", "13800000000")

	bookRepo := mysql.NewBookRepository(db)
	saleRepo := mysql.NewSaleRepository(db)
	uc := appsale.NewProcessSaleUseCase(bookRepo, saleRepo, mysql.NewTxManager(db), nil)

	resp, err := uc.Execute(context.Background(), appsale.ProcessSaleRequest{
		CustomerID: customerID,
		BookID:     bookID,
		DateOfSale: TestDate,
		Quantity:   3,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3000), resp.TotalPrice)
	assert.Equal(t, "30.00", resp.TotalYuan)
	assert.Equal(t, 2, resp.RemainingStock)

	// 验证数据库中的库存和销售记录
	b, err := bookRepo.FindByID(context.Background(), bookID)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Stock)

	sales, err := saleRepo.ListByCustomerID(context.Background(), customerID)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, int64(3000), sales[0].TotalPrice)
	assert.Equal(t, 3, sales[0].Quantity)
}

// TestProcessSale_InsufficientStockNoWrites 测试库存不足时无任何写入
func TestProcessSale_InsufficientStockNoWrites(t *testing.T) {
	db := SetupDB(t)

	bookID := SeedBook(t, db, "Go语言实战", "张三", "科技", 1000, 2)
	customerID := SeedCustomer(t, db, "王五", "wangwu@example.com", "13800000000")

	bookRepo := mysql.NewBookRepository(db)
	saleRepo := mysql.NewSaleRepository(db)
	uc := appsale.NewProcessSaleUseCase(bookRepo, saleRepo, mysql.NewTxManager(db), nil)

	_, err := uc.Execute(context.Background(), appsale.ProcessSaleRequest{
		CustomerID: customerID,
		BookID:     bookID,
		DateOfSale: TestDate,
		Quantity:   5,
	})
	assert.ErrorIs(t, err, book.ErrInsufficientStock)

	b, err := bookRepo.FindByID(context.Background(), bookID)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Stock)

	sales, err := saleRepo.ListByCustomerID(context.Background(), customerID)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

// TestProcessSale_ConcurrentNoOversell 测试并发销售不超卖
// 库存5本,10个并发请求各买3本,最多只能成功1笔
func TestProcessSale_ConcurrentNoOversell(t *testing.T) {
	db := SetupDB(t)

	bookID := SeedBook(t, db, "抢购图书", "张三", "科技", 1000, 5)
	customerID := SeedCustomer(t, db, "王五", "wangwu@example.com", "13800000000")

	bookRepo := mysql.NewBookRepository(db)
	saleRepo := mysql.NewSaleRepository(db)
	uc := appsale.NewProcessSaleUseCase(bookRepo, saleRepo, mysql.NewTxManager(db), nil)

	const workers = 10
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), appsale.ProcessSaleRequest{
				CustomerID: customerID,
				BookID:     bookID,
				DateOfSale: TestDate,
				Quantity:   3,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}

	// 库存5本每笔买3本,只有1笔能成交
	assert.Equal(t, 1, succeeded)

	b, err := bookRepo.FindByID(context.Background(), bookID)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Stock)
	assert.GreaterOrEqual(t, b.Stock, 0, "库存永远不能为负")

	sales, err := saleRepo.ListByCustomerID(context.Background(), customerID)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}
