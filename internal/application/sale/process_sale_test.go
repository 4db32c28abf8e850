package sale

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/sale"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// 测试说明:
// 用内存版仓储和事务管理器验证销售处理的事务语义:
// - 成功路径:扣库存+记账一起生效
// - 拒绝路径:库存不足时无任何写入
// - 回滚路径:记账失败时库存扣减一并撤销
// 内存事务管理器通过"快照-恢复"模拟数据库的COMMIT/ROLLBACK

// fakeStore 内存数据存储
type fakeStore struct {
	books          map[uint]*book.Book
	sales          []*sale.Sale
	failSaleCreate bool // 模拟写入销售记录时的存储故障
}

func newFakeStore(books ...*book.Book) *fakeStore {
	m := make(map[uint]*book.Book, len(books))
	for _, b := range books {
		copied := *b
		m[b.ID] = &copied
	}
	return &fakeStore{books: m}
}

// snapshot 深拷贝当前状态(模拟事务开始)
func (s *fakeStore) snapshot() *fakeStore {
	books := make(map[uint]*book.Book, len(s.books))
	for id, b := range s.books {
		copied := *b
		books[id] = &copied
	}
	sales := make([]*sale.Sale, len(s.sales))
	for i, sl := range s.sales {
		copied := *sl
		sales[i] = &copied
	}
	return &fakeStore{books: books, sales: sales, failSaleCreate: s.failSaleCreate}
}

// restore 恢复到快照状态(模拟ROLLBACK)
func (s *fakeStore) restore(snap *fakeStore) {
	s.books = snap.books
	s.sales = snap.sales
}

// fakeBookRepo 内存图书仓储
type fakeBookRepo struct {
	store *fakeStore
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.store.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookRepo) FindByGenre(ctx context.Context, genre string) ([]*book.Book, error) {
	var result []*book.Book
	for _, b := range r.store.books {
		if b.Genre == genre {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBookRepo) FindByAuthor(ctx context.Context, author string) ([]*book.Book, error) {
	var result []*book.Book
	for _, b := range r.store.books {
		if b.Author == author {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	if _, ok := r.store.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	copied := *b
	r.store.books[b.ID] = &copied
	return nil
}

// LockByID 单进程内存实现,无须真正加锁
func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	b, ok := r.store.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Stock += delta
	return nil
}

// fakeSaleRepo 内存销售记录仓储
type fakeSaleRepo struct {
	store *fakeStore
}

func (r *fakeSaleRepo) Create(ctx context.Context, s *sale.Sale) error {
	if r.store.failSaleCreate {
		return apperrors.Wrap(errors.New("connection lost"), "写入销售记录失败")
	}
	s.ID = uint(len(r.store.sales) + 1)
	copied := *s
	r.store.sales = append(r.store.sales, &copied)
	return nil
}

func (r *fakeSaleRepo) ListByCustomerID(ctx context.Context, customerID uint) ([]*sale.Sale, error) {
	var result []*sale.Sale
	for _, s := range r.store.sales {
		if s.CustomerID == customerID {
			copied := *s
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeSaleRepo) RevenueByGenre(ctx context.Context) ([]sale.GenreRevenue, error) {
	totals := make(map[string]int64)
	for _, s := range r.store.sales {
		if b, ok := r.store.books[s.BookID]; ok {
			totals[b.Genre] += s.TotalPrice
		}
	}
	var result []sale.GenreRevenue
	for genre, total := range totals {
		result = append(result, sale.GenreRevenue{Genre: genre, TotalRevenue: total})
	}
	return result, nil
}

func (r *fakeSaleRepo) Report(ctx context.Context) ([]sale.ReportRow, error) {
	var result []sale.ReportRow
	for _, s := range r.store.sales {
		row := sale.ReportRow{SaleID: s.ID, DateOfSale: s.DateOfSale}
		if b, ok := r.store.books[s.BookID]; ok {
			row.BookTitle = b.Title
		}
		result = append(result, row)
	}
	return result, nil
}

// fakeTxManager 内存事务管理器(快照-恢复模拟COMMIT/ROLLBACK)
type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

// fakeInvalidator 记录缓存失效调用次数
type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateRevenue(ctx context.Context) error {
	f.calls++
	return nil
}

// newTestUseCase 组装待测用例
func newTestUseCase(store *fakeStore) (*ProcessSaleUseCase, *fakeInvalidator) {
	invalidator := &fakeInvalidator{}
	uc := NewProcessSaleUseCase(
		&fakeBookRepo{store: store},
		&fakeSaleRepo{store: store},
		&fakeTxManager{store: store},
		invalidator,
	)
	return uc, invalidator
}

var saleDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestProcessSale_Success 测试正常销售流程
// 场景:价格10.00元、库存5本的图书卖出3本
func TestProcessSale_Success(t *testing.T) {
	store := newFakeStore(&book.Book{ID: 1, Title: "Go语言实战", Genre: "科技", Price: 1000, Stock: 5})
	uc, invalidator := newTestUseCase(store)

	resp, err := uc.Execute(context.Background(), ProcessSaleRequest{
		CustomerID: 1,
		BookID:     1,
		DateOfSale: saleDate,
		Quantity:   3,
	})
	require.NoError(t, err)

	// 总价 = 10.00元 × 3 = 30.00元
	assert.Equal(t, int64(3000), resp.TotalPrice)
	assert.Equal(t, "30.00", resp.TotalYuan)
	assert.Equal(t, 2, resp.RemainingStock)
	assert.NotZero(t, resp.SaleID)

	// 库存已扣减,账本多了一条记录
	assert.Equal(t, 2, store.books[1].Stock)
	require.Len(t, store.sales, 1)
	assert.Equal(t, int64(3000), store.sales[0].TotalPrice)
	assert.Equal(t, 3, store.sales[0].Quantity)
	assert.Equal(t, saleDate, store.sales[0].DateOfSale)

	// 报表缓存已失效
	assert.Equal(t, 1, invalidator.calls)
}

// TestProcessSale_InsufficientStock 测试库存不足的拒绝路径
// 场景:上一笔卖剩2本后再买5本,应被拒绝且无任何写入
func TestProcessSale_InsufficientStock(t *testing.T) {
	store := newFakeStore(&book.Book{ID: 1, Title: "Go语言实战", Genre: "科技", Price: 1000, Stock: 2})
	uc, invalidator := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), ProcessSaleRequest{
		CustomerID: 1,
		BookID:     1,
		DateOfSale: saleDate,
		Quantity:   5,
	})
	assert.ErrorIs(t, err, book.ErrInsufficientStock)

	// 库存未变,没有销售记录,缓存未失效
	assert.Equal(t, 2, store.books[1].Stock)
	assert.Empty(t, store.sales)
	assert.Equal(t, 0, invalidator.calls)
}

// TestProcessSale_BookMissing 测试图书不存在按库存不足处理(宁拒勿卖)
func TestProcessSale_BookMissing(t *testing.T) {
	store := newFakeStore()
	uc, _ := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), ProcessSaleRequest{
		CustomerID: 1,
		BookID:     99,
		DateOfSale: saleDate,
		Quantity:   1,
	})
	assert.ErrorIs(t, err, book.ErrInsufficientStock)
	assert.Empty(t, store.sales)
}

// TestProcessSale_InvalidParams 测试参数校验
func TestProcessSale_InvalidParams(t *testing.T) {
	store := newFakeStore(&book.Book{ID: 1, Price: 1000, Stock: 5})
	uc, _ := newTestUseCase(store)

	t.Run("数量为0", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ProcessSaleRequest{
			CustomerID: 1, BookID: 1, DateOfSale: saleDate, Quantity: 0,
		})
		assert.ErrorIs(t, err, sale.ErrInvalidQuantity)
	})

	t.Run("负数数量", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ProcessSaleRequest{
			CustomerID: 1, BookID: 1, DateOfSale: saleDate, Quantity: -2,
		})
		assert.ErrorIs(t, err, sale.ErrInvalidQuantity)
	})

	t.Run("图书ID为0", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ProcessSaleRequest{
			CustomerID: 1, BookID: 0, DateOfSale: saleDate, Quantity: 1,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidParams)
	})

	t.Run("日期为零值", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ProcessSaleRequest{
			CustomerID: 1, BookID: 1, Quantity: 1,
		})
		assert.ErrorIs(t, err, sale.ErrInvalidDate)
	})

	// 参数校验失败不应有任何写入
	assert.Equal(t, 5, store.books[1].Stock)
	assert.Empty(t, store.sales)
}

// TestProcessSale_RollbackOnCreateFailure 测试记账失败时整个事务回滚
// 关键不变量:不会出现"扣了库存没有账"的中间状态
func TestProcessSale_RollbackOnCreateFailure(t *testing.T) {
	store := newFakeStore(&book.Book{ID: 1, Title: "Go语言实战", Genre: "科技", Price: 1000, Stock: 5})
	store.failSaleCreate = true
	uc, invalidator := newTestUseCase(store)

	_, err := uc.Execute(context.Background(), ProcessSaleRequest{
		CustomerID: 1,
		BookID:     1,
		DateOfSale: saleDate,
		Quantity:   3,
	})
	require.Error(t, err)

	// 库存扣减被回滚,账本为空,缓存未失效
	assert.Equal(t, 5, store.books[1].Stock)
	assert.Empty(t, store.sales)
	assert.Equal(t, 0, invalidator.calls)
}

// TestProcessSale_NotIdempotent 测试销售处理不幂等
// 同样参数调用两次应产生两条销售记录、扣减两次库存(刻意行为,不去重)
func TestProcessSale_NotIdempotent(t *testing.T) {
	store := newFakeStore(&book.Book{ID: 1, Title: "Go语言实战", Genre: "科技", Price: 1000, Stock: 10})
	uc, _ := newTestUseCase(store)

	req := ProcessSaleRequest{CustomerID: 1, BookID: 1, DateOfSale: saleDate, Quantity: 3}

	resp1, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	resp2, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, resp1.SaleID, resp2.SaleID)
	assert.Equal(t, 4, store.books[1].Stock)
	assert.Len(t, store.sales, 2)
}

// TestProcessSale_NilCache 测试无缓存部署(Redis不可用时cache为nil)
func TestProcessSale_NilCache(t *testing.T) {
	store := newFakeStore(&book.Book{ID: 1, Genre: "科技", Price: 1000, Stock: 5})
	uc := NewProcessSaleUseCase(
		&fakeBookRepo{store: store},
		&fakeSaleRepo{store: store},
		&fakeTxManager{store: store},
		nil,
	)

	resp, err := uc.Execute(context.Background(), ProcessSaleRequest{
		CustomerID: 1, BookID: 1, DateOfSale: saleDate, Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), resp.TotalPrice)
}
