package sale

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/xiebiao/bookstore-manager/internal/domain/book"
	"github.com/xiebiao/bookstore-manager/internal/domain/sale"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// TxManager 事务管理器接口
// 说明:由mysql.TxManager实现;定义为接口便于在测试中用内存实现替换
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RevenueInvalidator 收入报表缓存失效接口
// 说明:由redis.ReportCache实现;可为nil(无缓存部署时)
type RevenueInvalidator interface {
	InvalidateRevenue(ctx context.Context) error
}

// ProcessSaleUseCase 销售处理用例
// 这是整个系统唯一的多步写事务:
// 检查库存 → 计算总价 → 扣减库存 → 写入销售记录,要么全部生效要么全部回滚
//
// 核心问题:库存超卖
// 场景:库存10本,多个进程同时下单
// 错误实现:
//  1. 查询库存 → 10本
//  2. 判断够不够 → 够
//  3. 扣减库存 → stock = stock - quantity
//     结果:并发请求都通过了步骤2,卖出超过10本(超卖!)
//
// 正确实现:悲观锁
//  1. SELECT FOR UPDATE 锁定图书行
//  2. 判断库存是否充足
//  3. 扣减库存
//  4. 写入销售记录
//  5. COMMIT释放锁
type ProcessSaleUseCase struct {
	bookRepo  book.Repository
	saleRepo  sale.Repository
	txManager TxManager
	cache     RevenueInvalidator
}

// NewProcessSaleUseCase 创建销售处理用例
// cache可为nil,表示不做报表缓存失效
func NewProcessSaleUseCase(
	bookRepo book.Repository,
	saleRepo sale.Repository,
	txManager TxManager,
	cache RevenueInvalidator,
) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{
		bookRepo:  bookRepo,
		saleRepo:  saleRepo,
		txManager: txManager,
		cache:     cache,
	}
}

// ProcessSaleRequest 销售处理请求DTO
type ProcessSaleRequest struct {
	CustomerID uint      // 客户ID
	BookID     uint      // 图书ID
	DateOfSale time.Time // 销售日期(控制台层已按YYYY-MM-DD解析)
	Quantity   int       // 购买数量
}

// ProcessSaleResponse 销售处理响应DTO
type ProcessSaleResponse struct {
	SaleID         uint   `json:"sale_id"`
	TotalPrice     int64  `json:"total_price"`
	TotalYuan      string `json:"total_yuan"`
	RemainingStock int    `json:"remaining_stock"`
}

// Execute 执行销售处理用例
// 流程说明:
// 1. 锁定图书行(悲观锁)。图书不存在按库存不足处理(宁可拒绝也不误卖)
// 2. 在持锁状态下检查库存,不足则返回ErrInsufficientStock,事务回滚且无任何写入
// 3. 用锁定时读到的单价计算总价(历史价格快照,不受后续改价影响)
// 4. 扣减库存(条件UPDATE兜底,库存不可能为负)
// 5. 写入销售记录,自增主键即销售单号
// 6. fn返回nil则COMMIT;任何一步出错则整个事务ROLLBACK,
//    不会出现扣了库存没有账、记了账没扣库存的中间状态
//
// 注意:本操作不幂等——同样的参数调用两次会产生两条销售记录、扣减两次库存
func (uc *ProcessSaleUseCase) Execute(ctx context.Context, req ProcessSaleRequest) (*ProcessSaleResponse, error) {
	// 参数校验
	if req.BookID == 0 || req.CustomerID == 0 {
		return nil, apperrors.ErrInvalidParams
	}
	if req.Quantity <= 0 {
		return nil, sale.ErrInvalidQuantity
	}
	if req.DateOfSale.IsZero() {
		return nil, sale.ErrInvalidDate
	}

	var (
		result         *sale.Sale
		remainingStock int
	)

	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 步骤1:锁定库存(SELECT FOR UPDATE)
		// 其他事务必须等待当前事务COMMIT或ROLLBACK后才能访问该行
		b, err := uc.bookRepo.LockByID(txCtx, req.BookID)
		if err != nil {
			if errors.Is(err, book.ErrBookNotFound) {
				// 图书不存在按库存不足处理(拒绝路径,不产生任何写入)
				return book.ErrInsufficientStock
			}
			return err
		}

		// 步骤2:检查库存是否充足
		// 必须在锁定后检查,否则并发扣减会导致超卖
		if !b.HasStock(req.Quantity) {
			return book.ErrInsufficientStock
		}

		// 步骤3:按锁定时的单价计算总价
		s, err := sale.NewSale(req.BookID, req.CustomerID, req.DateOfSale, req.Quantity, b.Price)
		if err != nil {
			return err
		}

		// 步骤4:扣减库存
		// 条件UPDATE(stock + delta >= 0)是最后一道防线
		if err := uc.bookRepo.UpdateStock(txCtx, req.BookID, -req.Quantity); err != nil {
			return err
		}

		// 步骤5:写入销售记录
		if err := uc.saleRepo.Create(txCtx, s); err != nil {
			// 写入失败整个事务回滚,库存扣减一并撤销
			return err
		}

		result = s
		remainingStock = b.Stock - req.Quantity
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 事务已提交,使收入报表缓存失效
	// 失效失败不影响已提交的销售,缓存会在TTL到期后自行恢复一致
	if uc.cache != nil {
		if err := uc.cache.InvalidateRevenue(ctx); err != nil {
			log.Printf("清除报表缓存失败: %v", err)
		}
	}

	return &ProcessSaleResponse{
		SaleID:         result.ID,
		TotalPrice:     result.TotalPrice,
		TotalYuan:      formatPrice(result.TotalPrice),
		RemainingStock: remainingStock,
	}, nil
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	yuan := float64(priceFen) / 100.0
	return fmt.Sprintf("%.2f", yuan)
}
