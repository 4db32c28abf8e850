package console

import (
	"context"

	appsale "github.com/xiebiao/bookstore-manager/internal/application/sale"
)

// saleMenu 销售处理子菜单
func (s *Shell) saleMenu(ctx context.Context) {
	for {
		s.println("")
		s.println("--- 销售处理 ---")
		s.println("1. 处理新销售")
		s.println("2. 按类型统计收入")
		s.println("3. 返回上级菜单")
		s.print("请选择 (1-3): ")

		choice, ok := s.readLine()
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.processNewSale(ctx)
		case "2":
			// 与报表菜单的收入报表共用同一个用例(同一条SQL)
			s.showRevenueReport(ctx)
		case "3":
			return
		default:
			s.println("无效的选择,请输入1-3")
		}
	}
}

// processNewSale 处理新销售
func (s *Shell) processNewSale(ctx context.Context) {
	customerID, ok := s.readUint("请输入客户ID: ")
	if !ok {
		return
	}
	bookID, ok := s.readUint("请输入图书ID: ")
	if !ok {
		return
	}
	quantity, ok := s.readUint("请输入购买数量: ")
	if !ok {
		return
	}
	dateOfSale, ok := s.readDate("请输入销售日期(YYYY-MM-DD): ")
	if !ok {
		return
	}

	resp, err := s.processSale.Execute(ctx, appsale.ProcessSaleRequest{
		CustomerID: customerID,
		BookID:     bookID,
		DateOfSale: dateOfSale,
		Quantity:   int(quantity),
	})
	if err != nil {
		s.reportError(err)
		return
	}

	s.println("销售处理成功: 销售单号=%d, 总价=%s元, 剩余库存=%d",
		resp.SaleID, resp.TotalYuan, resp.RemainingStock)
}
