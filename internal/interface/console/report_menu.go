package console

import (
	"context"
)

// reportMenu 销售报表子菜单
func (s *Shell) reportMenu(ctx context.Context) {
	for {
		s.println("")
		s.println("--- 销售报表 ---")
		s.println("1. 图书销售报表")
		s.println("2. 按类型收入报表")
		s.println("3. 返回上级菜单")
		s.print("请选择 (1-3): ")

		choice, ok := s.readLine()
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.showSalesReport(ctx)
		case "2":
			s.showRevenueReport(ctx)
		case "3":
			return
		default:
			s.println("无效的选择,请输入1-3")
		}
	}
}

// showSalesReport 展示图书销售报表
func (s *Shell) showSalesReport(ctx context.Context) {
	resp, err := s.salesReport.Execute(ctx)
	if err != nil {
		s.reportError(err)
		return
	}

	if len(resp.Items) == 0 {
		s.println("暂无销售记录")
		return
	}

	s.println("图书销售报表(共%d条):", len(resp.Items))
	for _, item := range resp.Items {
		s.println("  销售单号=%d | 书名=%s | 客户=%s | 日期=%s",
			item.SaleID, item.BookTitle, item.CustomerName, item.DateOfSale)
	}
}

// showRevenueReport 展示按类型收入报表
// 说明:销售菜单和报表菜单都会进入这里
func (s *Shell) showRevenueReport(ctx context.Context) {
	resp, err := s.revenueReport.Execute(ctx)
	if err != nil {
		s.reportError(err)
		return
	}

	if len(resp.Items) == 0 {
		s.println("暂无收入数据")
		return
	}

	s.println("按类型收入报表:")
	for _, item := range resp.Items {
		s.println("  类型=%s | 收入合计=%s元", item.Genre, item.TotalYuan)
	}
}
