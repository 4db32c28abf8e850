package console

import (
	"context"

	appcustomer "github.com/xiebiao/bookstore-manager/internal/application/customer"
)

// customerMenu 客户管理子菜单
func (s *Shell) customerMenu(ctx context.Context) {
	for {
		s.println("")
		s.println("--- 客户管理 ---")
		s.println("1. 更新客户信息")
		s.println("2. 查看客户购买历史")
		s.println("3. 返回上级菜单")
		s.print("请选择 (1-3): ")

		choice, ok := s.readLine()
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.updateCustomerInfo(ctx)
		case "2":
			s.viewPurchaseHistory(ctx)
		case "3":
			return
		default:
			s.println("无效的选择,请输入1-3")
		}
	}
}

// updateCustomerInfo 更新客户信息
func (s *Shell) updateCustomerInfo(ctx context.Context) {
	customerID, ok := s.readUint("请输入要更新的客户ID: ")
	if !ok {
		return
	}
	name, ok := s.readString("请输入新姓名: ")
	if !ok {
		return
	}
	email, ok := s.readString("请输入新邮箱: ")
	if !ok {
		return
	}
	phone, ok := s.readPhone("请输入新电话: ")
	if !ok {
		return
	}

	resp, err := s.updateCustomer.Execute(ctx, appcustomer.UpdateCustomerRequest{
		CustomerID: customerID,
		Name:       name,
		Email:      email,
		Phone:      phone,
	})
	if err != nil {
		s.reportError(err)
		return
	}

	s.println("客户信息更新成功: ID=%d, 姓名=%s, 邮箱=%s, 电话=%s",
		resp.CustomerID, resp.Name, resp.Email, resp.Phone)
}

// viewPurchaseHistory 查看客户购买历史
func (s *Shell) viewPurchaseHistory(ctx context.Context) {
	customerID, ok := s.readUint("请输入客户ID: ")
	if !ok {
		return
	}

	resp, err := s.purchaseHistory.Execute(ctx, customerID)
	if err != nil {
		s.reportError(err)
		return
	}

	if len(resp.Items) == 0 {
		s.println("客户%d没有购买记录", customerID)
		return
	}

	s.println("客户%d的购买历史:", customerID)
	for _, item := range resp.Items {
		s.println("  销售单号=%d | 图书ID=%d | 日期=%s | 数量=%d",
			item.SaleID, item.BookID, item.DateOfSale, item.Quantity)
	}
}
