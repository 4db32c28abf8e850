package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	appcatalog "github.com/xiebiao/bookstore-manager/internal/application/catalog"
	appcustomer "github.com/xiebiao/bookstore-manager/internal/application/customer"
	appreport "github.com/xiebiao/bookstore-manager/internal/application/report"
	appsale "github.com/xiebiao/bookstore-manager/internal/application/sale"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// Shell 控制台交互层
// 设计说明:
// 1. 菜单循环、输入解析/校验、结果展示都在这一层完成
// 2. 核心服务只返回结构化结果和AppError,不做任何控制台I/O
// 3. in/out注入而非写死os.Stdin/os.Stdout,便于测试
// 4. 严格串行:一个操作(包括其回滚)完整结束后才接受下一条命令
type Shell struct {
	in  *bufio.Scanner
	out io.Writer

	updateBook      *appcatalog.UpdateBookUseCase
	searchBooks     *appcatalog.SearchBooksUseCase
	updateCustomer  *appcustomer.UpdateCustomerUseCase
	purchaseHistory *appcustomer.PurchaseHistoryUseCase
	processSale     *appsale.ProcessSaleUseCase
	revenueReport   *appreport.RevenueReportUseCase
	salesReport     *appreport.SalesReportUseCase
}

// NewShell 创建控制台交互层
func NewShell(
	in io.Reader,
	out io.Writer,
	updateBook *appcatalog.UpdateBookUseCase,
	searchBooks *appcatalog.SearchBooksUseCase,
	updateCustomer *appcustomer.UpdateCustomerUseCase,
	purchaseHistory *appcustomer.PurchaseHistoryUseCase,
	processSale *appsale.ProcessSaleUseCase,
	revenueReport *appreport.RevenueReportUseCase,
	salesReport *appreport.SalesReportUseCase,
) *Shell {
	return &Shell{
		in:              bufio.NewScanner(in),
		out:             out,
		updateBook:      updateBook,
		searchBooks:     searchBooks,
		updateCustomer:  updateCustomer,
		purchaseHistory: purchaseHistory,
		processSale:     processSale,
		revenueReport:   revenueReport,
		salesReport:     salesReport,
	}
}

// Run 主菜单循环
// 输入流结束(EOF)等同于选择退出
func (s *Shell) Run(ctx context.Context) {
	for {
		s.println("")
		s.println("======= 书店管理系统 =======")
		s.println("1. 图书管理")
		s.println("2. 客户管理")
		s.println("3. 销售处理")
		s.println("4. 销售报表")
		s.println("5. 退出")
		s.print("请选择 (1-5): ")

		choice, ok := s.readLine()
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.bookMenu(ctx)
		case "2":
			s.customerMenu(ctx)
		case "3":
			s.saleMenu(ctx)
		case "4":
			s.reportMenu(ctx)
		case "5":
			s.println("再见!")
			return
		default:
			s.println("无效的选择,请输入1-5")
		}
	}
}

// =========================================
// 输入辅助方法
// =========================================

// readLine 读取一行输入,EOF时返回ok=false
func (s *Shell) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// readUint 循环读取正整数(用于ID和数量)
func (s *Shell) readUint(prompt string) (uint, bool) {
	for {
		s.print(prompt)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		n, err := ParsePositiveUint(line)
		if err != nil {
			s.println("输入无效,请输入大于0的整数")
			continue
		}
		return n, true
	}
}

// readNonNegativeInt 循环读取非负整数(用于库存)
func (s *Shell) readNonNegativeInt(prompt string) (int, bool) {
	for {
		s.print(prompt)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		n, err := ParseNonNegativeInt(line)
		if err != nil {
			s.println("输入无效,请输入非负整数")
			continue
		}
		return n, true
	}
}

// readString 读取一行文本
func (s *Shell) readString(prompt string) (string, bool) {
	s.print(prompt)
	return s.readLine()
}

// readPrice 循环读取价格(元),返回分
func (s *Shell) readPrice(prompt string) (int64, bool) {
	for {
		s.print(prompt)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		fen, err := ParsePriceYuan(line)
		if err != nil {
			s.println("价格无效,请输入非负数字(最多两位小数),如59.90")
			continue
		}
		return fen, true
	}
}

// readDate 循环读取YYYY-MM-DD日期
func (s *Shell) readDate(prompt string) (time.Time, bool) {
	for {
		s.print(prompt)
		line, ok := s.readLine()
		if !ok {
			return time.Time{}, false
		}
		t, err := ParseDate(line)
		if err != nil {
			s.println("日期格式不正确,请按YYYY-MM-DD输入,如2024-01-01")
			continue
		}
		return t, true
	}
}

// readPhone 循环读取电话号码
func (s *Shell) readPhone(prompt string) (string, bool) {
	for {
		s.print(prompt)
		line, ok := s.readLine()
		if !ok {
			return "", false
		}
		if !ValidPhoneNumber(line) {
			s.println("电话格式不正确,请输入7-15位数字(可带+号前缀)")
			continue
		}
		return line, true
	}
}

// =========================================
// 输出辅助方法
// =========================================

func (s *Shell) print(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// reportError 展示业务错误
// 说明:只展示AppError的用户友好信息,内部错误不透出到控制台
func (s *Shell) reportError(err error) {
	appErr := apperrors.GetAppError(err)
	s.println("操作失败: %s", appErr.Message)
}
