//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 运行 `wire gen ./cmd/bookstore` 生成wire_gen.go后,
//    main.go可改为调用InitializeShell()替代手动组装

package main

import (
	"os"

	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

	appcatalog "github.com/xiebiao/bookstore-manager/internal/application/catalog"
	appcustomer "github.com/xiebiao/bookstore-manager/internal/application/customer"
	appreport "github.com/xiebiao/bookstore-manager/internal/application/report"
	appsale "github.com/xiebiao/bookstore-manager/internal/application/sale"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-manager/internal/interface/console"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,        // 加载配置文件
	mysql.NewDB,        // 创建MySQL连接
	redis.NewClient,    // 创建Redis连接
	provideReportCache, // 报表缓存(需要从config提取TTL)
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewBookRepository,     // 图书仓储
	mysql.NewCustomerRepository, // 客户仓储
	mysql.NewSaleRepository,     // 销售记录仓储
	mysql.NewTxManager,          // 事务管理器
	wire.Bind(new(appsale.TxManager), new(*mysql.TxManager)),
	wire.Bind(new(appsale.RevenueInvalidator), new(*redis.ReportCache)),
	wire.Bind(new(appreport.RevenueCache), new(*redis.ReportCache)),
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcatalog.NewUpdateBookUseCase,       // 更新图书用例
	appcatalog.NewSearchBooksUseCase,      // 图书搜索用例
	appcustomer.NewUpdateCustomerUseCase,  // 更新客户用例
	appcustomer.NewPurchaseHistoryUseCase, // 购买历史用例
	appsale.NewProcessSaleUseCase,         // 销售处理用例
	appreport.NewRevenueReportUseCase,     // 收入报表用例
	appreport.NewSalesReportUseCase,       // 销售报表用例
)

// provideReportCache 从配置创建报表缓存
// 说明:NewReportCache需要TTL参数,Wire无法自动从Config提取,手动编写Provider
func provideReportCache(client *goredis.Client, cfg *config.Config) *redis.ReportCache {
	return redis.NewReportCache(client, cfg.App.ReportCacheTTL)
}

// provideShell 创建控制台交互层(绑定标准输入输出)
func provideShell(
	updateBook *appcatalog.UpdateBookUseCase,
	searchBooks *appcatalog.SearchBooksUseCase,
	updateCustomer *appcustomer.UpdateCustomerUseCase,
	purchaseHistory *appcustomer.PurchaseHistoryUseCase,
	processSale *appsale.ProcessSaleUseCase,
	revenueReport *appreport.RevenueReportUseCase,
	salesReport *appreport.SalesReportUseCase,
) *console.Shell {
	return console.NewShell(
		os.Stdin,
		os.Stdout,
		updateBook,
		searchBooks,
		updateCustomer,
		purchaseHistory,
		processSale,
		revenueReport,
		salesReport,
	)
}

// InitializeShell 初始化整个应用
// 返回:组装好的控制台交互层
func InitializeShell() (*console.Shell, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		provideShell,
	)

	// 占位返回值,实际代码由wire生成到wire_gen.go
	return nil, nil
}
