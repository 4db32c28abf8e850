package main

import (
	"context"
	"fmt"
	"log"
	"os"

	appcatalog "github.com/xiebiao/bookstore-manager/internal/application/catalog"
	appcustomer "github.com/xiebiao/bookstore-manager/internal/application/customer"
	appreport "github.com/xiebiao/bookstore-manager/internal/application/report"
	appsale "github.com/xiebiao/bookstore-manager/internal/application/sale"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookstore-manager/internal/interface/console"
)

// main 主程序入口
// 启动流程:
// 1. 加载配置
// 2. 建立数据库连接(失败直接退出,不进入菜单循环)
// 3. 建立Redis连接(失败只降级,报表不走缓存)
// 4. 手动依赖注入组装各层
// 5. 进入控制台菜单循环,退出时释放连接
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 运行模式: %s\n", cfg.App.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化数据库连接
	// 说明:数据库是唯一的外部依赖,连不上整个会话无法工作
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}
	defer func() {
		if err := mysql.CloseDB(db); err != nil {
			log.Printf("关闭数据库连接失败: %v", err)
		}
	}()

	// 3. 初始化Redis连接
	// 说明:Redis只承载报表缓存,连不上时降级为直接查库
	var reportCache *redis.ReportCache
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Redis不可用,报表缓存已禁用: %v", err)
	} else {
		reportCache = redis.NewReportCache(redisClient, cfg.App.ReportCacheTTL)
		defer redisClient.Close()
	}

	// 4. 依赖注入(手动组装)
	// 依赖链:Repository ← UseCase ← Shell

	// 基础设施层
	bookRepo := mysql.NewBookRepository(db)
	customerRepo := mysql.NewCustomerRepository(db)
	saleRepo := mysql.NewSaleRepository(db)
	txManager := mysql.NewTxManager(db)

	// 应用层
	updateBookUseCase := appcatalog.NewUpdateBookUseCase(bookRepo)
	searchBooksUseCase := appcatalog.NewSearchBooksUseCase(bookRepo)
	updateCustomerUseCase := appcustomer.NewUpdateCustomerUseCase(customerRepo)
	purchaseHistoryUseCase := appcustomer.NewPurchaseHistoryUseCase(saleRepo)
	salesReportUseCase := appreport.NewSalesReportUseCase(saleRepo)

	// ReportCache为nil时传nil接口,用例内部会跳过缓存
	var invalidator appsale.RevenueInvalidator
	var revenueCache appreport.RevenueCache
	if reportCache != nil {
		invalidator = reportCache
		revenueCache = reportCache
	}
	processSaleUseCase := appsale.NewProcessSaleUseCase(bookRepo, saleRepo, txManager, invalidator)
	revenueReportUseCase := appreport.NewRevenueReportUseCase(saleRepo, revenueCache)

	// 接口层
	shell := console.NewShell(
		os.Stdin,
		os.Stdout,
		updateBookUseCase,
		searchBooksUseCase,
		updateCustomerUseCase,
		purchaseHistoryUseCase,
		processSaleUseCase,
		revenueReportUseCase,
		salesReportUseCase,
	)

	// 5. 进入菜单循环
	shell.Run(context.Background())

	fmt.Println("连接已关闭")
}
