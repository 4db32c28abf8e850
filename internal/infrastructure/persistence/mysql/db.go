package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-manager/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. debug模式打印SQL日志，release模式关闭
// 4. 连接或Ping失败直接返回错误，由main终止进程（不进入菜单循环）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.App.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// CloseDB 关闭数据库连接
// 说明：控制台会话结束时释放连接（对应启动时的一次性获取）
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("获取SQL DB失败: %w", err)
	}
	return sqlDB.Close()
}

// autoMigrate 自动迁移表结构
// 说明：AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&CustomerModel{},
		&SaleModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag
// 2. domain/book/entity.go是领域实体,不依赖GORM
// 3. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 4. Genre和Author有索引,支撑按类型/按作者的等值搜索
type BookModel struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:200;not null;comment:书名"`
	Author    string    `gorm:"index;size:100;not null;comment:作者"`
	Genre     string    `gorm:"index;size:50;not null;comment:类型"`
	Price     int64     `gorm:"not null;comment:价格(分)"`
	Stock     int       `gorm:"default:0;comment:库存数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CustomerModel GORM客户模型
type CustomerModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:100;not null;comment:姓名"`
	Email     string    `gorm:"size:100;not null;comment:邮箱"`
	Phone     string    `gorm:"size:30;not null;comment:电话"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// SaleModel GORM销售记录模型
// 设计说明:
// 1. 自增主键即销售单号,由数据库生成
// 2. BookID/CustomerID外键关联books/customers表
// 3. TotalPrice记录成交时的总价快照
type SaleModel struct {
	ID         uint      `gorm:"primaryKey"`
	BookID     uint      `gorm:"index;not null;comment:图书ID"`
	CustomerID uint      `gorm:"index;not null;comment:客户ID"`
	DateOfSale time.Time `gorm:"type:date;not null;comment:销售日期"`
	Quantity   int       `gorm:"not null;comment:销售数量"`
	TotalPrice int64     `gorm:"not null;comment:成交总价(分)"`
	CreatedAt  time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (SaleModel) TableName() string {
	return "sales"
}
