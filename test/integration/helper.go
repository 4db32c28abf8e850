package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookstore-manager/internal/infrastructure/persistence/mysql"
)

// 教学说明：集成测试辅助工具
// 这里的测试需要真实的MySQL实例,通过环境变量开关:
//
//	BOOKSTORE_TEST_DSN="root:root@tcp(127.0.0.1:3306)/bookstore_test?charset=utf8mb4&parseTime=True&loc=Local" go test ./test/integration/
//
// 环境变量未设置时整个测试包被跳过,不影响日常 go test ./...

// SetupDB 连接测试数据库并迁移表结构
// 每次调用都会清空三张业务表,保证用例之间互不干扰
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("BOOKSTORE_TEST_DSN")
	if dsn == "" {
		t.Skip("未设置BOOKSTORE_TEST_DSN,跳过集成测试")
	}

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "连接测试数据库失败")

	err = db.AutoMigrate(&mysql.BookModel{}, &mysql.CustomerModel{}, &mysql.SaleModel{})
	require.NoError(t, err, "迁移表结构失败")

	// 清空业务表(sales有外键语义,先删)
	for _, table := range []string{"sales", "books", "customers"} {
		err = db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error
		require.NoError(t, err, "清空表%s失败", table)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// SeedBook 插入一本测试图书并返回ID
func SeedBook(t *testing.T, db *gorm.DB, title, author, genre string, price int64, stock int) uint {
	t.Helper()

	m := &mysql.BookModel{
		Title:  title,
		Author: author,
		Genre:  genre,
		Price:  price,
		Stock:  stock,
	}
	require.NoError(t, db.Create(m).Error, "插入测试图书失败")
	return m.ID
}

// SeedCustomer 插入一个测试客户并返回ID
func SeedCustomer(t *testing.T, db *gorm.DB, name, email, phone string) uint {
	t.Helper()

	m := &mysql.CustomerModel{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	require.NoError(t, db.Create(m).Error, "插入测试客户失败")
	return m.ID
}

// TestDate 统一的测试销售日期
var TestDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
