package customer

import (
	"context"
)

// Repository 客户仓储接口(依赖倒置原则)
// 设计说明:由domain层定义接口,infrastructure层实现,便于Mock测试
type Repository interface {
	// FindByID 根据ID查找客户
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// Update 全量更新客户信息(按主键覆盖姓名、邮箱、电话)
	// 客户不存在时返回ErrCustomerNotFound(影响行数为0)
	Update(ctx context.Context, c *Customer) error
}
