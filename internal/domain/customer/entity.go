package customer

import (
	"time"
)

// Customer 客户实体(聚合根)
// 设计说明:
// 1. 客户档案由店外流程建档,本系统只负责更新和查询
// 2. Phone在进入核心前已由控制台层完成格式校验
type Customer struct {
	ID        uint
	Name      string // 姓名
	Email     string // 邮箱
	Phone     string // 电话(格式由调用方预先校验)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateInfo 更新客户全部信息(领域行为)
// 说明:全量覆盖更新,三个字段全部写入
func (c *Customer) UpdateInfo(name, email, phone string) {
	c.Name = name
	c.Email = email
	c.Phone = phone
	c.UpdatedAt = time.Now()
}
