package customer

import (
	"context"

	"github.com/xiebiao/bookstore-manager/internal/domain/customer"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// UpdateCustomerUseCase 更新客户信息用例
// 设计说明:
// 1. 全量覆盖更新:姓名、邮箱、电话三个字段全部写入
// 2. 电话格式在控制台层已校验,这里不重复检查
// 3. 客户不存在不是异常,返回ErrCustomerNotFound由控制台层提示
type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
}

// NewUpdateCustomerUseCase 创建更新客户用例
func NewUpdateCustomerUseCase(customerRepo customer.Repository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo}
}

// UpdateCustomerRequest 更新客户请求DTO
type UpdateCustomerRequest struct {
	CustomerID uint   // 要更新的客户ID
	Name       string // 新姓名
	Email      string // 新邮箱
	Phone      string // 新电话(已通过格式校验)
}

// UpdateCustomerResponse 更新客户响应DTO
type UpdateCustomerResponse struct {
	CustomerID uint   `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// Execute 执行更新客户用例
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, req UpdateCustomerRequest) (*UpdateCustomerResponse, error) {
	// 1. 参数校验
	if req.CustomerID == 0 {
		return nil, apperrors.ErrInvalidParams
	}

	// 2. 构造实体
	c := &customer.Customer{ID: req.CustomerID}
	c.UpdateInfo(req.Name, req.Email, req.Phone)

	// 3. 持久化(影响行数为0时仓储返回ErrCustomerNotFound)
	if err := uc.customerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	return &UpdateCustomerResponse{
		CustomerID: c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
	}, nil
}
