package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-manager/internal/domain/customer"
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// customerRepository 客户仓储实现(MySQL)
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建客户仓储
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

// FindByID 根据ID查找客户
func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model CustomerModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询客户失败")
	}

	return toCustomerEntity(&model), nil
}

// Update 全量更新客户信息
// 说明:按主键覆盖姓名、邮箱、电话,影响行数为0说明客户不存在
func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":       c.Name,
		"email":      c.Email,
		"phone":      c.Phone,
		"updated_at": time.Now(),
	})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新客户失败")
	}

	if result.RowsAffected == 0 {
		return customer.ErrCustomerNotFound
	}

	return nil
}

// toCustomerEntity GORM模型 → 领域实体
func toCustomerEntity(model *CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
