package sale

import (
	apperrors "github.com/xiebiao/bookstore-manager/pkg/errors"
)

// 销售领域错误定义
var (
	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "购买数量必须大于0")

	// ErrInvalidUnitPrice 单价不合法
	ErrInvalidUnitPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "单价不能为负数")

	// ErrInvalidDate 销售日期不合法
	ErrInvalidDate = apperrors.New(apperrors.ErrCodeInvalidParams, "销售日期格式不正确")
)
