package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBook_UpdateDetails 测试图书全量更新的领域规则
func TestBook_UpdateDetails(t *testing.T) {
	tests := []struct {
		name    string
		price   int64
		stock   int
		wantErr error
	}{
		{name: "正常更新", price: 5900, stock: 10, wantErr: nil},
		{name: "价格为0允许", price: 0, stock: 10, wantErr: nil},
		{name: "库存为0允许", price: 5900, stock: 0, wantErr: nil},
		{name: "负数价格被拒绝", price: -1, stock: 10, wantErr: ErrInvalidPrice},
		{name: "负数库存被拒绝", price: 5900, stock: -1, wantErr: ErrInvalidStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{ID: 1, Title: "旧书名", Author: "旧作者", Genre: "旧类型", Price: 100, Stock: 1}

			err := b.UpdateDetails("新书名", "新作者", "新类型", tt.price, tt.stock)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// 校验失败时字段不应被修改
				assert.Equal(t, "旧书名", b.Title)
				assert.Equal(t, int64(100), b.Price)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "新书名", b.Title)
			assert.Equal(t, "新作者", b.Author)
			assert.Equal(t, "新类型", b.Genre)
			assert.Equal(t, tt.price, b.Price)
			assert.Equal(t, tt.stock, b.Stock)
		})
	}
}

// TestBook_DecrStock 测试库存扣减的领域规则
func TestBook_DecrStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		quantity  int
		wantErr   error
		wantStock int
	}{
		{name: "正常扣减", stock: 5, quantity: 3, wantErr: nil, wantStock: 2},
		{name: "扣到0允许", stock: 5, quantity: 5, wantErr: nil, wantStock: 0},
		{name: "库存不足被拒绝", stock: 2, quantity: 5, wantErr: ErrInsufficientStock, wantStock: 2},
		{name: "数量为0被拒绝", stock: 5, quantity: 0, wantErr: ErrInvalidQuantity, wantStock: 5},
		{name: "负数数量被拒绝", stock: 5, quantity: -1, wantErr: ErrInvalidQuantity, wantStock: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{ID: 1, Stock: tt.stock}

			err := b.DecrStock(tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStock, b.Stock)
		})
	}
}

// TestBook_HasStock 测试库存充足性检查
func TestBook_HasStock(t *testing.T) {
	b := &Book{Stock: 5}

	assert.True(t, b.HasStock(1))
	assert.True(t, b.HasStock(5))
	assert.False(t, b.HasStock(6))
	assert.False(t, b.HasStock(0))
	assert.False(t, b.HasStock(-1))
}
