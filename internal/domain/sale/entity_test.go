package sale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSale 测试销售记录工厂方法
func TestNewSale(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("总价等于单价乘数量", func(t *testing.T) {
		s, err := NewSale(1, 2, date, 3, 1000)
		require.NoError(t, err)

		assert.Equal(t, uint(1), s.BookID)
		assert.Equal(t, uint(2), s.CustomerID)
		assert.Equal(t, date, s.DateOfSale)
		assert.Equal(t, 3, s.Quantity)
		assert.Equal(t, int64(3000), s.TotalPrice)
	})

	t.Run("单价为0总价为0", func(t *testing.T) {
		s, err := NewSale(1, 2, date, 5, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), s.TotalPrice)
	})

	t.Run("数量为0被拒绝", func(t *testing.T) {
		_, err := NewSale(1, 2, date, 0, 1000)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("负数数量被拒绝", func(t *testing.T) {
		_, err := NewSale(1, 2, date, -3, 1000)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("负数单价被拒绝", func(t *testing.T) {
		_, err := NewSale(1, 2, date, 3, -100)
		assert.ErrorIs(t, err, ErrInvalidUnitPrice)
	})
}
