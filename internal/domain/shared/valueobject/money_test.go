package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m := NewMoney(decimal.NewFromFloat(100.50))
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))

	m = NewMoneyFromFloat(99.99)
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(99.99)))
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := NewMoneyFromString("not-a-number")
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyFromFloat(80)
	b := NewMoneyFromFloat(25)

	assert.Equal(t, "105.00", a.Add(b).StringFixed())
	assert.Equal(t, "55.00", a.Subtract(b).StringFixed())
	assert.Equal(t, "50.00", b.MultiplyByInt(2).StringFixed())
}

func TestMoneyCalculatePercentage(t *testing.T) {
	subtotal := NewMoneyFromFloat(130)
	fee := subtotal.CalculatePercentage(decimal.NewFromInt(10))
	assert.Equal(t, "13.00", fee.StringFixed())

	zero := subtotal.CalculatePercentage(decimal.Zero)
	assert.True(t, zero.IsZero())
}

func TestMoneyExactReconciliation(t *testing.T) {
	// 0.1 + 0.2 style drift must not appear with decimal arithmetic
	a := NewMoneyFromFloat(0.1)
	b := NewMoneyFromFloat(0.2)
	assert.True(t, a.Add(b).Equals(NewMoneyFromFloat(0.3)))
}

func TestMoneyPredicates(t *testing.T) {
	assert.True(t, ZeroMoney().IsZero())
	assert.True(t, NewMoneyFromFloat(1).IsPositive())
	assert.True(t, NewMoneyFromFloat(-1).IsNegative())
	assert.True(t, NewMoneyFromFloat(2).GreaterThan(NewMoneyFromFloat(1)))
}

func TestMoneyDisplay(t *testing.T) {
	m := NewMoneyFromFloat(143)
	assert.Equal(t, "₹143.00", m.Display())
	assert.Equal(t, "143.00", m.StringFixed())
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyFromFloat(80)
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"80.00"`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal([]byte(`"25.50"`), &decoded))
	assert.Equal(t, "25.50", decoded.StringFixed())

	assert.Error(t, json.Unmarshal([]byte(`"bad"`), &decoded))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("42.50"))
	assert.Equal(t, "42.50", m.StringFixed())

	require.NoError(t, m.Scan([]byte("10.00")))
	assert.Equal(t, "10.00", m.StringFixed())

	require.NoError(t, m.Scan(nil))
	assert.True(t, m.IsZero())

	assert.Error(t, m.Scan(struct{}{}))
}
