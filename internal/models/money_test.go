package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyUnmarshalNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`1500.50`), &m))
	assert.True(t, m.Decimal.Equal(decimal.RequireFromString("1500.50")))
}

func TestMoneyUnmarshalQuotedNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"250"`), &m))
	assert.True(t, m.Decimal.Equal(decimal.NewFromInt(250)))
}

func TestMoneyUnmarshalBadInputIsZero(t *testing.T) {
	for _, data := range []string{`"abc"`, `""`, `[1]`, `{"v": 1}`} {
		var m Money
		require.NoError(t, json.Unmarshal([]byte(data), &m), data)
		assert.True(t, m.IsZero(), data)
	}
}

func TestMoneyBadAmountDoesNotPoisonSum(t *testing.T) {
	var a, b Money
	require.NoError(t, json.Unmarshal([]byte(`100`), &a))
	require.NoError(t, json.Unmarshal([]byte(`"oops"`), &b))
	assert.Equal(t, "100", a.Add(b).Decimal.String())
}

func TestMoneyMarshalBareNumber(t *testing.T) {
	out, err := json.Marshal(MoneyFromString("99.90"))
	require.NoError(t, err)
	assert.Equal(t, `99.9`, string(out))
}

func TestMoneyArithmetic(t *testing.T) {
	total := MoneyFromFloat(300).Add(MoneyFromFloat(200)).Sub(MoneyFromFloat(50))
	assert.Equal(t, "450", total.Decimal.String())
}
