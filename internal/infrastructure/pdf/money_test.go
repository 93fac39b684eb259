package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	d := decimal.RequireFromString
	assert.Equal(t, "$25,99", money(d("25.99")))
	assert.Equal(t, "$1.234,50", money(d("1234.5")))
	assert.Equal(t, "$125.324,95", money(d("125324.95")))
	assert.Equal(t, "-$9,00", money(d("-9")))
}
