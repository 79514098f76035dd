package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	for _, cur := range All() {
		assert.True(t, cur.Valid(), "%s", cur)
	}
	assert.False(t, Currency("CHF").Valid())
	assert.False(t, Currency("usd").Valid())
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", USD.Symbol())
	assert.Equal(t, "₴", UAH.Symbol())
	assert.Equal(t, "XXX", Currency("XXX").Symbol())
}
