package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceSymbol(t *testing.T) {
	assert.Equal(t, "$", PriceSymbol("PRICE_LEVEL_INEXPENSIVE"))
	assert.Equal(t, "$$", PriceSymbol("PRICE_LEVEL_MODERATE"))
	assert.Equal(t, "$$$", PriceSymbol("PRICE_LEVEL_EXPENSIVE"))
	assert.Equal(t, "$$$$", PriceSymbol("PRICE_LEVEL_VERY_EXPENSIVE"))

	assert.Equal(t, "—", PriceSymbol(""))
	assert.Equal(t, "—", PriceSymbol("PRICE_LEVEL_FREE"))
	assert.Equal(t, "—", PriceSymbol("moderate"))
}

func TestPriceLevelReportsUnknown(t *testing.T) {
	_, ok := PriceLevel("PRICE_LEVEL_UNSPECIFIED")
	assert.False(t, ok)

	s, ok := PriceLevel("PRICE_LEVEL_MODERATE")
	assert.True(t, ok)
	assert.Equal(t, "$$", s)
}
