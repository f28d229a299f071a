package utils

// PriceLevelPlaceholder is shown for unknown or missing price tiers.
const PriceLevelPlaceholder = "—"

var priceSymbols = map[string]string{
	"PRICE_LEVEL_INEXPENSIVE":    "$",
	"PRICE_LEVEL_MODERATE":       "$$",
	"PRICE_LEVEL_EXPENSIVE":      "$$$",
	"PRICE_LEVEL_VERY_EXPENSIVE": "$$$$",
}

// PriceLevel maps a Google Places price tier to a "$" string.
func PriceLevel(code string) (string, bool) {
	s, ok := priceSymbols[code]
	return s, ok
}

// PriceSymbol is PriceLevel with the placeholder for unknown codes.
func PriceSymbol(code string) string {
	if s, ok := PriceLevel(code); ok {
		return s
	}
	return PriceLevelPlaceholder
}
