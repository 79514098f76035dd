package currency

// Currency is one of the fixed set of tracked currencies.
// Amounts in different currencies are tracked and displayed separately,
// never summed together.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	UAH Currency = "UAH"
	PLN Currency = "PLN"
	GBP Currency = "GBP"
)

const Default = USD

var symbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	UAH: "₴",
	PLN: "zł",
	GBP: "£",
}

// All returns the supported currencies in display order.
func All() []Currency {
	return []Currency{USD, EUR, UAH, PLN, GBP}
}

func (c Currency) Valid() bool {
	_, ok := symbols[c]
	return ok
}

// Symbol returns the display symbol, falling back to the code itself
// for unknown values.
func (c Currency) Symbol() string {
	if s, ok := symbols[c]; ok {
		return s
	}
	return string(c)
}
