// Package catalog defines the static set of tokens the converter supports.
//
// The catalog is intentionally fixed: four well-known tokens, each pinned to
// the chain the upstream pricing API indexes it on. Live data is merged onto
// these entries by the pricing service; when live data cannot be obtained the
// fallback price table below supplies a usable default.
package catalog

// Token is a priced token as presented by the converter.
// Identified by (ChainID, Symbol); immutable once fetched.
type Token struct {
	Symbol  string  `json:"symbol"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Icon    string  `json:"icon"`
	ChainID string  `json:"chain_id"`
	Address string  `json:"address,omitempty"`
}

// Entry is a catalog position: the static identity of a supported token,
// without price data.
type Entry struct {
	Symbol  string
	Name    string
	Icon    string
	ChainID string
}

// Entries returns the supported token catalog in display order.
// Callers receive a fresh slice and may not mutate shared state through it.
func Entries() []Entry {
	return []Entry{
		{Symbol: "USDC", Name: "USD Coin", Icon: "💵", ChainID: "1"},
		{Symbol: "USDT", Name: "Tether USD", Icon: "💲", ChainID: "137"},
		{Symbol: "ETH", Name: "Ethereum", Icon: "⟠", ChainID: "8453"},
		{Symbol: "WBTC", Name: "Wrapped Bitcoin", Icon: "₿", ChainID: "1"},
	}
}

// Size is the number of catalog entries.
const Size = 4

// FallbackPrices maps catalog symbols to the static USD price substituted
// when live price data cannot be obtained. Symbols absent from this map
// fall back to 0.
var FallbackPrices = map[string]float64{
	"USDC": 1,
	"USDT": 1,
	"ETH":  2500,
	"WBTC": 45000,
}

// Find returns the catalog entry for (chainID, symbol), or false if the
// token is not part of the catalog.
func Find(chainID, symbol string) (Entry, bool) {
	for _, e := range Entries() {
		if e.ChainID == chainID && e.Symbol == symbol {
			return e, true
		}
	}
	return Entry{}, false
}

// FindBySymbol returns the first catalog entry matching symbol, ignoring
// chain. Convenient for CLI arguments where users type bare symbols.
func FindBySymbol(symbol string) (Entry, bool) {
	for _, e := range Entries() {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return Entry{}, false
}

// Fallback builds the static substitute token for a catalog entry: catalog
// identity, fallback price, no address.
func Fallback(e Entry) Token {
	return Token{
		Symbol:  e.Symbol,
		Name:    e.Name,
		Price:   FallbackPrices[e.Symbol],
		Icon:    e.Icon,
		ChainID: e.ChainID,
	}
}
