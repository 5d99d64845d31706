package market

import "unicode"

// IsSymbol reports whether a caller-supplied currency identifier follows
// the uppercase ticker convention ("BTC") rather than being a URL slug
// ("bitcoin"). An identifier is a symbol when it contains at least one
// cased letter and no lowercase letters, so punctuation-heavy tickers like
// "$$$" with no letters at all, digit-only names like "808", and anything
// mixed-case all resolve as slugs.
//
// Every public operation accepting a currency identifier applies this
// predicate exactly once before building an upstream URL.
func IsSymbol(id string) bool {
	hasUpper := false
	for _, r := range id {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
