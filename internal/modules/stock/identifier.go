package stock

import "strconv"

// Identifier is the key a client used to address a stock item: either the
// numeric serial id or the symbolic SKU. It is resolved once at the HTTP
// boundary; repositories dispatch on it instead of re-testing the pattern.
type Identifier struct {
	Numeric bool
	ID      int64
	SKU     string
}

// ParseIdentifier classifies an all-digit key as a numeric id and anything
// else as a SKU.
func ParseIdentifier(key string) Identifier {
	if key == "" {
		return Identifier{SKU: key}
	}
	for _, r := range key {
		if r < '0' || r > '9' {
			return Identifier{SKU: key}
		}
	}
	id, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return Identifier{SKU: key}
	}
	return Identifier{Numeric: true, ID: id}
}
