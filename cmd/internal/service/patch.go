package service

import "github.com/shopspring/decimal"

// apply overwrites *dst when the patch field is present and carries a
// different value. Reports whether anything changed, so callers can
// skip the save on no-op patches.
func apply[T comparable](src *T, dst *T) bool {
	if src == nil || *src == *dst {
		return false
	}
	*dst = *src
	return true
}

// applyDecimal is the decimal flavor of apply; decimals compare by
// value, not by representation.
func applyDecimal(src *decimal.Decimal, dst *decimal.Decimal) bool {
	if src == nil || src.Equal(*dst) {
		return false
	}
	*dst = *src
	return true
}
