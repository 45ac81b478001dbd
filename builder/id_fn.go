package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to its string ID.
type IDFn func(idx int) string

// DefaultIDFn returns decimal IDs: "0", "1", "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns single uppercase letters "A".."Z". Panics outside [0,25].
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns spreadsheet column names: "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix followed by the decimal index ("v0", "v1", ...).
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// NamedIDFn returns names[idx]. Pair it with n = len(names) to build a graph
// over caller-chosen vertex names. Panics when idx is out of range.
func NamedIDFn(names []string) IDFn {
	own := append([]string(nil), names...)
	return func(idx int) string {
		if idx < 0 || idx >= len(own) {
			panic(fmt.Sprintf("NamedIDFn: idx must be in [0,%d), got %d", len(own), idx))
		}
		return own[idx]
	}
}
