package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates an identifier from a zero-based index. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// ExcelColumnIDFn returns the spreadsheet column name of idx:
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PaddedIDFn returns an IDFn rendering zero-padded decimals of the given
// width, so IDs sort the same lexically and numerically below 10^width.
// Panics if width < 1.
func PaddedIDFn(width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}
	return func(idx int) string { return fmt.Sprintf("%0*d", width, idx) }
}

// PrefixIDFn prepends prefix to the output of fn. Panics on nil fn.
func PrefixIDFn(prefix string, fn IDFn) IDFn {
	if fn == nil {
		panic("PrefixIDFn: nil fn")
	}
	return func(idx int) string { return prefix + fn(idx) }
}
