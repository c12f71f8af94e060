package cashbook

import (
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to build a decimal from a constant string.
func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

// entry is a helper for tests to build a typed entry from constants.
func entry(date string, kind Kind, amount string) Entry {
	return Entry{Date: MustParseDate(date), Kind: kind, Amount: dec(amount)}
}

// entryDiff holds the comparers needed to diff entries: decimals compare by
// value, and dates are plain comparable structs.
var entryDiff = cmp.Options{
	cmp.Comparer(decimal.Decimal.Equal),
	cmp.Comparer(func(a, b Date) bool { return a == b }),
}
