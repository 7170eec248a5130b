package ordering

import (
	"github.com/alexisbeaulieu97/rto/internal/catalog"
)

// IsValid scans the ordering left to right and reports whether every item's
// formula holds against the items placed before it.
func IsValid(ordering []catalog.Item) bool {
	_, ok := firstViolation(ordering)
	return ok
}

// firstViolation returns the position of the first item whose formula fails.
// Each step evaluates the item before recording it, so an item never satisfies
// its own prerequisites and later items stay invisible.
func firstViolation(ordering []catalog.Item) (int, bool) {
	placed := NewPlacement(len(ordering))
	for i, item := range ordering {
		if !FormulaHolds(item.Prerequisites, placed, i) {
			return i, false
		}
		placed.Record(item, i)
	}
	return -1, true
}
