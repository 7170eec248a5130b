// Package ordering finds a random permutation of catalog items in which every
// item's prerequisite formula holds, and explains why an accepted permutation
// satisfies each clause.
package ordering

import (
	"github.com/alexisbeaulieu97/rto/internal/catalog"
)

// Placement maps item names (case-insensitively) to the position they occupy.
type Placement struct {
	positions map[string]int
}

// NewPlacement returns an empty placement sized for n items.
func NewPlacement(n int) *Placement {
	return &Placement{positions: make(map[string]int, n)}
}

// PlacementOf indexes a complete ordering.
func PlacementOf(ordering []catalog.Item) *Placement {
	p := NewPlacement(len(ordering))
	for i, item := range ordering {
		p.Record(item, i)
	}
	return p
}

// Record places item at position.
func (p *Placement) Record(item catalog.Item, position int) {
	p.positions[item.Key()] = position
}

// Position reports where the named item was placed.
func (p *Placement) Position(name string) (int, bool) {
	pos, ok := p.positions[catalog.Key(name)]
	return pos, ok
}

// AtomHolds reports whether atom is satisfied for the item at position. A
// positive atom needs its target placed strictly earlier; a negated atom needs
// the target absent from earlier positions, including targets that are not in
// the catalog at all.
func AtomHolds(atom catalog.Atom, placed *Placement, position int) bool {
	found, ok := placed.Position(atom.Name)
	if !ok {
		return atom.Negated
	}
	return (found < position) != atom.Negated
}

// OptionHolds reports whether every atom of option holds.
func OptionHolds(option catalog.Option, placed *Placement, position int) bool {
	for _, atom := range option {
		if !AtomHolds(atom, placed, position) {
			return false
		}
	}
	return true
}

// ClauseHolds reports whether at least one option of clause holds.
func ClauseHolds(clause catalog.Clause, placed *Placement, position int) bool {
	for _, option := range clause {
		if OptionHolds(option, placed, position) {
			return true
		}
	}
	return false
}

// FormulaHolds reports whether every clause of formula holds. An empty formula holds.
func FormulaHolds(formula catalog.Formula, placed *Placement, position int) bool {
	for _, clause := range formula {
		if !ClauseHolds(clause, placed, position) {
			return false
		}
	}
	return true
}
