package catalog

import (
	"strings"
)

// NegationMarker prefixes an atom name to require that the item is NOT placed earlier.
const NegationMarker = "!"

// Atom references another item by name, optionally negated.
type Atom struct {
	Name    string
	Negated bool
}

// ParseAtom decodes the serialized form of an atom ("Name" or "!Name").
func ParseAtom(raw string) Atom {
	if strings.HasPrefix(raw, NegationMarker) {
		return Atom{Name: strings.TrimPrefix(raw, NegationMarker), Negated: true}
	}
	return Atom{Name: raw}
}

// String returns the serialized form of the atom.
func (a Atom) String() string {
	if a.Negated {
		return NegationMarker + a.Name
	}
	return a.Name
}

// Key is the case-insensitive lookup key of the referenced item.
func (a Atom) Key() string {
	return Key(a.Name)
}

// Option is a conjunction of atoms.
type Option []Atom

// Clause is a disjunction of options.
type Clause []Option

// Formula is a conjunction of clauses. An empty formula always holds.
type Formula []Clause

// Atoms returns every atom of the formula in declaration order.
func (f Formula) Atoms() []Atom {
	var atoms []Atom
	for _, clause := range f {
		for _, option := range clause {
			atoms = append(atoms, option...)
		}
	}
	return atoms
}

// Item is a single entry of the catalog.
type Item struct {
	Name          string  `yaml:"name" validate:"item_name"`
	Color         string  `yaml:"color,omitempty"`
	Cost          *int    `yaml:"cost,omitempty" validate:"omitempty,min=0"`
	Prerequisites Formula `yaml:"prerequisites,omitempty"`
}

// Key is the case-insensitive identity of the item.
func (i Item) Key() string {
	return Key(i.Name)
}

// Key normalizes an item name for case-insensitive comparison.
func Key(name string) string {
	return strings.ToLower(name)
}

// TotalCost sums the cost of every item that declares one.
func TotalCost(items []Item) int {
	total := 0
	for _, item := range items {
		if item.Cost != nil {
			total += *item.Cost
		}
	}
	return total
}
