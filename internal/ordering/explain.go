package ordering

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
)

// Style decorates the display text of an item, e.g. with its color. The
// plain style returns text unchanged.
type Style func(item catalog.Item, text string) string

// PlainStyle leaves text undecorated.
func PlainStyle(_ catalog.Item, text string) string {
	return text
}

// Reference points at an item by its zero-based position in the ordering.
type Reference struct {
	Position int
	Item     catalog.Item
}

// Label renders the reference as "03. Name".
func (r Reference) Label(style Style) string {
	return fmt.Sprintf("%02d. %s", r.Position+1, style(r.Item, r.Item.Name))
}

// ClauseExplanation justifies one clause of an item.
type ClauseExplanation struct {
	Clause catalog.Clause
	// Witness is the index of the first option that holds, or -1.
	Witness int
	// Satisfiers lists the representative earlier item first, then the other
	// positive atoms of the witness option. Empty when the witness has no
	// positive atom placed earlier.
	Satisfiers []Reference
	Text       string
}

// Explanation holds the clause justifications of one item.
type Explanation struct {
	Reference
	Clauses []ClauseExplanation
}

// Explain builds a justification for every item with a non-empty formula, in
// ordering position order.
func Explain(ordering []catalog.Item, style Style) []Explanation {
	if style == nil {
		style = PlainStyle
	}

	placed := PlacementOf(ordering)
	var out []Explanation
	for i, item := range ordering {
		if len(item.Prerequisites) == 0 {
			continue
		}

		exp := Explanation{Reference: Reference{Position: i, Item: item}}
		for _, clause := range item.Prerequisites {
			exp.Clauses = append(exp.Clauses, explainClause(clause, ordering, placed, i, style))
		}
		out = append(out, exp)
	}
	return out
}

func explainClause(clause catalog.Clause, ordering []catalog.Item, placed *Placement, position int, style Style) ClauseExplanation {
	exp := ClauseExplanation{Clause: clause, Witness: -1}
	for idx, option := range clause {
		if OptionHolds(option, placed, position) {
			exp.Witness = idx
			break
		}
	}

	if exp.Witness >= 0 {
		exp.Satisfiers = satisfiers(clause[exp.Witness], ordering, placed, position)
	}

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(renderClause(clause, ordering, placed, style))
	b.WriteString("]")
	if len(exp.Satisfiers) > 0 {
		labels := make([]string, 0, len(exp.Satisfiers))
		for _, ref := range exp.Satisfiers {
			labels = append(labels, ref.Label(style))
		}
		b.WriteString(" -> ")
		b.WriteString(strings.Join(labels, " / "))
	}
	exp.Text = b.String()
	return exp
}

// satisfiers picks the first positive atom placed before position as the
// representative, then appends the remaining positive atoms of the option.
func satisfiers(option catalog.Option, ordering []catalog.Item, placed *Placement, position int) []Reference {
	rep := -1
	for idx, atom := range option {
		if atom.Negated {
			continue
		}
		if pos, ok := placed.Position(atom.Name); ok && pos < position {
			rep = idx
			break
		}
	}
	if rep < 0 {
		return nil
	}

	repPos, _ := placed.Position(option[rep].Name)
	refs := []Reference{{Position: repPos, Item: ordering[repPos]}}
	for _, atom := range option {
		if atom.Negated || atom.Key() == option[rep].Key() {
			continue
		}
		pos, ok := placed.Position(atom.Name)
		if !ok || pos >= position {
			continue
		}
		refs = append(refs, Reference{Position: pos, Item: ordering[pos]})
	}
	return refs
}

func renderClause(clause catalog.Clause, ordering []catalog.Item, placed *Placement, style Style) string {
	options := make([]string, 0, len(clause))
	for _, option := range clause {
		atoms := make([]string, 0, len(option))
		for _, atom := range option {
			atoms = append(atoms, renderAtom(atom, ordering, placed, style))
		}
		joined := strings.Join(atoms, " AND ")
		if len(option) > 1 {
			joined = "(" + joined + ")"
		}
		options = append(options, joined)
	}
	return strings.Join(options, " OR ")
}

func renderAtom(atom catalog.Atom, ordering []catalog.Item, placed *Placement, style Style) string {
	name := atom.Name
	if pos, ok := placed.Position(atom.Name); ok {
		name = style(ordering[pos], name)
	}
	if atom.Negated {
		return "NOT " + name
	}
	return name
}
