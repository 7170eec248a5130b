package ordering

import (
	"fmt"
	"sort"

	"github.com/crillab/gophersat/bf"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
	rtoerrors "github.com/alexisbeaulieu97/rto/pkg/errors"
)

// MaxFeasibilityItems bounds the catalogs CheckFeasible accepts; the
// transitivity encoding grows with the cube of the item count.
const MaxFeasibilityItems = 48

// Feasibility is the outcome of a satisfiability check.
type Feasibility struct {
	Satisfiable bool
	// Witness is a valid ordering when Satisfiable is true.
	Witness []catalog.Item
}

// CheckFeasible decides whether any ordering of items satisfies every formula.
// Each unordered pair {i, j} with i < j gets a variable meaning "i comes before
// j", which makes every assignment total and antisymmetric; forbidding both
// directed 3-cycles of every triple makes it transitive.
func CheckFeasible(items []catalog.Item) (*Feasibility, error) {
	if len(items) == 0 {
		return nil, rtoerrors.ErrCatalogEmpty
	}
	if len(items) > MaxFeasibilityItems {
		return nil, fmt.Errorf("feasibility check supports at most %d items, catalog has %d", MaxFeasibilityItems, len(items))
	}

	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item.Key()] = i
	}

	var parts []bf.Formula
	n := len(items)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				ij, jk, ik := precedes(i, j), precedes(j, k), precedes(i, k)
				parts = append(parts,
					bf.Or(bf.Not(ij), bf.Not(jk), ik),
					bf.Or(ij, jk, bf.Not(ik)),
				)
			}
		}
	}
	for i, item := range items {
		parts = append(parts, encodeFormula(item.Prerequisites, i, index))
	}

	f := conjoin(parts)
	var model map[string]bool
	switch f {
	case bf.False:
		return &Feasibility{}, nil
	case bf.True:
		model = map[string]bool{}
	default:
		model = bf.Solve(f)
		if model == nil {
			return &Feasibility{}, nil
		}
	}

	witness := decodeOrdering(items, model)
	if !IsValid(witness) {
		return nil, fmt.Errorf("feasibility model produced an invalid ordering")
	}
	return &Feasibility{Satisfiable: true, Witness: witness}, nil
}

func precedenceVar(i, j int) string {
	return fmt.Sprintf("before_%d_%d", i, j)
}

// precedes is the formula "item i is placed before item j".
func precedes(i, j int) bf.Formula {
	if i < j {
		return bf.Var(precedenceVar(i, j))
	}
	return bf.Not(bf.Var(precedenceVar(j, i)))
}

func encodeFormula(formula catalog.Formula, self int, index map[string]int) bf.Formula {
	clauses := make([]bf.Formula, 0, len(formula))
	for _, clause := range formula {
		options := make([]bf.Formula, 0, len(clause))
		for _, option := range clause {
			atoms := make([]bf.Formula, 0, len(option))
			for _, atom := range option {
				atoms = append(atoms, encodeAtom(atom, self, index))
			}
			options = append(options, conjoin(atoms))
		}
		clauses = append(clauses, disjoin(options))
	}
	return conjoin(clauses)
}

// encodeAtom folds atoms whose truth does not depend on the ordering (unknown
// targets, self references) into constants.
func encodeAtom(atom catalog.Atom, self int, index map[string]int) bf.Formula {
	target, ok := index[atom.Key()]
	if !ok || target == self {
		if atom.Negated {
			return bf.True
		}
		return bf.False
	}
	if atom.Negated {
		return bf.Not(precedes(target, self))
	}
	return precedes(target, self)
}

// conjoin and disjoin fold constants before handing formulas to bf, whose
// normalisation treats empty conjunctions and disjunctions asymmetrically.
func conjoin(fs []bf.Formula) bf.Formula {
	kept := make([]bf.Formula, 0, len(fs))
	for _, f := range fs {
		switch f {
		case bf.True:
			continue
		case bf.False:
			return bf.False
		}
		kept = append(kept, f)
	}
	switch len(kept) {
	case 0:
		return bf.True
	case 1:
		return kept[0]
	}
	return bf.And(kept...)
}

func disjoin(fs []bf.Formula) bf.Formula {
	kept := make([]bf.Formula, 0, len(fs))
	for _, f := range fs {
		switch f {
		case bf.False:
			continue
		case bf.True:
			return bf.True
		}
		kept = append(kept, f)
	}
	switch len(kept) {
	case 0:
		return bf.False
	case 1:
		return kept[0]
	}
	return bf.Or(kept...)
}

// decodeOrdering places each item after every item the model says precedes it.
func decodeOrdering(items []catalog.Item, model map[string]bool) []catalog.Item {
	type ranked struct {
		item        catalog.Item
		predecessor int
	}

	ranks := make([]ranked, len(items))
	for i, item := range items {
		ranks[i] = ranked{item: item}
		for j := range items {
			if j == i {
				continue
			}
			if before(j, i, model) {
				ranks[i].predecessor++
			}
		}
	}

	sort.SliceStable(ranks, func(a, b int) bool {
		return ranks[a].predecessor < ranks[b].predecessor
	})

	out := make([]catalog.Item, len(ranks))
	for i, r := range ranks {
		out[i] = r.item
	}
	return out
}

func before(i, j int, model map[string]bool) bool {
	if i < j {
		return model[precedenceVar(i, j)]
	}
	return !model[precedenceVar(j, i)]
}
