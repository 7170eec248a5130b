package ordering

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
)

func TestExplainSkipsItemsWithoutPrerequisites(t *testing.T) {
	t.Parallel()

	ordering := []catalog.Item{item("Needle"), item("Wallcling", requires("Needle")), item("Dash")}
	explanations := Explain(ordering, nil)

	require.Len(t, explanations, 1)
	require.Equal(t, 1, explanations[0].Position)
	require.Equal(t, "Wallcling", explanations[0].Item.Name)
	require.Len(t, explanations[0].Clauses, 1)

	clause := explanations[0].Clauses[0]
	require.Equal(t, 0, clause.Witness)
	require.Equal(t, []Reference{{Position: 0, Item: ordering[0]}}, clause.Satisfiers)
	require.Equal(t, "[Needle] -> 01. Needle", clause.Text)
}

func TestExplainPicksFirstHoldingOption(t *testing.T) {
	t.Parallel()

	// (A AND B) OR C with only C placed earlier: the second option is the witness.
	ordering := []catalog.Item{
		item("C"),
		item("X", catalog.Clause{{pos("A"), pos("B")}, {pos("C")}}),
		item("A"),
		item("B"),
	}

	exp := Explain(ordering, nil)
	require.Len(t, exp, 1)
	clause := exp[0].Clauses[0]
	require.Equal(t, 1, clause.Witness)
	require.Equal(t, "[(A AND B) OR C] -> 01. C", clause.Text)
}

func TestExplainListsOtherPositiveAtoms(t *testing.T) {
	t.Parallel()

	ordering := []catalog.Item{
		item("B"),
		item("Dash"),
		item("A"),
		item("X", catalog.Clause{{pos("A"), neg("Z"), pos("B")}, {pos("Dash")}}),
	}

	exp := Explain(ordering, nil)
	clause := exp[0].Clauses[0]
	require.Equal(t, 0, clause.Witness)
	require.Equal(t, []string{"A", "B"}, names([]catalog.Item{clause.Satisfiers[0].Item, clause.Satisfiers[1].Item}))
	require.Equal(t, "[(A AND NOT Z AND B) OR Dash] -> 03. A / 01. B", clause.Text)
}

func TestExplainNegatedOnlyClauseHasNoSuffix(t *testing.T) {
	t.Parallel()

	ordering := []catalog.Item{
		item("B", catalog.Clause{{neg("A")}}),
		item("A"),
	}

	exp := Explain(ordering, nil)
	require.Len(t, exp, 1)
	clause := exp[0].Clauses[0]
	require.Equal(t, 0, clause.Witness)
	require.Empty(t, clause.Satisfiers)
	require.Equal(t, "[NOT A]", clause.Text)
}

func TestExplainMultipleClauses(t *testing.T) {
	t.Parallel()

	ordering := []catalog.Item{
		item("Needle"),
		item("Cloak"),
		item("Harpoon", requires("Needle"), catalog.Clause{{pos("Dash")}, {pos("Cloak")}}),
	}

	exp := Explain(ordering, nil)
	require.Len(t, exp, 1)
	require.Len(t, exp[0].Clauses, 2)
	require.Equal(t, "[Needle] -> 01. Needle", exp[0].Clauses[0].Text)
	require.Equal(t, "[Dash OR Cloak] -> 02. Cloak", exp[0].Clauses[1].Text)
}

func TestExplainAppliesStyle(t *testing.T) {
	t.Parallel()

	needle := catalog.Item{Name: "Needle", Color: "red"}
	ordering := []catalog.Item{needle, item("Wallcling", catalog.Clause{{pos("Needle")}, {pos("Ghost")}})}

	style := func(it catalog.Item, text string) string {
		return "<" + it.Color + ">" + text + "</>"
	}

	exp := Explain(ordering, style)
	require.Equal(t, "[<red>Needle</> OR Ghost] -> 01. <red>Needle</>", exp[0].Clauses[0].Text)
}

func TestReferenceLabel(t *testing.T) {
	t.Parallel()

	ref := Reference{Position: 11, Item: catalog.Item{Name: "Curveclaw"}}
	require.Equal(t, "12. Curveclaw", ref.Label(PlainStyle))
}
