package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
	"github.com/alexisbeaulieu97/rto/internal/ordering"
)

func sampleOrdering() []catalog.Item {
	cost := 160
	return []catalog.Item{
		{Name: "Straight Pin", Color: "red", Cost: &cost},
		{Name: "Compass", Color: "yellow"},
		{Name: "Threefold Pin", Color: "red", Prerequisites: catalog.Formula{{
			{{Name: "Straight Pin"}},
			{{Name: "Longpin"}},
		}}},
	}
}

func TestOrderingAndExplanationsPlain(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := NewPrinter(buf, false)
	items := sampleOrdering()

	p.Ordering(items)
	p.Explanations(ordering.Explain(items, p.Style))

	want := strings.Join([]string{
		"01. Straight Pin",
		"02. Compass",
		"03. Threefold Pin",
		"",
		"Check prerequisites:",
		"",
		"03. Threefold Pin",
		"  [Straight Pin OR Longpin] -> 01. Straight Pin",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
	require.NotContains(t, buf.String(), "\x1b[")
}

func TestColorOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := NewPrinter(buf, true)

	p.Ordering(sampleOrdering())
	out := buf.String()
	require.Contains(t, out, "\x1b[")
	require.Contains(t, out, "Straight Pin")

	// Unknown color tags stay plain.
	require.Equal(t, "Dash", p.Style(catalog.Item{Name: "Dash", Color: "green"}, "Dash"))
	require.NotEqual(t, "Dash", p.Style(catalog.Item{Name: "Dash", Color: "Blue"}, "Dash"))
}

func TestWrittenAndTotalCost(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := NewPrinter(buf, false)

	p.Written("/tmp/rto-Straight-Pin.lss")
	p.TotalCost(sampleOrdering())

	require.Equal(t, "\nWritten: /tmp/rto-Straight-Pin.lss\n\nTotal cost: 160 Rosaries\n", buf.String())
}

func TestFeasibilityAndUnknownReferences(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	p := NewPrinter(buf, false)

	p.Feasibility(&ordering.Feasibility{})
	require.Contains(t, buf.String(), "Catalog is unsatisfiable")

	buf.Reset()
	p.Feasibility(&ordering.Feasibility{Satisfiable: true, Witness: sampleOrdering()})
	require.Contains(t, buf.String(), "Catalog is satisfiable")
	require.Contains(t, buf.String(), "03. Threefold Pin")

	buf.Reset()
	p.UnknownReferences(nil)
	require.Empty(t, buf.String())

	p.UnknownReferences([]catalog.Reference{{Item: "Threefold Pin", Target: "Longpin"}})
	require.Contains(t, buf.String(), "  Threefold Pin -> Longpin")
}
