package ordering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/rto/internal/catalog"
	rtoerrors "github.com/alexisbeaulieu97/rto/pkg/errors"
)

func TestCheckFeasible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		items []catalog.Item
		want  bool
	}{
		{
			name:  "single unconstrained item",
			items: []catalog.Item{item("A")},
			want:  true,
		},
		{
			name:  "single item requiring itself",
			items: []catalog.Item{item("A", requires("A"))},
			want:  false,
		},
		{
			name:  "two unconstrained items",
			items: []catalog.Item{item("A"), item("B")},
			want:  true,
		},
		{
			name:  "simple precedence",
			items: []catalog.Item{item("Wallcling", requires("Needle")), item("Needle")},
			want:  true,
		},
		{
			name:  "negated precedence",
			items: []catalog.Item{item("A"), item("B", catalog.Clause{{neg("A")}})},
			want:  true,
		},
		{
			name:  "two-cycle",
			items: []catalog.Item{item("A", requires("B")), item("B", requires("A"))},
			want:  false,
		},
		{
			name: "three-cycle",
			items: []catalog.Item{
				item("A", requires("C")),
				item("B", requires("A")),
				item("C", requires("B")),
			},
			want: false,
		},
		{
			name: "cycle broken by alternative option",
			items: []catalog.Item{
				item("A", catalog.Clause{{pos("B")}, {pos("D")}}),
				item("B", requires("A")),
				item("D"),
			},
			want: true,
		},
		{
			name: "contradicting negations",
			items: []catalog.Item{
				item("A", catalog.Clause{{neg("B")}}),
				item("B", catalog.Clause{{neg("A")}}),
			},
			want: false,
		},
		{
			name:  "unknown positive target",
			items: []catalog.Item{item("A", requires("Ghost")), item("B")},
			want:  false,
		},
		{
			name:  "unknown negated target",
			items: []catalog.Item{item("A", catalog.Clause{{neg("Ghost")}}), item("B")},
			want:  true,
		},
		{
			name: "chain",
			items: []catalog.Item{
				item("D", requires("C")),
				item("C", requires("B")),
				item("B", requires("A")),
				item("A"),
				item("E"),
			},
			want: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			result, err := CheckFeasible(tc.items)
			require.NoError(t, err)
			require.Equal(t, tc.want, result.Satisfiable)
			if tc.want {
				require.Len(t, result.Witness, len(tc.items))
				require.True(t, IsValid(result.Witness))
			} else {
				require.Empty(t, result.Witness)
			}
		})
	}
}

func TestCheckFeasibleEmbeddedCatalog(t *testing.T) {
	t.Parallel()

	c, err := catalog.Load("")
	require.NoError(t, err)
	require.LessOrEqual(t, c.Len(), MaxFeasibilityItems)

	result, err := CheckFeasible(c.Items())
	require.NoError(t, err)
	require.True(t, result.Satisfiable)
	require.True(t, IsValid(result.Witness))
}

func TestCheckFeasibleLimits(t *testing.T) {
	t.Parallel()

	_, err := CheckFeasible(nil)
	require.ErrorIs(t, err, rtoerrors.ErrCatalogEmpty)

	items := make([]catalog.Item, MaxFeasibilityItems+1)
	for i := range items {
		items[i] = item(fmt.Sprintf("T%d", i))
	}
	_, err = CheckFeasible(items)
	require.ErrorContains(t, err, "at most")
}
