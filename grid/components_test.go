package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orienteer/grid"
)

func TestRegions(t *testing.T) {
	g, err := grid.New([]string{
		"S.#.",
		"..#G",
		"##..",
		"@#..",
	})
	require.NoError(t, err)

	labels, count := g.Regions()
	require.Equal(t, 3, count)
	require.Equal(t, []int{
		0, 0, -1, 1,
		0, 0, -1, 1,
		-1, -1, 1, 1,
		2, -1, 1, 1,
	}, labels)
}

func TestRegions_Diagonal(t *testing.T) {
	// diagonal contact does not join regions
	g, err := grid.New([]string{
		"S#",
		"#G",
	})
	require.NoError(t, err)

	_, count := g.Regions()
	require.Equal(t, 2, count)
}

func TestIsolated(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		idx  int
		ok   bool
	}{
		{"Connected", []string{"S.@", ".#.", "@.G"}, 0, false},
		{"GoalCut", []string{"S#G"}, 1, true},
		{"WaypointCut", []string{"S.G", "###", "@.."}, 2, true},
		{"SecondWaypointCut", []string{"S@G", "###", "@.."}, 3, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows)
			require.NoError(t, err)
			idx, ok := g.Isolated()
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.idx, idx)
		})
	}
}
