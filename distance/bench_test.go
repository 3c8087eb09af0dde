package distance_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/orienteer/distance"
	"github.com/katalvlaran/orienteer/grid"
)

// openField returns a 60×60 open grid with landmarks spread along the diagonal.
func openField(b *testing.B) *grid.Grid {
	b.Helper()
	const size = 60
	rows := make([]string, size)
	for y := range rows {
		row := []byte(strings.Repeat(".", size))
		switch {
		case y == 0:
			row[0] = 'S'
		case y == size-1:
			row[size-1] = 'G'
		case y%6 == 0:
			row[y] = '@'
		}
		rows[y] = string(row)
	}
	g, err := grid.New(rows)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkBuild(b *testing.B, workers int) {
	g := openField(b)
	lm := g.Landmarks()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distance.Build(g, lm, distance.WithWorkers(workers)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_Sequential(b *testing.B) { benchmarkBuild(b, 1) }
func BenchmarkBuild_Workers4(b *testing.B)   { benchmarkBuild(b, 4) }

func BenchmarkClose_K15(b *testing.B) {
	m, _ := distance.NewMatrix(15)
	for i := 0; i < 15; i++ {
		for j := i + 1; j < 15; j++ {
			m.SetPair(i, j, (i*7+j*13)%29+1)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		distance.Close(m.Clone())
	}
}
