package skeleton_test

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/katalvlaran/medax/builder"
	"github.com/katalvlaran/medax/skeleton"
)

// BenchmarkBuild measures 500 samples scattered along a thick band.
func BenchmarkBuild(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	ps := make(skeleton.PointSet, 500)
	for i := range ps {
		ps[i] = skeleton.Point{Pos: r3.Vector{X: r.Float64() * 50, Y: r.Float64() * 2, Z: r.Float64() * 2}, Rad: 1}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = skeleton.Build(ps, skeleton.WithBinWidth(1))
	}
}

// BenchmarkExtract measures pruning a random 1000-node tree.
func BenchmarkExtract(b *testing.B) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithWeightFn(builder.UniformWeightFn(0.5, 1.5))},
		builder.RandomTree(1000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = skeleton.Extract(g)
	}
}
