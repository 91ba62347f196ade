package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/geo/r3"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/medax"
	"github.com/katalvlaran/medax/core"
	"github.com/katalvlaran/medax/gridgraph"
	"github.com/katalvlaran/medax/ridge"
	"github.com/katalvlaran/medax/shape"
	"github.com/katalvlaran/medax/skeleton"
	"github.com/katalvlaran/medax/sphere"
)

// Component carries every intermediate product of one ridge component.
type Component struct {
	Index int

	// Voxels is the thinned ridge region.
	Voxels *gridgraph.VoxelSet

	// Points are the projected samples, in graph units.
	Points skeleton.PointSet

	Tree     *core.Graph
	Backbone *skeleton.Backbone
	Metrics  *shape.Metrics
}

// Result is the output of Run.
type Result struct {
	Ridge *ridge.Ridge

	// Sphere is the projection sphere shared by all components; nil when
	// each component was fitted on its own.
	Sphere *sphere.Sphere

	// Components are in ridge.Split order.
	Components []*Component
}

// Run extracts skeletons and shape metrics from field.
//
// Steps:
//  1. Validate cfg.
//  2. Detect and split ridge candidates.
//  3. Pick the projection sphere: configured, fitted to the domain, or
//     left to each component.
//  4. Process components concurrently (bounded by cfg.Workers); the first
//     error cancels the rest.
//
// Errors are returned for invalid configuration, a nil field and context
// cancellation. Data degeneracies are handled by fallbacks and logged.
func Run(ctx context.Context, field *gridgraph.ScalarField, cfg Config) (*Result, error) {
	// 1. Config.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	log := medax.Logger()

	// 2. Ridge.
	ropts := cfg.ridgeOptions()
	r, err := ridge.Detect(field, ropts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: detect: %w", err)
	}
	comps, err := ridge.Split(r, ropts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline: split: %w", err)
	}
	log.Info("pipeline: ridge components", "count", len(comps), "fallback", r.UsedFallback)

	// 3. Sphere.
	res := &Result{Ridge: r, Components: make([]*Component, len(comps))}
	switch {
	case cfg.Sphere != nil:
		s := cfg.Sphere.Sphere()
		res.Sphere = &s
	case cfg.FitDomainSphere:
		s := sphere.Fit(voxelVectors(field.DomainVoxels()), cfg.fitOptions()...)
		res.Sphere = &s
		log.Debug("pipeline: domain sphere", "center", s.Center, "radius", s.Radius)
	}

	// 4. Fan out.
	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, vs := range comps {
		g.Go(func() error {
			c, err := processComponent(gctx, field, vs, res.Sphere, cfg)
			if err != nil {
				return fmt.Errorf("pipeline: component %d: %w", i, err)
			}
			c.Index = i
			res.Components[i] = c
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	log.Info("pipeline: done", "components", len(comps), "elapsed", time.Since(start))

	return res, nil
}

// processComponent runs projection, graph building, pruning and metrics.
func processComponent(ctx context.Context, field *gridgraph.ScalarField, vs *gridgraph.VoxelSet,
	sph *sphere.Sphere, cfg Config) (*Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Samples and their wall distances.
	voxels := vs.Voxels()
	edt := make([]float64, len(voxels))
	for i, v := range voxels {
		edt[i] = field.EDT(v)
	}

	// Deduplicate on the sphere.
	popts := []sphere.ProjectOption{
		sphere.WithBinWidth(cfg.Scale * cfg.Diameter / cfg.ProjectorDivisor),
		sphere.WithMinProjectPoints(cfg.MinProjectPoints),
		sphere.WithFitOptions(cfg.fitOptions()...),
	}
	if sph != nil {
		popts = append(popts, sphere.WithSphere(*sph))
	}
	points, err := sphere.Project(voxelVectors(voxels), edt, popts...)
	if err != nil {
		return nil, err
	}
	if cfg.RealUnits {
		points = points.Scaled(1 / cfg.Scale)
	}

	// Tree and backbone.
	tree, err := skeleton.Build(points,
		skeleton.WithTolerance(cfg.Tolerance),
		skeleton.WithBinWidth(cfg.graphBinWidth()),
		skeleton.WithMethod(cfg.MSTMethod))
	if err != nil {
		return nil, err
	}
	bb, err := skeleton.Extract(tree, skeleton.WithContext(ctx), skeleton.WithMaxPasses(cfg.MaxPasses))
	if err != nil {
		return nil, err
	}

	// Descriptors.
	m, err := shape.Compute(bb, points)
	if err != nil {
		return nil, err
	}
	medax.Logger().Debug("pipeline: component",
		"voxels", len(voxels), "points", len(points), "tree", tree.NodeCount(),
		"backbone", bb.Graph.NodeCount(), "length", m.Length, "simple", bb.Simple)

	return &Component{
		Voxels:   vs,
		Points:   points,
		Tree:     tree,
		Backbone: bb,
		Metrics:  m,
	}, nil
}

func voxelVectors(vs []gridgraph.Voxel) []r3.Vector {
	out := make([]r3.Vector, len(vs))
	for i, v := range vs {
		out[i] = v.Vector()
	}

	return out
}

// Condense concatenates the samples of every component into one set, in
// component order.
func Condense(res *Result) skeleton.PointSet {
	if res == nil {
		return nil
	}
	var out skeleton.PointSet
	for _, c := range res.Components {
		if c != nil {
			out = append(out, c.Points...)
		}
	}

	return out
}
