package sphere

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/medax"
)

// Fit returns the least-squares sphere through points.
//
// Steps:
//  1. Fewer than MinPoints points: return the seed.
//  2. Assemble A (n×4) with rows [2x 2y 2z 1] and b with |p|².
//  3. Solve A·u = b in the least-squares sense by QR.
//  4. Center = u[0:3], Radius = sqrt(|u[3] + |c|²|).
//  5. Singular systems and non-finite results return the seed.
//
// Complexity: O(n) to assemble, O(n) for the 4-column QR.
func Fit(points []r3.Vector, opts ...FitOption) Sphere {
	o := DefaultFitOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 1. Too few points.
	n := len(points)
	if n < o.MinPoints || n < 4 {
		return o.Seed
	}

	// 2. Linear system.
	a := mat.NewDense(n, 4, nil)
	b := mat.NewVecDense(n, nil)
	for i, p := range points {
		a.SetRow(i, []float64{2 * p.X, 2 * p.Y, 2 * p.Z, 1})
		b.SetVec(i, p.Dot(p))
	}

	// 3. QR least squares. A finite Condition error still carries a usable
	// solution; an infinite one means A is exactly singular.
	var u mat.VecDense
	if err := u.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 0) || u.Len() != 4 {
			medax.Logger().Warn("sphere: fit failed, using seed", "points", n, "err", err)
			return o.Seed
		}
	}

	// 4. Recover the radius.
	c := r3.Vector{X: u.AtVec(0), Y: u.AtVec(1), Z: u.AtVec(2)}
	r := math.Sqrt(math.Abs(u.AtVec(3) + c.Dot(c)))

	// 5. Reject non-finite results.
	if !finite(c.X) || !finite(c.Y) || !finite(c.Z) || !finite(r) {
		medax.Logger().Warn("sphere: degenerate fit, using seed", "points", n)
		return o.Seed
	}

	return Sphere{Center: c, Radius: r}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
