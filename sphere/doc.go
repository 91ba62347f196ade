// Package sphere fits a best-fit sphere to a point cloud and uses it to
// thin medial-axis candidates by angular binning.
//
// Fit solves the algebraic least-squares problem
//
//	min Σ (|p − c|² − R²)²
//
// which is linear in (c, R² − |c|²): each point contributes the row
// [2x 2y 2z 1] with right-hand side |p|². The system is solved by QR
// (gonum mat). Fewer than MinFitPoints points, a rank-deficient system or
// a non-finite solution return the seed sphere unchanged.
//
// Project converts candidates to spherical coordinates about the sphere
// center and visits them nearest-to-surface first. Each still-active point
// claims an angular box of half-widths δ/(2R) in θ and δ/(2R·sin θ) in φ;
// every other active point inside the box is dropped and the claiming
// point records the largest wall distance seen in it. Survivors are moved
// radially onto the sphere surface.
package sphere
