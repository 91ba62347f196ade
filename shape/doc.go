// Package shape derives backbone descriptors: length, tangents, bending
// angles, the tangent-tangent correlation function, inscribed diameters
// and aspect ratios.
//
// The functions compose:
//
//	order, _ := shape.PathOrder(g)           // endpoint-to-endpoint walk
//	tg, _ := shape.Tangents(order, points)   // successive displacements
//	ang := shape.Angles(tg)
//	ttc := shape.TangentCorrelation(shape.UnitTangents(tg))
//
// Compute runs all of them on a skeleton.Backbone. Metrics of a branched
// graph are computed best-effort, flagged as not Reliable and logged at
// Warn level.
package shape
