// Package costs computes alternate edge-cost layers over a
// spatialgraph.Graph's default layer, writing each result back via
// AttachCostLayer. The guarded-iteration, defensive-NaN/negative-weight
// style is grounded on tsp/cost.go's TourCost family; each layer's edges are
// a subset of the default layer's, with edges whose cost is undefined left
// out.
package costs
