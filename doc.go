// Package spatialgraph is a spatial-analysis toolkit for the built
// environment: given a triangle mesh, it builds a navigable graph of
// positions reachable by a walking agent, evaluates costs along graph edges
// under multiple cost models, computes shortest paths, and performs
// ray-cast-based view analysis from sampled positions.
//
// The module is organized as:
//
//	vec3/         — 3-D point/vector primitives and ε-equality
//	mesh/         — triangle mesh + BVH ray-tracer
//	matrix/       — compressed-sparse-row storage shared by all cost layers
//	spatialgraph/ — (this package) the node/edge Graph built on top of matrix.CSR
//	generator/    — breadth-expansion graph construction via ray drops
//	costs/        — cross-slope and energy cost-layer algorithms
//	pathfinder/   — single, multi, and all-pairs Dijkstra over a chosen layer
//	viewanalysis/ — stratified ray-bundle sampling and aggregation
//
// This package is the hub: the Generator writes into it, cost algorithms
// read and extend it, and the Pathfinder/View-Analysis packages read its
// compressed CSR form.
package spatialgraph
