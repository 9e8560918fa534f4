// Package vec3 provides the 3-D point/vector primitives shared by every
// other package in this module: distance, direction normalization, and the
// quantized-equality scheme used to key graph nodes by position.
//
// Arithmetic is delegated to gonum.org/v1/gonum/spatial/r3, which already
// carries a numerically reviewed implementation of Add/Sub/Scale/Cross/Dot
// over float64 vectors; Point stores float32 components (per the spec's
// storage budget) and converts at the boundary of each operation.
package vec3
