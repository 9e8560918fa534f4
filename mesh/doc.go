// Package mesh stores an indexed triangle mesh and answers ray queries
// against it (closest hit, occlusion, bundles of rays) via a bounding
// volume hierarchy.
//
// Geometry itself — Box union/center/size, the ray-triangle test's vector
// algebra — is built on gonum.org/v1/gonum/spatial/r3, the way
// spatial/r3/box.go and triangle.go shape that API. The BVH build and
// traversal are this package's own: a median-split binary tree over
// triangle centroids, walked with the classic slab test against each
// node's Box before descending.
package mesh
