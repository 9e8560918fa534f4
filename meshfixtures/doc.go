// Package meshfixtures builds small synthetic triangle meshes used to
// exercise the Generator, Pathfinder, and View-Analysis packages end to
// end. Each constructor follows builder/impl_grid.go's shape: validate
// parameters, emit vertices/indices in a fixed deterministic order, and
// return a sentinel error on malformed input rather than panicking.
package meshfixtures
