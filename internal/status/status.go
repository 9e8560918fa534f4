// Package status maps the sentinel errors returned by the core packages
// onto the fixed status-code vocabulary an FFI boundary would hand a
// caller across a language edge. No exported operation in this module
// returns a Code directly; From is the seam a future C-ABI or RPC layer
// would call at its edge.
package status

import (
	"context"
	"errors"

	spatialgraph "github.com/reachlab/spatialgraph"
	"github.com/reachlab/spatialgraph/generator"
	"github.com/reachlab/spatialgraph/matrix"
	"github.com/reachlab/spatialgraph/mesh"
	"github.com/reachlab/spatialgraph/pathfinder"
)

// Code is a status drawn from the fixed vocabulary a cross-language
// boundary reports instead of a language-native error value.
type Code int

const (
	OK Code = iota
	GenericError
	NotFound
	InvalidMesh
	NoGraph
	MissingDepend
	OutOfMemory
	InvalidPtr
	OutOfRange
	NoPath
	NotImplemented
)

func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case GenericError:
		return "GENERIC_ERROR"
	case NotFound:
		return "NOT_FOUND"
	case InvalidMesh:
		return "INVALID_MESH"
	case NoGraph:
		return "NO_GRAPH"
	case MissingDepend:
		return "MISSING_DEPEND"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case InvalidPtr:
		return "INVALID_PTR"
	case OutOfRange:
		return "OUT_OF_RANGE"
	case NoPath:
		return "NO_PATH"
	case NotImplemented:
		return "NOT_IMPLEMENTED"
	default:
		return "GENERIC_ERROR"
	}
}

// From classifies err into a Code. nil maps to OK; an unrecognized error
// maps to GenericError rather than panicking, since a boundary layer must
// always return some code.
func From(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, mesh.ErrInvalidMesh):
		return InvalidMesh
	case errors.Is(err, generator.ErrNoGround):
		return NoGraph
	case errors.Is(err, pathfinder.ErrNoPath):
		return NoPath
	case errors.Is(err, pathfinder.ErrShapeMismatch):
		return GenericError
	case errors.Is(err, pathfinder.ErrNegativeWeight):
		return GenericError
	case errors.Is(err, spatialgraph.ErrOutOfRange),
		errors.Is(err, matrix.ErrOutOfRange):
		return OutOfRange
	case errors.Is(err, spatialgraph.ErrNoSuchEdge):
		return NotFound
	case errors.Is(err, spatialgraph.ErrInvalidWeight),
		errors.Is(err, matrix.ErrInvalidWeight):
		return GenericError
	case errors.Is(err, spatialgraph.ErrUncompressed):
		return NoGraph
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return GenericError
	default:
		return GenericError
	}
}
