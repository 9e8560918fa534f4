package vec3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultEpsilon is the absolute tolerance used for componentwise Point
// equality and for quantized bucketing, unless a caller overrides it.
const DefaultEpsilon float32 = 1e-4

// Point is a 3-D position or direction stored as three 32-bit floats.
type Point struct {
	X, Y, Z float32
}

// r3Vec promotes p to gonum's float64-native vector type so arithmetic can
// reuse r3's reviewed implementations instead of hand-rolled float32 math.
func (p Point) r3Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

func fromR3(v r3.Vec) Point {
	return Point{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// Add returns a+b.
func Add(a, b Point) Point { return fromR3(r3.Add(a.r3Vec(), b.r3Vec())) }

// Sub returns a-b.
func Sub(a, b Point) Point { return fromR3(r3.Sub(a.r3Vec(), b.r3Vec())) }

// Scale returns f*p.
func Scale(f float32, p Point) Point { return fromR3(r3.Scale(float64(f), p.r3Vec())) }

// Cross returns the cross product a×b.
func Cross(a, b Point) Point { return fromR3(r3.Cross(a.r3Vec(), b.r3Vec())) }

// Dot returns the dot product a·b.
func Dot(a, b Point) float32 { return float32(r3.Dot(a.r3Vec(), b.r3Vec())) }

// Distance returns the Euclidean L2 distance between a and b.
func Distance(a, b Point) float32 {
	return float32(r3.Norm(r3.Sub(a.r3Vec(), b.r3Vec())))
}

// Normalize returns the unit vector in the direction of v. Per spec, a
// zero-length input returns the zero vector; callers must check for it
// before relying on the result as a direction.
func Normalize(v Point) Point {
	n := r3.Norm(v.r3Vec())
	if n == 0 {
		return Point{}
	}

	return fromR3(r3.Scale(1/n, v.r3Vec()))
}

// EqualEps reports whether a and b are equal within an absolute tolerance
// eps, applied componentwise.
func EqualEps(a, b Point, eps float32) bool {
	return absf32(a.X-b.X) <= eps && absf32(a.Y-b.Y) <= eps && absf32(a.Z-b.Z) <= eps
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}

	return v
}

// Key is a hashable bucket identifying all Points that are equal under a
// given epsilon. Two points with the same Key are considered the same node
// by the Graph's id_map.
type Key struct {
	qx, qy, qz int64
}

// Quantize buckets p to eps resolution, rounding each axis independently.
// Two points within eps/2 of the same grid cell share a Key; this mirrors
// (and slightly relaxes) the absolute-tolerance equality of EqualEps so
// floating rounding at the bucket boundary doesn't split truly-equal points.
func Quantize(p Point, eps float32) Key {
	inv := 1 / float64(eps)

	return Key{
		qx: int64(math.Round(float64(p.X) * inv)),
		qy: int64(math.Round(float64(p.Y) * inv)),
		qz: int64(math.Round(float64(p.Z) * inv)),
	}
}

// IsValidWeight reports whether w is usable as an edge weight: any value
// but NaN (infinities are accepted). Insertion call sites reject NaN with an
// invalid-weight error rather than let it silently poison a cost table.
func IsValidWeight(w float32) bool {
	return !math.IsNaN(float64(w))
}

// LessTotal orders a and b using IEEE-754 total order, except that every
// NaN, whatever its sign bit, sorts after all non-NaN values (rather than
// comparing false against everything); two NaNs compare equal. Cost tables
// never contain NaN after IsValidWeight rejection at insertion; LessTotal
// gives a consistent order for any float32 input, NaN included.
func LessTotal(a, b float32) bool {
	if b != b {
		return a == a
	}
	if a != a {
		return false
	}

	return totalOrderKey(a) < totalOrderKey(b)
}

// totalOrderKey maps IEEE-754 bits onto a monotonic uint32 keyspace:
// negative values are bit-inverted (so more-negative sorts smaller) and
// non-negative values get the sign bit set (so they sort above every
// negative). NaN's bit pattern sorts at one extreme of its sign, which is
// all that's required here: consistent, total ordering, never a panic.
func totalOrderKey(f float32) uint32 {
	b := math.Float32bits(f)
	if b&0x80000000 != 0 {
		return ^b
	}

	return b | 0x80000000
}
