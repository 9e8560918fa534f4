package viewanalysis

import (
	"context"
	"errors"
	"math"

	"github.com/reachlab/spatialgraph/internal/workerpool"
	"github.com/reachlab/spatialgraph/mesh"
	"github.com/reachlab/spatialgraph/vec3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Reducer selects how Aggregate mode collapses a bundle's hit distances
// into a single f32 per origin.
type Reducer int

const (
	Average Reducer = iota
	Sum
	Count
	AverageReciprocal
	Max
	Min
)

// ErrUnknownReducer is returned by Aggregate for an out-of-range Reducer.
var ErrUnknownReducer = errors.New("viewanalysis: unknown reducer")

// Config parameterizes direction sampling shared by both modes.
type Config struct {
	RayCount    int
	Height      float32 // offset above each origin the bundle fires from
	MaxDistance float32
	UpFovDeg    float32 // polar angle, degrees, measured from +z (0 = straight up)
	DownFovDeg  float32 // polar angle, degrees, measured from -z (0 = straight down)
}

// PerRayHit is one entry of the Per-ray mode result grid.
type PerRayHit struct {
	Hit      bool
	Distance float32
	MeshID   int32
}

// directions returns the Fibonacci-spiral sample directions for cfg,
// keeping polar angles (from the +z pole) in [cfg.UpFovDeg,
// 180°-cfg.DownFovDeg]; a zero UpFovDeg or DownFovDeg leaves that bound
// open. Directions outside the FOV are discarded rather than
// reflected, so the effective per-origin ray count is len(result).
func directions(cfg Config) []r3.Vec {
	n := cfg.RayCount
	out := make([]r3.Vec, 0, n)
	goldenAngle := math.Pi * (1 + math.Sqrt(5))

	upLimit := degToRad(cfg.UpFovDeg)
	downLimit := math.Pi - degToRad(cfg.DownFovDeg)

	for i := 0; i < n; i++ {
		theta := math.Acos(1 - 2*(float64(i)+0.5)/float64(n))
		if cfg.UpFovDeg > 0 && theta < upLimit {
			continue
		}
		if cfg.DownFovDeg > 0 && theta > downLimit {
			continue
		}
		phi := goldenAngle * float64(i)

		out = append(out, r3.Vec{
			X: math.Sin(theta) * math.Cos(phi),
			Y: math.Sin(theta) * math.Sin(phi),
			Z: math.Cos(theta),
		})
	}

	return out
}

func degToRad(d float32) float64 { return float64(d) * math.Pi / 180 }

// Aggregate fires a ray bundle from each origin (offset upward by
// cfg.Height) and reduces the hit distances of rays that hit into a
// single f32 per origin, using reducer. Misses are excluded from the
// reduction; an origin with zero hits yields 0.
func Aggregate(ctx context.Context, rt *mesh.Mesh, origins []vec3.Point, cfg Config, reducer Reducer, workers int) ([]float32, error) {
	if reducer < Average || reducer > Min {
		return nil, ErrUnknownReducer
	}

	dirs := directions(cfg)
	out := make([]float32, len(origins))

	err := workerpool.Run(ctx, len(origins), workers, func(i int) error {
		o := origins[i]
		rayOrigin := r3.Vec{X: float64(o.X), Y: float64(o.Y), Z: float64(o.Z) + float64(cfg.Height)}

		var sum, sumRecip, maxD, minD float32
		var hits int
		minD = float32(math.Inf(1))
		for _, d := range dirs {
			hit := rt.Intersect(rayOrigin, d)
			if !hit.Hit || hit.Distance > cfg.MaxDistance {
				continue
			}
			hits++
			sum += hit.Distance
			sumRecip += 1 / hit.Distance
			if hit.Distance > maxD {
				maxD = hit.Distance
			}
			if hit.Distance < minD {
				minD = hit.Distance
			}
		}

		switch reducer {
		case Average:
			if hits > 0 {
				out[i] = sum / float32(hits)
			}
		case Sum:
			out[i] = sum
		case Count:
			out[i] = float32(hits)
		case AverageReciprocal:
			if hits > 0 {
				out[i] = sumRecip / float32(hits)
			}
		case Max:
			out[i] = maxD
		case Min:
			if hits > 0 {
				out[i] = minD
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// PerRay fires a ray bundle from each origin and returns the full
// [len(origins)][len(directions)] result grid; dir sampling is identical
// to Aggregate's, so the inner slice length may vary by FOV clamping but
// is the same for every origin under a fixed cfg.
func PerRay(ctx context.Context, rt *mesh.Mesh, origins []vec3.Point, cfg Config, workers int) ([][]PerRayHit, error) {
	dirs := directions(cfg)
	out := make([][]PerRayHit, len(origins))

	err := workerpool.Run(ctx, len(origins), workers, func(i int) error {
		o := origins[i]
		rayOrigin := r3.Vec{X: float64(o.X), Y: float64(o.Y), Z: float64(o.Z) + float64(cfg.Height)}

		row := make([]PerRayHit, len(dirs))
		for k, d := range dirs {
			hit := rt.Intersect(rayOrigin, d)
			if hit.Hit && hit.Distance <= cfg.MaxDistance {
				row[k] = PerRayHit{Hit: true, Distance: hit.Distance, MeshID: hit.MeshID}
			}
		}
		out[i] = row

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
