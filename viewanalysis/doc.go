// Package viewanalysis samples rays from origin positions using a
// deterministic Fibonacci-spiral direction distribution and reduces the
// resulting hit distances per origin (Aggregate mode) or returns the full
// per-ray grid (Per-ray mode). Concurrency mirrors the Generator: parallel
// over origins via internal/workerpool, with the RayTracer read-only.
package viewanalysis
