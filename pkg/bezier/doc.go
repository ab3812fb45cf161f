// Package bezier evaluates Bezier curves of arbitrary degree.
//
// A curve is described by its control polygon (N+1 points for degree N) and
// sampled with the Bernstein basis: every sample is the weighted sum of the
// control points, computed separately for the x and y coordinates.
// All functions are pure and safe for concurrent use.
package bezier
