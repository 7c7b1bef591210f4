package path

import "github.com/Faultbox/printsim/pkg/math"

// PolylineLength sums the distances between consecutive points.
func PolylineLength(points []math.Vec3) float32 {
	var total float32
	for i := 0; i+1 < len(points); i++ {
		total += points[i].Distance(points[i+1])
	}
	return total
}

// KeyframesFromVertices takes every step-th vertex as a keyframe.
// A step below 1 keeps every vertex.
func KeyframesFromVertices(vertices []math.Vec3, step int) []math.Vec3 {
	step = max(1, step)
	keyframes := make([]math.Vec3, 0, (len(vertices)+step-1)/step)
	for i := 0; i < len(vertices); i += step {
		keyframes = append(keyframes, vertices[i])
	}
	return keyframes
}

// Simplify drops points closer than minDistance to the previously kept
// point. The first and last points are always kept.
func Simplify(points []math.Vec3, minDistance float32) []math.Vec3 {
	if len(points) <= 1 {
		return append([]math.Vec3(nil), points...)
	}

	simplified := []math.Vec3{points[0]}
	for _, p := range points[1:] {
		if simplified[len(simplified)-1].Distance(p) >= minDistance {
			simplified = append(simplified, p)
		}
	}

	last := points[len(points)-1]
	if simplified[len(simplified)-1] != last {
		simplified = append(simplified, last)
	}
	return simplified
}
