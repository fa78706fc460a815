package lattice

import "math"

// Slack allowed on barycentric coordinates when deciding which tile owns a
// point on a shared edge.
const Tolerance = 1e-6

// Point-in-triangle test using barycentric coordinates. See
// http://stackoverflow.com/questions/2049582/how-to-determine-a-point-in-a-2d-triangle
//
// The result is strictly inside: any point on an edge or vertex is rejected.
// Winding does not matter, since s and t are normalized by the signed area.
// The triangle must not be degenerate.
func PointIsInTriangle(px, py, p0x, p0y, p1x, p1y, p2x, p2y float64) bool {
	s, t := barycentric(px, py, p0x, p0y, p1x, p1y, p2x, p2y)
	return s > 0 && t > 0 && 1-s-t > 0
}

// Boundary inclusive version of PointIsInTriangle.
func pointIsOnOrInTriangle(px, py, p0x, p0y, p1x, p1y, p2x, p2y float64) bool {
	s, t := barycentric(px, py, p0x, p0y, p1x, p1y, p2x, p2y)
	return s > -Tolerance && t > -Tolerance && 1-s-t > -Tolerance
}

func barycentric(px, py, p0x, p0y, p1x, p1y, p2x, p2y float64) (s, t float64) {
	area := signedArea(p0x, p0y, p1x, p1y, p2x, p2y)
	s = 1 / (2 * area) * (p0y*p2x - p0x*p2y + (p2y-p0y)*px + (p0x-p2x)*py)
	t = 1 / (2 * area) * (p0x*p1y - p0y*p1x + (p0y-p1y)*px + (p1x-p0x)*py)
	return s, t
}

func signedArea(p0x, p0y, p1x, p1y, p2x, p2y float64) float64 {
	return 0.5 * (-p1y*p2x + p0y*(-p1x+p2x) + p0x*(p1y-p2y) + p1x*p2y)
}

// Rounds half up, so -0.5 goes to 0 rather than -1.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
