package vmath

import "math"

// Polar converts an angle (radians, counter-clockwise, y up) and speed into a
// screen-space velocity where y grows downward
func Polar(angle, speed float64) (vx, vy float64) {
	return math.Cos(angle) * speed, -math.Sin(angle) * speed
}

// RingPoint returns the point at radius r around (cx, cy) in screen space
func RingPoint(cx, cy, r, angle float64) (float64, float64) {
	return cx + r*math.Cos(angle), cy - r*math.Sin(angle)
}

// Fan returns n angles centred on center, spaced by spread
func Fan(center, spread float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	start := center - spread*float64(n-1)/2
	for i := range out {
		out[i] = start + spread*float64(i)
	}
	return out
}
