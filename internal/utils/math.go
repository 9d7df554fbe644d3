// internal/utils/math.go
package utils

// Approach moves current toward target by at most step.
func Approach(current, target, step float64) float64 {
	if current < target {
		return min(current+step, target)
	}
	return max(current-step, target)
}
