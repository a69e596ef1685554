package quizgen

import "math"

// Score converts a correct-answer count into a 0-100 score, rounded to
// the nearest integer. Zero total scores zero.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
