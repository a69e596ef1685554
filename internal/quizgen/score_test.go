package quizgen

import "testing"

func TestScore(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    int
	}{
		{0, 0, 0},
		{3, 0, 0},
		{0, 10, 0},
		{10, 10, 100},
		{4, 5, 80},
		{1, 3, 33},
		{2, 3, 67},
		{7, 9, 78},
		{1, 8, 13}, // 12.5 rounds up
	}

	for _, tt := range tests {
		if got := Score(tt.correct, tt.total); got != tt.want {
			t.Errorf("Score(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}
