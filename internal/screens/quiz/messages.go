package quiz

import (
	"time"

	"github.com/daylab/labmate/internal/quizgen"
)

// quizStartedMsg carries the generated question set.
type quizStartedMsg struct {
	Questions []quizgen.Question
	Err       error
}

// feedbackDoneMsg advances past the answer feedback overlay.
type feedbackDoneMsg struct{}

// quizEndMsg finishes the quiz and moves to the summary.
type quizEndMsg struct{}

// explainPollMsg polls the explanation service for a finished briefing.
type explainPollMsg time.Time
