package quizgen

// Question is one rendered multiple-choice quiz question, ready for
// display. Options carry exactly one correct answer; their order is
// randomized per generation and is not stable across sessions.
type Question struct {
	// ID uniquely identifies this generated question instance.
	ID string

	// Text is the prompt, already interpolated with any item facts.
	Text string

	// Options are the answer choices. No duplicates; the correct answer
	// is at CorrectIndex.
	Options []string

	// CorrectIndex is recomputed after every shuffle, never carried over
	// from the pre-shuffle position.
	CorrectIndex int

	// Topic is the display name of the inventory item the question was
	// derived from. Empty for fixed-pool questions.
	Topic string
}

// Correct reports whether the submitted option index is the right answer.
func (q Question) Correct(choice int) bool {
	return choice == q.CorrectIndex
}

// FixedQuestion is a pre-authored question from the static pool. Its
// canonical option order is reshuffled on every draw so the pool never
// shows up in its authored arrangement.
type FixedQuestion struct {
	Prompt       string
	Options      [4]string
	CorrectIndex int
}
