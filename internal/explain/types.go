package explain

import "github.com/daylab/labmate/internal/catalog"

// Explanation is a generated safety briefing for a reagent.
type Explanation struct {
	ItemName string
	Summary  string
	Hazards  []string
	Handling []string
	FirstAid string
}

// Input describes what to explain.
type Input struct {
	Item catalog.Item

	// MissedQuestion is the text of a quiz question the student answered
	// incorrectly about this item. Empty outside quiz review.
	MissedQuestion string
}
