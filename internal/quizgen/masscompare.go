package quizgen

import "github.com/daylab/labmate/internal/catalog"

// massComparison builds the "which substance has the largest molar mass?"
// question: four distinct items drawn uniformly at random, with the
// heaviest one's name as the correct option. Items need a positive molar
// mass and a usable, unique name to qualify; with fewer than four
// qualifiers the question is skipped, not substituted.
func (e *Engine) massComparison(items []catalog.Item) (Question, bool) {
	type entry struct {
		name string
		mass float64
	}

	seen := map[string]bool{}
	var pool []entry
	for _, it := range items {
		name := it.DisplayName()
		if name == "" || seen[name] {
			continue
		}
		if it.MolarMass == nil || *it.MolarMass <= 0 {
			continue
		}
		seen[name] = true
		pool = append(pool, entry{name: name, mass: *it.MolarMass})
	}

	if len(pool) < 4 {
		return Question{}, false
	}

	// Uniform draw of 4 distinct entries: shuffle a private copy,
	// take the head.
	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	picked := pool[:4]

	heaviest := picked[0]
	for _, p := range picked[1:] {
		if p.mass > heaviest.mass {
			heaviest = p
		}
	}

	options := make([]string, len(picked))
	for i, p := range picked {
		options[i] = p.name
	}
	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, o := range options {
		if o == heaviest.name {
			correctIndex = i
			break
		}
	}

	q := e.question("다음 중 분자량이 가장 큰 물질은 무엇인가요?", options, correctIndex)
	q.Topic = heaviest.name
	return q, true
}
