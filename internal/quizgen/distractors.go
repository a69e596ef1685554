package quizgen

import "strings"

// pickDistractors draws up to count wrong answers from candidates.
// Values equal to exclude, empty values, and duplicates are filtered out,
// the remainder is uniformly shuffled, and the first count survivors are
// returned. The result may be shorter than count; buildOptions pads from
// the configured fallbacks.
func (e *Engine) pickDistractors(candidates []string, exclude string, count int) []string {
	seen := map[string]bool{exclude: true}
	var pool []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		pool = append(pool, c)
	}

	e.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > count {
		pool = pool[:count]
	}
	return pool
}

// buildOptions assembles the option list for one question: the correct
// answer plus distractors, padded from fallback when the real pool is too
// small, shuffled, with the correct index located afterwards.
func (e *Engine) buildOptions(correct string, candidates, fallback []string) ([]string, int) {
	distractors := e.pickDistractors(candidates, correct, e.cfg.OptionCount-1)

	if len(distractors) < e.cfg.OptionCount-1 {
		used := map[string]bool{correct: true}
		for _, d := range distractors {
			used[d] = true
		}
		for _, f := range fallback {
			if len(distractors) >= e.cfg.OptionCount-1 {
				break
			}
			if f == "" || used[f] {
				continue
			}
			used[f] = true
			distractors = append(distractors, f)
		}
	}

	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	options = append(options, distractors...)

	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, o := range options {
		if o == correct {
			correctIndex = i
			break
		}
	}
	return options, correctIndex
}
