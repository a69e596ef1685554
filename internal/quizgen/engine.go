package quizgen

import (
	"math/rand/v2"
	"time"

	"github.com/daylab/labmate/internal/catalog"
)

// Engine generates randomized safety-quiz sessions from a reagent
// snapshot plus an authored question pool. It never mutates the caller's
// snapshot or pool; every shuffle runs on a private copy, so concurrent
// sessions over a shared catalog are safe as long as each Engine is used
// by one session at a time (the rand source is not synchronized).
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// New creates an Engine. Zero config fields fall back to DefaultConfig
// values; a nil Rand gets a time-seeded source.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.TotalQuestions <= 0 {
		cfg.TotalQuestions = def.TotalQuestions
	}
	if cfg.MaxDynamic <= 0 {
		cfg.MaxDynamic = def.MaxDynamic
	}
	if cfg.OptionCount <= 0 {
		cfg.OptionCount = def.OptionCount
	}

	rng := cfg.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}

	return &Engine{cfg: cfg, rng: rng}
}

// GenerateSession assembles one quiz session from the item snapshot:
//
//  1. one mass-comparison question, when derivable;
//  2. up to MaxDynamic snapshot-derived questions, drawing items without
//     replacement so no item contributes twice;
//  3. the remainder from the fixed pool, also without replacement, each
//     draw reshuffling its options;
//  4. a final shuffle of the combined sequence so dynamic and fixed
//     questions interleave.
//
// The result holds min(TotalQuestions, available) questions. An empty or
// unusable snapshot degrades to a fixed-pool-only session; an undersized
// fixed pool yields a short session rather than an error.
func (e *Engine) GenerateSession(items []catalog.Item) []Question {
	var session []Question

	dynamicBudget := min(e.cfg.MaxDynamic, e.cfg.TotalQuestions)

	if dynamicBudget > 0 {
		if q, ok := e.massComparison(items); ok {
			session = append(session, q)
			dynamicBudget--
		}
	}

	// Draw items without replacement until the dynamic budget is spent
	// or the snapshot runs dry.
	pool := make([]catalog.Item, len(items))
	copy(pool, items)
	for dynamicBudget > 0 && len(pool) > 0 {
		idx := e.rng.IntN(len(pool))
		item := pool[idx]
		pool[idx] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		candidates := e.deriveForItem(item, items)
		if len(candidates) == 0 {
			continue
		}
		session = append(session, candidates[e.rng.IntN(len(candidates))])
		dynamicBudget--
	}

	// Top up from the authored pool.
	remaining := e.cfg.TotalQuestions - len(session)
	if remaining > 0 {
		fixed := make([]FixedQuestion, len(e.cfg.FixedPool))
		copy(fixed, e.cfg.FixedPool)
		e.rng.Shuffle(len(fixed), func(i, j int) {
			fixed[i], fixed[j] = fixed[j], fixed[i]
		})
		if len(fixed) > remaining {
			fixed = fixed[:remaining]
		}
		for _, fq := range fixed {
			session = append(session, e.fromFixed(fq))
		}
	}

	e.rng.Shuffle(len(session), func(i, j int) {
		session[i], session[j] = session[j], session[i]
	})
	return session
}

// fromFixed renders an authored question with freshly shuffled options.
func (e *Engine) fromFixed(fq FixedQuestion) Question {
	correct := fq.Options[fq.CorrectIndex]

	options := make([]string, len(fq.Options))
	copy(options, fq.Options[:])
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

	return e.question(fq.Prompt, options, correctIndex)
}
