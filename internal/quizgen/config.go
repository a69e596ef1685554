package quizgen

import "math/rand/v2"

// Fallbacks pads option lists when the snapshot holds too few real
// distractors of a given kind. Entries are common reference substances a
// school lab is likely to stock, so they read as plausible wrong answers.
type Fallbacks struct {
	Names     []string
	NamesEn   []string
	Formulas  []string
	CASNums   []string
	Locations []string
}

// Config controls session generation. The host application constructs one
// and threads it through; the engine holds no package-level mutable state.
type Config struct {
	// TotalQuestions is the target session length. The engine returns
	// fewer when the pools cannot supply enough (best effort, no error).
	TotalQuestions int

	// MaxDynamic caps how many questions are derived from the item
	// snapshot, including the mass-comparison question when present.
	MaxDynamic int

	// OptionCount is the number of choices per question.
	OptionCount int

	// FixedPool is the authored question pool used to fill whatever the
	// dynamic questions don't cover.
	FixedPool []FixedQuestion

	// Fallbacks supplies padding distractors per fact kind.
	Fallbacks Fallbacks

	// Rand is the random source. Nil means an auto-seeded source; tests
	// inject a fixed-seed *rand.Rand for reproducible sessions.
	Rand *rand.Rand
}

// DefaultConfig returns the standard session shape: 20 questions, at most
// 10 derived from the snapshot, 4 options each, with the built-in safety
// pool and reference-substance fallbacks.
func DefaultConfig() Config {
	return Config{
		TotalQuestions: 20,
		MaxDynamic:     10,
		OptionCount:    4,
		FixedPool:      DefaultFixedPool(),
		Fallbacks:      DefaultFallbacks(),
	}
}

// DefaultFallbacks returns the built-in padding distractors.
func DefaultFallbacks() Fallbacks {
	return Fallbacks{
		Names:     []string{"증류수", "염화나트륨", "에탄올", "수산화나트륨", "아세톤"},
		NamesEn:   []string{"Distilled water", "Sodium chloride", "Ethanol", "Sodium hydroxide", "Acetone"},
		Formulas:  []string{"H2O", "NaCl", "C2H5OH", "NaOH", "HCl"},
		CASNums:   []string{"7732-18-5", "7647-14-5", "64-17-5", "1310-73-2", "7647-01-0"},
		Locations: []string{"준비실 시약장 1", "과학실 시약장 2", "약품 창고", "산·염기 전용장"},
	}
}

// DefaultFixedPool returns the authored safety-education questions. They
// are snapshot-independent: every session can fall back to this pool when
// the inventory yields nothing to ask about.
func DefaultFixedPool() []FixedQuestion {
	return []FixedQuestion{
		{
			Prompt:       "실험 중 시약이 눈에 들어갔을 때 가장 먼저 해야 할 일은 무엇인가요?",
			Options:      [4]string{"즉시 흐르는 물로 15분 이상 씻는다", "수건으로 눈을 비빈다", "안약을 넣는다", "실험이 끝날 때까지 기다린다"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "진한 황산을 희석할 때 올바른 방법은 무엇인가요?",
			Options:      [4]string{"물에 황산을 천천히 넣는다", "황산에 물을 천천히 넣는다", "둘을 동시에 붓는다", "뜨거운 물을 사용한다"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "실험실에서 보안경을 착용해야 하는 때는 언제인가요?",
			Options:      [4]string{"실험하는 동안 항상", "시약을 옮길 때만", "가열 실험을 할 때만", "선생님이 지시할 때만"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "알코올램프에 불이 붙은 채 쓰러졌을 때 가장 올바른 대처는 무엇인가요?",
			Options:      [4]string{"모래나 소화기로 덮어 끈다", "물을 붓는다", "입으로 불어 끈다", "종이로 덮는다"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "사용하고 남은 산성 폐액은 어떻게 처리해야 하나요?",
			Options:      [4]string{"전용 폐액통에 모아 처리한다", "싱크대에 바로 버린다", "쓰레기통에 버린다", "창밖에 버린다"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "시약병의 라벨이 지워져 내용물을 알 수 없을 때 어떻게 해야 하나요?",
			Options:      [4]string{"내용물 불명 폐기물로 처리한다", "냄새를 맡아 확인한다", "맛을 보아 확인한다", "아무 병에나 합쳐 둔다"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "유독물질 보관 장소로 올바른 곳은 어디인가요?",
			Options:      [4]string{"잠금장치가 있는 전용 시약장", "교실 사물함", "싱크대 아래", "창가 선반"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "실험실에서 음식물을 먹으면 안 되는 가장 큰 이유는 무엇인가요?",
			Options:      [4]string{"유해물질이 몸에 들어갈 수 있어서", "실험 기구가 더러워져서", "집중력이 떨어져서", "냄새가 나서"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "가열한 비커를 옮길 때 사용해야 하는 기구는 무엇인가요?",
			Options:      [4]string{"집게 또는 내열 장갑", "맨손", "물티슈", "종이"},
			CorrectIndex: 0,
		},
		{
			Prompt:       "시약을 덜어낸 뒤 남은 시약은 어떻게 해야 하나요?",
			Options:      [4]string{"원래 병에 다시 넣지 않고 폐기한다", "원래 병에 다시 넣는다", "다른 병에 보관한다", "책상 위에 둔다"},
			CorrectIndex: 0,
		},
	}
}
