package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/daylab/labmate/internal/catalog"
	"github.com/daylab/labmate/internal/explain"
	"github.com/daylab/labmate/internal/quizgen"
	"github.com/daylab/labmate/internal/router"
	"github.com/daylab/labmate/internal/screen"
	"github.com/daylab/labmate/internal/screens/summary"
	"github.com/daylab/labmate/internal/store"
	"github.com/daylab/labmate/internal/ui/components"
	"github.com/daylab/labmate/internal/ui/layout"
)

// PassScore is the minimum score to pass a safety quiz.
const PassScore = 80

// QuizScreen runs one safety quiz session.
type QuizScreen struct {
	items      []catalog.Item
	results    store.ResultRepo
	explainSvc *explain.Service

	sessionID string
	questions []quizgen.Question
	index     int
	correct   int
	missed    []quizgen.Question

	mc              components.MultiChoice
	showingFeedback bool
	explanation     *explain.Explanation
	explainWaiting  bool
	errMsg          string
	startedAt       time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. explainSvc may be nil; wrong answers then show
// feedback without a generated briefing.
func New(items []catalog.Item, results store.ResultRepo, explainSvc *explain.Service) *QuizScreen {
	return &QuizScreen{
		items:      items,
		results:    results,
		explainSvc: explainSvc,
		sessionID:  uuid.New().String(),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.startQuiz()
}

func (q *QuizScreen) Title() string {
	return "Safety Quiz"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuizScreen) startQuiz() tea.Cmd {
	items := q.items
	return func() tea.Msg {
		engine := quizgen.New(quizgen.DefaultConfig())
		questions := engine.GenerateSession(items)
		if len(questions) == 0 {
			return quizStartedMsg{Err: errors.New("no questions could be generated")}
		}
		return quizStartedMsg{Questions: questions}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizStartedMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.questions = msg.Questions
		q.startedAt = time.Now()
		q.loadQuestion()
		return q, nil

	case feedbackDoneMsg:
		return q.handleFeedbackDone()

	case quizEndMsg:
		return q.handleQuizEnd()

	case explainPollMsg:
		return q.handleExplainPoll()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) loadQuestion() {
	cur := q.questions[q.index]
	q.mc = components.NewMultiChoice(cur.Text, cur.Options, cur.CorrectIndex)
	q.showingFeedback = false
	q.explanation = nil
	q.explainWaiting = false
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if q.questions == nil {
		return q, nil
	}

	if q.showingFeedback {
		return q, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if msg.String() == "esc" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	q.mc, cmd = q.mc.Update(msg)
	if q.mc.Submitted {
		return q.handleAnswered()
	}
	return q, cmd
}

func (q *QuizScreen) handleAnswered() (screen.Screen, tea.Cmd) {
	cur := q.questions[q.index]
	q.showingFeedback = true

	if q.mc.IsCorrect() {
		q.correct++
		return q, nil
	}

	q.missed = append(q.missed, cur)

	// Ask for a safety briefing on the missed substance, when possible.
	if q.explainSvc != nil && cur.Topic != "" {
		if item, ok := q.findItem(cur.Topic); ok {
			q.explainSvc.Request(context.Background(), explain.Input{
				Item:           item,
				MissedQuestion: cur.Text,
			})
			q.explainWaiting = true
			return q, explainPollCmd()
		}
	}
	return q, nil
}

func (q *QuizScreen) handleExplainPoll() (screen.Screen, tea.Cmd) {
	if !q.explainWaiting {
		return q, nil
	}
	if exp, ok := q.explainSvc.Consume(); ok {
		q.explanation = exp
		q.explainWaiting = false
		return q, nil
	}
	return q, explainPollCmd()
}

func (q *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	q.explainWaiting = false
	if q.index+1 >= len(q.questions) {
		return q, func() tea.Msg { return quizEndMsg{} }
	}
	q.index++
	q.loadQuestion()
	return q, nil
}

func (q *QuizScreen) handleQuizEnd() (screen.Screen, tea.Cmd) {
	total := len(q.questions)
	score := quizgen.Score(q.correct, total)
	passed := score >= PassScore

	if q.results != nil {
		_ = q.results.Append(context.Background(), store.QuizResultData{
			SessionID: q.sessionID,
			TakenAt:   q.startedAt,
			Total:     total,
			Correct:   q.correct,
			Score:     score,
			Passed:    passed,
		})
	}

	result := summary.Result{
		Score:    score,
		Correct:  q.correct,
		Total:    total,
		Passed:   passed,
		Duration: time.Since(q.startedAt),
		Missed:   q.missed,
	}

	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func (q *QuizScreen) findItem(displayName string) (catalog.Item, bool) {
	for _, it := range q.items {
		if it.DisplayName() == displayName {
			return it, true
		}
	}
	return catalog.Item{}, false
}

// explainPollCmd re-checks the async explanation every 200ms.
func explainPollCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return explainPollMsg(t)
	})
}
