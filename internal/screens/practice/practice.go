// Package practice implements the practice session screen: question
// cycling, answer submission, feedback, and the end-of-set summary.
package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/karthikv/numbersense/internal/feedback"
	prac "github.com/karthikv/numbersense/internal/practice"
	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/questiongen"
	"github.com/karthikv/numbersense/internal/router"
	"github.com/karthikv/numbersense/internal/screen"
	"github.com/karthikv/numbersense/internal/settings"
	"github.com/karthikv/numbersense/internal/store"
	"github.com/karthikv/numbersense/internal/topics"
	"github.com/karthikv/numbersense/internal/ui/components"
	"github.com/karthikv/numbersense/internal/ui/layout"
)

// advanceDelay is how long a correct answer stays on screen before the
// next question loads.
const advanceDelay = 1500 * time.Millisecond

// feedbackPollInterval is how often the screen checks for finished LLM
// feedback.
const feedbackPollInterval = 200 * time.Millisecond

// status is the per-question state.
type status int

const (
	statusIdle status = iota // question displayed, awaiting input
	statusCorrect
	statusIncorrect
)

// viewMode selects between active practice and the end-of-set summary.
type viewMode int

const (
	viewPractice viewMode = iota
	viewStats
)

// PracticeScreen implements screen.Screen for one topic's practice session.
type PracticeScreen struct {
	topic       topics.Topic
	setSize     int
	margin      float64
	ledger      *progress.Ledger
	generator   questiongen.Generator
	feedbackSvc *feedback.Service
	eventRepo   store.EventRepo
	sessionID   string

	input components.TextInput

	status status
	view   viewMode

	questionIndex int
	current       *topics.Question
	asked         []string

	elapsed      int
	timerRunning bool
	timerGen     int

	genSeq  int
	loading bool
	errMsg  string

	feedbackFallback string
	feedbackLLM      string
	feedbackWaiting  bool

	showQuitConfirm bool
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given topic. The generator is
// required for generative topics and ignored for curated ones. The
// feedback service and event repo are optional.
func New(topic topics.Topic, cfg settings.Settings, ledger *progress.Ledger, generator questiongen.Generator, feedbackSvc *feedback.Service, eventRepo store.EventRepo) *PracticeScreen {
	margin := prac.CuratedMargin
	if topic.Generative() {
		margin = prac.GeneratedMargin
	}
	return &PracticeScreen{
		topic:       topic,
		setSize:     cfg.QuestionsPerSet,
		margin:      margin,
		ledger:      ledger,
		generator:   generator,
		feedbackSvc: feedbackSvc,
		eventRepo:   eventRepo,
		sessionID:   uuid.New().String(),
		input:       newAnswerInput(),
	}
}

func newAnswerInput() components.TextInput {
	return components.NewTextInput("Type your estimate...", true, 24)
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.nextQuestion()
}

func (s *PracticeScreen) Title() string {
	return s.topic.Name
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back to topics"}}
	}
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave practice"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.view == viewStats {
		return []layout.KeyHint{
			{Key: "P", Description: "Practice again"},
			{Key: "Esc", Description: "Back to topics"},
		}
	}
	if s.status == statusIncorrect {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case timerTickMsg:
		return s.handleTimerTick(msg)

	case advanceMsg:
		return s.handleAdvance()

	case feedbackPollMsg:
		return s.handleFeedbackPoll()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// acceptingInput reports whether keystrokes should reach the answer field.
func (s *PracticeScreen) acceptingInput() bool {
	return s.view == viewPractice &&
		s.status == statusIdle &&
		s.current != nil &&
		!s.showQuitConfirm &&
		s.errMsg == ""
}

// nextQuestion loads the next question, first checking whether the
// current set is already complete.
func (s *PracticeScreen) nextQuestion() tea.Cmd {
	rec := s.ledger.Get(context.Background(), s.topic.ID)
	if rec.CurrentSet.QuestionsAttempted >= s.setSize {
		s.enterStats()
		return nil
	}

	s.status = statusIdle
	s.current = nil
	s.elapsed = 0
	s.feedbackFallback = ""
	s.feedbackLLM = ""
	s.feedbackWaiting = false
	s.input = newAnswerInput()

	if s.topic.Generative() {
		s.loading = true
		s.genSeq++
		seq := s.genSeq
		gen := s.generator
		input := questiongen.GenerateInput{
			Topic:          s.topic,
			PriorQuestions: append([]string(nil), s.asked...),
		}
		return tea.Batch(s.input.Init(), func() tea.Msg {
			q, err := gen.Generate(context.Background(), input)
			return questionReadyMsg{Seq: seq, Question: q, Err: err}
		})
	}

	// Curated catalogs wrap around: a set larger than the catalog
	// revisits questions from the start.
	q := s.topic.Questions[s.questionIndex%len(s.topic.Questions)]
	s.current = &q
	return tea.Batch(s.input.Init(), s.startTimer())
}

// enterStats switches to the end-of-set summary and cancels the timer.
func (s *PracticeScreen) enterStats() {
	s.view = viewStats
	s.timerRunning = false
	s.current = nil
	s.loading = false
}

// startTimer begins a fresh one-second tick chain for the current question.
func (s *PracticeScreen) startTimer() tea.Cmd {
	s.timerRunning = true
	s.timerGen++
	return tickCmd(s.timerGen)
}

func (s *PracticeScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	// A result for a request that is no longer current is discarded.
	if msg.Seq != s.genSeq || s.view != viewPractice {
		return s, nil
	}
	s.loading = false

	if msg.Err != nil {
		s.errMsg = "Could not generate a question. Check your connection and try again."
		return s, nil
	}

	s.current = msg.Question
	s.asked = append(s.asked, msg.Question.Text)
	return s, s.startTimer()
}

func (s *PracticeScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.timerGen || !s.timerRunning {
		return s, nil
	}
	s.elapsed++
	return s, tickCmd(msg.Gen)
}

func (s *PracticeScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	if s.status != statusCorrect || s.view != viewPractice {
		return s, nil
	}
	s.questionIndex++
	return s, s.nextQuestion()
}

func (s *PracticeScreen) handleFeedbackPoll() (screen.Screen, tea.Cmd) {
	if !s.feedbackWaiting {
		return s, nil
	}
	text, ok := s.feedbackSvc.Consume()
	if !ok {
		return s, pollCmd()
	}
	s.feedbackWaiting = false
	s.feedbackLLM = text
	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Generation failure is fatal to this attempt: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
			if s.current != nil && s.status == statusIdle {
				return s, s.startTimer()
			}
		}
		return s, nil
	}

	if s.view == viewStats {
		switch key {
		case "p", "P", "enter":
			return s.startNewSet()
		case "b", "B", "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Incorrect feedback holds until explicitly dismissed.
	if s.status == statusIncorrect {
		s.questionIndex++
		return s, s.nextQuestion()
	}

	// Correct display and in-flight submission ignore keys.
	if s.status != statusIdle {
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		s.timerRunning = false
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.acceptingInput() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit evaluates the current answer and records it. Empty input,
// missing question, and repeat submissions are all no-ops.
func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	if s.current == nil || s.status != statusIdle || s.input.Value() == "" {
		return s, nil
	}

	s.timerRunning = false

	q := s.current
	answer := s.input.Value()
	correct := prac.Evaluate(answer, q.Answer, q.HasErrorRange, s.margin)

	ctx := context.Background()
	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAnswer(ctx, store.AnswerEventData{
			SessionID:     s.sessionID,
			TopicID:       s.topic.ID,
			QuestionText:  q.Text,
			CorrectAnswer: q.Answer,
			UserAnswer:    answer,
			Correct:       correct,
			ToleranceBand: q.HasErrorRange,
			Generated:     s.topic.Generative(),
			TimeSecs:      s.elapsed,
		})
	}

	rec := s.ledger.Update(ctx, s.topic.ID, progress.Attempt{
		Correct:   correct,
		TimeTaken: float64(s.elapsed),
		SetSize:   s.setSize,
	})
	setFinished := rec.CurrentSet.QuestionsAttempted >= s.setSize

	if correct {
		s.status = statusCorrect
		if setFinished {
			s.enterStats()
			return s, nil
		}
		return s, advanceCmd()
	}

	s.status = statusIncorrect
	s.feedbackFallback = prac.FeedbackText(q.Answer, q.HasErrorRange, s.margin)

	// LLM feedback only for generated questions, and never blocking the
	// answer reveal.
	if s.feedbackSvc != nil && s.topic.Generative() {
		s.feedbackWaiting = true
		s.feedbackSvc.Request(ctx, feedback.Input{
			Question:      q.Text,
			UserEstimate:  answer,
			CorrectAnswer: q.Answer,
			HasErrorRange: q.HasErrorRange,
			Margin:        s.margin,
		})
		return s, pollCmd()
	}
	return s, nil
}

// startNewSet resets the set counters and returns to question cycling.
func (s *PracticeScreen) startNewSet() (screen.Screen, tea.Cmd) {
	s.ledger.StartNewSet(context.Background(), s.topic.ID)
	s.questionIndex = 0
	s.view = viewPractice
	return s, s.nextQuestion()
}

func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{Gen: gen, Time: t}
	})
}

func advanceCmd() tea.Cmd {
	return tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}

func pollCmd() tea.Cmd {
	return tea.Tick(feedbackPollInterval, func(t time.Time) tea.Msg {
		return feedbackPollMsg(t)
	})
}
