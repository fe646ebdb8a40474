package practice

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/questiongen"
	"github.com/karthikv/numbersense/internal/screen"
	"github.com/karthikv/numbersense/internal/settings"
	"github.com/karthikv/numbersense/internal/store"
	"github.com/karthikv/numbersense/internal/topics"
)

// memKV implements store.KV in memory.
type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

// mockGenerator implements questiongen.Generator for testing.
type mockGenerator struct {
	question *topics.Question
	err      error
	calls    int
}

func (m *mockGenerator) Generate(_ context.Context, _ questiongen.GenerateInput) (*topics.Question, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	q := *m.question
	return &q, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	answers []store.AnswerEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answers = append(m.answers, data)
	return nil
}
func (m *mockEventRepo) RecentAnswers(_ context.Context, _ store.QueryOpts) ([]store.AnswerRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func curatedTopic() topics.Topic {
	return topics.Topic{
		ID:   "test-topic",
		Name: "Test Topic",
		Questions: []topics.Question{
			{Text: "First question?", Answer: 100},
			{Text: "Second question?", Answer: 200},
		},
	}
}

func testScreen(setSize int) (*PracticeScreen, *progress.Ledger, *mockEventRepo) {
	ledger := progress.NewLedger(newMemKV())
	repo := &mockEventRepo{}
	cfg := settings.Defaults()
	cfg.QuestionsPerSet = setSize
	s := New(curatedTopic(), cfg, ledger, nil, nil, repo)
	s.Init()
	return s, ledger, repo
}

func TestPracticeScreen_Title(t *testing.T) {
	s, _, _ := testScreen(5)
	if s.Title() != "Test Topic" {
		t.Errorf("Title = %q, want %q", s.Title(), "Test Topic")
	}
}

func TestPracticeScreen_InitLoadsFirstQuestion(t *testing.T) {
	s, _, _ := testScreen(5)
	if s.current == nil {
		t.Fatal("expected a current question after Init")
	}
	if s.current.Text != "First question?" {
		t.Errorf("current question = %q, want %q", s.current.Text, "First question?")
	}
	if !s.timerRunning {
		t.Error("expected timer to be running")
	}
}

func TestPracticeScreen_SubmitCorrect(t *testing.T) {
	s, ledger, repo := testScreen(5)
	s.input.Model.SetValue("100")

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*PracticeScreen)

	if ss.status != statusCorrect {
		t.Errorf("status = %v, want statusCorrect", ss.status)
	}
	if cmd == nil {
		t.Error("expected an advance command after a correct answer")
	}
	if len(repo.answers) != 1 || !repo.answers[0].Correct {
		t.Errorf("answer events = %+v, want one correct event", repo.answers)
	}

	rec := ledger.Get(context.Background(), "test-topic")
	if rec.CurrentSet.QuestionsAttempted != 1 || rec.CurrentSet.QuestionsCorrect != 1 {
		t.Errorf("currentSet = %+v, want 1 attempted 1 correct", rec.CurrentSet)
	}
}

func TestPracticeScreen_SubmitEmptyIsNoop(t *testing.T) {
	s, _, repo := testScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*PracticeScreen)

	if ss.status != statusIdle {
		t.Errorf("status = %v, want statusIdle", ss.status)
	}
	if len(repo.answers) != 0 {
		t.Errorf("answer events = %d, want 0", len(repo.answers))
	}
}

func TestPracticeScreen_IncorrectHoldsUntilKeypress(t *testing.T) {
	s, _, _ := testScreen(5)
	s.input.Model.SetValue("7")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*PracticeScreen)

	if ss.status != statusIncorrect {
		t.Fatalf("status = %v, want statusIncorrect", ss.status)
	}
	if ss.feedbackFallback == "" {
		t.Error("expected fallback feedback text")
	}

	// Any key moves on to the next question.
	scr, _ = ss.Update(keyPress(' '))
	ss = scr.(*PracticeScreen)
	if ss.status != statusIdle {
		t.Errorf("status = %v, want statusIdle after dismiss", ss.status)
	}
	if ss.current == nil || ss.current.Text != "Second question?" {
		t.Errorf("expected the second question, got %+v", ss.current)
	}
}

func TestPracticeScreen_AdvanceAfterCorrect(t *testing.T) {
	s, _, _ := testScreen(5)
	s.input.Model.SetValue("100")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(advanceMsg{})
	ss := scr.(*PracticeScreen)

	if ss.current == nil || ss.current.Text != "Second question?" {
		t.Errorf("expected the second question after advance, got %+v", ss.current)
	}
}

func TestPracticeScreen_CatalogWrapsAround(t *testing.T) {
	s, _, _ := testScreen(10)

	answers := []string{"100", "200", "100"}
	var scr screen.Screen = s
	for _, a := range answers {
		ss := scr.(*PracticeScreen)
		ss.input.Model.SetValue(a)
		scr, _ = ss.Update(specialKey(tea.KeyEnter))
		scr, _ = scr.Update(advanceMsg{})
	}

	ss := scr.(*PracticeScreen)
	if ss.current == nil || ss.current.Text != "Second question?" {
		t.Errorf("expected wraparound to the second question, got %+v", ss.current)
	}
}

func TestPracticeScreen_SetCompletionShowsStats(t *testing.T) {
	s, ledger, _ := testScreen(2)

	var scr screen.Screen = s
	ss := scr.(*PracticeScreen)
	ss.input.Model.SetValue("100")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(advanceMsg{})

	ss = scr.(*PracticeScreen)
	ss.input.Model.SetValue("200")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*PracticeScreen)

	if ss.view != viewStats {
		t.Errorf("view = %v, want viewStats after completing the set", ss.view)
	}
	rec := ledger.Get(context.Background(), "test-topic")
	if rec.CompletedSets != 1 {
		t.Errorf("completedSets = %d, want 1", rec.CompletedSets)
	}
}

func TestPracticeScreen_StatsPracticeAgain(t *testing.T) {
	s, ledger, _ := testScreen(2)

	var scr screen.Screen = s
	for _, a := range []string{"100", "200"} {
		ss := scr.(*PracticeScreen)
		ss.input.Model.SetValue(a)
		scr, _ = ss.Update(specialKey(tea.KeyEnter))
		scr, _ = scr.Update(advanceMsg{})
	}

	ss := scr.(*PracticeScreen)
	if ss.view != viewStats {
		t.Fatalf("view = %v, want viewStats", ss.view)
	}

	scr, _ = ss.Update(keyPress('p'))
	ss = scr.(*PracticeScreen)

	if ss.view != viewPractice {
		t.Errorf("view = %v, want viewPractice after practice again", ss.view)
	}
	if ss.current == nil || ss.current.Text != "First question?" {
		t.Errorf("expected a fresh first question, got %+v", ss.current)
	}
	rec := ledger.Get(context.Background(), "test-topic")
	if rec.CurrentSet.QuestionsAttempted != 0 {
		t.Errorf("currentSet attempted = %d, want 0", rec.CurrentSet.QuestionsAttempted)
	}
	if rec.Overall.Attempted != 2 {
		t.Errorf("overall attempted = %d, want 2", rec.Overall.Attempted)
	}
}

func TestPracticeScreen_StatsBack(t *testing.T) {
	s, _, _ := testScreen(1)

	var scr screen.Screen = s
	ss := scr.(*PracticeScreen)
	ss.input.Model.SetValue("100")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))

	ss = scr.(*PracticeScreen)
	if ss.view != viewStats {
		t.Fatalf("view = %v, want viewStats", ss.view)
	}

	_, cmd := ss.Update(keyPress('b'))
	if cmd == nil {
		t.Error("expected a pop command from the stats view")
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	s, _, _ := testScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*PracticeScreen)
	if !ss.showQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}
	if ss.timerRunning {
		t.Error("expected timer to pause during quit confirmation")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*PracticeScreen)
	if ss.showQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
	if !ss.timerRunning {
		t.Error("expected timer to resume after dismiss")
	}
}

func TestPracticeScreen_QuitConfirm_Yes(t *testing.T) {
	s, _, _ := testScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after quit confirmation")
	}
}

func TestPracticeScreen_TimerTick(t *testing.T) {
	s, _, _ := testScreen(5)

	var scr screen.Screen = s
	scr, cmd := scr.Update(timerTickMsg{Gen: s.timerGen})
	ss := scr.(*PracticeScreen)

	if ss.elapsed != 1 {
		t.Errorf("elapsed = %d, want 1", ss.elapsed)
	}
	if cmd == nil {
		t.Error("expected the tick chain to continue")
	}
}

func TestPracticeScreen_TimerTick_StaleGeneration(t *testing.T) {
	s, _, _ := testScreen(5)

	var scr screen.Screen = s
	scr, cmd := scr.Update(timerTickMsg{Gen: s.timerGen - 1})
	ss := scr.(*PracticeScreen)

	if ss.elapsed != 0 {
		t.Errorf("elapsed = %d, want 0 for a stale tick", ss.elapsed)
	}
	if cmd != nil {
		t.Error("expected a stale tick chain to die")
	}
}

func generativeTopic() topics.Topic {
	return topics.Topic{
		ID:          "gen-topic",
		Name:        "Generated Topic",
		Description: "test",
	}
}

func testGenerativeScreen(gen *mockGenerator) *PracticeScreen {
	ledger := progress.NewLedger(newMemKV())
	cfg := settings.Defaults()
	s := New(generativeTopic(), cfg, ledger, gen, nil, &mockEventRepo{})
	return s
}

func TestPracticeScreen_GenerativeQuestionReady(t *testing.T) {
	gen := &mockGenerator{question: &topics.Question{Text: "How many?", Answer: 42}}
	s := testGenerativeScreen(gen)
	s.Init()

	if !s.loading {
		t.Fatal("expected loading state while generating")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Seq: s.genSeq, Question: gen.question})
	ss := scr.(*PracticeScreen)

	if ss.loading {
		t.Error("expected loading to clear")
	}
	if ss.current == nil || ss.current.Text != "How many?" {
		t.Errorf("current = %+v, want the generated question", ss.current)
	}
	if len(ss.asked) != 1 {
		t.Errorf("asked = %d entries, want 1", len(ss.asked))
	}
}

func TestPracticeScreen_GenerativeStaleResultDiscarded(t *testing.T) {
	gen := &mockGenerator{question: &topics.Question{Text: "How many?", Answer: 42}}
	s := testGenerativeScreen(gen)
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Seq: s.genSeq - 1, Question: gen.question})
	ss := scr.(*PracticeScreen)

	if ss.current != nil {
		t.Error("expected a stale generation result to be discarded")
	}
	if !ss.loading {
		t.Error("expected loading to remain for the in-flight request")
	}
}

func TestPracticeScreen_GenerationError(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	s := testGenerativeScreen(gen)
	s.Init()

	var scr screen.Screen = s
	scr, _ = scr.Update(questionReadyMsg{Seq: s.genSeq, Err: gen.err})
	ss := scr.(*PracticeScreen)

	if ss.errMsg == "" {
		t.Fatal("expected an error message after a failed generation")
	}

	// Any key goes back to the topic list.
	_, cmd := ss.Update(keyPress('x'))
	if cmd == nil {
		t.Error("expected a pop command after a generation failure")
	}
}

func TestPracticeScreen_View(t *testing.T) {
	s, _, _ := testScreen(5)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view for an active question")
	}

	s.input.Model.SetValue("7")
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*PracticeScreen)
	if ss.View(80, 24) == "" {
		t.Error("expected non-empty view for incorrect feedback")
	}
}
