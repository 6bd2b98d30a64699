package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/llm"
	"github.com/rahulm/learnpath/internal/logger"
	"github.com/rahulm/learnpath/internal/store"
)

const quizJSON = `{
  "questions": [
    {"kind": "mcq", "prompt": "Which clause filters rows?", "choices": ["WHERE", "ORDER BY", "GROUP BY", "LIMIT"], "correct_choice": 0},
    {"kind": "mcq", "prompt": "Which clause sorts rows?", "choices": ["WHERE", "ORDER BY", "GROUP BY", "LIMIT"], "correct_choice": 1},
    {"kind": "short_answer", "prompt": "What does a JOIN do?", "answer_key": "Combines rows from two tables on a condition."}
  ]
}`

// fakeQuizRepo is an in-memory QuizRepo.
type fakeQuizRepo struct {
	nextID   int
	quizzes  map[int]*store.QuizDetail
	attempts map[int]*store.Attempt
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:  make(map[int]*store.QuizDetail),
		attempts: make(map[int]*store.Attempt),
	}
}

func (f *fakeQuizRepo) FindByScope(_ context.Context, scope string, scopeID int, quizType string) (*store.QuizDetail, error) {
	for _, q := range f.quizzes {
		if q.Scope == scope && q.ScopeID == scopeID && q.QuizType == quizType {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeQuizRepo) GetQuiz(_ context.Context, id int) (*store.QuizDetail, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return q, nil
}

func (f *fakeQuizRepo) GetAttempt(_ context.Context, id int) (*store.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (f *fakeQuizRepo) CreateQuiz(_ context.Context, spec store.QuizSpec) (*store.QuizDetail, error) {
	f.nextID++
	detail := &store.QuizDetail{
		ID:         f.nextID,
		Scope:      spec.Scope,
		ScopeID:    spec.ScopeID,
		QuizType:   spec.QuizType,
		Provenance: spec.Provenance,
	}
	for i, q := range spec.Questions {
		detail.Questions = append(detail.Questions, store.QuizQuestion{
			ID:            f.nextID*100 + i,
			Position:      i + 1,
			Kind:          q.Kind,
			Prompt:        q.Prompt,
			Choices:       q.Choices,
			CorrectChoice: q.CorrectChoice,
			AnswerKey:     q.AnswerKey,
		})
	}
	f.quizzes[detail.ID] = detail
	return detail, nil
}

func (f *fakeQuizRepo) NextAttempt(_ context.Context, quizID int, userID string) (*store.Attempt, error) {
	if _, ok := f.quizzes[quizID]; !ok {
		return nil, store.ErrNotFound
	}
	n := 0
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.UserID == userID {
			n++
		}
	}
	f.nextID++
	a := &store.Attempt{
		ID:           f.nextID,
		QuizID:       quizID,
		UserID:       userID,
		AttemptIndex: n + 1,
		Status:       store.AttemptStarted,
	}
	f.attempts[a.ID] = a
	return a, nil
}

func (f *fakeQuizRepo) CompleteAttempt(_ context.Context, attemptID int, score float64) (*store.Attempt, error) {
	a, ok := f.attempts[attemptID]
	if !ok {
		return nil, store.ErrNotFound
	}
	a.Status = store.AttemptCompleted
	a.Score = score
	return a, nil
}

func (f *fakeQuizRepo) GetQuestion(_ context.Context, id int) (*store.QuizQuestion, error) {
	for _, q := range f.quizzes {
		for i := range q.Questions {
			if q.Questions[i].ID == id {
				return &q.Questions[i], nil
			}
		}
	}
	return nil, store.ErrNotFound
}

// fakeRoadmaps provides just enough of RoadmapRepo for quiz scoping.
type fakeRoadmaps struct{}

func (fakeRoadmaps) Create(context.Context, store.Roadmap) (*store.Roadmap, error) {
	return nil, store.ErrNotFound
}

func (fakeRoadmaps) PersistPlan(context.Context, int, string, []store.MilestoneSpec) error {
	return nil
}

func (fakeRoadmaps) Get(context.Context, int, string) (*store.RoadmapDetail, error) {
	return nil, store.ErrNotFound
}

func (fakeRoadmaps) GetHeader(_ context.Context, roadmapID int) (*store.Roadmap, error) {
	if roadmapID != 7 {
		return nil, store.ErrNotFound
	}
	return &store.Roadmap{ID: 7, UserID: "user-1", SkillLevel: "basic", Domain: "programming"}, nil
}

func (fakeRoadmaps) ListByUser(context.Context, string) ([]store.Roadmap, error) {
	return nil, nil
}

func (fakeRoadmaps) UpdateProgress(context.Context, string, int, string) (*store.Progress, error) {
	return nil, store.ErrNotFound
}

func (fakeRoadmaps) GetMilestone(_ context.Context, id int, userID string) (*store.Milestone, []store.Topic, error) {
	if id != 3 || userID != "user-1" {
		return nil, nil, store.ErrNotFound
	}
	m := &store.Milestone{ID: 3, RoadmapID: 7, Name: "Milestone 2: SQL Queries", Subject: "SQL"}
	topics := []store.Topic{
		{ID: 31, MilestoneID: 3, Position: 1, Name: "SELECT Basics"},
		{ID: 32, MilestoneID: 3, Position: 2, Name: "Joins"},
	}
	return m, topics, nil
}

func (fakeRoadmaps) GetTopic(_ context.Context, id int, userID string) (*store.Topic, *store.Milestone, error) {
	if id != 31 || userID != "user-1" {
		return nil, nil, store.ErrNotFound
	}
	t := &store.Topic{ID: 31, MilestoneID: 3, Position: 1, Name: "SELECT Basics"}
	m := &store.Milestone{ID: 3, RoadmapID: 7, Name: "Milestone 2: SQL Queries", Subject: "SQL"}
	return t, m, nil
}

func newTestService(mock *llm.MockProvider, repo store.QuizRepo) *Service {
	p := contentgen.New(mock, contentgen.DefaultConfig(), logger.NewNop(), nil, nil, nil)
	return NewService(p, repo, fakeRoadmaps{}, logger.NewNop())
}

func TestStartMilestoneQuiz_GeneratesOnce(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
	)
	mock.Repeat = true
	repo := newFakeQuizRepo()
	svc := newTestService(mock, repo)
	ctx := context.Background()

	first, err := svc.StartMilestoneQuiz(ctx, 3, "user-1", contentgen.QuizMixed)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(first.Quiz.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(first.Quiz.Questions))
	}
	if first.Attempt.AttemptIndex != 1 {
		t.Fatalf("expected attempt 1, got %d", first.Attempt.AttemptIndex)
	}

	second, err := svc.StartMilestoneQuiz(ctx, 3, "user-1", contentgen.QuizMixed)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if second.Quiz.ID != first.Quiz.ID {
		t.Fatal("second sitting must reuse the stored quiz")
	}
	if second.Attempt.AttemptIndex != 2 {
		t.Fatalf("expected attempt 2, got %d", second.Attempt.AttemptIndex)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 generation call, got %d", mock.CallCount())
	}
}

func TestStartMilestoneQuiz_DistinctTypesGetDistinctQuizzes(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeQuizRepo())
	ctx := context.Background()

	a, err := svc.StartMilestoneQuiz(ctx, 3, "user-1", contentgen.QuizMCQOnly)
	if err != nil {
		t.Fatalf("start mcq: %v", err)
	}
	b, err := svc.StartMilestoneQuiz(ctx, 3, "user-1", contentgen.QuizMixed)
	if err != nil {
		t.Fatalf("start mixed: %v", err)
	}
	if a.Quiz.ID == b.Quiz.ID {
		t.Fatal("different quiz types must not share a quiz")
	}
}

func TestStartTopicQuiz(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
	)
	svc := newTestService(mock, newFakeQuizRepo())

	res, err := svc.StartTopicQuiz(context.Background(), 31, "user-1", contentgen.QuizMixed)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if res.Quiz.Scope != store.ScopeTopic || res.Quiz.ScopeID != 31 {
		t.Fatalf("unexpected scope: %s/%d", res.Quiz.Scope, res.Quiz.ScopeID)
	}
}

func TestStartQuiz_ProviderDownFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Status: 502, Err: errors.New("bad gateway")}},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeQuizRepo())

	res, err := svc.StartMilestoneQuiz(context.Background(), 3, "user-1", contentgen.QuizMCQOnly)
	if err != nil {
		t.Fatalf("start must not fail on provider outage: %v", err)
	}
	if res.Quiz.Provenance != string(contentgen.ProvenanceFallback) {
		t.Fatalf("expected fallback provenance, got %q", res.Quiz.Provenance)
	}
	if len(res.Quiz.Questions) != contentgen.MilestoneQuestionCount(contentgen.QuizMCQOnly) {
		t.Fatalf("fallback question count wrong: %d", len(res.Quiz.Questions))
	}
}

func TestStartQuiz_FallbackUsesRoadmapDomain(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Status: 503, Err: errors.New("down")}},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeQuizRepo())

	// Roadmap 7 is tagged with the programming domain, so synthesized
	// questions come from the programming bank, not the generic one.
	res, err := svc.StartMilestoneQuiz(context.Background(), 3, "user-1", contentgen.QuizMCQOnly)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if res.Quiz.Provenance != string(contentgen.ProvenanceFallback) {
		t.Fatalf("expected fallback provenance, got %q", res.Quiz.Provenance)
	}
	if !strings.Contains(res.Quiz.Questions[0].Prompt, "behaves correctly") {
		t.Fatalf("expected a programming-domain question, got %q", res.Quiz.Questions[0].Prompt)
	}
}

func TestStartQuiz_OtherUsersMilestone(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeQuizRepo())
	ctx := context.Background()

	if _, err := svc.StartMilestoneQuiz(ctx, 3, "user-2", contentgen.QuizMixed); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user's milestone, got %v", err)
	}
	if _, err := svc.StartTopicQuiz(ctx, 31, "user-2", contentgen.QuizMixed); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for another user's topic, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("no generation should happen for a foreign scope, got %d calls", mock.CallCount())
	}
}

func TestStartQuiz_UnknownScope(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), newFakeQuizRepo())

	if _, err := svc.StartMilestoneQuiz(context.Background(), 99, "user-1", contentgen.QuizMixed); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.StartTopicQuiz(context.Background(), 99, "user-1", contentgen.QuizMixed); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStartQuiz_Validation(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), newFakeQuizRepo())

	if _, err := svc.StartMilestoneQuiz(context.Background(), 3, "", contentgen.QuizMixed); err == nil {
		t.Fatal("expected error for missing user")
	}
	if _, err := svc.StartMilestoneQuiz(context.Background(), 3, "user-1", "essay"); err == nil {
		t.Fatal("expected error for unknown quiz type")
	}
}

func TestSubmitAttempt_ScoresMCQsOnly(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
	)
	repo := newFakeQuizRepo()
	svc := newTestService(mock, repo)
	ctx := context.Background()

	res, err := svc.StartMilestoneQuiz(ctx, 3, "user-1", contentgen.QuizMixed)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// First MCQ right, second wrong; the short answer is ignored.
	answers := map[int]int{
		res.Quiz.Questions[0].ID: res.Quiz.Questions[0].CorrectChoice,
		res.Quiz.Questions[1].ID: res.Quiz.Questions[1].CorrectChoice + 1,
	}
	done, err := svc.SubmitAttempt(ctx, res.Attempt.ID, "user-1", answers)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if done.Status != store.AttemptCompleted {
		t.Fatalf("expected completed, got %q", done.Status)
	}
	if done.Score != 0.5 {
		t.Fatalf("expected score 0.5, got %v", done.Score)
	}
}

func TestSubmitAttempt_WrongUser(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(quizJSON)},
	)
	svc := newTestService(mock, newFakeQuizRepo())
	ctx := context.Background()

	res, err := svc.StartMilestoneQuiz(ctx, 3, "user-1", contentgen.QuizMixed)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.SubmitAttempt(ctx, res.Attempt.ID, "user-2", nil); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for wrong user, got %v", err)
	}
}
