package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func seedRoadmap(t *testing.T, repo RoadmapRepo) *Roadmap {
	t.Helper()
	r, err := repo.Create(context.Background(), Roadmap{
		UserID:     "user-1",
		Title:      "Beginner Go Mastery Track",
		Interests:  []string{"Go"},
		SkillLevel: "basic",
		Domain:     "programming",
	})
	if err != nil {
		t.Fatalf("create roadmap: %v", err)
	}
	return r
}

func seedPlan(t *testing.T, repo RoadmapRepo, roadmapID int) {
	t.Helper()
	err := repo.PersistPlan(context.Background(), roadmapID, "user-1", []MilestoneSpec{
		{
			Name:       "Milestone 1: Basics",
			Subject:    "Go",
			Provenance: "clean",
			Topics:     []string{"Syntax", "Types"},
		},
		{
			Name:       "Milestone 2: Concurrency",
			Subject:    "Go",
			Provenance: "clean",
			Topics:     []string{"Goroutines"},
		},
	})
	if err != nil {
		t.Fatalf("persist plan: %v", err)
	}
}

func TestRoadmapLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoadmapRepo()
	ctx := context.Background()

	r := seedRoadmap(t, repo)
	if r.Status != RoadmapPending {
		t.Fatalf("new roadmap should be pending, got %q", r.Status)
	}

	seedPlan(t, repo, r.ID)

	detail, err := repo.Get(ctx, r.ID, "user-1")
	if err != nil {
		t.Fatalf("get roadmap: %v", err)
	}
	if detail.Status != RoadmapReady {
		t.Fatalf("persisted roadmap should be ready, got %q", detail.Status)
	}
	if len(detail.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(detail.Milestones))
	}
	if detail.Milestones[0].Name != "Milestone 1: Basics" {
		t.Fatalf("milestone order wrong: %q first", detail.Milestones[0].Name)
	}
	if detail.TotalTopics != 3 || detail.CompletedTopics != 0 {
		t.Fatalf("unexpected rollup: %d/%d", detail.CompletedTopics, detail.TotalTopics)
	}
	if detail.Domain != "programming" {
		t.Fatalf("domain not round-tripped: %q", detail.Domain)
	}
	for _, m := range detail.Milestones {
		for _, tp := range m.Topics {
			if tp.Status != ProgressNotStarted {
				t.Fatalf("topic %d should start not_started, got %q", tp.ID, tp.Status)
			}
		}
	}
}

func TestRoadmapGetNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.RoadmapRepo().Get(context.Background(), 9999, "user-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoadmapRepo()
	ctx := context.Background()

	r := seedRoadmap(t, repo)
	seedPlan(t, repo, r.ID)

	detail, err := repo.Get(ctx, r.ID, "user-1")
	if err != nil {
		t.Fatalf("get roadmap: %v", err)
	}
	topicID := detail.Milestones[0].Topics[0].ID

	p, err := repo.UpdateProgress(ctx, "user-1", topicID, ProgressCompleted)
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if p.Status != ProgressCompleted {
		t.Fatalf("unexpected status: %q", p.Status)
	}

	detail, err = repo.Get(ctx, r.ID, "user-1")
	if err != nil {
		t.Fatalf("get roadmap: %v", err)
	}
	if detail.CompletedTopics != 1 {
		t.Fatalf("expected 1 completed topic, got %d", detail.CompletedTopics)
	}

	if _, err := repo.UpdateProgress(ctx, "user-1", 9999, ProgressCompleted); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing topic, got %v", err)
	}
}

func TestUpdateProgressTimestamps(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoadmapRepo()
	ctx := context.Background()

	r := seedRoadmap(t, repo)
	seedPlan(t, repo, r.ID)

	detail, _ := repo.Get(ctx, r.ID, "user-1")
	first := detail.Milestones[0].Topics[0].ID
	second := detail.Milestones[0].Topics[1].ID

	p, err := repo.UpdateProgress(ctx, "user-1", first, ProgressInProgress)
	if err != nil {
		t.Fatalf("start topic: %v", err)
	}
	if p.StartedAt == nil {
		t.Fatal("started_at not set on transition to in_progress")
	}
	if p.CompletedAt != nil {
		t.Fatalf("completed_at set prematurely: %v", p.CompletedAt)
	}
	started := *p.StartedAt

	p, err = repo.UpdateProgress(ctx, "user-1", first, ProgressCompleted)
	if err != nil {
		t.Fatalf("complete topic: %v", err)
	}
	if p.CompletedAt == nil {
		t.Fatal("completed_at not set on completion")
	}
	if p.StartedAt == nil || !p.StartedAt.Equal(started) {
		t.Fatalf("started_at must keep the first transition, got %v", p.StartedAt)
	}

	// Re-entering in_progress must not reset the original start.
	p, err = repo.UpdateProgress(ctx, "user-1", first, ProgressInProgress)
	if err != nil {
		t.Fatalf("restart topic: %v", err)
	}
	if !p.StartedAt.Equal(started) {
		t.Fatalf("started_at overwritten: %v", p.StartedAt)
	}

	// Completing a topic that was never started records only the
	// completion time.
	p, err = repo.UpdateProgress(ctx, "user-1", second, ProgressCompleted)
	if err != nil {
		t.Fatalf("complete second topic: %v", err)
	}
	if p.StartedAt != nil {
		t.Fatalf("started_at set without an in_progress transition: %v", p.StartedAt)
	}
	if p.CompletedAt == nil {
		t.Fatal("completed_at not set on completion")
	}
}

func TestRoadmapAccessScopedToOwner(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoadmapRepo()
	ctx := context.Background()

	r := seedRoadmap(t, repo)
	seedPlan(t, repo, r.ID)

	detail, err := repo.Get(ctx, r.ID, "user-1")
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	milestoneID := detail.Milestones[0].ID
	topicID := detail.Milestones[0].Topics[0].ID

	if _, err := repo.Get(ctx, r.ID, "user-2"); err != ErrNotFound {
		t.Fatalf("foreign roadmap read: expected ErrNotFound, got %v", err)
	}
	if _, _, err := repo.GetMilestone(ctx, milestoneID, "user-2"); err != ErrNotFound {
		t.Fatalf("foreign milestone read: expected ErrNotFound, got %v", err)
	}
	if _, _, err := repo.GetTopic(ctx, topicID, "user-2"); err != ErrNotFound {
		t.Fatalf("foreign topic read: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.UpdateProgress(ctx, "user-2", topicID, ProgressCompleted); err != ErrNotFound {
		t.Fatalf("foreign progress write: expected ErrNotFound, got %v", err)
	}

	// The owner is unaffected by the denied write.
	detail, err = repo.Get(ctx, r.ID, "user-1")
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if detail.CompletedTopics != 0 {
		t.Fatalf("denied write must not change progress, got %d completed", detail.CompletedTopics)
	}
}

func TestMilestoneAndTopicLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.RoadmapRepo()
	ctx := context.Background()

	r := seedRoadmap(t, repo)
	seedPlan(t, repo, r.ID)

	detail, _ := repo.Get(ctx, r.ID, "user-1")
	milestoneID := detail.Milestones[0].ID

	m, topics, err := repo.GetMilestone(ctx, milestoneID, "user-1")
	if err != nil {
		t.Fatalf("get milestone: %v", err)
	}
	if m.Name != "Milestone 1: Basics" || len(topics) != 2 {
		t.Fatalf("unexpected milestone: %+v with %d topics", m, len(topics))
	}

	topic, parent, err := repo.GetTopic(ctx, topics[1].ID, "user-1")
	if err != nil {
		t.Fatalf("get topic: %v", err)
	}
	if topic.Name != "Types" || parent.ID != milestoneID {
		t.Fatalf("unexpected topic: %+v under %+v", topic, parent)
	}

	if _, _, err := repo.GetMilestone(ctx, 9999, "user-1"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestQuizCreateFindAndAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.QuizRepo()
	ctx := context.Background()

	found, err := repo.FindByScope(ctx, ScopeMilestone, 1, "mixed")
	if err != nil {
		t.Fatalf("find quiz: %v", err)
	}
	if found != nil {
		t.Fatal("expected no quiz before creation")
	}

	created, err := repo.CreateQuiz(ctx, QuizSpec{
		Scope:      ScopeMilestone,
		ScopeID:    1,
		QuizType:   "mixed",
		Provenance: "clean",
		Questions: []QuestionSpec{
			{
				Kind:          "mcq",
				Prompt:        "Which keyword starts a goroutine?",
				Choices:       []string{"go", "run", "spawn", "async"},
				CorrectChoice: 0,
			},
			{
				Kind:      "coding",
				Prompt:    "Write a function that sums a slice of ints.",
				AnswerKey: "Loop over the slice accumulating into a total.",
			},
		},
	})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if len(created.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(created.Questions))
	}
	if created.Questions[0].Choices[0] != "go" {
		t.Fatalf("choice order wrong: %v", created.Questions[0].Choices)
	}

	found, err = repo.FindByScope(ctx, ScopeMilestone, 1, "mixed")
	if err != nil {
		t.Fatalf("find quiz: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("expected to find quiz %d, got %+v", created.ID, found)
	}

	a1, err := repo.NextAttempt(ctx, created.ID, "user-1")
	if err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	a2, err := repo.NextAttempt(ctx, created.ID, "user-1")
	if err != nil {
		t.Fatalf("second attempt: %v", err)
	}
	if a1.AttemptIndex != 1 || a2.AttemptIndex != 2 {
		t.Fatalf("attempt indexes wrong: %d then %d", a1.AttemptIndex, a2.AttemptIndex)
	}

	other, err := repo.NextAttempt(ctx, created.ID, "user-2")
	if err != nil {
		t.Fatalf("other user attempt: %v", err)
	}
	if other.AttemptIndex != 1 {
		t.Fatalf("attempt counting must be per user, got %d", other.AttemptIndex)
	}

	done, err := repo.CompleteAttempt(ctx, a1.ID, 0.5)
	if err != nil {
		t.Fatalf("complete attempt: %v", err)
	}
	if done.Status != AttemptCompleted || done.Score != 0.5 {
		t.Fatalf("unexpected attempt: %+v", done)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "curriculum", Success: true, InputTokens: 100, OutputTokens: 400},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "quiz", Success: false, ErrorKind: "rate_limited", ErrorMessage: "429"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz", Success: true},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, EventQuery{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	failed, err := repo.QueryLLMEvents(ctx, EventQuery{FailedOnly: true})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(failed) != 1 || failed[0].ErrorKind != "rate_limited" {
		t.Fatalf("unexpected failed events: %+v", failed)
	}

	byPurpose, err := repo.QueryLLMEvents(ctx, EventQuery{Purpose: "quiz", SuccessOnly: true})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Provider != "openai" {
		t.Fatalf("unexpected events: %+v", byPurpose)
	}

	limited, err := repo.QueryLLMEvents(ctx, EventQuery{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events, got %d", len(limited))
	}
}

func TestEventGetByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "quiz",
		Success: true, RequestBody: "req", ResponseBody: "resp",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	all, _ := repo.QueryLLMEvents(ctx, EventQuery{})
	e, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if e == nil || e.RequestBody != "req" || e.ResponseBody != "resp" {
		t.Fatalf("unexpected event: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing event: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing event, got %+v", missing)
	}
}

func TestEventUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "curriculum", Success: true, InputTokens: 100, OutputTokens: 400, LatencyMs: 200},
		{Provider: "groq", Model: "llama-3.3-70b-versatile", Purpose: "curriculum", Success: true, InputTokens: 300, OutputTokens: 600, LatencyMs: 400},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz", Success: true, InputTokens: 50, OutputTokens: 150, LatencyMs: 100},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purpose rows, got %d", len(byPurpose))
	}
	usage := make(map[string]PurposeUsage, len(byPurpose))
	for _, u := range byPurpose {
		usage[u.Purpose] = u
	}
	cur := usage["curriculum"]
	if cur.Calls != 2 || cur.InputTokens != 400 || cur.OutputTokens != 1000 || cur.AvgLatencyMs != 300 {
		t.Fatalf("unexpected curriculum usage: %+v", cur)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("expected 2 model rows, got %d", len(byModel))
	}
	for _, u := range byModel {
		if u.Model == "gpt-4o-mini" && (u.Calls != 1 || u.InputTokens != 50) {
			t.Fatalf("unexpected model usage: %+v", u)
		}
	}
}
