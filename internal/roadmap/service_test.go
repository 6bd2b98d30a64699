package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/llm"
	"github.com/rahulm/learnpath/internal/logger"
	"github.com/rahulm/learnpath/internal/store"
)

const curriculumJSON = `{
  "milestones": [
    {"name": "Foundations", "description": "The basics", "estimated_duration": "1 week", "topics": ["Setup", "Syntax"]},
    {"name": "Core Concepts", "topics": ["Types", "Functions"]}
  ]
}`

// fakeRepo is an in-memory RoadmapRepo.
type fakeRepo struct {
	nextID    int
	roadmaps  map[int]*store.Roadmap
	plans     map[int][]store.MilestoneSpec
	progress  map[string]string // "userID/topicID" -> status
	topicBase int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		roadmaps: make(map[int]*store.Roadmap),
		plans:    make(map[int][]store.MilestoneSpec),
		progress: make(map[string]string),
	}
}

func (f *fakeRepo) Create(_ context.Context, r store.Roadmap) (*store.Roadmap, error) {
	f.nextID++
	r.ID = f.nextID
	r.Status = store.RoadmapPending
	f.roadmaps[r.ID] = &r
	return &r, nil
}

func (f *fakeRepo) PersistPlan(_ context.Context, roadmapID int, userID string, plan []store.MilestoneSpec) error {
	r, ok := f.roadmaps[roadmapID]
	if !ok {
		return store.ErrNotFound
	}
	f.plans[roadmapID] = plan
	r.Status = store.RoadmapReady
	return nil
}

func (f *fakeRepo) Get(_ context.Context, roadmapID int, userID string) (*store.RoadmapDetail, error) {
	r, ok := f.roadmaps[roadmapID]
	if !ok {
		return nil, store.ErrNotFound
	}
	detail := &store.RoadmapDetail{Roadmap: *r}
	for i, spec := range f.plans[roadmapID] {
		md := store.MilestoneDetail{Milestone: store.Milestone{
			ID:       i + 1,
			Position: i + 1,
			Name:     spec.Name,
			Subject:  spec.Subject,
		}}
		for j, name := range spec.Topics {
			f.topicBase++
			md.Topics = append(md.Topics, store.TopicProgress{
				Topic:  store.Topic{ID: f.topicBase, Position: j + 1, Name: name},
				Status: store.ProgressNotStarted,
			})
			detail.TotalTopics++
		}
		detail.Milestones = append(detail.Milestones, md)
	}
	return detail, nil
}

func (f *fakeRepo) GetHeader(_ context.Context, roadmapID int) (*store.Roadmap, error) {
	r, ok := f.roadmaps[roadmapID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string) ([]store.Roadmap, error) {
	var out []store.Roadmap
	for _, r := range f.roadmaps {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateProgress(_ context.Context, userID string, topicID int, status string) (*store.Progress, error) {
	if topicID > f.topicBase {
		return nil, store.ErrNotFound
	}
	f.progress[fmt.Sprintf("%s/%d", userID, topicID)] = status
	return &store.Progress{UserID: userID, TopicID: topicID, Status: status}, nil
}

func (f *fakeRepo) GetMilestone(context.Context, int, string) (*store.Milestone, []store.Topic, error) {
	return nil, nil, store.ErrNotFound
}

func (f *fakeRepo) GetTopic(context.Context, int, string) (*store.Topic, *store.Milestone, error) {
	return nil, nil, store.ErrNotFound
}

func newTestService(mock *llm.MockProvider, repo store.RoadmapRepo) *Service {
	p := contentgen.New(mock, contentgen.DefaultConfig(), logger.NewNop(), nil, nil, nil)
	return NewService(p, repo, logger.NewNop())
}

func TestCreate_SingleInterest(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(curriculumJSON)},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeRepo())

	detail, err := svc.Create(context.Background(), CreateInput{
		UserID:     "user-1",
		Interests:  []string{"Go"},
		SkillLevel: "basic",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if detail.Title != "Basic Go Mastery Track" {
		t.Fatalf("unexpected title: %q", detail.Title)
	}
	if detail.Status != store.RoadmapReady {
		t.Fatalf("expected ready, got %q", detail.Status)
	}
	if len(detail.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(detail.Milestones))
	}
	if detail.Milestones[0].Name != "Milestone 1: Foundations" {
		t.Fatalf("unexpected name: %q", detail.Milestones[0].Name)
	}
	if detail.Milestones[1].Name != "Milestone 2: Core Concepts" {
		t.Fatalf("unexpected name: %q", detail.Milestones[1].Name)
	}
}

func TestCreate_MultipleInterestsNumberContinuously(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(curriculumJSON)},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeRepo())

	detail, err := svc.Create(context.Background(), CreateInput{
		UserID:     "user-1",
		Interests:  []string{"Go", "SQL"},
		SkillLevel: "intermediate",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if detail.Title != "Intermediate Multi-Tech Learning Path" {
		t.Fatalf("unexpected title: %q", detail.Title)
	}
	if len(detail.Milestones) != 4 {
		t.Fatalf("expected 4 milestones, got %d", len(detail.Milestones))
	}
	if !strings.HasPrefix(detail.Milestones[2].Name, "Milestone 3:") {
		t.Fatalf("numbering not continuous: %q", detail.Milestones[2].Name)
	}
	if detail.Milestones[0].Subject != "Go" || detail.Milestones[2].Subject != "SQL" {
		t.Fatalf("interest order lost: %q then %q",
			detail.Milestones[0].Subject, detail.Milestones[2].Subject)
	}
}

func TestCreate_PersistsDomain(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(curriculumJSON)},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeRepo())

	detail, err := svc.Create(context.Background(), CreateInput{
		UserID:     "user-1",
		Interests:  []string{"Go"},
		SkillLevel: "basic",
		Domain:     "programming",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if detail.Domain != "programming" {
		t.Fatalf("domain lost on the header: %q", detail.Domain)
	}
}

func TestCreate_ProviderDownStillSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Status: 503, Err: errors.New("down")}},
	)
	mock.Repeat = true
	svc := newTestService(mock, newFakeRepo())

	detail, err := svc.Create(context.Background(), CreateInput{
		UserID:     "user-1",
		Interests:  []string{"Kubernetes"},
		SkillLevel: "advanced",
	})
	if err != nil {
		t.Fatalf("create must not fail on provider outage: %v", err)
	}
	if detail.Status != store.RoadmapReady {
		t.Fatalf("expected ready, got %q", detail.Status)
	}
	if len(detail.Milestones) != 1 {
		t.Fatalf("expected the fallback milestone, got %d", len(detail.Milestones))
	}
	if detail.Milestones[0].Name != "Milestone 1: Learn Kubernetes" {
		t.Fatalf("unexpected fallback name: %q", detail.Milestones[0].Name)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), newFakeRepo())

	cases := []CreateInput{
		{Interests: []string{"Go"}, SkillLevel: "basic"},            // no user
		{UserID: "u", SkillLevel: "basic"},                          // no interests
		{UserID: "u", Interests: []string{" "}, SkillLevel: "basic"}, // blank interest
		{UserID: "u", Interests: []string{"Go"}, SkillLevel: "pro"}, // bad level
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestUpdateProgress_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), newFakeRepo())
	if _, err := svc.UpdateProgress(context.Background(), "user-1", 1, "done"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
