package contentgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/rahulm/learnpath/internal/llm"
)

func newTestPipeline(mock *llm.MockProvider) *Pipeline {
	return New(mock, DefaultConfig(), zap.NewNop().Sugar(), nil, nil, nil)
}

func TestPipeline_CleanCurriculum(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validCurriculumJSON)},
	)
	p := newTestPipeline(mock)

	c := p.GenerateCurriculum(context.Background(), CurriculumInput{Subject: "Rust", SkillLevel: "beginner"})

	if c.Provenance != ProvenanceClean {
		t.Fatalf("expected clean provenance, got %s", c.Provenance)
	}
	if c.Subject != "Rust" || c.SkillLevel != "beginner" {
		t.Fatalf("input not stamped onto result: %+v", c)
	}
	if err := validateCurriculum(c); err != nil {
		t.Fatalf("invalid curriculum: %v", err)
	}
}

func TestPipeline_CurriculumIsCached(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validCurriculumJSON)},
	)
	p := newTestPipeline(mock)
	in := CurriculumInput{Subject: "Rust", SkillLevel: "beginner"}

	first := p.GenerateCurriculum(context.Background(), in)
	second := p.GenerateCurriculum(context.Background(), in)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	if first != second {
		t.Fatal("expected the cached instance on the second call")
	}
}

func TestPipeline_MalformedResponseIsRecovered(t *testing.T) {
	fenced := "```json\n" + `{"milestones": [{"name": "Basics", "topics": ["One", "Two"]}, {"name": "Broken` + "\n```"
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(fenced)},
	)
	p := newTestPipeline(mock)

	c := p.GenerateCurriculum(context.Background(), CurriculumInput{Subject: "Go"})

	if c.Provenance != ProvenanceRecovered {
		t.Fatalf("expected recovered provenance, got %s", c.Provenance)
	}
	if len(c.Milestones) != 1 || c.Milestones[0].Name != "Basics" {
		t.Fatalf("unexpected recovery result: %+v", c)
	}
}

func TestPipeline_InvalidResponseErrorStillFeedsRecovery(t *testing.T) {
	// A provider that validates responses itself surfaces the raw body
	// on the error; the pipeline must still try to recover it.
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrInvalidResponse{
			Content: json.RawMessage(validCurriculumJSON),
			Err:     errors.New("schema violation"),
		}},
	)
	p := newTestPipeline(mock)

	c := p.GenerateCurriculum(context.Background(), CurriculumInput{Subject: "Go"})

	if c.Provenance == ProvenanceFallback {
		t.Fatal("expected recovery from the error payload, got fallback")
	}
	if err := validateCurriculum(c); err != nil {
		t.Fatalf("invalid curriculum: %v", err)
	}
}

func TestPipeline_ProviderFailureFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Status: 503, Err: errors.New("down")}},
	)
	mock.Repeat = true
	p := newTestPipeline(mock)

	c := p.GenerateCurriculum(context.Background(), CurriculumInput{Subject: "Kubernetes", SkillLevel: "advanced"})

	if c.Provenance != ProvenanceFallback {
		t.Fatalf("expected fallback provenance, got %s", c.Provenance)
	}
	if err := validateCurriculum(c); err != nil {
		t.Fatalf("fallback must be valid: %v", err)
	}
	if c.Milestones[0].Name != "Learn Kubernetes" {
		t.Fatalf("unexpected fallback milestone: %q", c.Milestones[0].Name)
	}
}

func TestPipeline_CanceledRequestDoesNotPinFallback(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Status: 503, Err: errors.New("down")}},
		llm.MockResponse{Content: json.RawMessage(validCurriculumJSON)},
	)
	p := newTestPipeline(mock)
	in := CurriculumInput{Subject: "Rust", SkillLevel: "beginner"}

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	c := p.GenerateCurriculum(canceled, in)
	if c.Provenance != ProvenanceFallback {
		t.Fatalf("expected fallback under a canceled request, got %s", c.Provenance)
	}

	c = p.GenerateCurriculum(context.Background(), in)
	if c.Provenance != ProvenanceClean {
		t.Fatalf("fallback must not outlive the canceled request, got %s", c.Provenance)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected a fresh provider call after cancellation, got %d", mock.CallCount())
	}
}

func TestPipeline_UnrecoverableNoiseFallsBack(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`I cannot help with that request.`)},
	)
	p := newTestPipeline(mock)

	c := p.GenerateCurriculum(context.Background(), CurriculumInput{Subject: "Go"})
	if c.Provenance != ProvenanceFallback {
		t.Fatalf("expected fallback provenance, got %s", c.Provenance)
	}
}

func TestPipeline_BatchPreservesOrderAndTotality(t *testing.T) {
	// One canned response replayed for all workers; subjects differ so
	// each input misses the cache and hits the provider.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validCurriculumJSON)},
	)
	mock.Repeat = true
	p := newTestPipeline(mock)

	ins := []CurriculumInput{
		{Subject: "Go"}, {Subject: "Rust"}, {Subject: "Python"},
		{Subject: "SQL"}, {Subject: "Docker"},
	}
	results := p.GenerateCurricula(context.Background(), ins)

	if len(results) != len(ins) {
		t.Fatalf("expected %d results, got %d", len(ins), len(results))
	}
	for i, c := range results {
		if c == nil {
			t.Fatalf("result %d is nil", i)
		}
		if c.Subject != ins[i].Subject {
			t.Fatalf("result %d out of order: got %q, want %q", i, c.Subject, ins[i].Subject)
		}
		if err := validateCurriculum(c); err != nil {
			t.Fatalf("result %d invalid: %v", i, err)
		}
	}
}

func TestPipeline_CleanQuiz(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	p := newTestPipeline(mock)

	qs := p.GenerateQuiz(context.Background(), QuizInput{Subject: "Rust", Type: QuizMixed, Questions: 2})

	if qs.Provenance != ProvenanceClean {
		t.Fatalf("expected clean provenance, got %s", qs.Provenance)
	}
	if qs.Subject != "Rust" {
		t.Fatalf("subject not stamped: %q", qs.Subject)
	}
	if err := validateQuestionSet(qs); err != nil {
		t.Fatalf("invalid quiz: %v", err)
	}
}

func TestPipeline_QuizCacheKeyedByType(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	p := newTestPipeline(mock)

	p.GenerateQuiz(context.Background(), QuizInput{Subject: "Go", Type: QuizMCQOnly, Questions: 2})
	p.GenerateQuiz(context.Background(), QuizInput{Subject: "Go", Type: QuizCodingOnly, Questions: 2})

	if mock.CallCount() != 2 {
		t.Fatalf("quizzes of different types must not share a cache entry; got %d calls", mock.CallCount())
	}
}

func TestPipeline_QuizFailureFallsBackHonoringTypeAndCount(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Status: 500, Err: errors.New("boom")}},
	)
	mock.Repeat = true
	p := newTestPipeline(mock)

	qs := p.GenerateQuiz(context.Background(), QuizInput{Subject: "Go", Type: QuizMCQOnly, Questions: 5})

	if qs.Provenance != ProvenanceFallback {
		t.Fatalf("expected fallback provenance, got %s", qs.Provenance)
	}
	if len(qs.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs.Questions))
	}
	for i, q := range qs.Questions {
		if q.Kind != QuestionMCQ {
			t.Fatalf("question %d: expected mcq, got %s", i, q.Kind)
		}
	}
}

func TestPipeline_SchemaAttachedToRequest(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validCurriculumJSON)},
	)
	p := newTestPipeline(mock)

	p.GenerateCurriculum(context.Background(), CurriculumInput{Subject: "Go"})

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 recorded call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema != CurriculumSchema {
		t.Fatal("curriculum schema not attached to the request")
	}
}
