package contentgen

import (
	"strings"
	"testing"
)

func TestSynthesizeCurriculum_Generic(t *testing.T) {
	lib := NewFallbackLibrary()
	c := lib.SynthesizeCurriculum(CurriculumInput{Subject: "Photography", SkillLevel: "beginner"})

	if err := validateCurriculum(c); err != nil {
		t.Fatalf("fallback curriculum invalid: %v", err)
	}
	if c.Provenance != ProvenanceFallback {
		t.Fatalf("expected fallback provenance, got %s", c.Provenance)
	}
	if len(c.Milestones) != 1 {
		t.Fatalf("expected a single milestone, got %d", len(c.Milestones))
	}
	m := c.Milestones[0]
	if m.Name != "Learn Photography" {
		t.Fatalf("unexpected milestone name: %q", m.Name)
	}
	if len(m.Topics) != 6 {
		t.Fatalf("expected 6 topics, got %d", len(m.Topics))
	}
	if m.Topics[0] != "Introduction to Photography" {
		t.Fatalf("unexpected first topic: %q", m.Topics[0])
	}
	if m.EstimatedDuration != "4 weeks" {
		t.Fatalf("expected default duration, got %q", m.EstimatedDuration)
	}
}

func TestSynthesizeCurriculum_DurationHintWins(t *testing.T) {
	lib := NewFallbackLibrary()
	c := lib.SynthesizeCurriculum(CurriculumInput{Subject: "Go", DurationHint: "10 days"})
	if c.Milestones[0].EstimatedDuration != "10 days" {
		t.Fatalf("expected hinted duration, got %q", c.Milestones[0].EstimatedDuration)
	}
}

func TestSynthesizeCurriculum_ProgrammingDomain(t *testing.T) {
	lib := NewFallbackLibrary()
	c := lib.SynthesizeCurriculum(CurriculumInput{Subject: "Go", Domain: "programming"})
	if c.Milestones[0].Topics[0] != "Go Syntax and Tooling" {
		t.Fatalf("expected programming topics, got %v", c.Milestones[0].Topics)
	}
}

func TestSynthesizeCurriculum_UnknownDomainFallsBackToGeneric(t *testing.T) {
	lib := NewFallbackLibrary()
	c := lib.SynthesizeCurriculum(CurriculumInput{Subject: "Baking", Domain: "culinary"})
	if c.Milestones[0].Topics[0] != "Introduction to Baking" {
		t.Fatalf("expected generic topics, got %v", c.Milestones[0].Topics)
	}
}

func TestSynthesizeQuiz_MCQOnly(t *testing.T) {
	lib := NewFallbackLibrary()
	qs := lib.SynthesizeQuiz(QuizInput{Subject: "Chess", Type: QuizMCQOnly, Questions: 4})

	if err := validateQuestionSet(qs); err != nil {
		t.Fatalf("fallback quiz invalid: %v", err)
	}
	if qs.Provenance != ProvenanceFallback {
		t.Fatalf("expected fallback provenance, got %s", qs.Provenance)
	}
	if len(qs.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(qs.Questions))
	}
	for i, q := range qs.Questions {
		if q.Kind != QuestionMCQ {
			t.Fatalf("question %d: expected mcq, got %s", i, q.Kind)
		}
		if q.CorrectChoice != 0 {
			t.Fatalf("question %d: fallback MCQs must key on the first choice", i)
		}
		if !strings.Contains(q.Prompt, "Chess") {
			t.Fatalf("question %d: subject not templated into prompt: %q", i, q.Prompt)
		}
	}
}

func TestSynthesizeQuiz_CodingOnly(t *testing.T) {
	lib := NewFallbackLibrary()
	qs := lib.SynthesizeQuiz(QuizInput{Subject: "Python", Type: QuizCodingOnly, Questions: 2, Domain: "programming"})

	if err := validateQuestionSet(qs); err != nil {
		t.Fatalf("fallback quiz invalid: %v", err)
	}
	for i, q := range qs.Questions {
		if q.Kind != QuestionCoding {
			t.Fatalf("question %d: expected coding, got %s", i, q.Kind)
		}
		if q.AnswerKey == "" {
			t.Fatalf("question %d: missing answer key", i)
		}
	}
}

func TestSynthesizeQuiz_MixedSplit(t *testing.T) {
	lib := NewFallbackLibrary()
	qs := lib.SynthesizeQuiz(QuizInput{Subject: "Go", Type: QuizMixed, Questions: 6})

	if len(qs.Questions) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(qs.Questions))
	}
	var mcq, coding int
	for _, q := range qs.Questions {
		switch q.Kind {
		case QuestionMCQ:
			mcq++
		case QuestionCoding:
			coding++
		}
	}
	if mcq != 4 || coding != 2 {
		t.Fatalf("expected 4 mcq and 2 coding, got %d and %d", mcq, coding)
	}
}

func TestSynthesizeQuiz_CyclesBankBeyondItsSize(t *testing.T) {
	lib := NewFallbackLibrary()
	qs := lib.SynthesizeQuiz(QuizInput{Subject: "Go", Type: QuizMCQOnly, Questions: 12})
	if len(qs.Questions) != 12 {
		t.Fatalf("expected 12 questions, got %d", len(qs.Questions))
	}
	if err := validateQuestionSet(qs); err != nil {
		t.Fatalf("cycled quiz invalid: %v", err)
	}
}

func TestSynthesizeQuiz_ZeroCountStillYieldsAQuestion(t *testing.T) {
	lib := NewFallbackLibrary()
	qs := lib.SynthesizeQuiz(QuizInput{Subject: "Go", Type: QuizMCQOnly})
	if len(qs.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs.Questions))
	}
}

func TestRegisterOverridesDomain(t *testing.T) {
	lib := NewFallbackLibrary()
	lib.Register("music", DomainTemplate{
		Description: "Play %s by ear",
		Topics:      []string{"%s Scales"},
		MCQBank: []MCQTemplate{{
			Prompt:  "Which comes first when learning %s?",
			Choices: []string{"Listening", "Performing live"},
		}},
		CodingBank: []CodingTemplate{{Prompt: "Practice %s", AnswerKey: "Daily"}},
	})

	c := lib.SynthesizeCurriculum(CurriculumInput{Subject: "Piano", Domain: "Music"})
	if c.Milestones[0].Topics[0] != "Piano Scales" {
		t.Fatalf("registered domain not used: %v", c.Milestones[0].Topics)
	}
}
