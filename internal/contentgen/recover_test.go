package contentgen

import (
	"strings"
	"testing"
)

const validCurriculumJSON = `{
  "milestones": [
    {
      "name": "Core Language Features",
      "description": "Syntax, ownership, and the type system",
      "estimated_duration": "2 weeks",
      "topics": ["Variables and Mutability", "Ownership", "Structs and Enums"]
    },
    {
      "name": "Practical Projects",
      "topics": ["CLI Tools", "Error Handling Patterns"]
    }
  ]
}`

const validQuizJSON = `{
  "questions": [
    {
      "kind": "mcq",
      "prompt": "Which keyword declares an immutable binding?",
      "choices": ["let", "var", "mut", "const fn"],
      "correct_choice": 0
    },
    {
      "kind": "coding",
      "prompt": "Write a function that reverses a string.",
      "answer_key": "Iterate the characters in reverse order and collect them."
    }
  ]
}`

func TestRecoverCurriculum_CleanJSON(t *testing.T) {
	c, prov, ok := recoverCurriculum(validCurriculumJSON)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceClean {
		t.Fatalf("expected clean provenance, got %s", prov)
	}
	if len(c.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(c.Milestones))
	}
	if c.Milestones[0].Name != "Core Language Features" {
		t.Fatalf("unexpected milestone name: %q", c.Milestones[0].Name)
	}
	if len(c.Milestones[0].Topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(c.Milestones[0].Topics))
	}
}

func TestRecoverCurriculum_FencedJSONIsClean(t *testing.T) {
	fenced := "```json\n" + validCurriculumJSON + "\n```"
	_, prov, ok := recoverCurriculum(fenced)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceClean {
		t.Fatalf("fence stripping should not demote provenance, got %s", prov)
	}
}

func TestRecoverCurriculum_ControlCharsAreRecovered(t *testing.T) {
	dirty := strings.Replace(validCurriculumJSON, "Ownership", "Owner\x01ship", 1)
	c, prov, ok := recoverCurriculum(dirty)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceRecovered {
		t.Fatalf("expected recovered provenance, got %s", prov)
	}
	if c.Milestones[0].Topics[1] != "Ownership" {
		t.Fatalf("control character not removed: %q", c.Milestones[0].Topics[1])
	}
}

func TestRecoverCurriculum_BadEscapeIsRecovered(t *testing.T) {
	dirty := strings.Replace(validCurriculumJSON, "Structs and Enums", `Structs \and Enums`, 1)
	c, prov, ok := recoverCurriculum(dirty)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceRecovered {
		t.Fatalf("expected recovered provenance, got %s", prov)
	}
	if len(c.Milestones[0].Topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(c.Milestones[0].Topics))
	}
}

func TestRecoverCurriculum_FieldExtractionFromTruncatedJSON(t *testing.T) {
	// Truncated mid-object: never valid JSON, but the fields are there.
	truncated := `{"milestones": [
	  {"name": "Getting Started", "description": "First steps", "topics": ["Installation", "Hello World"]},
	  {"name": "Going Deeper", "topics": ["Generics", "Concurrency"]},
	  {"name": "Broken`
	c, prov, ok := recoverCurriculum(truncated)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceRecovered {
		t.Fatalf("expected recovered provenance, got %s", prov)
	}
	if len(c.Milestones) != 2 {
		t.Fatalf("expected 2 milestones, got %d", len(c.Milestones))
	}
	if c.Milestones[0].Name != "Getting Started" || c.Milestones[0].Description != "First steps" {
		t.Fatalf("unexpected first milestone: %+v", c.Milestones[0])
	}
	if c.Milestones[1].Topics[1] != "Concurrency" {
		t.Fatalf("unexpected topics: %v", c.Milestones[1].Topics)
	}
}

func TestRecoverCurriculum_LineReconstructionLastResort(t *testing.T) {
	prose := "Learning SQL Step by Step\nSelect statements\nJoins and subqueries\nIndexes and performance\n"
	c, prov, ok := recoverCurriculum(prose)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceRecovered {
		t.Fatalf("expected recovered provenance, got %s", prov)
	}
	if len(c.Milestones) != 1 {
		t.Fatalf("expected a single milestone, got %d", len(c.Milestones))
	}
	if c.Milestones[0].Name != "Learning SQL Step by Step" {
		t.Fatalf("unexpected milestone name: %q", c.Milestones[0].Name)
	}
	if len(c.Milestones[0].Topics) != 3 {
		t.Fatalf("expected 3 topics, got %v", c.Milestones[0].Topics)
	}
}

func TestRecoverCurriculum_GivesUpOnNothing(t *testing.T) {
	if _, _, ok := recoverCurriculum(""); ok {
		t.Fatal("expected recovery to fail on empty input")
	}
	if _, _, ok := recoverCurriculum("{\n}\n"); ok {
		t.Fatal("expected recovery to fail on structural noise")
	}
}

func TestRecoverQuiz_CleanJSON(t *testing.T) {
	qs, prov, ok := recoverQuiz(validQuizJSON)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceClean {
		t.Fatalf("expected clean provenance, got %s", prov)
	}
	if len(qs.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs.Questions))
	}
	if qs.Questions[0].Kind != QuestionMCQ || qs.Questions[0].CorrectChoice != 0 {
		t.Fatalf("unexpected first question: %+v", qs.Questions[0])
	}
	if qs.Questions[1].AnswerKey == "" {
		t.Fatal("coding question lost its answer key")
	}
}

func TestRecoverQuiz_FieldExtraction(t *testing.T) {
	mangled := `question 1
	"prompt": "What does SELECT do?",
	"choices": ["Reads rows", "Deletes rows", "Creates tables", "Drops indexes"],
	"correct_choice": 1,
	garbage here {{{
	"prompt": "Explain a LEFT JOIN.",
	"answer_key": "Returns all rows from the left table with matches from the right."`
	qs, prov, ok := recoverQuiz(mangled)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceRecovered {
		t.Fatalf("expected recovered provenance, got %s", prov)
	}
	if len(qs.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs.Questions))
	}
	if qs.Questions[0].Kind != QuestionMCQ || qs.Questions[0].CorrectChoice != 1 {
		t.Fatalf("unexpected MCQ: %+v", qs.Questions[0])
	}
	if qs.Questions[1].Kind != QuestionShortAnswer {
		t.Fatalf("expected short answer, got %s", qs.Questions[1].Kind)
	}
}

func TestRecoverQuiz_OutOfRangeCorrectChoiceClampsToZero(t *testing.T) {
	mangled := `"prompt": "Pick one.",
	"choices": ["a", "b"],
	"correct_choice": 9`
	qs, _, ok := recoverQuiz(mangled)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if qs.Questions[0].CorrectChoice != 0 {
		t.Fatalf("expected out-of-range index to clamp to 0, got %d", qs.Questions[0].CorrectChoice)
	}
}

func TestRecoverQuiz_LineReconstruction(t *testing.T) {
	prose := "Here are some questions.\nWhat is a goroutine?\nHow does a channel block?\nNot a question line\n"
	qs, prov, ok := recoverQuiz(prose)
	if !ok {
		t.Fatal("expected recovery to succeed")
	}
	if prov != ProvenanceRecovered {
		t.Fatalf("expected recovered provenance, got %s", prov)
	}
	if len(qs.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs.Questions))
	}
	for _, q := range qs.Questions {
		if q.Kind != QuestionShortAnswer || q.AnswerKey == "" {
			t.Fatalf("reconstructed question invalid: %+v", q)
		}
	}
}

func TestRecoverQuiz_GivesUpOnNoise(t *testing.T) {
	if _, _, ok := recoverQuiz("total nonsense with no structure"); ok {
		t.Fatal("expected recovery to fail")
	}
}
