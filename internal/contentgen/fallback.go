package contentgen

import (
	"fmt"
	"strings"
)

// DomainTemplate carries the canned material the synthesizer draws on
// for one content domain. Topic and prompt strings may contain %s,
// which is filled with the subject.
type DomainTemplate struct {
	Topics      []string
	MCQBank     []MCQTemplate
	CodingBank  []CodingTemplate
	Description string
}

// MCQTemplate is a canned multiple-choice question. The first choice is
// always the correct one so synthesized content never asserts a wrong
// answer.
type MCQTemplate struct {
	Prompt  string
	Choices []string
}

// CodingTemplate is a canned open-ended exercise with its answer key.
type CodingTemplate struct {
	Prompt    string
	AnswerKey string
}

// FallbackLibrary resolves a domain tag to its templates. Callers
// declare the domain on the generation request; unknown or empty tags
// resolve to the generic template, so synthesis is total.
type FallbackLibrary struct {
	domains map[string]DomainTemplate
}

// NewFallbackLibrary returns a library preloaded with the generic and
// programming domains.
func NewFallbackLibrary() *FallbackLibrary {
	lib := &FallbackLibrary{domains: make(map[string]DomainTemplate)}
	lib.Register("", genericTemplate)
	lib.Register("programming", programmingTemplate)
	return lib
}

// Register adds or replaces the templates for a domain tag.
func (l *FallbackLibrary) Register(domain string, t DomainTemplate) {
	l.domains[strings.ToLower(domain)] = t
}

func (l *FallbackLibrary) resolve(domain string) DomainTemplate {
	if t, ok := l.domains[strings.ToLower(domain)]; ok {
		return t
	}
	return l.domains[""]
}

// SynthesizeCurriculum builds a minimal but valid curriculum for the
// request. It never fails: one milestone covering the subject, with the
// domain's canned topic list.
func (l *FallbackLibrary) SynthesizeCurriculum(in CurriculumInput) *Curriculum {
	t := l.resolve(in.Domain)

	topics := make([]string, 0, len(t.Topics))
	for _, tpl := range t.Topics {
		topics = append(topics, fill(tpl, in.Subject))
	}

	duration := in.DurationHint
	if duration == "" {
		duration = "4 weeks"
	}

	return &Curriculum{
		Subject:    in.Subject,
		SkillLevel: in.SkillLevel,
		Milestones: []Milestone{{
			Name:              fmt.Sprintf("Learn %s", in.Subject),
			Description:       fill(t.Description, in.Subject),
			EstimatedDuration: duration,
			Topics:            topics,
		}},
		Provenance: ProvenanceFallback,
	}
}

// SynthesizeQuiz builds a valid question set for the request, honoring
// its quiz type and question count. Banks are cycled when the count
// exceeds the bank size.
func (l *FallbackLibrary) SynthesizeQuiz(in QuizInput) *QuestionSet {
	t := l.resolve(in.Domain)

	count := in.Questions
	if count < 1 {
		count = 1
	}

	qs := &QuestionSet{Subject: in.Subject, Provenance: ProvenanceFallback}
	switch in.Type {
	case QuizCodingOnly:
		qs.Questions = codingQuestions(t, in.Subject, count)
	case QuizMCQOnly:
		qs.Questions = mcqQuestions(t, in.Subject, count)
	default:
		// Mixed leans on MCQs, with roughly a third open-ended.
		coding := count / 3
		qs.Questions = append(mcqQuestions(t, in.Subject, count-coding), codingQuestions(t, in.Subject, coding)...)
	}
	return qs
}

func mcqQuestions(t DomainTemplate, subject string, count int) []Question {
	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		tpl := t.MCQBank[i%len(t.MCQBank)]
		choices := make([]string, len(tpl.Choices))
		for j, c := range tpl.Choices {
			choices[j] = fill(c, subject)
		}
		out = append(out, Question{
			Kind:          QuestionMCQ,
			Prompt:        fill(tpl.Prompt, subject),
			Choices:       choices,
			CorrectChoice: 0,
		})
	}
	return out
}

func codingQuestions(t DomainTemplate, subject string, count int) []Question {
	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		tpl := t.CodingBank[i%len(t.CodingBank)]
		out = append(out, Question{
			Kind:      QuestionCoding,
			Prompt:    fill(tpl.Prompt, subject),
			AnswerKey: fill(tpl.AnswerKey, subject),
		})
	}
	return out
}

func fill(tpl, subject string) string {
	if strings.Contains(tpl, "%s") {
		return fmt.Sprintf(tpl, subject)
	}
	return tpl
}

var genericTemplate = DomainTemplate{
	Description: "Master the fundamentals of %s",
	Topics: []string{
		"Introduction to %s",
		"Basic %s Concepts",
		"Practical %s Applications",
		"Advanced %s Topics",
		"%s Best Practices",
		"%s Project Work",
	},
	MCQBank: []MCQTemplate{
		{
			Prompt: "What is the most effective first step when learning %s?",
			Choices: []string{
				"Understanding the core concepts and terminology",
				"Memorizing advanced techniques",
				"Skipping directly to expert material",
				"Avoiding practice exercises",
			},
		},
		{
			Prompt: "Which habit most improves long-term retention when studying %s?",
			Choices: []string{
				"Regular spaced practice with feedback",
				"Cramming everything in one session",
				"Reading without taking notes",
				"Studying only once",
			},
		},
		{
			Prompt: "When you encounter a difficult concept in %s, what should you do first?",
			Choices: []string{
				"Break it into smaller pieces and review prerequisites",
				"Give up on the topic",
				"Skip it permanently",
				"Memorize it without understanding",
			},
		},
		{
			Prompt: "How should you measure progress while learning %s?",
			Choices: []string{
				"By applying concepts to practical problems",
				"By counting hours spent reading",
				"By the number of pages covered",
				"By avoiding any assessment",
			},
		},
		{
			Prompt: "What is the best use of examples when studying %s?",
			Choices: []string{
				"Work through them actively, then vary them yourself",
				"Read them once quickly",
				"Ignore them entirely",
				"Copy them without thought",
			},
		},
	},
	CodingBank: []CodingTemplate{
		{
			Prompt:    "Describe a small practical exercise that applies a core concept of %s, and outline how you would complete it.",
			AnswerKey: "A sound answer names one core concept, describes a concrete deliverable exercising it, and lists the main steps to complete it.",
		},
		{
			Prompt:    "Summarize the three most important ideas in %s for a beginner, in your own words.",
			AnswerKey: "A sound answer identifies three foundational ideas and explains each in one or two plain sentences.",
		},
	},
}

var programmingTemplate = DomainTemplate{
	Description: "Build working programs with %s, from syntax to idiomatic style",
	Topics: []string{
		"%s Syntax and Tooling",
		"Variables, Types and Control Flow in %s",
		"Functions and Error Handling in %s",
		"Data Structures in %s",
		"Testing and Debugging %s Code",
		"Building a Small %s Project",
	},
	MCQBank: []MCQTemplate{
		{
			Prompt: "What is the best way to verify that a %s function behaves correctly?",
			Choices: []string{
				"Write automated tests covering normal and edge cases",
				"Assume it works if it compiles",
				"Test it manually once",
				"Avoid edge cases in testing",
			},
		},
		{
			Prompt: "When a %s program produces wrong output, what should you do first?",
			Choices: []string{
				"Reproduce the failure with a minimal input",
				"Rewrite the whole program",
				"Add random changes until it passes",
				"Ignore the failure",
			},
		},
		{
			Prompt: "Which practice keeps a growing %s codebase maintainable?",
			Choices: []string{
				"Small functions with clear names and focused responsibilities",
				"One large function for everything",
				"Copying code instead of refactoring",
				"Avoiding any code review",
			},
		},
		{
			Prompt: "How should errors be handled in production %s code?",
			Choices: []string{
				"Detect them explicitly and handle or report each one",
				"Silently discard them",
				"Crash on any error without context",
				"Log them and continue blindly",
			},
		},
		{
			Prompt: "What makes a good first project when learning %s?",
			Choices: []string{
				"A small tool solving a real problem you understand",
				"A large distributed system",
				"Rewriting an operating system",
				"A project with no defined goal",
			},
		},
	},
	CodingBank: []CodingTemplate{
		{
			Prompt:    "Write a %s function that takes a list of numbers and returns the largest one, handling the empty-list case explicitly.",
			AnswerKey: "A correct solution iterates once tracking the maximum, and signals the empty input distinctly, for example with an error or sentinel.",
		},
		{
			Prompt:    "Write a %s function that counts how many times each word appears in a string and returns the counts.",
			AnswerKey: "A correct solution splits the input on whitespace and accumulates counts in a map keyed by word.",
		},
	},
}
