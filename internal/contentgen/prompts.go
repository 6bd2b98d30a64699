package contentgen

import (
	"fmt"
	"strings"
)

const curriculumSystemPrompt = `You are an expert educator and knowledge synthesizer. Provide accurate, comprehensive, and well-structured responses that help learners understand complex topics.`

const quizSystemPrompt = `You are an expert educator. Provide accurate, concise responses in the requested format.`

// buildCurriculumPrompt assembles the user message for curriculum
// generation. The model is asked for JSON only; the recovery engine
// handles everything it returns anyway.
func buildCurriculumPrompt(in CurriculumInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are a learning roadmap planner. The user wants to learn %q at the %s skill level", in.Subject, in.SkillLevel))
	if in.DurationHint != "" {
		b.WriteString(fmt.Sprintf(" within %s", in.DurationHint))
	}
	b.WriteString(".\n\n")

	b.WriteString(`Create a learning roadmap with 3-5 milestones in learning order.
Each milestone has 2-4 topics, a short description, and an estimated duration.

Return ONLY valid JSON in this format (no markdown, no commentary):
{
  "milestones": [
    {
      "name": "Milestone Name",
      "description": "What this milestone covers",
      "estimated_duration": "2 weeks",
      "topics": ["Topic 1", "Topic 2", "Topic 3"]
    }
  ]
}`)

	return b.String()
}

// buildQuizPrompt assembles the user message for quiz generation.
func buildQuizPrompt(in QuizInput, count int) string {
	var b strings.Builder

	b.WriteString("You are creating a focused quiz for a specific learning unit.\n\n")
	b.WriteString(fmt.Sprintf("SUBJECT: %s\n", in.Subject))
	if in.SkillLevel != "" {
		b.WriteString(fmt.Sprintf("LEARNER LEVEL: %s\n", in.SkillLevel))
	}
	if in.Context != "" {
		b.WriteString("\nSOURCE MATERIAL:\n")
		b.WriteString(in.Context)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf(`
INSTRUCTIONS:
- Create %d questions that test understanding of this specific subject
- Questions should be practical and test both conceptual knowledge and application
- For mcq questions: create 4 realistic, challenging choices with one clearly correct answer
- For coding questions: ask for a short implementation and provide the expected code as the answer key
- For short_answer questions: ask for specific explanations and provide the expected answer
%s- Make questions realistic and test common misconceptions

REQUIRED JSON FORMAT (respond with ONLY this JSON, no other text):
{
  "questions": [
%s
  ]
}`, count, quizTypeInstruction(in.Type), quizFormatExample(in.Type)))

	return b.String()
}

func quizTypeInstruction(t QuizType) string {
	switch t {
	case QuizMCQOnly:
		return "- Generate ONLY multiple choice questions with 4 options each\n"
	case QuizCodingOnly:
		return "- Generate ONLY coding questions that require writing or analyzing code\n"
	default:
		return "- Generate a mix of multiple choice and coding questions\n"
	}
}

func quizFormatExample(t QuizType) string {
	const mcqExample = `    {
      "kind": "mcq",
      "prompt": "Question about a specific concept",
      "choices": [
        "Correct answer that directly relates to the subject",
        "Plausible but incorrect option",
        "Another plausible but incorrect option",
        "Clear distractor option"
      ],
      "correct_choice": 0
    }`
	const codingExample = `    {
      "kind": "coding",
      "prompt": "Write a short function that solves a specific small problem",
      "answer_key": "the expected implementation"
    }`

	switch t {
	case QuizMCQOnly:
		return mcqExample
	case QuizCodingOnly:
		return codingExample
	default:
		return mcqExample + ",\n" + codingExample
	}
}
