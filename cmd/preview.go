package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/llm"
	"github.com/rahulm/learnpath/internal/logger"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated content for a subject (no database)",
	Long: `Generate a curriculum or quiz for a subject and print it.

This is a stateless developer tool — no database, no events, nothing
persisted. Useful for evaluating content quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("subject", "", "Subject to generate for (required)")
	previewCmd.Flags().String("skill-level", "basic", "Skill level: basic, intermediate, or advanced")
	previewCmd.Flags().String("kind", "curriculum", "Content kind: curriculum or quiz")
	previewCmd.Flags().String("quiz-type", "mixed", "Quiz type: mcq_only, coding_only, or mixed")
	previewCmd.Flags().Int("count", 6, "Questions to generate (quiz only)")
	previewCmd.Flags().String("domain", "", "Content domain tag for fallback templates, e.g. programming")
	_ = previewCmd.MarkFlagRequired("subject")
}

func runPreview(cmd *cobra.Command, args []string) error {
	subject, _ := cmd.Flags().GetString("subject")
	skillLevel, _ := cmd.Flags().GetString("skill-level")
	kind, _ := cmd.Flags().GetString("kind")
	quizType, _ := cmd.Flags().GetString("quiz-type")
	count, _ := cmd.Flags().GetInt("count")
	domain, _ := cmd.Flags().GetString("domain")

	switch quizType {
	case string(contentgen.QuizMCQOnly), string(contentgen.QuizCodingOnly), string(contentgen.QuizMixed):
	default:
		return fmt.Errorf("invalid quiz type %q: must be mcq_only, coding_only, or mixed", quizType)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	pipeline := contentgen.New(provider, contentgen.DefaultConfig(), logger.NewNop(), nil, nil, nil)

	switch kind {
	case "curriculum":
		cur := pipeline.GenerateCurriculum(ctx, contentgen.CurriculumInput{
			Subject:    subject,
			SkillLevel: skillLevel,
			Domain:     domain,
		})
		printCurriculum(cur)
	case "quiz":
		set := pipeline.GenerateQuiz(ctx, contentgen.QuizInput{
			Subject:    subject,
			SkillLevel: skillLevel,
			Domain:     domain,
			Type:       contentgen.QuizType(quizType),
			Questions:  count,
		})
		printQuestionSet(set)
	default:
		return fmt.Errorf("invalid kind %q: must be curriculum or quiz", kind)
	}
	return nil
}

func printCurriculum(cur *contentgen.Curriculum) {
	fmt.Printf("Subject: %s (%s)  [%s]\n\n", cur.Subject, cur.SkillLevel, cur.Provenance)
	for i, m := range cur.Milestones {
		fmt.Printf("── Milestone %d: %s ──\n", i+1, m.Name)
		if m.Description != "" {
			fmt.Println(m.Description)
		}
		if m.EstimatedDuration != "" {
			fmt.Printf("Duration: %s\n", m.EstimatedDuration)
		}
		for _, t := range m.Topics {
			fmt.Printf("  • %s\n", t)
		}
		fmt.Println()
	}
}

func printQuestionSet(set *contentgen.QuestionSet) {
	fmt.Printf("Subject: %s  [%s]\n\n", set.Subject, set.Provenance)
	for i, q := range set.Questions {
		fmt.Printf("── Question %d/%d (%s) ──\n", i+1, len(set.Questions), q.Kind)
		fmt.Println(q.Prompt)
		if q.Kind == contentgen.QuestionMCQ {
			for j, c := range q.Choices {
				marker := " "
				if j == q.CorrectChoice {
					marker = "*"
				}
				fmt.Printf("  %s %d) %s\n", marker, j+1, c)
			}
		} else if q.AnswerKey != "" {
			fmt.Printf("Answer key: %s\n", q.AnswerKey)
		}
		fmt.Println()
	}
	fmt.Printf("── %d questions ──\n", len(set.Questions))
}
