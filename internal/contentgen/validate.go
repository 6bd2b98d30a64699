package contentgen

import (
	"fmt"
	"strings"
)

// validateCurriculum checks the structural invariants every curriculum
// must satisfy regardless of provenance: at least one milestone, each
// with a non-empty name and at least one non-empty topic.
func validateCurriculum(c *Curriculum) error {
	if c == nil || len(c.Milestones) == 0 {
		return fmt.Errorf("curriculum has no milestones")
	}
	for i, m := range c.Milestones {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("milestone %d has an empty name", i)
		}
		if len(m.Topics) == 0 {
			return fmt.Errorf("milestone %q has no topics", m.Name)
		}
		for j, t := range m.Topics {
			if strings.TrimSpace(t) == "" {
				return fmt.Errorf("milestone %q topic %d is empty", m.Name, j)
			}
		}
	}
	return nil
}

// validateQuestionSet checks quiz invariants: at least one question;
// every question has a prompt; MCQ questions have at least two choices
// and a correct index in range; other kinds carry an answer key.
func validateQuestionSet(qs *QuestionSet) error {
	if qs == nil || len(qs.Questions) == 0 {
		return fmt.Errorf("question set is empty")
	}
	for i, q := range qs.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d has an empty prompt", i)
		}
		switch q.Kind {
		case QuestionMCQ:
			if len(q.Choices) < 2 {
				return fmt.Errorf("question %d has %d choices, need at least 2", i, len(q.Choices))
			}
			if q.CorrectChoice < 0 || q.CorrectChoice >= len(q.Choices) {
				return fmt.Errorf("question %d correct choice %d out of range", i, q.CorrectChoice)
			}
			for j, c := range q.Choices {
				if strings.TrimSpace(c) == "" {
					return fmt.Errorf("question %d choice %d is empty", i, j)
				}
			}
		case QuestionCoding, QuestionShortAnswer:
			if strings.TrimSpace(q.AnswerKey) == "" {
				return fmt.Errorf("question %d (%s) has no answer key", i, q.Kind)
			}
		default:
			return fmt.Errorf("question %d has unknown kind %q", i, q.Kind)
		}
	}
	return nil
}
