package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/rahulm/learnpath/internal/quiz"
	"github.com/rahulm/learnpath/internal/store"
)

func roadmapJSON(r store.Roadmap) gin.H {
	return gin.H{
		"id":          r.ID,
		"title":       r.Title,
		"interests":   r.Interests,
		"skill_level": r.SkillLevel,
		"duration":    r.Duration,
		"domain":      r.Domain,
		"status":      r.Status,
		"created_at":  r.CreatedAt,
	}
}

func roadmapDetailJSON(d *store.RoadmapDetail) gin.H {
	milestones := make([]gin.H, 0, len(d.Milestones))
	for _, m := range d.Milestones {
		topics := make([]gin.H, 0, len(m.Topics))
		for _, t := range m.Topics {
			topics = append(topics, gin.H{
				"id":       t.ID,
				"position": t.Position,
				"name":     t.Name,
				"status":   t.Status,
			})
		}
		milestones = append(milestones, gin.H{
			"id":                 m.ID,
			"position":           m.Position,
			"name":               m.Name,
			"description":        m.Description,
			"estimated_duration": m.EstimatedDuration,
			"subject":            m.Subject,
			"topics":             topics,
		})
	}

	out := roadmapJSON(d.Roadmap)
	out["milestones"] = milestones
	out["total_topics"] = d.TotalTopics
	out["completed_topics"] = d.CompletedTopics
	return out
}

// startResultJSON shapes a started quiz sitting. Correct choices and
// answer keys stay server-side; the client only sees prompts and
// options.
func startResultJSON(res *quiz.StartResult) gin.H {
	questions := make([]gin.H, 0, len(res.Quiz.Questions))
	for _, q := range res.Quiz.Questions {
		item := gin.H{
			"id":       q.ID,
			"position": q.Position,
			"kind":     q.Kind,
			"prompt":   q.Prompt,
		}
		if len(q.Choices) > 0 {
			item["choices"] = q.Choices
		}
		questions = append(questions, item)
	}

	return gin.H{
		"quiz_id":       res.Quiz.ID,
		"quiz_type":     res.Quiz.QuizType,
		"attempt_id":    res.Attempt.ID,
		"attempt_index": res.Attempt.AttemptIndex,
		"questions":     questions,
	}
}
