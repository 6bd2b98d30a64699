package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/store"
)

// Service starts quizzes over milestones and topics. A quiz is
// generated once per (scope, type) and reused across attempts; new
// sittings get fresh attempt rows, not fresh questions.
type Service struct {
	pipeline *contentgen.Pipeline
	quizzes  store.QuizRepo
	roadmaps store.RoadmapRepo
	log      *zap.SugaredLogger
}

func NewService(pipeline *contentgen.Pipeline, quizzes store.QuizRepo, roadmaps store.RoadmapRepo, log *zap.SugaredLogger) *Service {
	return &Service{pipeline: pipeline, quizzes: quizzes, roadmaps: roadmaps, log: log}
}

// StartResult is a started quiz sitting: the persisted quiz with its
// ordered questions, and the user's new attempt.
type StartResult struct {
	Quiz    *store.QuizDetail
	Attempt *store.Attempt
}

var quizTypes = map[contentgen.QuizType]bool{
	contentgen.QuizMCQOnly:    true,
	contentgen.QuizCodingOnly: true,
	contentgen.QuizMixed:      true,
}

// StartMilestoneQuiz starts a quiz covering all topics of a milestone.
func (s *Service) StartMilestoneQuiz(ctx context.Context, milestoneID int, userID string, quizType contentgen.QuizType) (*StartResult, error) {
	if err := validateStart(userID, quizType); err != nil {
		return nil, err
	}

	m, topics, err := s.roadmaps.GetMilestone(ctx, milestoneID, userID)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}

	return s.start(ctx, startParams{
		scope:     store.ScopeMilestone,
		scopeID:   milestoneID,
		userID:    userID,
		quizType:  quizType,
		subject:   displayName(m.Name),
		context:   "Topics covered: " + strings.Join(names, ", "),
		roadmapID: m.RoadmapID,
		questions: contentgen.MilestoneQuestionCount(quizType),
	})
}

// StartTopicQuiz starts a quiz over a single topic.
func (s *Service) StartTopicQuiz(ctx context.Context, topicID int, userID string, quizType contentgen.QuizType) (*StartResult, error) {
	if err := validateStart(userID, quizType); err != nil {
		return nil, err
	}

	t, m, err := s.roadmaps.GetTopic(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}

	return s.start(ctx, startParams{
		scope:     store.ScopeTopic,
		scopeID:   topicID,
		userID:    userID,
		quizType:  quizType,
		subject:   t.Name,
		context:   fmt.Sprintf("Part of %s, subject %s", displayName(m.Name), m.Subject),
		roadmapID: m.RoadmapID,
		questions: contentgen.TopicQuestionCount(quizType),
	})
}

// SubmitAttempt scores a completed sitting. Answers maps question ID to
// the chosen choice index for MCQs; non-MCQ questions are self-assessed
// and excluded from the score denominator.
func (s *Service) SubmitAttempt(ctx context.Context, attemptID int, userID string, answers map[int]int) (*store.Attempt, error) {
	attempt, err := s.quizzes.GetAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, store.ErrNotFound
	}

	detail, err := s.quizzes.GetQuiz(ctx, attempt.QuizID)
	if err != nil {
		return nil, err
	}

	var scored, correct int
	for _, q := range detail.Questions {
		if q.Kind != string(contentgen.QuestionMCQ) {
			continue
		}
		scored++
		if chosen, ok := answers[q.ID]; ok && chosen == q.CorrectChoice {
			correct++
		}
	}

	score := 0.0
	if scored > 0 {
		score = float64(correct) / float64(scored)
	}
	return s.quizzes.CompleteAttempt(ctx, attemptID, score)
}

type startParams struct {
	scope     string
	scopeID   int
	userID    string
	quizType  contentgen.QuizType
	subject   string
	context   string
	roadmapID int
	questions int
}

func (s *Service) start(ctx context.Context, p startParams) (*StartResult, error) {
	detail, err := s.quizzes.FindByScope(ctx, p.scope, p.scopeID, string(p.quizType))
	if err != nil {
		return nil, err
	}

	if detail == nil {
		header, err := s.roadmaps.GetHeader(ctx, p.roadmapID)
		if err != nil {
			return nil, err
		}

		qs := s.pipeline.GenerateQuiz(ctx, contentgen.QuizInput{
			Subject:    p.subject,
			Context:    p.context,
			SkillLevel: header.SkillLevel,
			Domain:     header.Domain,
			Type:       p.quizType,
			Questions:  p.questions,
		})

		detail, err = s.quizzes.CreateQuiz(ctx, quizSpec(p, qs))
		if err != nil {
			return nil, fmt.Errorf("persist quiz: %w", err)
		}
		s.log.Infow("quiz generated",
			"scope", p.scope,
			"scope_id", p.scopeID,
			"type", p.quizType,
			"questions", len(detail.Questions),
			"provenance", qs.Provenance)
	}

	attempt, err := s.quizzes.NextAttempt(ctx, detail.ID, p.userID)
	if err != nil {
		return nil, err
	}
	return &StartResult{Quiz: detail, Attempt: attempt}, nil
}

func quizSpec(p startParams, qs *contentgen.QuestionSet) store.QuizSpec {
	spec := store.QuizSpec{
		Scope:      p.scope,
		ScopeID:    p.scopeID,
		QuizType:   string(p.quizType),
		Provenance: string(qs.Provenance),
	}
	for _, q := range qs.Questions {
		spec.Questions = append(spec.Questions, store.QuestionSpec{
			Kind:          string(q.Kind),
			Prompt:        q.Prompt,
			Choices:       q.Choices,
			CorrectChoice: q.CorrectChoice,
			AnswerKey:     q.AnswerKey,
		})
	}
	return spec
}

// ErrInvalidInput marks request validation failures so transport layers
// can distinguish them from storage errors.
var ErrInvalidInput = errors.New("invalid input")

func validateStart(userID string, quizType contentgen.QuizType) error {
	if userID == "" {
		return fmt.Errorf("user id is required: %w", ErrInvalidInput)
	}
	if !quizTypes[quizType] {
		return fmt.Errorf("quiz type must be mcq_only, coding_only, or mixed: %w", ErrInvalidInput)
	}
	return nil
}

// displayName strips the "Milestone N: " numbering prefix so prompts
// and quiz subjects read naturally.
func displayName(name string) string {
	if i := strings.Index(name, ": "); i > 0 && strings.HasPrefix(name, "Milestone ") {
		return name[i+2:]
	}
	return name
}
