package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/store"
)

// Service creates and serves roadmaps. Generation is total, so roadmap
// creation fails only on validation or persistence errors, never
// because the model misbehaved.
type Service struct {
	pipeline *contentgen.Pipeline
	repo     store.RoadmapRepo
	log      *zap.SugaredLogger
}

func NewService(pipeline *contentgen.Pipeline, repo store.RoadmapRepo, log *zap.SugaredLogger) *Service {
	return &Service{pipeline: pipeline, repo: repo, log: log}
}

// CreateInput is a roadmap creation request.
type CreateInput struct {
	UserID     string
	Interests  []string
	SkillLevel string
	Duration   string
	Domain     string
}

// ErrInvalidInput marks request validation failures so transport layers
// can distinguish them from storage errors.
var ErrInvalidInput = errors.New("invalid input")

var skillLevels = map[string]bool{
	"basic":        true,
	"intermediate": true,
	"advanced":     true,
}

func (in *CreateInput) validate() error {
	if in.UserID == "" {
		return fmt.Errorf("user id is required: %w", ErrInvalidInput)
	}
	if len(in.Interests) == 0 {
		return fmt.Errorf("at least one interest is required: %w", ErrInvalidInput)
	}
	for i, s := range in.Interests {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("interest %d is empty: %w", i, ErrInvalidInput)
		}
	}
	if !skillLevels[in.SkillLevel] {
		return fmt.Errorf("skill level must be basic, intermediate, or advanced: %w", ErrInvalidInput)
	}
	return nil
}

// Create generates and persists a roadmap covering every interest.
// Milestones keep the interest order of the request; numbering is
// continuous across interests.
func (s *Service) Create(ctx context.Context, in CreateInput) (*store.RoadmapDetail, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	header, err := s.repo.Create(ctx, store.Roadmap{
		UserID:     in.UserID,
		Title:      synthesizeTitle(in.Interests, in.SkillLevel),
		Interests:  in.Interests,
		SkillLevel: in.SkillLevel,
		Duration:   in.Duration,
		Domain:     in.Domain,
	})
	if err != nil {
		return nil, err
	}

	inputs := make([]contentgen.CurriculumInput, 0, len(in.Interests))
	for _, interest := range in.Interests {
		inputs = append(inputs, contentgen.CurriculumInput{
			Subject:      interest,
			SkillLevel:   in.SkillLevel,
			DurationHint: in.Duration,
			Domain:       in.Domain,
		})
	}
	curricula := s.pipeline.GenerateCurricula(ctx, inputs)

	plan := flattenPlan(curricula)
	if err := s.repo.PersistPlan(ctx, header.ID, in.UserID, plan); err != nil {
		return nil, fmt.Errorf("persist roadmap %d: %w", header.ID, err)
	}

	s.log.Infow("roadmap created",
		"roadmap_id", header.ID,
		"interests", len(in.Interests),
		"milestones", len(plan))
	return s.repo.Get(ctx, header.ID, in.UserID)
}

// Get returns a roadmap with the user's progress.
func (s *Service) Get(ctx context.Context, roadmapID int, userID string) (*store.RoadmapDetail, error) {
	return s.repo.Get(ctx, roadmapID, userID)
}

// List returns the user's roadmap headers, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]store.Roadmap, error) {
	return s.repo.ListByUser(ctx, userID)
}

var progressStatuses = map[string]bool{
	store.ProgressNotStarted: true,
	store.ProgressInProgress: true,
	store.ProgressCompleted:  true,
}

// UpdateProgress sets the user's status on a topic.
func (s *Service) UpdateProgress(ctx context.Context, userID string, topicID int, status string) (*store.Progress, error) {
	if !progressStatuses[status] {
		return nil, fmt.Errorf("status must be not_started, in_progress, or completed: %w", ErrInvalidInput)
	}
	return s.repo.UpdateProgress(ctx, userID, topicID, status)
}

// flattenPlan turns per-interest curricula into one ordered milestone
// list with continuous "Milestone N" numbering.
func flattenPlan(curricula []*contentgen.Curriculum) []store.MilestoneSpec {
	var plan []store.MilestoneSpec
	n := 0
	for _, c := range curricula {
		for _, m := range c.Milestones {
			n++
			plan = append(plan, store.MilestoneSpec{
				Name:              fmt.Sprintf("Milestone %d: %s", n, m.Name),
				Description:       m.Description,
				EstimatedDuration: m.EstimatedDuration,
				Subject:           c.Subject,
				Provenance:        string(c.Provenance),
				Topics:            m.Topics,
			})
		}
	}
	return plan
}

func synthesizeTitle(interests []string, skillLevel string) string {
	level := capitalize(skillLevel)
	if len(interests) == 1 {
		return fmt.Sprintf("%s %s Mastery Track", level, interests[0])
	}
	return fmt.Sprintf("%s Multi-Tech Learning Path", level)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
