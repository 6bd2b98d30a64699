package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// LLMRequestEventData captures the data for a single model request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorKind    string
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded model request.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// EventQuery filters and paginates event reads.
type EventQuery struct {
	Limit       int       // max results (0 = unlimited)
	Since       time.Time // timestamp >= Since
	Provider    string    // exact provider name
	Purpose     string    // exact purpose label
	FailedOnly  bool      // only unsuccessful requests
	SuccessOnly bool      // only successful requests
}

// PurposeUsage aggregates token usage for one request purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// ModelUsage aggregates token usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to model request events.
type EventRepo interface {
	// AppendLLMRequest records a model API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events matching the query, newest first.
	QueryLLMEvents(ctx context.Context, q EventQuery) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil when it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates calls, tokens, and latency per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates calls and tokens per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// Roadmap is a persisted learning plan header.
type Roadmap struct {
	ID         int
	UserID     string
	Title      string
	Interests  []string
	SkillLevel string
	Duration   string
	Domain     string
	Status     string
	CreatedAt  time.Time
}

// MilestoneSpec is one milestone to persist, with its ordered topics.
type MilestoneSpec struct {
	Name              string
	Description       string
	EstimatedDuration string
	Subject           string
	Provenance        string
	Topics            []string
}

// Milestone is a persisted roadmap stage.
type Milestone struct {
	ID                int
	RoadmapID         int
	Position          int
	Name              string
	Description       string
	EstimatedDuration string
	Subject           string
	Provenance        string
}

// Topic is a persisted unit of study.
type Topic struct {
	ID          int
	MilestoneID int
	Position    int
	Name        string
}

// TopicProgress pairs a topic with one user's progress on it.
type TopicProgress struct {
	Topic
	Status string
}

// MilestoneDetail is a milestone with its ordered topics and the
// requesting user's progress on each.
type MilestoneDetail struct {
	Milestone
	Topics []TopicProgress
}

// RoadmapDetail is a full roadmap view for one user.
type RoadmapDetail struct {
	Roadmap
	Milestones []MilestoneDetail

	// CompletedTopics and TotalTopics summarize progress across the
	// whole roadmap.
	CompletedTopics int
	TotalTopics     int
}

// Progress is one user's state on one topic. StartedAt is set the
// first time the topic moves to in_progress and never overwritten;
// CompletedAt records the most recent completion.
type Progress struct {
	ID          int
	UserID      string
	TopicID     int
	Status      string
	StartedAt   *time.Time
	CompletedAt *time.Time
	UpdatedAt   time.Time
}

// RoadmapRepo manages roadmaps, their milestones and topics, and
// per-user progress rows.
type RoadmapRepo interface {
	// Create persists a roadmap header in pending status.
	Create(ctx context.Context, r Roadmap) (*Roadmap, error)

	// PersistPlan stores the generated milestones and topics for a
	// pending roadmap, seeds a progress row per topic for its owner,
	// and marks the roadmap ready. It runs in one transaction.
	PersistPlan(ctx context.Context, roadmapID int, userID string, plan []MilestoneSpec) error

	// Get loads a roadmap with milestones, topics, and the user's
	// progress. Returns ErrNotFound when the roadmap does not exist
	// or belongs to another user.
	Get(ctx context.Context, roadmapID int, userID string) (*RoadmapDetail, error)

	// GetHeader loads just the roadmap row.
	GetHeader(ctx context.Context, roadmapID int) (*Roadmap, error)

	// ListByUser returns the user's roadmap headers, newest first.
	ListByUser(ctx context.Context, userID string) ([]Roadmap, error)

	// UpdateProgress sets the user's status on a topic, creating the
	// progress row if the roadmap predates the user having one. The
	// topic must belong to one of the user's roadmaps; otherwise
	// ErrNotFound.
	UpdateProgress(ctx context.Context, userID string, topicID int, status string) (*Progress, error)

	// GetMilestone loads one milestone and its ordered topics. Returns
	// ErrNotFound unless the milestone's roadmap belongs to the user.
	GetMilestone(ctx context.Context, id int, userID string) (*Milestone, []Topic, error)

	// GetTopic loads one topic and its parent milestone. Returns
	// ErrNotFound unless the topic's roadmap belongs to the user.
	GetTopic(ctx context.Context, id int, userID string) (*Topic, *Milestone, error)
}

// QuestionSpec is one question to persist.
type QuestionSpec struct {
	Kind          string
	Prompt        string
	Choices       []string
	CorrectChoice int
	AnswerKey     string
}

// QuizSpec is a quiz to persist with its ordered questions.
type QuizSpec struct {
	Scope      string
	ScopeID    int
	QuizType   string
	Provenance string
	Questions  []QuestionSpec
}

// QuizQuestion is a persisted question with its ordered choices.
type QuizQuestion struct {
	ID            int
	Position      int
	Kind          string
	Prompt        string
	Choices       []string
	CorrectChoice int
	AnswerKey     string
}

// QuizDetail is a persisted quiz with its questions.
type QuizDetail struct {
	ID         int
	Scope      string
	ScopeID    int
	QuizType   string
	Provenance string
	Questions  []QuizQuestion
}

// Attempt is one user sitting of a quiz.
type Attempt struct {
	ID           int
	QuizID       int
	UserID       string
	AttemptIndex int
	Status       string
	Score        float64
}

// QuizRepo manages persisted quizzes and attempts.
type QuizRepo interface {
	// FindByScope returns the quiz for (scope, scopeID, quizType), or
	// nil when none exists yet.
	FindByScope(ctx context.Context, scope string, scopeID int, quizType string) (*QuizDetail, error)

	// GetQuiz loads a quiz with its questions by ID.
	GetQuiz(ctx context.Context, id int) (*QuizDetail, error)

	// GetAttempt loads one attempt by ID.
	GetAttempt(ctx context.Context, id int) (*Attempt, error)

	// CreateQuiz persists a quiz and its questions in one transaction.
	CreateQuiz(ctx context.Context, spec QuizSpec) (*QuizDetail, error)

	// NextAttempt creates the user's next attempt on a quiz.
	NextAttempt(ctx context.Context, quizID int, userID string) (*Attempt, error)

	// CompleteAttempt marks an attempt completed with its score.
	CompleteAttempt(ctx context.Context, attemptID int, score float64) (*Attempt, error)

	// GetQuestion loads one question with its choices.
	GetQuestion(ctx context.Context, id int) (*QuizQuestion, error)
}
