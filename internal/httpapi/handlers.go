package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/quiz"
	"github.com/rahulm/learnpath/internal/roadmap"
	"github.com/rahulm/learnpath/internal/store"
)

// RoadmapService is the slice of the roadmap service the handlers use.
type RoadmapService interface {
	Create(ctx context.Context, in roadmap.CreateInput) (*store.RoadmapDetail, error)
	Get(ctx context.Context, roadmapID int, userID string) (*store.RoadmapDetail, error)
	List(ctx context.Context, userID string) ([]store.Roadmap, error)
	UpdateProgress(ctx context.Context, userID string, topicID int, status string) (*store.Progress, error)
}

// QuizService is the slice of the quiz service the handlers use.
type QuizService interface {
	StartMilestoneQuiz(ctx context.Context, milestoneID int, userID string, quizType contentgen.QuizType) (*quiz.StartResult, error)
	StartTopicQuiz(ctx context.Context, topicID int, userID string, quizType contentgen.QuizType) (*quiz.StartResult, error)
	SubmitAttempt(ctx context.Context, attemptID int, userID string, answers map[int]int) (*store.Attempt, error)
}

// RoadmapHandler serves roadmap and progress endpoints.
type RoadmapHandler struct {
	svc RoadmapService
}

func NewRoadmapHandler(svc RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{svc: svc}
}

type createRoadmapRequest struct {
	Interests  []string `json:"interests" binding:"required"`
	SkillLevel string   `json:"skill_level" binding:"required"`
	Duration   string   `json:"duration"`
	Domain     string   `json:"domain"`
}

func (h *RoadmapHandler) Create(c *gin.Context) {
	var req createRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	detail, err := h.svc.Create(c.Request.Context(), roadmap.CreateInput{
		UserID:     c.GetString("user_id"),
		Interests:  req.Interests,
		SkillLevel: req.SkillLevel,
		Duration:   req.Duration,
		Domain:     req.Domain,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, roadmapDetailJSON(detail))
}

func (h *RoadmapHandler) Get(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id, c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, roadmapDetailJSON(detail))
}

func (h *RoadmapHandler) List(c *gin.Context) {
	roadmaps, err := h.svc.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]gin.H, 0, len(roadmaps))
	for _, r := range roadmaps {
		out = append(out, roadmapJSON(r))
	}
	c.JSON(http.StatusOK, gin.H{"roadmaps": out})
}

type updateProgressRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *RoadmapHandler) UpdateProgress(c *gin.Context) {
	topicID, err := pathInt(c, "topicID")
	if err != nil {
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.svc.UpdateProgress(c.Request.Context(), c.GetString("user_id"), topicID, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"topic_id":     p.TopicID,
		"status":       p.Status,
		"started_at":   p.StartedAt,
		"completed_at": p.CompletedAt,
		"updated_at":   p.UpdatedAt,
	})
}

// QuizHandler serves quiz endpoints.
type QuizHandler struct {
	svc QuizService
}

func NewQuizHandler(svc QuizService) *QuizHandler {
	return &QuizHandler{svc: svc}
}

type startQuizRequest struct {
	QuizType string `json:"quiz_type"`
}

func (h *QuizHandler) StartMilestoneQuiz(c *gin.Context) {
	h.startQuiz(c, func(ctx context.Context, id int, userID string, t contentgen.QuizType) (*quiz.StartResult, error) {
		return h.svc.StartMilestoneQuiz(ctx, id, userID, t)
	})
}

func (h *QuizHandler) StartTopicQuiz(c *gin.Context) {
	h.startQuiz(c, func(ctx context.Context, id int, userID string, t contentgen.QuizType) (*quiz.StartResult, error) {
		return h.svc.StartTopicQuiz(ctx, id, userID, t)
	})
}

func (h *QuizHandler) startQuiz(c *gin.Context, start func(context.Context, int, string, contentgen.QuizType) (*quiz.StartResult, error)) {
	id, err := pathInt(c, "id")
	if err != nil {
		return
	}

	// The body is optional; an empty one starts a mixed quiz.
	var req startQuizRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	quizType := contentgen.QuizType(req.QuizType)
	if req.QuizType == "" {
		quizType = contentgen.QuizMixed
	}

	res, err := start(c.Request.Context(), id, c.GetString("user_id"), quizType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, startResultJSON(res))
}

type submitAttemptRequest struct {
	// Answers maps question ID to the chosen choice index.
	Answers map[int]int `json:"answers"`
}

func (h *QuizHandler) SubmitAttempt(c *gin.Context) {
	id, err := pathInt(c, "id")
	if err != nil {
		return
	}

	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.svc.SubmitAttempt(c.Request.Context(), id, c.GetString("user_id"), req.Answers)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"attempt_id":    attempt.ID,
		"attempt_index": attempt.AttemptIndex,
		"status":        attempt.Status,
		"score":         attempt.Score,
	})
}

// EventsHandler exposes recorded model request events for operations.
type EventsHandler struct {
	repo store.EventRepo
}

func NewEventsHandler(repo store.EventRepo) *EventsHandler {
	return &EventsHandler{repo: repo}
}

func (h *EventsHandler) List(c *gin.Context) {
	q := store.EventQuery{
		Provider:   c.Query("provider"),
		Purpose:    c.Query("purpose"),
		FailedOnly: c.Query("failed") == "true",
	}
	if limit := c.Query("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		q.Limit = n
	}

	events, err := h.repo.QueryLLMEvents(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		out = append(out, gin.H{
			"timestamp":     e.Timestamp,
			"provider":      e.Provider,
			"model":         e.Model,
			"purpose":       e.Purpose,
			"success":       e.Success,
			"error_kind":    e.ErrorKind,
			"latency_ms":    e.LatencyMs,
			"input_tokens":  e.InputTokens,
			"output_tokens": e.OutputTokens,
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}

// pathInt parses an integer path parameter, writing a 400 on failure.
func pathInt(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a positive integer"})
		return 0, errors.New("bad path parameter")
	}
	return v, nil
}

// writeError maps service errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, roadmap.ErrInvalidInput), errors.Is(err, quiz.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
