package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/quiz"
	"github.com/rahulm/learnpath/internal/roadmap"
	"github.com/rahulm/learnpath/internal/store"
)

type stubRoadmaps struct {
	detail *store.RoadmapDetail
	err    error
}

func (s *stubRoadmaps) Create(_ context.Context, in roadmap.CreateInput) (*store.RoadmapDetail, error) {
	if len(in.Interests) == 0 {
		return nil, roadmap.ErrInvalidInput
	}
	return s.detail, s.err
}

func (s *stubRoadmaps) Get(context.Context, int, string) (*store.RoadmapDetail, error) {
	return s.detail, s.err
}

func (s *stubRoadmaps) List(context.Context, string) ([]store.Roadmap, error) {
	if s.detail == nil {
		return nil, s.err
	}
	return []store.Roadmap{s.detail.Roadmap}, s.err
}

func (s *stubRoadmaps) UpdateProgress(_ context.Context, _ string, topicID int, status string) (*store.Progress, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &store.Progress{TopicID: topicID, Status: status}, nil
}

type stubQuizzes struct {
	result *quiz.StartResult
	err    error
}

func (s *stubQuizzes) StartMilestoneQuiz(context.Context, int, string, contentgen.QuizType) (*quiz.StartResult, error) {
	return s.result, s.err
}

func (s *stubQuizzes) StartTopicQuiz(context.Context, int, string, contentgen.QuizType) (*quiz.StartResult, error) {
	return s.result, s.err
}

func (s *stubQuizzes) SubmitAttempt(_ context.Context, attemptID int, _ string, _ map[int]int) (*store.Attempt, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &store.Attempt{ID: attemptID, AttemptIndex: 1, Status: store.AttemptCompleted, Score: 1}, nil
}

type stubEvents struct {
	events []store.LLMEvent
}

func (s *stubEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (s *stubEvents) QueryLLMEvents(_ context.Context, q store.EventQuery) ([]store.LLMEvent, error) {
	out := s.events
	if q.Limit > 0 && q.Limit < len(out) {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *stubEvents) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (s *stubEvents) LLMUsageByPurpose(context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (s *stubEvents) LLMUsageByModel(context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func testRouter(r *stubRoadmaps, q *stubQuizzes) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterConfig{
		Roadmaps: NewRoadmapHandler(r),
		Quizzes:  NewQuizHandler(q),
		Events:   NewEventsHandler(&stubEvents{events: []store.LLMEvent{{}, {}}}),
	})
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string, asUser bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if asUser {
		req.Header.Set("X-User-ID", "user-1")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleDetail() *store.RoadmapDetail {
	return &store.RoadmapDetail{
		Roadmap: store.Roadmap{
			ID:         1,
			UserID:     "user-1",
			Title:      "Basic Go Mastery Track",
			Interests:  []string{"Go"},
			SkillLevel: "basic",
			Status:     store.RoadmapReady,
		},
		Milestones: []store.MilestoneDetail{{
			Milestone: store.Milestone{ID: 10, Position: 1, Name: "Milestone 1: Basics", Subject: "Go"},
			Topics: []store.TopicProgress{{
				Topic:  store.Topic{ID: 100, Position: 1, Name: "Syntax"},
				Status: store.ProgressNotStarted,
			}},
		}},
		TotalTopics: 1,
	}
}

func TestHealthcheck(t *testing.T) {
	router := testRouter(&stubRoadmaps{}, &stubQuizzes{})
	w := doRequest(t, router, http.MethodGet, "/healthcheck", "", false)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMissingUserHeaderIsRejected(t *testing.T) {
	router := testRouter(&stubRoadmaps{detail: sampleDetail()}, &stubQuizzes{})
	w := doRequest(t, router, http.MethodGet, "/api/roadmaps/1", "", false)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRoadmap(t *testing.T) {
	router := testRouter(&stubRoadmaps{detail: sampleDetail()}, &stubQuizzes{})

	body := `{"interests": ["Go"], "skill_level": "basic"}`
	w := doRequest(t, router, http.MethodPost, "/api/roadmaps", body, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Basic Go Mastery Track", resp["title"])
	assert.Equal(t, store.RoadmapReady, resp["status"])
}

func TestCreateRoadmap_BadBody(t *testing.T) {
	router := testRouter(&stubRoadmaps{detail: sampleDetail()}, &stubQuizzes{})

	w := doRequest(t, router, http.MethodPost, "/api/roadmaps", `{"skill_level": "basic"}`, true)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoadmap_NotFound(t *testing.T) {
	router := testRouter(&stubRoadmaps{err: store.ErrNotFound}, &stubQuizzes{})

	w := doRequest(t, router, http.MethodGet, "/api/roadmaps/42", "", true)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRoadmap_BadID(t *testing.T) {
	router := testRouter(&stubRoadmaps{detail: sampleDetail()}, &stubQuizzes{})

	w := doRequest(t, router, http.MethodGet, "/api/roadmaps/abc", "", true)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProgress(t *testing.T) {
	router := testRouter(&stubRoadmaps{detail: sampleDetail()}, &stubQuizzes{})

	w := doRequest(t, router, http.MethodPatch, "/api/progress/100", `{"status": "completed"}`, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, store.ProgressCompleted, resp["status"])
}

func TestStartQuiz_DoesNotLeakAnswers(t *testing.T) {
	result := &quiz.StartResult{
		Quiz: &store.QuizDetail{
			ID:       5,
			QuizType: "mixed",
			Questions: []store.QuizQuestion{
				{ID: 50, Position: 1, Kind: "mcq", Prompt: "Pick one.", Choices: []string{"a", "b"}, CorrectChoice: 1},
				{ID: 51, Position: 2, Kind: "short_answer", Prompt: "Explain.", AnswerKey: "the-secret-answer"},
			},
		},
		Attempt: &store.Attempt{ID: 7, AttemptIndex: 1},
	}
	router := testRouter(&stubRoadmaps{}, &stubQuizzes{result: result})

	w := doRequest(t, router, http.MethodPost, "/api/milestones/10/quiz", `{"quiz_type": "mixed"}`, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := w.Body.String()
	assert.NotContains(t, body, "the-secret-answer")
	assert.NotContains(t, body, "correct_choice")
	assert.Contains(t, body, "Pick one.")
}

func TestSubmitAttempt(t *testing.T) {
	router := testRouter(&stubRoadmaps{}, &stubQuizzes{})

	w := doRequest(t, router, http.MethodPost, "/api/attempts/7/submit", `{"answers": {"50": 1}}`, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, store.AttemptCompleted, resp["status"])
}

func TestListEvents(t *testing.T) {
	router := testRouter(&stubRoadmaps{}, &stubQuizzes{})

	w := doRequest(t, router, http.MethodGet, "/api/llm/events?limit=1", "", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Events []map[string]any `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Events, 1)
}

func TestRequestIDHeader(t *testing.T) {
	router := testRouter(&stubRoadmaps{}, &stubQuizzes{})

	w := doRequest(t, router, http.MethodGet, "/healthcheck", "", false)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
