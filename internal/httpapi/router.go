package httpapi

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RouterConfig wires handlers into the engine.
type RouterConfig struct {
	Roadmaps *RoadmapHandler
	Quizzes  *QuizHandler
	Events   *EventsHandler
	Log      *zap.SugaredLogger
}

// NewRouter builds the gin engine with all routes registered.
// Authentication happens upstream; handlers trust the X-User-ID header.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(cfg.Log))

	r.GET("/healthcheck", func(c *gin.Context) {
		c.String(200, "ok")
	})

	api := r.Group("/api")
	api.Use(RequireUser())
	{
		api.POST("/roadmaps", cfg.Roadmaps.Create)
		api.GET("/roadmaps", cfg.Roadmaps.List)
		api.GET("/roadmaps/:id", cfg.Roadmaps.Get)
		api.PATCH("/progress/:topicID", cfg.Roadmaps.UpdateProgress)

		api.POST("/milestones/:id/quiz", cfg.Quizzes.StartMilestoneQuiz)
		api.POST("/topics/:id/quiz", cfg.Quizzes.StartTopicQuiz)
		api.POST("/attempts/:id/submit", cfg.Quizzes.SubmitAttempt)

		if cfg.Events != nil {
			api.GET("/llm/events", cfg.Events.List)
		}
	}

	return r
}

// RequestID assigns each request a UUID, echoed in the X-Request-ID
// response header and attached to the gin context for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		log.Infow("request",
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString("request_id"))
	}
}

// RequireUser extracts the authenticated user from the X-User-ID header
// set by the upstream auth proxy. Requests without it are rejected.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
		if userID == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "missing X-User-ID header"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
