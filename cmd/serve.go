package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/rahulm/learnpath/internal/contentgen"
	"github.com/rahulm/learnpath/internal/httpapi"
	"github.com/rahulm/learnpath/internal/llm"
	"github.com/rahulm/learnpath/internal/logger"
	"github.com/rahulm/learnpath/internal/quiz"
	"github.com/rahulm/learnpath/internal/roadmap"
	"github.com/rahulm/learnpath/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides LEARNPATH_ADDR, default :8080)")
	serveCmd.Flags().String("mode", "", "Logger and router mode: dev or prod (overrides LEARNPATH_MODE)")
}

// runServe opens the store, builds the generation pipeline and services,
// and runs the HTTP server until interrupted.
func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mode := flagOrEnv(cmd, "mode", "LEARNPATH_MODE", "dev")
	log, err := logger.New(mode, os.Getenv("LEARNPATH_LOG_LEVEL"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	pipeline := contentgen.New(provider, contentgen.DefaultConfig(), log, nil, nil, nil)
	roadmaps := roadmap.NewService(pipeline, st.RoadmapRepo(), log)
	quizzes := quiz.NewService(pipeline, st.QuizRepo(), st.RoadmapRepo(), log)

	if mode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Roadmaps: httpapi.NewRoadmapHandler(roadmaps),
		Quizzes:  httpapi.NewQuizHandler(quizzes),
		Events:   httpapi.NewEventsHandler(st.EventRepo()),
		Log:      log,
	})

	addr := flagOrEnv(cmd, "addr", "LEARNPATH_ADDR", ":8080")
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Infow("starting HTTP server", "addr", addr, "db", dbPath, "provider", provider.ModelID())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// flagOrEnv resolves a string setting: flag first, then env var, then default.
func flagOrEnv(cmd *cobra.Command, flag, env, def string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}
