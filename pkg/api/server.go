// Package api serves the HTTP surface: unit submission and reads for
// learners, the admin observability read model, and health.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brianfields/deeplearn-sub002/pkg/config"
	"github.com/brianfields/deeplearn-sub002/pkg/database"
	"github.com/brianfields/deeplearn-sub002/pkg/queue"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	units    *services.UnitService
	lessons  *services.LessonService
	admin    *services.AdminService
	requests *services.LLMRequestService
	flowRuns *services.FlowRunService

	// workerPool cancels pod-local executions; nil in API-only deployments.
	workerPool *queue.WorkerPool

	// executor runs sync (background=false) submissions on the request
	// goroutine; nil disables sync submissions.
	executor queue.UnitExecutor

	podID string
	http  *http.Server
}

// NewServer creates the API server with its required services.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	units *services.UnitService,
	lessons *services.LessonService,
	admin *services.AdminService,
	requests *services.LLMRequestService,
	flowRuns *services.FlowRunService,
	podID string,
) *Server {
	return &Server{
		cfg:      cfg,
		dbClient: dbClient,
		units:    units,
		lessons:  lessons,
		admin:    admin,
		requests: requests,
		flowRuns: flowRuns,
		podID:    podID,
	}
}

// SetWorkerPool wires the pod's worker pool for cancellation and health.
func (s *Server) SetWorkerPool(pool *queue.WorkerPool) {
	s.workerPool = pool
}

// SetExecutor wires the unit executor used for sync submissions.
func (s *Server) SetExecutor(executor queue.UnitExecutor) {
	s.executor = executor
}

// Routes builds the gin engine with all routes and middleware registered.
func (s *Server) Routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	router.GET("/health", s.healthHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/units", s.submitUnitHandler)
		v1.GET("/units", s.listUnitsHandler)
		v1.GET("/units/:unit_id", s.getUnitHandler)
		v1.GET("/units/:unit_id/lessons/:lesson_id", s.getLessonHandler)
		v1.POST("/units/:unit_id/cancel", s.cancelUnitHandler)

		admin := v1.Group("/admin")
		{
			admin.GET("/flows", s.listFlowsHandler)
			admin.GET("/flows/:flow_run_id", s.getFlowHandler)
			admin.GET("/flows/:flow_run_id/steps/:step_run_id", s.getStepHandler)
			admin.POST("/flows/:flow_run_id/cancel", s.cancelFlowHandler)
			admin.GET("/llm-requests/:request_id", s.getLLMRequestHandler)
		}
	}

	return router
}

// Start serves HTTP on addr until Shutdown. Blocks.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests within ctx's deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
