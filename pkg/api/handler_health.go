package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brianfields/deeplearn-sub002/pkg/database"
	"github.com/brianfields/deeplearn-sub002/pkg/version"
)

// healthHandler reports overall service health. Database failure makes the
// service unhealthy (503); an unhealthy worker pool only degrades it, since
// the read API keeps working while another pod drains the queue.
func (s *Server) healthHandler(c *gin.Context) {
	resp := &HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
		Checks:  map[string]HealthCheck{},
	}

	if s.dbClient == nil {
		resp.Status = "unhealthy"
		resp.Checks["database"] = HealthCheck{Status: "unhealthy", Message: "database not configured"}
	} else {
		dbHealth, err := database.Health(c.Request.Context(), s.dbClient.DB())
		resp.Database = dbHealth
		if err != nil {
			resp.Status = "unhealthy"
			resp.Checks["database"] = HealthCheck{Status: "unhealthy", Message: err.Error()}
		} else {
			resp.Checks["database"] = HealthCheck{Status: "healthy"}
		}
	}

	if s.workerPool == nil {
		resp.Checks["worker_pool"] = HealthCheck{Status: "disabled", Message: "no worker pool on this pod"}
	} else {
		poolHealth := s.workerPool.Health()
		resp.WorkerPool = poolHealth
		if poolHealth.IsHealthy {
			resp.Checks["worker_pool"] = HealthCheck{Status: "healthy"}
		} else {
			if resp.Status == "healthy" {
				resp.Status = "degraded"
			}
			resp.Checks["worker_pool"] = HealthCheck{Status: "degraded", Message: poolHealth.DBError}
		}
	}

	code := http.StatusOK
	if resp.Status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
