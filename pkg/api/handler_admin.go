package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
	"github.com/brianfields/deeplearn-sub002/pkg/services"
)

// ────────────────────────────────────────────────────────────
// GET /api/v1/admin/flows
// ────────────────────────────────────────────────────────────

func (s *Server) listFlowsHandler(c *gin.Context) {
	filters := services.FlowRunFilters{
		Status:   c.Query("status"),
		FlowName: c.Query("flow_name"),
	}

	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondValidationError(c, "page", "page must be an integer")
			return
		}
		filters.Page = n
	}
	if v := c.Query("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondValidationError(c, "page_size", "page_size must be an integer")
			return
		}
		filters.PageSize = n
	}

	page, err := s.admin.ListFlowRuns(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	ids := make([]string, len(page.Items))
	for i, fr := range page.Items {
		ids[i] = fr.ID
	}
	stepCounts, err := s.admin.StepCounts(c.Request.Context(), ids)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	items := make([]FlowSummary, len(page.Items))
	for i, fr := range page.Items {
		items[i] = toFlowSummary(fr, stepCounts[fr.ID])
	}
	c.JSON(http.StatusOK, &FlowListResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	})
}

// ────────────────────────────────────────────────────────────
// GET /api/v1/admin/flows/:flow_run_id
// ────────────────────────────────────────────────────────────

func (s *Server) getFlowHandler(c *gin.Context) {
	flowRunID := c.Param("flow_run_id")
	if flowRunID == "" {
		respondValidationError(c, "flow_run_id", "flow run id is required")
		return
	}

	fr, err := s.admin.GetFlowRunDetail(c.Request.Context(), flowRunID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlowDetail(fr))
}

// ────────────────────────────────────────────────────────────
// GET /api/v1/admin/flows/:flow_run_id/steps/:step_run_id
// ────────────────────────────────────────────────────────────

func (s *Server) getStepHandler(c *gin.Context) {
	flowRunID := c.Param("flow_run_id")
	stepRunID := c.Param("step_run_id")
	if flowRunID == "" || stepRunID == "" {
		respondValidationError(c, "step_run_id", "flow run id and step run id are required")
		return
	}

	detail, err := s.admin.GetStepRunDetail(c.Request.Context(), flowRunID, stepRunID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toStepDetail(detail))
}

// ────────────────────────────────────────────────────────────
// GET /api/v1/admin/llm-requests/:request_id
// ────────────────────────────────────────────────────────────

func (s *Server) getLLMRequestHandler(c *gin.Context) {
	requestID := c.Param("request_id")
	if requestID == "" {
		respondValidationError(c, "request_id", "request id is required")
		return
	}

	req, err := s.requests.GetRequest(c.Request.Context(), requestID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toLLMRequestDetail(req))
}

// ────────────────────────────────────────────────────────────
// POST /api/v1/admin/flows/:flow_run_id/cancel
// ────────────────────────────────────────────────────────────

// cancelFlowHandler cancels a flow run: pending runs in the database,
// running ones through this pod's worker pool.
func (s *Server) cancelFlowHandler(c *gin.Context) {
	flowRunID := c.Param("flow_run_id")
	if flowRunID == "" {
		respondValidationError(c, "flow_run_id", "flow run id is required")
		return
	}

	svcErr := s.flowRuns.CancelPendingFlowRun(c.Request.Context(), flowRunID)

	poolCancelled := false
	if s.workerPool != nil {
		poolCancelled = s.workerPool.CancelFlow(flowRunID)
	}

	if svcErr != nil && !poolCancelled {
		respondServiceError(c, svcErr)
		return
	}

	slog.Info("Flow cancellation requested", "flow_run_id", flowRunID, "pool_cancelled", poolCancelled)
	c.JSON(http.StatusOK, &CancelResponse{
		FlowRunID: flowRunID,
		Message:   "Flow cancellation requested",
	})
}

// ────────────────────────────────────────────────────────────
// Response shapes
// ────────────────────────────────────────────────────────────

// FlowSummary is one flow run in the admin listing: roll-ups only, no
// payload columns.
type FlowSummary struct {
	ID              string     `json:"id"`
	FlowName        string     `json:"flow_name"`
	Status          string     `json:"status"`
	ExecutionMode   string     `json:"execution_mode"`
	StepCount       int        `json:"step_count"`
	TotalTokens     int        `json:"total_tokens"`
	TotalCost       float64    `json:"total_cost"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ExecutionTimeMs *int       `json:"execution_time_ms,omitempty"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
}

// FlowListResponse is one page of flow runs.
type FlowListResponse struct {
	Items      []FlowSummary `json:"items"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalCount int           `json:"total_count"`
	TotalPages int           `json:"total_pages"`
}

// FlowDetail is the full flow run row plus its steps in execution order.
// Step payloads stay behind the step detail endpoint.
type FlowDetail struct {
	ID                 string         `json:"id"`
	FlowName           string         `json:"flow_name"`
	ExecutionMode      string         `json:"execution_mode"`
	UserID             *string        `json:"user_id,omitempty"`
	Status             string         `json:"status"`
	Inputs             map[string]any `json:"inputs,omitempty"`
	Outputs            map[string]any `json:"outputs,omitempty"`
	FlowMetadata       map[string]any `json:"flow_metadata,omitempty"`
	CurrentStep        *string        `json:"current_step,omitempty"`
	StepProgress       int            `json:"step_progress"`
	TotalSteps         int            `json:"total_steps"`
	ProgressPercentage float64        `json:"progress_percentage"`
	ErrorMessage       *string        `json:"error_message,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	StartedAt          *time.Time     `json:"started_at,omitempty"`
	CompletedAt        *time.Time     `json:"completed_at,omitempty"`
	LastHeartbeat      *time.Time     `json:"last_heartbeat,omitempty"`
	ExecutionTimeMs    *int           `json:"execution_time_ms,omitempty"`
	TotalTokens        int            `json:"total_tokens"`
	TotalCost          float64        `json:"total_cost"`
	Steps              []StepSummary  `json:"steps"`
}

// StepSummary is one step inside a flow detail, without payloads.
type StepSummary struct {
	ID              string     `json:"id"`
	StepName        string     `json:"step_name"`
	StepOrder       int        `json:"step_order"`
	Status          string     `json:"status"`
	TokensUsed      int        `json:"tokens_used"`
	CostEstimate    float64    `json:"cost_estimate"`
	ExecutionTimeMs *int       `json:"execution_time_ms,omitempty"`
	ErrorMessage    *string    `json:"error_message,omitempty"`
	LLMRequestID    *string    `json:"llm_request_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// StepDetail is the full step row with payloads, its LLM request summaries,
// and the owning flow's name for breadcrumbs.
type StepDetail struct {
	ID              string              `json:"id"`
	FlowRunID       string              `json:"flow_run_id"`
	FlowName        string              `json:"flow_name"`
	StepName        string              `json:"step_name"`
	StepOrder       int                 `json:"step_order"`
	Status          string              `json:"status"`
	Inputs          map[string]any      `json:"inputs,omitempty"`
	Outputs         map[string]any      `json:"outputs,omitempty"`
	StepMetadata    map[string]any      `json:"step_metadata,omitempty"`
	TokensUsed      int                 `json:"tokens_used"`
	CostEstimate    float64             `json:"cost_estimate"`
	ExecutionTimeMs *int                `json:"execution_time_ms,omitempty"`
	ErrorMessage    *string             `json:"error_message,omitempty"`
	LLMRequestID    *string             `json:"llm_request_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	LLMRequests     []LLMRequestSummary `json:"llm_requests"`
}

// LLMRequestSummary is one audited provider call, without payloads.
type LLMRequestSummary struct {
	ID              string    `json:"id"`
	Provider        string    `json:"provider"`
	Model           string    `json:"model"`
	APIVariant      string    `json:"api_variant"`
	Status          string    `json:"status"`
	TokensUsed      int       `json:"tokens_used"`
	CostEstimate    float64   `json:"cost_estimate"`
	RetryAttempt    int       `json:"retry_attempt"`
	Cached          bool      `json:"cached"`
	ErrorType       *string   `json:"error_type,omitempty"`
	ExecutionTimeMs *int      `json:"execution_time_ms,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// LLMRequestDetail is the full audit row, replayable payloads included.
type LLMRequestDetail struct {
	ID                 string               `json:"id"`
	UserID             *string              `json:"user_id,omitempty"`
	Provider           string               `json:"provider"`
	Model              string               `json:"model"`
	APIVariant         string               `json:"api_variant"`
	Messages           []models.ChatMessage `json:"messages,omitempty"`
	RequestPayload     map[string]any       `json:"request_payload,omitempty"`
	Temperature        *float64             `json:"temperature,omitempty"`
	MaxOutputTokens    *int                 `json:"max_output_tokens,omitempty"`
	ResponseContent    *string              `json:"response_content,omitempty"`
	ResponseRaw        map[string]any       `json:"response_raw,omitempty"`
	ProviderResponseID *string              `json:"provider_response_id,omitempty"`
	SystemFingerprint  *string              `json:"system_fingerprint,omitempty"`
	InputTokens        *int                 `json:"input_tokens,omitempty"`
	OutputTokens       *int                 `json:"output_tokens,omitempty"`
	TokensUsed         int                  `json:"tokens_used"`
	CostEstimate       float64              `json:"cost_estimate"`
	Status             string               `json:"status"`
	ErrorType          *string              `json:"error_type,omitempty"`
	ErrorMessage       *string              `json:"error_message,omitempty"`
	RetryAttempt       int                  `json:"retry_attempt"`
	Cached             bool                 `json:"cached"`
	ExecutionTimeMs    *int                 `json:"execution_time_ms,omitempty"`
	FlowRunID          *string              `json:"flow_run_id,omitempty"`
	StepRunID          *string              `json:"step_run_id,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	ResponseCreatedAt  *time.Time           `json:"response_created_at,omitempty"`
}

func toFlowSummary(fr *ent.FlowRun, stepCount int) FlowSummary {
	return FlowSummary{
		ID:              fr.ID,
		FlowName:        fr.FlowName,
		Status:          string(fr.Status),
		ExecutionMode:   string(fr.ExecutionMode),
		StepCount:       stepCount,
		TotalTokens:     fr.TotalTokens,
		TotalCost:       fr.TotalCost,
		CreatedAt:       fr.CreatedAt,
		CompletedAt:     fr.CompletedAt,
		ExecutionTimeMs: fr.ExecutionTimeMs,
		ErrorMessage:    fr.ErrorMessage,
	}
}

func toFlowDetail(fr *ent.FlowRun) *FlowDetail {
	steps := make([]StepSummary, len(fr.Edges.Steps))
	for i, step := range fr.Edges.Steps {
		steps[i] = toStepSummary(step)
	}
	return &FlowDetail{
		ID:                 fr.ID,
		FlowName:           fr.FlowName,
		ExecutionMode:      string(fr.ExecutionMode),
		UserID:             fr.UserID,
		Status:             string(fr.Status),
		Inputs:             fr.Inputs,
		Outputs:            fr.Outputs,
		FlowMetadata:       fr.FlowMetadata,
		CurrentStep:        fr.CurrentStep,
		StepProgress:       fr.StepProgress,
		TotalSteps:         fr.TotalSteps,
		ProgressPercentage: fr.ProgressPercentage,
		ErrorMessage:       fr.ErrorMessage,
		CreatedAt:          fr.CreatedAt,
		StartedAt:          fr.StartedAt,
		CompletedAt:        fr.CompletedAt,
		LastHeartbeat:      fr.LastHeartbeat,
		ExecutionTimeMs:    fr.ExecutionTimeMs,
		TotalTokens:        fr.TotalTokens,
		TotalCost:          fr.TotalCost,
		Steps:              steps,
	}
}

func toStepSummary(step *ent.FlowStepRun) StepSummary {
	return StepSummary{
		ID:              step.ID,
		StepName:        step.StepName,
		StepOrder:       step.StepOrder,
		Status:          string(step.Status),
		TokensUsed:      step.TokensUsed,
		CostEstimate:    step.CostEstimate,
		ExecutionTimeMs: step.ExecutionTimeMs,
		ErrorMessage:    step.ErrorMessage,
		LLMRequestID:    step.LlmRequestID,
		CreatedAt:       step.CreatedAt,
		CompletedAt:     step.CompletedAt,
	}
}

func toStepDetail(detail *services.StepRunDetail) *StepDetail {
	step := detail.Step
	requests := make([]LLMRequestSummary, len(detail.Requests))
	for i, req := range detail.Requests {
		requests[i] = toLLMRequestSummary(req)
	}
	return &StepDetail{
		ID:              step.ID,
		FlowRunID:       step.FlowRunID,
		FlowName:        detail.FlowName,
		StepName:        step.StepName,
		StepOrder:       step.StepOrder,
		Status:          string(step.Status),
		Inputs:          step.Inputs,
		Outputs:         step.Outputs,
		StepMetadata:    step.StepMetadata,
		TokensUsed:      step.TokensUsed,
		CostEstimate:    step.CostEstimate,
		ExecutionTimeMs: step.ExecutionTimeMs,
		ErrorMessage:    step.ErrorMessage,
		LLMRequestID:    step.LlmRequestID,
		CreatedAt:       step.CreatedAt,
		CompletedAt:     step.CompletedAt,
		LLMRequests:     requests,
	}
}

func toLLMRequestSummary(req *ent.LLMRequest) LLMRequestSummary {
	return LLMRequestSummary{
		ID:              req.ID,
		Provider:        req.Provider,
		Model:           req.Model,
		APIVariant:      string(req.APIVariant),
		Status:          string(req.Status),
		TokensUsed:      req.TokensUsed,
		CostEstimate:    req.CostEstimate,
		RetryAttempt:    req.RetryAttempt,
		Cached:          req.Cached,
		ErrorType:       req.ErrorType,
		ExecutionTimeMs: req.ExecutionTimeMs,
		CreatedAt:       req.CreatedAt,
	}
}

func toLLMRequestDetail(req *ent.LLMRequest) *LLMRequestDetail {
	return &LLMRequestDetail{
		ID:                 req.ID,
		UserID:             req.UserID,
		Provider:           req.Provider,
		Model:              req.Model,
		APIVariant:         string(req.APIVariant),
		Messages:           req.Messages,
		RequestPayload:     req.RequestPayload,
		Temperature:        req.Temperature,
		MaxOutputTokens:    req.MaxOutputTokens,
		ResponseContent:    req.ResponseContent,
		ResponseRaw:        req.ResponseRaw,
		ProviderResponseID: req.ProviderResponseID,
		SystemFingerprint:  req.SystemFingerprint,
		InputTokens:        req.InputTokens,
		OutputTokens:       req.OutputTokens,
		TokensUsed:         req.TokensUsed,
		CostEstimate:       req.CostEstimate,
		Status:             string(req.Status),
		ErrorType:          req.ErrorType,
		ErrorMessage:       req.ErrorMessage,
		RetryAttempt:       req.RetryAttempt,
		Cached:             req.Cached,
		ExecutionTimeMs:    req.ExecutionTimeMs,
		FlowRunID:          req.FlowRunID,
		StepRunID:          req.StepRunID,
		CreatedAt:          req.CreatedAt,
		ResponseCreatedAt:  req.ResponseCreatedAt,
	}
}
