package services

import (
	"context"
	"fmt"

	"github.com/brianfields/deeplearn-sub002/ent"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
)

// Admin pagination bounds.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AdminService is the read model behind the admin observability API: flow
// runs, their steps, and the LLM request audit trail.
type AdminService struct {
	client *ent.Client
}

// NewAdminService creates a new AdminService
func NewAdminService(client *ent.Client) *AdminService {
	return &AdminService{client: client}
}

// FlowRunFilters contains filtering and pagination options for listing flows.
type FlowRunFilters struct {
	Page     int
	PageSize int
	Status   string
	FlowName string
}

// FlowRunPage is one page of flow runs plus pagination totals.
type FlowRunPage struct {
	Items      []*ent.FlowRun
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// StepRunDetail is a full step row with its audited LLM requests and the
// owning flow's name.
type StepRunDetail struct {
	Step     *ent.FlowStepRun
	FlowName string
	Requests []*ent.LLMRequest
}

// ListFlowRuns lists flow runs newest first with page-based pagination.
func (s *AdminService) ListFlowRuns(ctx context.Context, filters FlowRunFilters) (*FlowRunPage, error) {
	page := filters.Page
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return nil, NewValidationError("page", "must be at least 1")
	}
	pageSize := filters.PageSize
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return nil, NewValidationError("page_size", fmt.Sprintf("must be between 1 and %d", MaxPageSize))
	}

	query := s.client.FlowRun.Query()
	if filters.Status != "" {
		status := flowrun.Status(filters.Status)
		if err := flowrun.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(flowrun.StatusEQ(status))
	}
	if filters.FlowName != "" {
		query = query.Where(flowrun.FlowNameEQ(filters.FlowName))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count flow runs: %w", err)
	}

	items, err := query.
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order(ent.Desc(flowrun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flow runs: %w", err)
	}

	totalPages := (totalCount + pageSize - 1) / pageSize

	return &FlowRunPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// StepCounts returns the number of step rows recorded per flow run, for the
// given flow run ids. Flows with no steps yet are absent from the map.
func (s *AdminService) StepCounts(ctx context.Context, flowRunIDs []string) (map[string]int, error) {
	if len(flowRunIDs) == 0 {
		return map[string]int{}, nil
	}

	var rows []struct {
		FlowRunID string `json:"flow_run_id"`
		Count     int    `json:"count"`
	}
	err := s.client.FlowStepRun.Query().
		Where(flowsteprun.FlowRunIDIn(flowRunIDs...)).
		GroupBy(flowsteprun.FieldFlowRunID).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count steps per flow: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.FlowRunID] = row.Count
	}
	return counts, nil
}

// GetFlowRunDetail retrieves a flow run with its steps in execution order.
func (s *AdminService) GetFlowRunDetail(ctx context.Context, flowRunID string) (*ent.FlowRun, error) {
	fr, err := s.client.FlowRun.Query().
		Where(flowrun.IDEQ(flowRunID)).
		WithSteps(func(q *ent.FlowStepRunQuery) {
			q.Order(ent.Asc(flowsteprun.FieldStepOrder))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flow run detail: %w", err)
	}
	return fr, nil
}

// GetStepRunDetail retrieves one step of a flow with full payloads and its
// LLM request summaries.
func (s *AdminService) GetStepRunDetail(ctx context.Context, flowRunID, stepRunID string) (*StepRunDetail, error) {
	step, err := s.client.FlowStepRun.Query().
		Where(
			flowsteprun.IDEQ(stepRunID),
			flowsteprun.FlowRunIDEQ(flowRunID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get step run: %w", err)
	}

	fr, err := s.client.FlowRun.Get(ctx, flowRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get flow run: %w", err)
	}

	requests, err := s.client.LLMRequest.Query().
		Where(llmrequest.StepRunIDEQ(stepRunID)).
		Order(ent.Asc(llmrequest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step llm requests: %w", err)
	}

	return &StepRunDetail{
		Step:     step,
		FlowName: fr.FlowName,
		Requests: requests,
	}, nil
}
