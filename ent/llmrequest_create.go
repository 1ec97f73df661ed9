// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/pkg/models"
)

// LLMRequestCreate is the builder for creating a LLMRequest entity.
type LLMRequestCreate struct {
	config
	mutation *LLMRequestMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *LLMRequestCreate) SetUserID(v string) *LLMRequestCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableUserID(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMRequestCreate) SetProvider(v string) *LLMRequestCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMRequestCreate) SetModel(v string) *LLMRequestCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetAPIVariant sets the "api_variant" field.
func (_c *LLMRequestCreate) SetAPIVariant(v llmrequest.APIVariant) *LLMRequestCreate {
	_c.mutation.SetAPIVariant(v)
	return _c
}

// SetNillableAPIVariant sets the "api_variant" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableAPIVariant(v *llmrequest.APIVariant) *LLMRequestCreate {
	if v != nil {
		_c.SetAPIVariant(*v)
	}
	return _c
}

// SetMessages sets the "messages" field.
func (_c *LLMRequestCreate) SetMessages(v []models.ChatMessage) *LLMRequestCreate {
	_c.mutation.SetMessages(v)
	return _c
}

// SetRequestPayload sets the "request_payload" field.
func (_c *LLMRequestCreate) SetRequestPayload(v map[string]interface{}) *LLMRequestCreate {
	_c.mutation.SetRequestPayload(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *LLMRequestCreate) SetTemperature(v float64) *LLMRequestCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableTemperature(v *float64) *LLMRequestCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_c *LLMRequestCreate) SetMaxOutputTokens(v int) *LLMRequestCreate {
	_c.mutation.SetMaxOutputTokens(v)
	return _c
}

// SetNillableMaxOutputTokens sets the "max_output_tokens" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableMaxOutputTokens(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetMaxOutputTokens(*v)
	}
	return _c
}

// SetResponseContent sets the "response_content" field.
func (_c *LLMRequestCreate) SetResponseContent(v string) *LLMRequestCreate {
	_c.mutation.SetResponseContent(v)
	return _c
}

// SetNillableResponseContent sets the "response_content" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableResponseContent(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetResponseContent(*v)
	}
	return _c
}

// SetResponseRaw sets the "response_raw" field.
func (_c *LLMRequestCreate) SetResponseRaw(v map[string]interface{}) *LLMRequestCreate {
	_c.mutation.SetResponseRaw(v)
	return _c
}

// SetProviderResponseID sets the "provider_response_id" field.
func (_c *LLMRequestCreate) SetProviderResponseID(v string) *LLMRequestCreate {
	_c.mutation.SetProviderResponseID(v)
	return _c
}

// SetNillableProviderResponseID sets the "provider_response_id" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableProviderResponseID(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetProviderResponseID(*v)
	}
	return _c
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_c *LLMRequestCreate) SetSystemFingerprint(v string) *LLMRequestCreate {
	_c.mutation.SetSystemFingerprint(v)
	return _c
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableSystemFingerprint(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetSystemFingerprint(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *LLMRequestCreate) SetInputTokens(v int) *LLMRequestCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableInputTokens(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *LLMRequestCreate) SetOutputTokens(v int) *LLMRequestCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableOutputTokens(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *LLMRequestCreate) SetTokensUsed(v int) *LLMRequestCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableTokensUsed(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *LLMRequestCreate) SetCostEstimate(v float64) *LLMRequestCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableCostEstimate(v *float64) *LLMRequestCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *LLMRequestCreate) SetStatus(v llmrequest.Status) *LLMRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableStatus(v *llmrequest.Status) *LLMRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *LLMRequestCreate) SetErrorType(v string) *LLMRequestCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableErrorType(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMRequestCreate) SetErrorMessage(v string) *LLMRequestCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableErrorMessage(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryAttempt sets the "retry_attempt" field.
func (_c *LLMRequestCreate) SetRetryAttempt(v int) *LLMRequestCreate {
	_c.mutation.SetRetryAttempt(v)
	return _c
}

// SetNillableRetryAttempt sets the "retry_attempt" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableRetryAttempt(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetRetryAttempt(*v)
	}
	return _c
}

// SetCached sets the "cached" field.
func (_c *LLMRequestCreate) SetCached(v bool) *LLMRequestCreate {
	_c.mutation.SetCached(v)
	return _c
}

// SetNillableCached sets the "cached" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableCached(v *bool) *LLMRequestCreate {
	if v != nil {
		_c.SetCached(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *LLMRequestCreate) SetExecutionTimeMs(v int) *LLMRequestCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetNillableExecutionTimeMs sets the "execution_time_ms" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableExecutionTimeMs(v *int) *LLMRequestCreate {
	if v != nil {
		_c.SetExecutionTimeMs(*v)
	}
	return _c
}

// SetFlowRunID sets the "flow_run_id" field.
func (_c *LLMRequestCreate) SetFlowRunID(v string) *LLMRequestCreate {
	_c.mutation.SetFlowRunID(v)
	return _c
}

// SetNillableFlowRunID sets the "flow_run_id" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableFlowRunID(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetFlowRunID(*v)
	}
	return _c
}

// SetStepRunID sets the "step_run_id" field.
func (_c *LLMRequestCreate) SetStepRunID(v string) *LLMRequestCreate {
	_c.mutation.SetStepRunID(v)
	return _c
}

// SetNillableStepRunID sets the "step_run_id" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableStepRunID(v *string) *LLMRequestCreate {
	if v != nil {
		_c.SetStepRunID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMRequestCreate) SetCreatedAt(v time.Time) *LLMRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableCreatedAt(v *time.Time) *LLMRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResponseCreatedAt sets the "response_created_at" field.
func (_c *LLMRequestCreate) SetResponseCreatedAt(v time.Time) *LLMRequestCreate {
	_c.mutation.SetResponseCreatedAt(v)
	return _c
}

// SetNillableResponseCreatedAt sets the "response_created_at" field if the given value is not nil.
func (_c *LLMRequestCreate) SetNillableResponseCreatedAt(v *time.Time) *LLMRequestCreate {
	if v != nil {
		_c.SetResponseCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LLMRequestCreate) SetID(v string) *LLMRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LLMRequestMutation object of the builder.
func (_c *LLMRequestCreate) Mutation() *LLMRequestMutation {
	return _c.mutation
}

// Save creates the LLMRequest in the database.
func (_c *LLMRequestCreate) Save(ctx context.Context) (*LLMRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMRequestCreate) SaveX(ctx context.Context) *LLMRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LLMRequestCreate) defaults() {
	if _, ok := _c.mutation.APIVariant(); !ok {
		v := llmrequest.DefaultAPIVariant
		_c.mutation.SetAPIVariant(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := llmrequest.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := llmrequest.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := llmrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryAttempt(); !ok {
		v := llmrequest.DefaultRetryAttempt
		_c.mutation.SetRetryAttempt(v)
	}
	if _, ok := _c.mutation.Cached(); !ok {
		v := llmrequest.DefaultCached
		_c.mutation.SetCached(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := llmrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMRequestCreate) check() error {
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMRequest.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMRequest.model"`)}
	}
	if _, ok := _c.mutation.APIVariant(); !ok {
		return &ValidationError{Name: "api_variant", err: errors.New(`ent: missing required field "LLMRequest.api_variant"`)}
	}
	if v, ok := _c.mutation.APIVariant(); ok {
		if err := llmrequest.APIVariantValidator(v); err != nil {
			return &ValidationError{Name: "api_variant", err: fmt.Errorf(`ent: validator failed for field "LLMRequest.api_variant": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "LLMRequest.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "LLMRequest.cost_estimate"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LLMRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := llmrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryAttempt(); !ok {
		return &ValidationError{Name: "retry_attempt", err: errors.New(`ent: missing required field "LLMRequest.retry_attempt"`)}
	}
	if _, ok := _c.mutation.Cached(); !ok {
		return &ValidationError{Name: "cached", err: errors.New(`ent: missing required field "LLMRequest.cached"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMRequest.created_at"`)}
	}
	return nil
}

func (_c *LLMRequestCreate) sqlSave(ctx context.Context) (*LLMRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected LLMRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LLMRequestCreate) createSpec() (*LLMRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmrequest.Table, sqlgraph.NewFieldSpec(llmrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(llmrequest.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmrequest.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmrequest.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.APIVariant(); ok {
		_spec.SetField(llmrequest.FieldAPIVariant, field.TypeEnum, value)
		_node.APIVariant = value
	}
	if value, ok := _c.mutation.Messages(); ok {
		_spec.SetField(llmrequest.FieldMessages, field.TypeJSON, value)
		_node.Messages = value
	}
	if value, ok := _c.mutation.RequestPayload(); ok {
		_spec.SetField(llmrequest.FieldRequestPayload, field.TypeJSON, value)
		_node.RequestPayload = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(llmrequest.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.MaxOutputTokens(); ok {
		_spec.SetField(llmrequest.FieldMaxOutputTokens, field.TypeInt, value)
		_node.MaxOutputTokens = &value
	}
	if value, ok := _c.mutation.ResponseContent(); ok {
		_spec.SetField(llmrequest.FieldResponseContent, field.TypeString, value)
		_node.ResponseContent = &value
	}
	if value, ok := _c.mutation.ResponseRaw(); ok {
		_spec.SetField(llmrequest.FieldResponseRaw, field.TypeJSON, value)
		_node.ResponseRaw = value
	}
	if value, ok := _c.mutation.ProviderResponseID(); ok {
		_spec.SetField(llmrequest.FieldProviderResponseID, field.TypeString, value)
		_node.ProviderResponseID = &value
	}
	if value, ok := _c.mutation.SystemFingerprint(); ok {
		_spec.SetField(llmrequest.FieldSystemFingerprint, field.TypeString, value)
		_node.SystemFingerprint = &value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(llmrequest.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = &value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(llmrequest.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(llmrequest.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(llmrequest.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(llmrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(llmrequest.FieldErrorType, field.TypeString, value)
		_node.ErrorType = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmrequest.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryAttempt(); ok {
		_spec.SetField(llmrequest.FieldRetryAttempt, field.TypeInt, value)
		_node.RetryAttempt = value
	}
	if value, ok := _c.mutation.Cached(); ok {
		_spec.SetField(llmrequest.FieldCached, field.TypeBool, value)
		_node.Cached = value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(llmrequest.FieldExecutionTimeMs, field.TypeInt, value)
		_node.ExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.FlowRunID(); ok {
		_spec.SetField(llmrequest.FieldFlowRunID, field.TypeString, value)
		_node.FlowRunID = &value
	}
	if value, ok := _c.mutation.StepRunID(); ok {
		_spec.SetField(llmrequest.FieldStepRunID, field.TypeString, value)
		_node.StepRunID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResponseCreatedAt(); ok {
		_spec.SetField(llmrequest.FieldResponseCreatedAt, field.TypeTime, value)
		_node.ResponseCreatedAt = &value
	}
	return _node, _spec
}

// LLMRequestCreateBulk is the builder for creating many LLMRequest entities in bulk.
type LLMRequestCreateBulk struct {
	config
	err      error
	builders []*LLMRequestCreate
}

// Save creates the LLMRequest entities in the database.
func (_c *LLMRequestCreateBulk) Save(ctx context.Context) ([]*LLMRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LLMRequestCreateBulk) SaveX(ctx context.Context) []*LLMRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
