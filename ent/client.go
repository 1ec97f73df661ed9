// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/brianfields/deeplearn-sub002/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brianfields/deeplearn-sub002/ent/audioasset"
	"github.com/brianfields/deeplearn-sub002/ent/flowrun"
	"github.com/brianfields/deeplearn-sub002/ent/flowsteprun"
	"github.com/brianfields/deeplearn-sub002/ent/imageasset"
	"github.com/brianfields/deeplearn-sub002/ent/lesson"
	"github.com/brianfields/deeplearn-sub002/ent/llmrequest"
	"github.com/brianfields/deeplearn-sub002/ent/unit"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AudioAsset is the client for interacting with the AudioAsset builders.
	AudioAsset *AudioAssetClient
	// FlowRun is the client for interacting with the FlowRun builders.
	FlowRun *FlowRunClient
	// FlowStepRun is the client for interacting with the FlowStepRun builders.
	FlowStepRun *FlowStepRunClient
	// ImageAsset is the client for interacting with the ImageAsset builders.
	ImageAsset *ImageAssetClient
	// LLMRequest is the client for interacting with the LLMRequest builders.
	LLMRequest *LLMRequestClient
	// Lesson is the client for interacting with the Lesson builders.
	Lesson *LessonClient
	// Unit is the client for interacting with the Unit builders.
	Unit *UnitClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AudioAsset = NewAudioAssetClient(c.config)
	c.FlowRun = NewFlowRunClient(c.config)
	c.FlowStepRun = NewFlowStepRunClient(c.config)
	c.ImageAsset = NewImageAssetClient(c.config)
	c.LLMRequest = NewLLMRequestClient(c.config)
	c.Lesson = NewLessonClient(c.config)
	c.Unit = NewUnitClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		AudioAsset:  NewAudioAssetClient(cfg),
		FlowRun:     NewFlowRunClient(cfg),
		FlowStepRun: NewFlowStepRunClient(cfg),
		ImageAsset:  NewImageAssetClient(cfg),
		LLMRequest:  NewLLMRequestClient(cfg),
		Lesson:      NewLessonClient(cfg),
		Unit:        NewUnitClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		AudioAsset:  NewAudioAssetClient(cfg),
		FlowRun:     NewFlowRunClient(cfg),
		FlowStepRun: NewFlowStepRunClient(cfg),
		ImageAsset:  NewImageAssetClient(cfg),
		LLMRequest:  NewLLMRequestClient(cfg),
		Lesson:      NewLessonClient(cfg),
		Unit:        NewUnitClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AudioAsset.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AudioAsset, c.FlowRun, c.FlowStepRun, c.ImageAsset, c.LLMRequest, c.Lesson,
		c.Unit,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AudioAsset, c.FlowRun, c.FlowStepRun, c.ImageAsset, c.LLMRequest, c.Lesson,
		c.Unit,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AudioAssetMutation:
		return c.AudioAsset.mutate(ctx, m)
	case *FlowRunMutation:
		return c.FlowRun.mutate(ctx, m)
	case *FlowStepRunMutation:
		return c.FlowStepRun.mutate(ctx, m)
	case *ImageAssetMutation:
		return c.ImageAsset.mutate(ctx, m)
	case *LLMRequestMutation:
		return c.LLMRequest.mutate(ctx, m)
	case *LessonMutation:
		return c.Lesson.mutate(ctx, m)
	case *UnitMutation:
		return c.Unit.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AudioAssetClient is a client for the AudioAsset schema.
type AudioAssetClient struct {
	config
}

// NewAudioAssetClient returns a client for the AudioAsset from the given config.
func NewAudioAssetClient(c config) *AudioAssetClient {
	return &AudioAssetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `audioasset.Hooks(f(g(h())))`.
func (c *AudioAssetClient) Use(hooks ...Hook) {
	c.hooks.AudioAsset = append(c.hooks.AudioAsset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `audioasset.Intercept(f(g(h())))`.
func (c *AudioAssetClient) Intercept(interceptors ...Interceptor) {
	c.inters.AudioAsset = append(c.inters.AudioAsset, interceptors...)
}

// Create returns a builder for creating a AudioAsset entity.
func (c *AudioAssetClient) Create() *AudioAssetCreate {
	mutation := newAudioAssetMutation(c.config, OpCreate)
	return &AudioAssetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AudioAsset entities.
func (c *AudioAssetClient) CreateBulk(builders ...*AudioAssetCreate) *AudioAssetCreateBulk {
	return &AudioAssetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AudioAssetClient) MapCreateBulk(slice any, setFunc func(*AudioAssetCreate, int)) *AudioAssetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AudioAssetCreateBulk{err: fmt.Errorf("calling to AudioAssetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AudioAssetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AudioAssetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AudioAsset.
func (c *AudioAssetClient) Update() *AudioAssetUpdate {
	mutation := newAudioAssetMutation(c.config, OpUpdate)
	return &AudioAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AudioAssetClient) UpdateOne(_m *AudioAsset) *AudioAssetUpdateOne {
	mutation := newAudioAssetMutation(c.config, OpUpdateOne, withAudioAsset(_m))
	return &AudioAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AudioAssetClient) UpdateOneID(id string) *AudioAssetUpdateOne {
	mutation := newAudioAssetMutation(c.config, OpUpdateOne, withAudioAssetID(id))
	return &AudioAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AudioAsset.
func (c *AudioAssetClient) Delete() *AudioAssetDelete {
	mutation := newAudioAssetMutation(c.config, OpDelete)
	return &AudioAssetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AudioAssetClient) DeleteOne(_m *AudioAsset) *AudioAssetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AudioAssetClient) DeleteOneID(id string) *AudioAssetDeleteOne {
	builder := c.Delete().Where(audioasset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AudioAssetDeleteOne{builder}
}

// Query returns a query builder for AudioAsset.
func (c *AudioAssetClient) Query() *AudioAssetQuery {
	return &AudioAssetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAudioAsset},
		inters: c.Interceptors(),
	}
}

// Get returns a AudioAsset entity by its id.
func (c *AudioAssetClient) Get(ctx context.Context, id string) (*AudioAsset, error) {
	return c.Query().Where(audioasset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AudioAssetClient) GetX(ctx context.Context, id string) *AudioAsset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AudioAssetClient) Hooks() []Hook {
	return c.hooks.AudioAsset
}

// Interceptors returns the client interceptors.
func (c *AudioAssetClient) Interceptors() []Interceptor {
	return c.inters.AudioAsset
}

func (c *AudioAssetClient) mutate(ctx context.Context, m *AudioAssetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AudioAssetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AudioAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AudioAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AudioAssetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AudioAsset mutation op: %q", m.Op())
	}
}

// FlowRunClient is a client for the FlowRun schema.
type FlowRunClient struct {
	config
}

// NewFlowRunClient returns a client for the FlowRun from the given config.
func NewFlowRunClient(c config) *FlowRunClient {
	return &FlowRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flowrun.Hooks(f(g(h())))`.
func (c *FlowRunClient) Use(hooks ...Hook) {
	c.hooks.FlowRun = append(c.hooks.FlowRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flowrun.Intercept(f(g(h())))`.
func (c *FlowRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlowRun = append(c.inters.FlowRun, interceptors...)
}

// Create returns a builder for creating a FlowRun entity.
func (c *FlowRunClient) Create() *FlowRunCreate {
	mutation := newFlowRunMutation(c.config, OpCreate)
	return &FlowRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlowRun entities.
func (c *FlowRunClient) CreateBulk(builders ...*FlowRunCreate) *FlowRunCreateBulk {
	return &FlowRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlowRunClient) MapCreateBulk(slice any, setFunc func(*FlowRunCreate, int)) *FlowRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlowRunCreateBulk{err: fmt.Errorf("calling to FlowRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlowRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlowRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlowRun.
func (c *FlowRunClient) Update() *FlowRunUpdate {
	mutation := newFlowRunMutation(c.config, OpUpdate)
	return &FlowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlowRunClient) UpdateOne(_m *FlowRun) *FlowRunUpdateOne {
	mutation := newFlowRunMutation(c.config, OpUpdateOne, withFlowRun(_m))
	return &FlowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlowRunClient) UpdateOneID(id string) *FlowRunUpdateOne {
	mutation := newFlowRunMutation(c.config, OpUpdateOne, withFlowRunID(id))
	return &FlowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlowRun.
func (c *FlowRunClient) Delete() *FlowRunDelete {
	mutation := newFlowRunMutation(c.config, OpDelete)
	return &FlowRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlowRunClient) DeleteOne(_m *FlowRun) *FlowRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlowRunClient) DeleteOneID(id string) *FlowRunDeleteOne {
	builder := c.Delete().Where(flowrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlowRunDeleteOne{builder}
}

// Query returns a query builder for FlowRun.
func (c *FlowRunClient) Query() *FlowRunQuery {
	return &FlowRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlowRun},
		inters: c.Interceptors(),
	}
}

// Get returns a FlowRun entity by its id.
func (c *FlowRunClient) Get(ctx context.Context, id string) (*FlowRun, error) {
	return c.Query().Where(flowrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlowRunClient) GetX(ctx context.Context, id string) *FlowRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySteps queries the steps edge of a FlowRun.
func (c *FlowRunClient) QuerySteps(_m *FlowRun) *FlowStepRunQuery {
	query := (&FlowStepRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(flowrun.Table, flowrun.FieldID, id),
			sqlgraph.To(flowsteprun.Table, flowsteprun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, flowrun.StepsTable, flowrun.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FlowRunClient) Hooks() []Hook {
	return c.hooks.FlowRun
}

// Interceptors returns the client interceptors.
func (c *FlowRunClient) Interceptors() []Interceptor {
	return c.inters.FlowRun
}

func (c *FlowRunClient) mutate(ctx context.Context, m *FlowRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlowRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlowRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlowRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlowRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FlowRun mutation op: %q", m.Op())
	}
}

// FlowStepRunClient is a client for the FlowStepRun schema.
type FlowStepRunClient struct {
	config
}

// NewFlowStepRunClient returns a client for the FlowStepRun from the given config.
func NewFlowStepRunClient(c config) *FlowStepRunClient {
	return &FlowStepRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `flowsteprun.Hooks(f(g(h())))`.
func (c *FlowStepRunClient) Use(hooks ...Hook) {
	c.hooks.FlowStepRun = append(c.hooks.FlowStepRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `flowsteprun.Intercept(f(g(h())))`.
func (c *FlowStepRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.FlowStepRun = append(c.inters.FlowStepRun, interceptors...)
}

// Create returns a builder for creating a FlowStepRun entity.
func (c *FlowStepRunClient) Create() *FlowStepRunCreate {
	mutation := newFlowStepRunMutation(c.config, OpCreate)
	return &FlowStepRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FlowStepRun entities.
func (c *FlowStepRunClient) CreateBulk(builders ...*FlowStepRunCreate) *FlowStepRunCreateBulk {
	return &FlowStepRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FlowStepRunClient) MapCreateBulk(slice any, setFunc func(*FlowStepRunCreate, int)) *FlowStepRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FlowStepRunCreateBulk{err: fmt.Errorf("calling to FlowStepRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FlowStepRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FlowStepRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FlowStepRun.
func (c *FlowStepRunClient) Update() *FlowStepRunUpdate {
	mutation := newFlowStepRunMutation(c.config, OpUpdate)
	return &FlowStepRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FlowStepRunClient) UpdateOne(_m *FlowStepRun) *FlowStepRunUpdateOne {
	mutation := newFlowStepRunMutation(c.config, OpUpdateOne, withFlowStepRun(_m))
	return &FlowStepRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FlowStepRunClient) UpdateOneID(id string) *FlowStepRunUpdateOne {
	mutation := newFlowStepRunMutation(c.config, OpUpdateOne, withFlowStepRunID(id))
	return &FlowStepRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FlowStepRun.
func (c *FlowStepRunClient) Delete() *FlowStepRunDelete {
	mutation := newFlowStepRunMutation(c.config, OpDelete)
	return &FlowStepRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FlowStepRunClient) DeleteOne(_m *FlowStepRun) *FlowStepRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FlowStepRunClient) DeleteOneID(id string) *FlowStepRunDeleteOne {
	builder := c.Delete().Where(flowsteprun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FlowStepRunDeleteOne{builder}
}

// Query returns a query builder for FlowStepRun.
func (c *FlowStepRunClient) Query() *FlowStepRunQuery {
	return &FlowStepRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFlowStepRun},
		inters: c.Interceptors(),
	}
}

// Get returns a FlowStepRun entity by its id.
func (c *FlowStepRunClient) Get(ctx context.Context, id string) (*FlowStepRun, error) {
	return c.Query().Where(flowsteprun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FlowStepRunClient) GetX(ctx context.Context, id string) *FlowStepRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFlowRun queries the flow_run edge of a FlowStepRun.
func (c *FlowStepRunClient) QueryFlowRun(_m *FlowStepRun) *FlowRunQuery {
	query := (&FlowRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(flowsteprun.Table, flowsteprun.FieldID, id),
			sqlgraph.To(flowrun.Table, flowrun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, flowsteprun.FlowRunTable, flowsteprun.FlowRunColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FlowStepRunClient) Hooks() []Hook {
	return c.hooks.FlowStepRun
}

// Interceptors returns the client interceptors.
func (c *FlowStepRunClient) Interceptors() []Interceptor {
	return c.inters.FlowStepRun
}

func (c *FlowStepRunClient) mutate(ctx context.Context, m *FlowStepRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FlowStepRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FlowStepRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FlowStepRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FlowStepRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FlowStepRun mutation op: %q", m.Op())
	}
}

// ImageAssetClient is a client for the ImageAsset schema.
type ImageAssetClient struct {
	config
}

// NewImageAssetClient returns a client for the ImageAsset from the given config.
func NewImageAssetClient(c config) *ImageAssetClient {
	return &ImageAssetClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `imageasset.Hooks(f(g(h())))`.
func (c *ImageAssetClient) Use(hooks ...Hook) {
	c.hooks.ImageAsset = append(c.hooks.ImageAsset, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `imageasset.Intercept(f(g(h())))`.
func (c *ImageAssetClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImageAsset = append(c.inters.ImageAsset, interceptors...)
}

// Create returns a builder for creating a ImageAsset entity.
func (c *ImageAssetClient) Create() *ImageAssetCreate {
	mutation := newImageAssetMutation(c.config, OpCreate)
	return &ImageAssetCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImageAsset entities.
func (c *ImageAssetClient) CreateBulk(builders ...*ImageAssetCreate) *ImageAssetCreateBulk {
	return &ImageAssetCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImageAssetClient) MapCreateBulk(slice any, setFunc func(*ImageAssetCreate, int)) *ImageAssetCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImageAssetCreateBulk{err: fmt.Errorf("calling to ImageAssetClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImageAssetCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImageAssetCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImageAsset.
func (c *ImageAssetClient) Update() *ImageAssetUpdate {
	mutation := newImageAssetMutation(c.config, OpUpdate)
	return &ImageAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImageAssetClient) UpdateOne(_m *ImageAsset) *ImageAssetUpdateOne {
	mutation := newImageAssetMutation(c.config, OpUpdateOne, withImageAsset(_m))
	return &ImageAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImageAssetClient) UpdateOneID(id string) *ImageAssetUpdateOne {
	mutation := newImageAssetMutation(c.config, OpUpdateOne, withImageAssetID(id))
	return &ImageAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImageAsset.
func (c *ImageAssetClient) Delete() *ImageAssetDelete {
	mutation := newImageAssetMutation(c.config, OpDelete)
	return &ImageAssetDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImageAssetClient) DeleteOne(_m *ImageAsset) *ImageAssetDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImageAssetClient) DeleteOneID(id string) *ImageAssetDeleteOne {
	builder := c.Delete().Where(imageasset.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImageAssetDeleteOne{builder}
}

// Query returns a query builder for ImageAsset.
func (c *ImageAssetClient) Query() *ImageAssetQuery {
	return &ImageAssetQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImageAsset},
		inters: c.Interceptors(),
	}
}

// Get returns a ImageAsset entity by its id.
func (c *ImageAssetClient) Get(ctx context.Context, id string) (*ImageAsset, error) {
	return c.Query().Where(imageasset.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImageAssetClient) GetX(ctx context.Context, id string) *ImageAsset {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImageAssetClient) Hooks() []Hook {
	return c.hooks.ImageAsset
}

// Interceptors returns the client interceptors.
func (c *ImageAssetClient) Interceptors() []Interceptor {
	return c.inters.ImageAsset
}

func (c *ImageAssetClient) mutate(ctx context.Context, m *ImageAssetMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImageAssetCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImageAssetUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImageAssetUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImageAssetDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImageAsset mutation op: %q", m.Op())
	}
}

// LLMRequestClient is a client for the LLMRequest schema.
type LLMRequestClient struct {
	config
}

// NewLLMRequestClient returns a client for the LLMRequest from the given config.
func NewLLMRequestClient(c config) *LLMRequestClient {
	return &LLMRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequest.Hooks(f(g(h())))`.
func (c *LLMRequestClient) Use(hooks ...Hook) {
	c.hooks.LLMRequest = append(c.hooks.LLMRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequest.Intercept(f(g(h())))`.
func (c *LLMRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequest = append(c.inters.LLMRequest, interceptors...)
}

// Create returns a builder for creating a LLMRequest entity.
func (c *LLMRequestClient) Create() *LLMRequestCreate {
	mutation := newLLMRequestMutation(c.config, OpCreate)
	return &LLMRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequest entities.
func (c *LLMRequestClient) CreateBulk(builders ...*LLMRequestCreate) *LLMRequestCreateBulk {
	return &LLMRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestClient) MapCreateBulk(slice any, setFunc func(*LLMRequestCreate, int)) *LLMRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestCreateBulk{err: fmt.Errorf("calling to LLMRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequest.
func (c *LLMRequestClient) Update() *LLMRequestUpdate {
	mutation := newLLMRequestMutation(c.config, OpUpdate)
	return &LLMRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestClient) UpdateOne(_m *LLMRequest) *LLMRequestUpdateOne {
	mutation := newLLMRequestMutation(c.config, OpUpdateOne, withLLMRequest(_m))
	return &LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestClient) UpdateOneID(id string) *LLMRequestUpdateOne {
	mutation := newLLMRequestMutation(c.config, OpUpdateOne, withLLMRequestID(id))
	return &LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequest.
func (c *LLMRequestClient) Delete() *LLMRequestDelete {
	mutation := newLLMRequestMutation(c.config, OpDelete)
	return &LLMRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestClient) DeleteOne(_m *LLMRequest) *LLMRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestClient) DeleteOneID(id string) *LLMRequestDeleteOne {
	builder := c.Delete().Where(llmrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestDeleteOne{builder}
}

// Query returns a query builder for LLMRequest.
func (c *LLMRequestClient) Query() *LLMRequestQuery {
	return &LLMRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequest entity by its id.
func (c *LLMRequestClient) Get(ctx context.Context, id string) (*LLMRequest, error) {
	return c.Query().Where(llmrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestClient) GetX(ctx context.Context, id string) *LLMRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestClient) Hooks() []Hook {
	return c.hooks.LLMRequest
}

// Interceptors returns the client interceptors.
func (c *LLMRequestClient) Interceptors() []Interceptor {
	return c.inters.LLMRequest
}

func (c *LLMRequestClient) mutate(ctx context.Context, m *LLMRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequest mutation op: %q", m.Op())
	}
}

// LessonClient is a client for the Lesson schema.
type LessonClient struct {
	config
}

// NewLessonClient returns a client for the Lesson from the given config.
func NewLessonClient(c config) *LessonClient {
	return &LessonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lesson.Hooks(f(g(h())))`.
func (c *LessonClient) Use(hooks ...Hook) {
	c.hooks.Lesson = append(c.hooks.Lesson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lesson.Intercept(f(g(h())))`.
func (c *LessonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Lesson = append(c.inters.Lesson, interceptors...)
}

// Create returns a builder for creating a Lesson entity.
func (c *LessonClient) Create() *LessonCreate {
	mutation := newLessonMutation(c.config, OpCreate)
	return &LessonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Lesson entities.
func (c *LessonClient) CreateBulk(builders ...*LessonCreate) *LessonCreateBulk {
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonClient) MapCreateBulk(slice any, setFunc func(*LessonCreate, int)) *LessonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonCreateBulk{err: fmt.Errorf("calling to LessonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Lesson.
func (c *LessonClient) Update() *LessonUpdate {
	mutation := newLessonMutation(c.config, OpUpdate)
	return &LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonClient) UpdateOne(_m *Lesson) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLesson(_m))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonClient) UpdateOneID(id string) *LessonUpdateOne {
	mutation := newLessonMutation(c.config, OpUpdateOne, withLessonID(id))
	return &LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Lesson.
func (c *LessonClient) Delete() *LessonDelete {
	mutation := newLessonMutation(c.config, OpDelete)
	return &LessonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonClient) DeleteOne(_m *Lesson) *LessonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonClient) DeleteOneID(id string) *LessonDeleteOne {
	builder := c.Delete().Where(lesson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonDeleteOne{builder}
}

// Query returns a query builder for Lesson.
func (c *LessonClient) Query() *LessonQuery {
	return &LessonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLesson},
		inters: c.Interceptors(),
	}
}

// Get returns a Lesson entity by its id.
func (c *LessonClient) Get(ctx context.Context, id string) (*Lesson, error) {
	return c.Query().Where(lesson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonClient) GetX(ctx context.Context, id string) *Lesson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUnit queries the unit edge of a Lesson.
func (c *LessonClient) QueryUnit(_m *Lesson) *UnitQuery {
	query := (&UnitClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(lesson.Table, lesson.FieldID, id),
			sqlgraph.To(unit.Table, unit.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, lesson.UnitTable, lesson.UnitColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LessonClient) Hooks() []Hook {
	return c.hooks.Lesson
}

// Interceptors returns the client interceptors.
func (c *LessonClient) Interceptors() []Interceptor {
	return c.inters.Lesson
}

func (c *LessonClient) mutate(ctx context.Context, m *LessonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Lesson mutation op: %q", m.Op())
	}
}

// UnitClient is a client for the Unit schema.
type UnitClient struct {
	config
}

// NewUnitClient returns a client for the Unit from the given config.
func NewUnitClient(c config) *UnitClient {
	return &UnitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `unit.Hooks(f(g(h())))`.
func (c *UnitClient) Use(hooks ...Hook) {
	c.hooks.Unit = append(c.hooks.Unit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `unit.Intercept(f(g(h())))`.
func (c *UnitClient) Intercept(interceptors ...Interceptor) {
	c.inters.Unit = append(c.inters.Unit, interceptors...)
}

// Create returns a builder for creating a Unit entity.
func (c *UnitClient) Create() *UnitCreate {
	mutation := newUnitMutation(c.config, OpCreate)
	return &UnitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Unit entities.
func (c *UnitClient) CreateBulk(builders ...*UnitCreate) *UnitCreateBulk {
	return &UnitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UnitClient) MapCreateBulk(slice any, setFunc func(*UnitCreate, int)) *UnitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UnitCreateBulk{err: fmt.Errorf("calling to UnitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UnitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UnitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Unit.
func (c *UnitClient) Update() *UnitUpdate {
	mutation := newUnitMutation(c.config, OpUpdate)
	return &UnitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UnitClient) UpdateOne(_m *Unit) *UnitUpdateOne {
	mutation := newUnitMutation(c.config, OpUpdateOne, withUnit(_m))
	return &UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UnitClient) UpdateOneID(id string) *UnitUpdateOne {
	mutation := newUnitMutation(c.config, OpUpdateOne, withUnitID(id))
	return &UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Unit.
func (c *UnitClient) Delete() *UnitDelete {
	mutation := newUnitMutation(c.config, OpDelete)
	return &UnitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UnitClient) DeleteOne(_m *Unit) *UnitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UnitClient) DeleteOneID(id string) *UnitDeleteOne {
	builder := c.Delete().Where(unit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UnitDeleteOne{builder}
}

// Query returns a query builder for Unit.
func (c *UnitClient) Query() *UnitQuery {
	return &UnitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUnit},
		inters: c.Interceptors(),
	}
}

// Get returns a Unit entity by its id.
func (c *UnitClient) Get(ctx context.Context, id string) (*Unit, error) {
	return c.Query().Where(unit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UnitClient) GetX(ctx context.Context, id string) *Unit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLessons queries the lessons edge of a Unit.
func (c *UnitClient) QueryLessons(_m *Unit) *LessonQuery {
	query := (&LessonClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(unit.Table, unit.FieldID, id),
			sqlgraph.To(lesson.Table, lesson.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, unit.LessonsTable, unit.LessonsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UnitClient) Hooks() []Hook {
	return c.hooks.Unit
}

// Interceptors returns the client interceptors.
func (c *UnitClient) Interceptors() []Interceptor {
	return c.inters.Unit
}

func (c *UnitClient) mutate(ctx context.Context, m *UnitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UnitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UnitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UnitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Unit mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AudioAsset, FlowRun, FlowStepRun, ImageAsset, LLMRequest, Lesson,
		Unit []ent.Hook
	}
	inters struct {
		AudioAsset, FlowRun, FlowStepRun, ImageAsset, LLMRequest, Lesson,
		Unit []ent.Interceptor
	}
)
