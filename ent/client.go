// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/hephaestus-ai/hephaestus/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/conductoranalysis"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/guardiananalysis"
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/steeringintervention"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/taskresult"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/ent/ticketblock"
	"github.com/hephaestus-ai/hephaestus/ent/ticketcomment"
	"github.com/hephaestus-ai/hephaestus/ent/validationreview"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// ConductorAnalysis is the client for interacting with the ConductorAnalysis builders.
	ConductorAnalysis *ConductorAnalysisClient
	// DiagnosticRun is the client for interacting with the DiagnosticRun builders.
	DiagnosticRun *DiagnosticRunClient
	// GuardianAnalysis is the client for interacting with the GuardianAnalysis builders.
	GuardianAnalysis *GuardianAnalysisClient
	// Phase is the client for interacting with the Phase builders.
	Phase *PhaseClient
	// SteeringIntervention is the client for interacting with the SteeringIntervention builders.
	SteeringIntervention *SteeringInterventionClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskResult is the client for interacting with the TaskResult builders.
	TaskResult *TaskResultClient
	// Ticket is the client for interacting with the Ticket builders.
	Ticket *TicketClient
	// TicketBlock is the client for interacting with the TicketBlock builders.
	TicketBlock *TicketBlockClient
	// TicketComment is the client for interacting with the TicketComment builders.
	TicketComment *TicketCommentClient
	// ValidationReview is the client for interacting with the ValidationReview builders.
	ValidationReview *ValidationReviewClient
	// Workflow is the client for interacting with the Workflow builders.
	Workflow *WorkflowClient
	// WorkflowResult is the client for interacting with the WorkflowResult builders.
	WorkflowResult *WorkflowResultClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.ConductorAnalysis = NewConductorAnalysisClient(c.config)
	c.DiagnosticRun = NewDiagnosticRunClient(c.config)
	c.GuardianAnalysis = NewGuardianAnalysisClient(c.config)
	c.Phase = NewPhaseClient(c.config)
	c.SteeringIntervention = NewSteeringInterventionClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskResult = NewTaskResultClient(c.config)
	c.Ticket = NewTicketClient(c.config)
	c.TicketBlock = NewTicketBlockClient(c.config)
	c.TicketComment = NewTicketCommentClient(c.config)
	c.ValidationReview = NewValidationReviewClient(c.config)
	c.Workflow = NewWorkflowClient(c.config)
	c.WorkflowResult = NewWorkflowResultClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Agent:                NewAgentClient(cfg),
		ConductorAnalysis:    NewConductorAnalysisClient(cfg),
		DiagnosticRun:        NewDiagnosticRunClient(cfg),
		GuardianAnalysis:     NewGuardianAnalysisClient(cfg),
		Phase:                NewPhaseClient(cfg),
		SteeringIntervention: NewSteeringInterventionClient(cfg),
		Task:                 NewTaskClient(cfg),
		TaskResult:           NewTaskResultClient(cfg),
		Ticket:               NewTicketClient(cfg),
		TicketBlock:          NewTicketBlockClient(cfg),
		TicketComment:        NewTicketCommentClient(cfg),
		ValidationReview:     NewValidationReviewClient(cfg),
		Workflow:             NewWorkflowClient(cfg),
		WorkflowResult:       NewWorkflowResultClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Agent:                NewAgentClient(cfg),
		ConductorAnalysis:    NewConductorAnalysisClient(cfg),
		DiagnosticRun:        NewDiagnosticRunClient(cfg),
		GuardianAnalysis:     NewGuardianAnalysisClient(cfg),
		Phase:                NewPhaseClient(cfg),
		SteeringIntervention: NewSteeringInterventionClient(cfg),
		Task:                 NewTaskClient(cfg),
		TaskResult:           NewTaskResultClient(cfg),
		Ticket:               NewTicketClient(cfg),
		TicketBlock:          NewTicketBlockClient(cfg),
		TicketComment:        NewTicketCommentClient(cfg),
		ValidationReview:     NewValidationReviewClient(cfg),
		Workflow:             NewWorkflowClient(cfg),
		WorkflowResult:       NewWorkflowResultClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.ConductorAnalysis, c.DiagnosticRun, c.GuardianAnalysis, c.Phase,
		c.SteeringIntervention, c.Task, c.TaskResult, c.Ticket, c.TicketBlock,
		c.TicketComment, c.ValidationReview, c.Workflow, c.WorkflowResult,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.ConductorAnalysis, c.DiagnosticRun, c.GuardianAnalysis, c.Phase,
		c.SteeringIntervention, c.Task, c.TaskResult, c.Ticket, c.TicketBlock,
		c.TicketComment, c.ValidationReview, c.Workflow, c.WorkflowResult,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *ConductorAnalysisMutation:
		return c.ConductorAnalysis.mutate(ctx, m)
	case *DiagnosticRunMutation:
		return c.DiagnosticRun.mutate(ctx, m)
	case *GuardianAnalysisMutation:
		return c.GuardianAnalysis.mutate(ctx, m)
	case *PhaseMutation:
		return c.Phase.mutate(ctx, m)
	case *SteeringInterventionMutation:
		return c.SteeringIntervention.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskResultMutation:
		return c.TaskResult.mutate(ctx, m)
	case *TicketMutation:
		return c.Ticket.mutate(ctx, m)
	case *TicketBlockMutation:
		return c.TicketBlock.mutate(ctx, m)
	case *TicketCommentMutation:
		return c.TicketComment.mutate(ctx, m)
	case *ValidationReviewMutation:
		return c.ValidationReview.mutate(ctx, m)
	case *WorkflowMutation:
		return c.Workflow.mutate(ctx, m)
	case *WorkflowResultMutation:
		return c.WorkflowResult.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id string) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id string) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id string) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id string) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a Agent.
func (c *AgentClient) QueryWorkflow(_m *Agent) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agent.WorkflowTable, agent.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// ConductorAnalysisClient is a client for the ConductorAnalysis schema.
type ConductorAnalysisClient struct {
	config
}

// NewConductorAnalysisClient returns a client for the ConductorAnalysis from the given config.
func NewConductorAnalysisClient(c config) *ConductorAnalysisClient {
	return &ConductorAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conductoranalysis.Hooks(f(g(h())))`.
func (c *ConductorAnalysisClient) Use(hooks ...Hook) {
	c.hooks.ConductorAnalysis = append(c.hooks.ConductorAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conductoranalysis.Intercept(f(g(h())))`.
func (c *ConductorAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConductorAnalysis = append(c.inters.ConductorAnalysis, interceptors...)
}

// Create returns a builder for creating a ConductorAnalysis entity.
func (c *ConductorAnalysisClient) Create() *ConductorAnalysisCreate {
	mutation := newConductorAnalysisMutation(c.config, OpCreate)
	return &ConductorAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConductorAnalysis entities.
func (c *ConductorAnalysisClient) CreateBulk(builders ...*ConductorAnalysisCreate) *ConductorAnalysisCreateBulk {
	return &ConductorAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConductorAnalysisClient) MapCreateBulk(slice any, setFunc func(*ConductorAnalysisCreate, int)) *ConductorAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConductorAnalysisCreateBulk{err: fmt.Errorf("calling to ConductorAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConductorAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConductorAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConductorAnalysis.
func (c *ConductorAnalysisClient) Update() *ConductorAnalysisUpdate {
	mutation := newConductorAnalysisMutation(c.config, OpUpdate)
	return &ConductorAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConductorAnalysisClient) UpdateOne(_m *ConductorAnalysis) *ConductorAnalysisUpdateOne {
	mutation := newConductorAnalysisMutation(c.config, OpUpdateOne, withConductorAnalysis(_m))
	return &ConductorAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConductorAnalysisClient) UpdateOneID(id string) *ConductorAnalysisUpdateOne {
	mutation := newConductorAnalysisMutation(c.config, OpUpdateOne, withConductorAnalysisID(id))
	return &ConductorAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConductorAnalysis.
func (c *ConductorAnalysisClient) Delete() *ConductorAnalysisDelete {
	mutation := newConductorAnalysisMutation(c.config, OpDelete)
	return &ConductorAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConductorAnalysisClient) DeleteOne(_m *ConductorAnalysis) *ConductorAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConductorAnalysisClient) DeleteOneID(id string) *ConductorAnalysisDeleteOne {
	builder := c.Delete().Where(conductoranalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConductorAnalysisDeleteOne{builder}
}

// Query returns a query builder for ConductorAnalysis.
func (c *ConductorAnalysisClient) Query() *ConductorAnalysisQuery {
	return &ConductorAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConductorAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a ConductorAnalysis entity by its id.
func (c *ConductorAnalysisClient) Get(ctx context.Context, id string) (*ConductorAnalysis, error) {
	return c.Query().Where(conductoranalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConductorAnalysisClient) GetX(ctx context.Context, id string) *ConductorAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConductorAnalysisClient) Hooks() []Hook {
	return c.hooks.ConductorAnalysis
}

// Interceptors returns the client interceptors.
func (c *ConductorAnalysisClient) Interceptors() []Interceptor {
	return c.inters.ConductorAnalysis
}

func (c *ConductorAnalysisClient) mutate(ctx context.Context, m *ConductorAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConductorAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConductorAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConductorAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConductorAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConductorAnalysis mutation op: %q", m.Op())
	}
}

// DiagnosticRunClient is a client for the DiagnosticRun schema.
type DiagnosticRunClient struct {
	config
}

// NewDiagnosticRunClient returns a client for the DiagnosticRun from the given config.
func NewDiagnosticRunClient(c config) *DiagnosticRunClient {
	return &DiagnosticRunClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `diagnosticrun.Hooks(f(g(h())))`.
func (c *DiagnosticRunClient) Use(hooks ...Hook) {
	c.hooks.DiagnosticRun = append(c.hooks.DiagnosticRun, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `diagnosticrun.Intercept(f(g(h())))`.
func (c *DiagnosticRunClient) Intercept(interceptors ...Interceptor) {
	c.inters.DiagnosticRun = append(c.inters.DiagnosticRun, interceptors...)
}

// Create returns a builder for creating a DiagnosticRun entity.
func (c *DiagnosticRunClient) Create() *DiagnosticRunCreate {
	mutation := newDiagnosticRunMutation(c.config, OpCreate)
	return &DiagnosticRunCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DiagnosticRun entities.
func (c *DiagnosticRunClient) CreateBulk(builders ...*DiagnosticRunCreate) *DiagnosticRunCreateBulk {
	return &DiagnosticRunCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DiagnosticRunClient) MapCreateBulk(slice any, setFunc func(*DiagnosticRunCreate, int)) *DiagnosticRunCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DiagnosticRunCreateBulk{err: fmt.Errorf("calling to DiagnosticRunClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DiagnosticRunCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DiagnosticRunCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DiagnosticRun.
func (c *DiagnosticRunClient) Update() *DiagnosticRunUpdate {
	mutation := newDiagnosticRunMutation(c.config, OpUpdate)
	return &DiagnosticRunUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DiagnosticRunClient) UpdateOne(_m *DiagnosticRun) *DiagnosticRunUpdateOne {
	mutation := newDiagnosticRunMutation(c.config, OpUpdateOne, withDiagnosticRun(_m))
	return &DiagnosticRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DiagnosticRunClient) UpdateOneID(id string) *DiagnosticRunUpdateOne {
	mutation := newDiagnosticRunMutation(c.config, OpUpdateOne, withDiagnosticRunID(id))
	return &DiagnosticRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DiagnosticRun.
func (c *DiagnosticRunClient) Delete() *DiagnosticRunDelete {
	mutation := newDiagnosticRunMutation(c.config, OpDelete)
	return &DiagnosticRunDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DiagnosticRunClient) DeleteOne(_m *DiagnosticRun) *DiagnosticRunDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DiagnosticRunClient) DeleteOneID(id string) *DiagnosticRunDeleteOne {
	builder := c.Delete().Where(diagnosticrun.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DiagnosticRunDeleteOne{builder}
}

// Query returns a query builder for DiagnosticRun.
func (c *DiagnosticRunClient) Query() *DiagnosticRunQuery {
	return &DiagnosticRunQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDiagnosticRun},
		inters: c.Interceptors(),
	}
}

// Get returns a DiagnosticRun entity by its id.
func (c *DiagnosticRunClient) Get(ctx context.Context, id string) (*DiagnosticRun, error) {
	return c.Query().Where(diagnosticrun.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DiagnosticRunClient) GetX(ctx context.Context, id string) *DiagnosticRun {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a DiagnosticRun.
func (c *DiagnosticRunClient) QueryWorkflow(_m *DiagnosticRun) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(diagnosticrun.Table, diagnosticrun.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, diagnosticrun.WorkflowTable, diagnosticrun.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DiagnosticRunClient) Hooks() []Hook {
	return c.hooks.DiagnosticRun
}

// Interceptors returns the client interceptors.
func (c *DiagnosticRunClient) Interceptors() []Interceptor {
	return c.inters.DiagnosticRun
}

func (c *DiagnosticRunClient) mutate(ctx context.Context, m *DiagnosticRunMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DiagnosticRunCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DiagnosticRunUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DiagnosticRunUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DiagnosticRunDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DiagnosticRun mutation op: %q", m.Op())
	}
}

// GuardianAnalysisClient is a client for the GuardianAnalysis schema.
type GuardianAnalysisClient struct {
	config
}

// NewGuardianAnalysisClient returns a client for the GuardianAnalysis from the given config.
func NewGuardianAnalysisClient(c config) *GuardianAnalysisClient {
	return &GuardianAnalysisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `guardiananalysis.Hooks(f(g(h())))`.
func (c *GuardianAnalysisClient) Use(hooks ...Hook) {
	c.hooks.GuardianAnalysis = append(c.hooks.GuardianAnalysis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `guardiananalysis.Intercept(f(g(h())))`.
func (c *GuardianAnalysisClient) Intercept(interceptors ...Interceptor) {
	c.inters.GuardianAnalysis = append(c.inters.GuardianAnalysis, interceptors...)
}

// Create returns a builder for creating a GuardianAnalysis entity.
func (c *GuardianAnalysisClient) Create() *GuardianAnalysisCreate {
	mutation := newGuardianAnalysisMutation(c.config, OpCreate)
	return &GuardianAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GuardianAnalysis entities.
func (c *GuardianAnalysisClient) CreateBulk(builders ...*GuardianAnalysisCreate) *GuardianAnalysisCreateBulk {
	return &GuardianAnalysisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GuardianAnalysisClient) MapCreateBulk(slice any, setFunc func(*GuardianAnalysisCreate, int)) *GuardianAnalysisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GuardianAnalysisCreateBulk{err: fmt.Errorf("calling to GuardianAnalysisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GuardianAnalysisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GuardianAnalysisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GuardianAnalysis.
func (c *GuardianAnalysisClient) Update() *GuardianAnalysisUpdate {
	mutation := newGuardianAnalysisMutation(c.config, OpUpdate)
	return &GuardianAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GuardianAnalysisClient) UpdateOne(_m *GuardianAnalysis) *GuardianAnalysisUpdateOne {
	mutation := newGuardianAnalysisMutation(c.config, OpUpdateOne, withGuardianAnalysis(_m))
	return &GuardianAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GuardianAnalysisClient) UpdateOneID(id string) *GuardianAnalysisUpdateOne {
	mutation := newGuardianAnalysisMutation(c.config, OpUpdateOne, withGuardianAnalysisID(id))
	return &GuardianAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GuardianAnalysis.
func (c *GuardianAnalysisClient) Delete() *GuardianAnalysisDelete {
	mutation := newGuardianAnalysisMutation(c.config, OpDelete)
	return &GuardianAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GuardianAnalysisClient) DeleteOne(_m *GuardianAnalysis) *GuardianAnalysisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GuardianAnalysisClient) DeleteOneID(id string) *GuardianAnalysisDeleteOne {
	builder := c.Delete().Where(guardiananalysis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GuardianAnalysisDeleteOne{builder}
}

// Query returns a query builder for GuardianAnalysis.
func (c *GuardianAnalysisClient) Query() *GuardianAnalysisQuery {
	return &GuardianAnalysisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGuardianAnalysis},
		inters: c.Interceptors(),
	}
}

// Get returns a GuardianAnalysis entity by its id.
func (c *GuardianAnalysisClient) Get(ctx context.Context, id string) (*GuardianAnalysis, error) {
	return c.Query().Where(guardiananalysis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GuardianAnalysisClient) GetX(ctx context.Context, id string) *GuardianAnalysis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GuardianAnalysisClient) Hooks() []Hook {
	return c.hooks.GuardianAnalysis
}

// Interceptors returns the client interceptors.
func (c *GuardianAnalysisClient) Interceptors() []Interceptor {
	return c.inters.GuardianAnalysis
}

func (c *GuardianAnalysisClient) mutate(ctx context.Context, m *GuardianAnalysisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GuardianAnalysisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GuardianAnalysisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GuardianAnalysisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GuardianAnalysisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GuardianAnalysis mutation op: %q", m.Op())
	}
}

// PhaseClient is a client for the Phase schema.
type PhaseClient struct {
	config
}

// NewPhaseClient returns a client for the Phase from the given config.
func NewPhaseClient(c config) *PhaseClient {
	return &PhaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phase.Hooks(f(g(h())))`.
func (c *PhaseClient) Use(hooks ...Hook) {
	c.hooks.Phase = append(c.hooks.Phase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phase.Intercept(f(g(h())))`.
func (c *PhaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.Phase = append(c.inters.Phase, interceptors...)
}

// Create returns a builder for creating a Phase entity.
func (c *PhaseClient) Create() *PhaseCreate {
	mutation := newPhaseMutation(c.config, OpCreate)
	return &PhaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Phase entities.
func (c *PhaseClient) CreateBulk(builders ...*PhaseCreate) *PhaseCreateBulk {
	return &PhaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhaseClient) MapCreateBulk(slice any, setFunc func(*PhaseCreate, int)) *PhaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhaseCreateBulk{err: fmt.Errorf("calling to PhaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Phase.
func (c *PhaseClient) Update() *PhaseUpdate {
	mutation := newPhaseMutation(c.config, OpUpdate)
	return &PhaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhaseClient) UpdateOne(_m *Phase) *PhaseUpdateOne {
	mutation := newPhaseMutation(c.config, OpUpdateOne, withPhase(_m))
	return &PhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhaseClient) UpdateOneID(id string) *PhaseUpdateOne {
	mutation := newPhaseMutation(c.config, OpUpdateOne, withPhaseID(id))
	return &PhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Phase.
func (c *PhaseClient) Delete() *PhaseDelete {
	mutation := newPhaseMutation(c.config, OpDelete)
	return &PhaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhaseClient) DeleteOne(_m *Phase) *PhaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhaseClient) DeleteOneID(id string) *PhaseDeleteOne {
	builder := c.Delete().Where(phase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhaseDeleteOne{builder}
}

// Query returns a query builder for Phase.
func (c *PhaseClient) Query() *PhaseQuery {
	return &PhaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhase},
		inters: c.Interceptors(),
	}
}

// Get returns a Phase entity by its id.
func (c *PhaseClient) Get(ctx context.Context, id string) (*Phase, error) {
	return c.Query().Where(phase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhaseClient) GetX(ctx context.Context, id string) *Phase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a Phase.
func (c *PhaseClient) QueryWorkflow(_m *Phase) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phase.Table, phase.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phase.WorkflowTable, phase.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhaseClient) Hooks() []Hook {
	return c.hooks.Phase
}

// Interceptors returns the client interceptors.
func (c *PhaseClient) Interceptors() []Interceptor {
	return c.inters.Phase
}

func (c *PhaseClient) mutate(ctx context.Context, m *PhaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Phase mutation op: %q", m.Op())
	}
}

// SteeringInterventionClient is a client for the SteeringIntervention schema.
type SteeringInterventionClient struct {
	config
}

// NewSteeringInterventionClient returns a client for the SteeringIntervention from the given config.
func NewSteeringInterventionClient(c config) *SteeringInterventionClient {
	return &SteeringInterventionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `steeringintervention.Hooks(f(g(h())))`.
func (c *SteeringInterventionClient) Use(hooks ...Hook) {
	c.hooks.SteeringIntervention = append(c.hooks.SteeringIntervention, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `steeringintervention.Intercept(f(g(h())))`.
func (c *SteeringInterventionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SteeringIntervention = append(c.inters.SteeringIntervention, interceptors...)
}

// Create returns a builder for creating a SteeringIntervention entity.
func (c *SteeringInterventionClient) Create() *SteeringInterventionCreate {
	mutation := newSteeringInterventionMutation(c.config, OpCreate)
	return &SteeringInterventionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SteeringIntervention entities.
func (c *SteeringInterventionClient) CreateBulk(builders ...*SteeringInterventionCreate) *SteeringInterventionCreateBulk {
	return &SteeringInterventionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SteeringInterventionClient) MapCreateBulk(slice any, setFunc func(*SteeringInterventionCreate, int)) *SteeringInterventionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SteeringInterventionCreateBulk{err: fmt.Errorf("calling to SteeringInterventionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SteeringInterventionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SteeringInterventionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SteeringIntervention.
func (c *SteeringInterventionClient) Update() *SteeringInterventionUpdate {
	mutation := newSteeringInterventionMutation(c.config, OpUpdate)
	return &SteeringInterventionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SteeringInterventionClient) UpdateOne(_m *SteeringIntervention) *SteeringInterventionUpdateOne {
	mutation := newSteeringInterventionMutation(c.config, OpUpdateOne, withSteeringIntervention(_m))
	return &SteeringInterventionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SteeringInterventionClient) UpdateOneID(id string) *SteeringInterventionUpdateOne {
	mutation := newSteeringInterventionMutation(c.config, OpUpdateOne, withSteeringInterventionID(id))
	return &SteeringInterventionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SteeringIntervention.
func (c *SteeringInterventionClient) Delete() *SteeringInterventionDelete {
	mutation := newSteeringInterventionMutation(c.config, OpDelete)
	return &SteeringInterventionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SteeringInterventionClient) DeleteOne(_m *SteeringIntervention) *SteeringInterventionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SteeringInterventionClient) DeleteOneID(id string) *SteeringInterventionDeleteOne {
	builder := c.Delete().Where(steeringintervention.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SteeringInterventionDeleteOne{builder}
}

// Query returns a query builder for SteeringIntervention.
func (c *SteeringInterventionClient) Query() *SteeringInterventionQuery {
	return &SteeringInterventionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSteeringIntervention},
		inters: c.Interceptors(),
	}
}

// Get returns a SteeringIntervention entity by its id.
func (c *SteeringInterventionClient) Get(ctx context.Context, id string) (*SteeringIntervention, error) {
	return c.Query().Where(steeringintervention.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SteeringInterventionClient) GetX(ctx context.Context, id string) *SteeringIntervention {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SteeringInterventionClient) Hooks() []Hook {
	return c.hooks.SteeringIntervention
}

// Interceptors returns the client interceptors.
func (c *SteeringInterventionClient) Interceptors() []Interceptor {
	return c.inters.SteeringIntervention
}

func (c *SteeringInterventionClient) mutate(ctx context.Context, m *SteeringInterventionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SteeringInterventionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SteeringInterventionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SteeringInterventionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SteeringInterventionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SteeringIntervention mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a Task.
func (c *TaskClient) QueryWorkflow(_m *Task) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.WorkflowTable, task.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a Task.
func (c *TaskClient) QueryResults(_m *Task) *TaskResultQuery {
	query := (&TaskResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskresult.Table, taskresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ResultsTable, task.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryValidationReviews queries the validation_reviews edge of a Task.
func (c *TaskClient) QueryValidationReviews(_m *Task) *ValidationReviewQuery {
	query := (&ValidationReviewClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(validationreview.Table, validationreview.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ValidationReviewsTable, task.ValidationReviewsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TaskResultClient is a client for the TaskResult schema.
type TaskResultClient struct {
	config
}

// NewTaskResultClient returns a client for the TaskResult from the given config.
func NewTaskResultClient(c config) *TaskResultClient {
	return &TaskResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskresult.Hooks(f(g(h())))`.
func (c *TaskResultClient) Use(hooks ...Hook) {
	c.hooks.TaskResult = append(c.hooks.TaskResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskresult.Intercept(f(g(h())))`.
func (c *TaskResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskResult = append(c.inters.TaskResult, interceptors...)
}

// Create returns a builder for creating a TaskResult entity.
func (c *TaskResultClient) Create() *TaskResultCreate {
	mutation := newTaskResultMutation(c.config, OpCreate)
	return &TaskResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskResult entities.
func (c *TaskResultClient) CreateBulk(builders ...*TaskResultCreate) *TaskResultCreateBulk {
	return &TaskResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskResultClient) MapCreateBulk(slice any, setFunc func(*TaskResultCreate, int)) *TaskResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskResultCreateBulk{err: fmt.Errorf("calling to TaskResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskResult.
func (c *TaskResultClient) Update() *TaskResultUpdate {
	mutation := newTaskResultMutation(c.config, OpUpdate)
	return &TaskResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskResultClient) UpdateOne(_m *TaskResult) *TaskResultUpdateOne {
	mutation := newTaskResultMutation(c.config, OpUpdateOne, withTaskResult(_m))
	return &TaskResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskResultClient) UpdateOneID(id string) *TaskResultUpdateOne {
	mutation := newTaskResultMutation(c.config, OpUpdateOne, withTaskResultID(id))
	return &TaskResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskResult.
func (c *TaskResultClient) Delete() *TaskResultDelete {
	mutation := newTaskResultMutation(c.config, OpDelete)
	return &TaskResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskResultClient) DeleteOne(_m *TaskResult) *TaskResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskResultClient) DeleteOneID(id string) *TaskResultDeleteOne {
	builder := c.Delete().Where(taskresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskResultDeleteOne{builder}
}

// Query returns a query builder for TaskResult.
func (c *TaskResultClient) Query() *TaskResultQuery {
	return &TaskResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskResult},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskResult entity by its id.
func (c *TaskResultClient) Get(ctx context.Context, id string) (*TaskResult, error) {
	return c.Query().Where(taskresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskResultClient) GetX(ctx context.Context, id string) *TaskResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskResult.
func (c *TaskResultClient) QueryTask(_m *TaskResult) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskresult.Table, taskresult.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskresult.TaskTable, taskresult.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskResultClient) Hooks() []Hook {
	return c.hooks.TaskResult
}

// Interceptors returns the client interceptors.
func (c *TaskResultClient) Interceptors() []Interceptor {
	return c.inters.TaskResult
}

func (c *TaskResultClient) mutate(ctx context.Context, m *TaskResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskResult mutation op: %q", m.Op())
	}
}

// TicketClient is a client for the Ticket schema.
type TicketClient struct {
	config
}

// NewTicketClient returns a client for the Ticket from the given config.
func NewTicketClient(c config) *TicketClient {
	return &TicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticket.Hooks(f(g(h())))`.
func (c *TicketClient) Use(hooks ...Hook) {
	c.hooks.Ticket = append(c.hooks.Ticket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticket.Intercept(f(g(h())))`.
func (c *TicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ticket = append(c.inters.Ticket, interceptors...)
}

// Create returns a builder for creating a Ticket entity.
func (c *TicketClient) Create() *TicketCreate {
	mutation := newTicketMutation(c.config, OpCreate)
	return &TicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ticket entities.
func (c *TicketClient) CreateBulk(builders ...*TicketCreate) *TicketCreateBulk {
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketClient) MapCreateBulk(slice any, setFunc func(*TicketCreate, int)) *TicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCreateBulk{err: fmt.Errorf("calling to TicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ticket.
func (c *TicketClient) Update() *TicketUpdate {
	mutation := newTicketMutation(c.config, OpUpdate)
	return &TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketClient) UpdateOne(_m *Ticket) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicket(_m))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketClient) UpdateOneID(id string) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicketID(id))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ticket.
func (c *TicketClient) Delete() *TicketDelete {
	mutation := newTicketMutation(c.config, OpDelete)
	return &TicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketClient) DeleteOne(_m *Ticket) *TicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketClient) DeleteOneID(id string) *TicketDeleteOne {
	builder := c.Delete().Where(ticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDeleteOne{builder}
}

// Query returns a query builder for Ticket.
func (c *TicketClient) Query() *TicketQuery {
	return &TicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a Ticket entity by its id.
func (c *TicketClient) Get(ctx context.Context, id string) (*Ticket, error) {
	return c.Query().Where(ticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketClient) GetX(ctx context.Context, id string) *Ticket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a Ticket.
func (c *TicketClient) QueryWorkflow(_m *Ticket) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ticket.Table, ticket.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ticket.WorkflowTable, ticket.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TicketClient) Hooks() []Hook {
	return c.hooks.Ticket
}

// Interceptors returns the client interceptors.
func (c *TicketClient) Interceptors() []Interceptor {
	return c.inters.Ticket
}

func (c *TicketClient) mutate(ctx context.Context, m *TicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ticket mutation op: %q", m.Op())
	}
}

// TicketBlockClient is a client for the TicketBlock schema.
type TicketBlockClient struct {
	config
}

// NewTicketBlockClient returns a client for the TicketBlock from the given config.
func NewTicketBlockClient(c config) *TicketBlockClient {
	return &TicketBlockClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticketblock.Hooks(f(g(h())))`.
func (c *TicketBlockClient) Use(hooks ...Hook) {
	c.hooks.TicketBlock = append(c.hooks.TicketBlock, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticketblock.Intercept(f(g(h())))`.
func (c *TicketBlockClient) Intercept(interceptors ...Interceptor) {
	c.inters.TicketBlock = append(c.inters.TicketBlock, interceptors...)
}

// Create returns a builder for creating a TicketBlock entity.
func (c *TicketBlockClient) Create() *TicketBlockCreate {
	mutation := newTicketBlockMutation(c.config, OpCreate)
	return &TicketBlockCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TicketBlock entities.
func (c *TicketBlockClient) CreateBulk(builders ...*TicketBlockCreate) *TicketBlockCreateBulk {
	return &TicketBlockCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketBlockClient) MapCreateBulk(slice any, setFunc func(*TicketBlockCreate, int)) *TicketBlockCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketBlockCreateBulk{err: fmt.Errorf("calling to TicketBlockClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketBlockCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketBlockCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TicketBlock.
func (c *TicketBlockClient) Update() *TicketBlockUpdate {
	mutation := newTicketBlockMutation(c.config, OpUpdate)
	return &TicketBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketBlockClient) UpdateOne(_m *TicketBlock) *TicketBlockUpdateOne {
	mutation := newTicketBlockMutation(c.config, OpUpdateOne, withTicketBlock(_m))
	return &TicketBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketBlockClient) UpdateOneID(id string) *TicketBlockUpdateOne {
	mutation := newTicketBlockMutation(c.config, OpUpdateOne, withTicketBlockID(id))
	return &TicketBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TicketBlock.
func (c *TicketBlockClient) Delete() *TicketBlockDelete {
	mutation := newTicketBlockMutation(c.config, OpDelete)
	return &TicketBlockDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketBlockClient) DeleteOne(_m *TicketBlock) *TicketBlockDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketBlockClient) DeleteOneID(id string) *TicketBlockDeleteOne {
	builder := c.Delete().Where(ticketblock.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketBlockDeleteOne{builder}
}

// Query returns a query builder for TicketBlock.
func (c *TicketBlockClient) Query() *TicketBlockQuery {
	return &TicketBlockQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicketBlock},
		inters: c.Interceptors(),
	}
}

// Get returns a TicketBlock entity by its id.
func (c *TicketBlockClient) Get(ctx context.Context, id string) (*TicketBlock, error) {
	return c.Query().Where(ticketblock.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketBlockClient) GetX(ctx context.Context, id string) *TicketBlock {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TicketBlockClient) Hooks() []Hook {
	return c.hooks.TicketBlock
}

// Interceptors returns the client interceptors.
func (c *TicketBlockClient) Interceptors() []Interceptor {
	return c.inters.TicketBlock
}

func (c *TicketBlockClient) mutate(ctx context.Context, m *TicketBlockMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketBlockCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketBlockUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketBlockUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketBlockDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TicketBlock mutation op: %q", m.Op())
	}
}

// TicketCommentClient is a client for the TicketComment schema.
type TicketCommentClient struct {
	config
}

// NewTicketCommentClient returns a client for the TicketComment from the given config.
func NewTicketCommentClient(c config) *TicketCommentClient {
	return &TicketCommentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticketcomment.Hooks(f(g(h())))`.
func (c *TicketCommentClient) Use(hooks ...Hook) {
	c.hooks.TicketComment = append(c.hooks.TicketComment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticketcomment.Intercept(f(g(h())))`.
func (c *TicketCommentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TicketComment = append(c.inters.TicketComment, interceptors...)
}

// Create returns a builder for creating a TicketComment entity.
func (c *TicketCommentClient) Create() *TicketCommentCreate {
	mutation := newTicketCommentMutation(c.config, OpCreate)
	return &TicketCommentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TicketComment entities.
func (c *TicketCommentClient) CreateBulk(builders ...*TicketCommentCreate) *TicketCommentCreateBulk {
	return &TicketCommentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketCommentClient) MapCreateBulk(slice any, setFunc func(*TicketCommentCreate, int)) *TicketCommentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCommentCreateBulk{err: fmt.Errorf("calling to TicketCommentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCommentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCommentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TicketComment.
func (c *TicketCommentClient) Update() *TicketCommentUpdate {
	mutation := newTicketCommentMutation(c.config, OpUpdate)
	return &TicketCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketCommentClient) UpdateOne(_m *TicketComment) *TicketCommentUpdateOne {
	mutation := newTicketCommentMutation(c.config, OpUpdateOne, withTicketComment(_m))
	return &TicketCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketCommentClient) UpdateOneID(id string) *TicketCommentUpdateOne {
	mutation := newTicketCommentMutation(c.config, OpUpdateOne, withTicketCommentID(id))
	return &TicketCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TicketComment.
func (c *TicketCommentClient) Delete() *TicketCommentDelete {
	mutation := newTicketCommentMutation(c.config, OpDelete)
	return &TicketCommentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketCommentClient) DeleteOne(_m *TicketComment) *TicketCommentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketCommentClient) DeleteOneID(id string) *TicketCommentDeleteOne {
	builder := c.Delete().Where(ticketcomment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketCommentDeleteOne{builder}
}

// Query returns a query builder for TicketComment.
func (c *TicketCommentClient) Query() *TicketCommentQuery {
	return &TicketCommentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicketComment},
		inters: c.Interceptors(),
	}
}

// Get returns a TicketComment entity by its id.
func (c *TicketCommentClient) Get(ctx context.Context, id string) (*TicketComment, error) {
	return c.Query().Where(ticketcomment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketCommentClient) GetX(ctx context.Context, id string) *TicketComment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TicketCommentClient) Hooks() []Hook {
	return c.hooks.TicketComment
}

// Interceptors returns the client interceptors.
func (c *TicketCommentClient) Interceptors() []Interceptor {
	return c.inters.TicketComment
}

func (c *TicketCommentClient) mutate(ctx context.Context, m *TicketCommentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCommentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketCommentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketCommentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketCommentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TicketComment mutation op: %q", m.Op())
	}
}

// ValidationReviewClient is a client for the ValidationReview schema.
type ValidationReviewClient struct {
	config
}

// NewValidationReviewClient returns a client for the ValidationReview from the given config.
func NewValidationReviewClient(c config) *ValidationReviewClient {
	return &ValidationReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `validationreview.Hooks(f(g(h())))`.
func (c *ValidationReviewClient) Use(hooks ...Hook) {
	c.hooks.ValidationReview = append(c.hooks.ValidationReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `validationreview.Intercept(f(g(h())))`.
func (c *ValidationReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.ValidationReview = append(c.inters.ValidationReview, interceptors...)
}

// Create returns a builder for creating a ValidationReview entity.
func (c *ValidationReviewClient) Create() *ValidationReviewCreate {
	mutation := newValidationReviewMutation(c.config, OpCreate)
	return &ValidationReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ValidationReview entities.
func (c *ValidationReviewClient) CreateBulk(builders ...*ValidationReviewCreate) *ValidationReviewCreateBulk {
	return &ValidationReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ValidationReviewClient) MapCreateBulk(slice any, setFunc func(*ValidationReviewCreate, int)) *ValidationReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ValidationReviewCreateBulk{err: fmt.Errorf("calling to ValidationReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ValidationReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ValidationReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ValidationReview.
func (c *ValidationReviewClient) Update() *ValidationReviewUpdate {
	mutation := newValidationReviewMutation(c.config, OpUpdate)
	return &ValidationReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ValidationReviewClient) UpdateOne(_m *ValidationReview) *ValidationReviewUpdateOne {
	mutation := newValidationReviewMutation(c.config, OpUpdateOne, withValidationReview(_m))
	return &ValidationReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ValidationReviewClient) UpdateOneID(id string) *ValidationReviewUpdateOne {
	mutation := newValidationReviewMutation(c.config, OpUpdateOne, withValidationReviewID(id))
	return &ValidationReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ValidationReview.
func (c *ValidationReviewClient) Delete() *ValidationReviewDelete {
	mutation := newValidationReviewMutation(c.config, OpDelete)
	return &ValidationReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ValidationReviewClient) DeleteOne(_m *ValidationReview) *ValidationReviewDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ValidationReviewClient) DeleteOneID(id string) *ValidationReviewDeleteOne {
	builder := c.Delete().Where(validationreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ValidationReviewDeleteOne{builder}
}

// Query returns a query builder for ValidationReview.
func (c *ValidationReviewClient) Query() *ValidationReviewQuery {
	return &ValidationReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeValidationReview},
		inters: c.Interceptors(),
	}
}

// Get returns a ValidationReview entity by its id.
func (c *ValidationReviewClient) Get(ctx context.Context, id string) (*ValidationReview, error) {
	return c.Query().Where(validationreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ValidationReviewClient) GetX(ctx context.Context, id string) *ValidationReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ValidationReview.
func (c *ValidationReviewClient) QueryTask(_m *ValidationReview) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(validationreview.Table, validationreview.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, validationreview.TaskTable, validationreview.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ValidationReviewClient) Hooks() []Hook {
	return c.hooks.ValidationReview
}

// Interceptors returns the client interceptors.
func (c *ValidationReviewClient) Interceptors() []Interceptor {
	return c.inters.ValidationReview
}

func (c *ValidationReviewClient) mutate(ctx context.Context, m *ValidationReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ValidationReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ValidationReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ValidationReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ValidationReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ValidationReview mutation op: %q", m.Op())
	}
}

// WorkflowClient is a client for the Workflow schema.
type WorkflowClient struct {
	config
}

// NewWorkflowClient returns a client for the Workflow from the given config.
func NewWorkflowClient(c config) *WorkflowClient {
	return &WorkflowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflow.Hooks(f(g(h())))`.
func (c *WorkflowClient) Use(hooks ...Hook) {
	c.hooks.Workflow = append(c.hooks.Workflow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflow.Intercept(f(g(h())))`.
func (c *WorkflowClient) Intercept(interceptors ...Interceptor) {
	c.inters.Workflow = append(c.inters.Workflow, interceptors...)
}

// Create returns a builder for creating a Workflow entity.
func (c *WorkflowClient) Create() *WorkflowCreate {
	mutation := newWorkflowMutation(c.config, OpCreate)
	return &WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Workflow entities.
func (c *WorkflowClient) CreateBulk(builders ...*WorkflowCreate) *WorkflowCreateBulk {
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowClient) MapCreateBulk(slice any, setFunc func(*WorkflowCreate, int)) *WorkflowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCreateBulk{err: fmt.Errorf("calling to WorkflowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Workflow.
func (c *WorkflowClient) Update() *WorkflowUpdate {
	mutation := newWorkflowMutation(c.config, OpUpdate)
	return &WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowClient) UpdateOne(_m *Workflow) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflow(_m))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowClient) UpdateOneID(id string) *WorkflowUpdateOne {
	mutation := newWorkflowMutation(c.config, OpUpdateOne, withWorkflowID(id))
	return &WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Workflow.
func (c *WorkflowClient) Delete() *WorkflowDelete {
	mutation := newWorkflowMutation(c.config, OpDelete)
	return &WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowClient) DeleteOne(_m *Workflow) *WorkflowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowClient) DeleteOneID(id string) *WorkflowDeleteOne {
	builder := c.Delete().Where(workflow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowDeleteOne{builder}
}

// Query returns a query builder for Workflow.
func (c *WorkflowClient) Query() *WorkflowQuery {
	return &WorkflowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflow},
		inters: c.Interceptors(),
	}
}

// Get returns a Workflow entity by its id.
func (c *WorkflowClient) Get(ctx context.Context, id string) (*Workflow, error) {
	return c.Query().Where(workflow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowClient) GetX(ctx context.Context, id string) *Workflow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPhases queries the phases edge of a Workflow.
func (c *WorkflowClient) QueryPhases(_m *Workflow) *PhaseQuery {
	query := (&PhaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(phase.Table, phase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.PhasesTable, workflow.PhasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Workflow.
func (c *WorkflowClient) QueryTasks(_m *Workflow) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.TasksTable, workflow.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a Workflow.
func (c *WorkflowClient) QueryAgents(_m *Workflow) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.AgentsTable, workflow.AgentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTickets queries the tickets edge of a Workflow.
func (c *WorkflowClient) QueryTickets(_m *Workflow) *TicketQuery {
	query := (&TicketClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(ticket.Table, ticket.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.TicketsTable, workflow.TicketsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResults queries the results edge of a Workflow.
func (c *WorkflowClient) QueryResults(_m *Workflow) *WorkflowResultQuery {
	query := (&WorkflowResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(workflowresult.Table, workflowresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.ResultsTable, workflow.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDiagnosticRuns queries the diagnostic_runs edge of a Workflow.
func (c *WorkflowClient) QueryDiagnosticRuns(_m *Workflow) *DiagnosticRunQuery {
	query := (&DiagnosticRunClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflow.Table, workflow.FieldID, id),
			sqlgraph.To(diagnosticrun.Table, diagnosticrun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, workflow.DiagnosticRunsTable, workflow.DiagnosticRunsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowClient) Hooks() []Hook {
	return c.hooks.Workflow
}

// Interceptors returns the client interceptors.
func (c *WorkflowClient) Interceptors() []Interceptor {
	return c.inters.Workflow
}

func (c *WorkflowClient) mutate(ctx context.Context, m *WorkflowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Workflow mutation op: %q", m.Op())
	}
}

// WorkflowResultClient is a client for the WorkflowResult schema.
type WorkflowResultClient struct {
	config
}

// NewWorkflowResultClient returns a client for the WorkflowResult from the given config.
func NewWorkflowResultClient(c config) *WorkflowResultClient {
	return &WorkflowResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowresult.Hooks(f(g(h())))`.
func (c *WorkflowResultClient) Use(hooks ...Hook) {
	c.hooks.WorkflowResult = append(c.hooks.WorkflowResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowresult.Intercept(f(g(h())))`.
func (c *WorkflowResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowResult = append(c.inters.WorkflowResult, interceptors...)
}

// Create returns a builder for creating a WorkflowResult entity.
func (c *WorkflowResultClient) Create() *WorkflowResultCreate {
	mutation := newWorkflowResultMutation(c.config, OpCreate)
	return &WorkflowResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowResult entities.
func (c *WorkflowResultClient) CreateBulk(builders ...*WorkflowResultCreate) *WorkflowResultCreateBulk {
	return &WorkflowResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowResultClient) MapCreateBulk(slice any, setFunc func(*WorkflowResultCreate, int)) *WorkflowResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowResultCreateBulk{err: fmt.Errorf("calling to WorkflowResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowResult.
func (c *WorkflowResultClient) Update() *WorkflowResultUpdate {
	mutation := newWorkflowResultMutation(c.config, OpUpdate)
	return &WorkflowResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowResultClient) UpdateOne(_m *WorkflowResult) *WorkflowResultUpdateOne {
	mutation := newWorkflowResultMutation(c.config, OpUpdateOne, withWorkflowResult(_m))
	return &WorkflowResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowResultClient) UpdateOneID(id string) *WorkflowResultUpdateOne {
	mutation := newWorkflowResultMutation(c.config, OpUpdateOne, withWorkflowResultID(id))
	return &WorkflowResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowResult.
func (c *WorkflowResultClient) Delete() *WorkflowResultDelete {
	mutation := newWorkflowResultMutation(c.config, OpDelete)
	return &WorkflowResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowResultClient) DeleteOne(_m *WorkflowResult) *WorkflowResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowResultClient) DeleteOneID(id string) *WorkflowResultDeleteOne {
	builder := c.Delete().Where(workflowresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowResultDeleteOne{builder}
}

// Query returns a query builder for WorkflowResult.
func (c *WorkflowResultClient) Query() *WorkflowResultQuery {
	return &WorkflowResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowResult},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowResult entity by its id.
func (c *WorkflowResultClient) Get(ctx context.Context, id string) (*WorkflowResult, error) {
	return c.Query().Where(workflowresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowResultClient) GetX(ctx context.Context, id string) *WorkflowResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryWorkflow queries the workflow edge of a WorkflowResult.
func (c *WorkflowResultClient) QueryWorkflow(_m *WorkflowResult) *WorkflowQuery {
	query := (&WorkflowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(workflowresult.Table, workflowresult.FieldID, id),
			sqlgraph.To(workflow.Table, workflow.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, workflowresult.WorkflowTable, workflowresult.WorkflowColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WorkflowResultClient) Hooks() []Hook {
	return c.hooks.WorkflowResult
}

// Interceptors returns the client interceptors.
func (c *WorkflowResultClient) Interceptors() []Interceptor {
	return c.inters.WorkflowResult
}

func (c *WorkflowResultClient) mutate(ctx context.Context, m *WorkflowResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowResult mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, ConductorAnalysis, DiagnosticRun, GuardianAnalysis, Phase,
		SteeringIntervention, Task, TaskResult, Ticket, TicketBlock, TicketComment,
		ValidationReview, Workflow, WorkflowResult []ent.Hook
	}
	inters struct {
		Agent, ConductorAnalysis, DiagnosticRun, GuardianAnalysis, Phase,
		SteeringIntervention, Task, TaskResult, Ticket, TicketBlock, TicketComment,
		ValidationReview, Workflow, WorkflowResult []ent.Interceptor
	}
)
