// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hephaestus-ai/hephaestus/ent/agent"
	"github.com/hephaestus-ai/hephaestus/ent/diagnosticrun"
	"github.com/hephaestus-ai/hephaestus/ent/phase"
	"github.com/hephaestus-ai/hephaestus/ent/task"
	"github.com/hephaestus-ai/hephaestus/ent/ticket"
	"github.com/hephaestus-ai/hephaestus/ent/workflow"
	"github.com/hephaestus-ai/hephaestus/ent/workflowresult"
)

// WorkflowCreate is the builder for creating a Workflow entity.
type WorkflowCreate struct {
	config
	mutation *WorkflowMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WorkflowCreate) SetName(v string) *WorkflowCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetGoalText sets the "goal_text" field.
func (_c *WorkflowCreate) SetGoalText(v string) *WorkflowCreate {
	_c.mutation.SetGoalText(v)
	return _c
}

// SetResultRequired sets the "result_required" field.
func (_c *WorkflowCreate) SetResultRequired(v bool) *WorkflowCreate {
	_c.mutation.SetResultRequired(v)
	return _c
}

// SetNillableResultRequired sets the "result_required" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableResultRequired(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetResultRequired(*v)
	}
	return _c
}

// SetResultCriteria sets the "result_criteria" field.
func (_c *WorkflowCreate) SetResultCriteria(v []string) *WorkflowCreate {
	_c.mutation.SetResultCriteria(v)
	return _c
}

// SetOnResultFound sets the "on_result_found" field.
func (_c *WorkflowCreate) SetOnResultFound(v workflow.OnResultFound) *WorkflowCreate {
	_c.mutation.SetOnResultFound(v)
	return _c
}

// SetNillableOnResultFound sets the "on_result_found" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableOnResultFound(v *workflow.OnResultFound) *WorkflowCreate {
	if v != nil {
		_c.SetOnResultFound(*v)
	}
	return _c
}

// SetBoardConfig sets the "board_config" field.
func (_c *WorkflowCreate) SetBoardConfig(v map[string]interface{}) *WorkflowCreate {
	_c.mutation.SetBoardConfig(v)
	return _c
}

// SetTicketHumanReview sets the "ticket_human_review" field.
func (_c *WorkflowCreate) SetTicketHumanReview(v bool) *WorkflowCreate {
	_c.mutation.SetTicketHumanReview(v)
	return _c
}

// SetNillableTicketHumanReview sets the "ticket_human_review" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableTicketHumanReview(v *bool) *WorkflowCreate {
	if v != nil {
		_c.SetTicketHumanReview(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowCreate) SetStatus(v workflow.Status) *WorkflowCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableStatus(v *workflow.Status) *WorkflowCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowCreate) SetCreatedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCreatedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *WorkflowCreate) SetCompletedAt(v time.Time) *WorkflowCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *WorkflowCreate) SetNillableCompletedAt(v *time.Time) *WorkflowCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowCreate) SetID(v string) *WorkflowCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddPhaseIDs adds the "phases" edge to the Phase entity by IDs.
func (_c *WorkflowCreate) AddPhaseIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddPhaseIDs(ids...)
	return _c
}

// AddPhases adds the "phases" edges to the Phase entity.
func (_c *WorkflowCreate) AddPhases(v ...*Phase) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhaseIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *WorkflowCreate) AddTaskIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *WorkflowCreate) AddTasks(v ...*Task) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_c *WorkflowCreate) AddAgentIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_c *WorkflowCreate) AddAgents(v ...*Agent) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// AddTicketIDs adds the "tickets" edge to the Ticket entity by IDs.
func (_c *WorkflowCreate) AddTicketIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddTicketIDs(ids...)
	return _c
}

// AddTickets adds the "tickets" edges to the Ticket entity.
func (_c *WorkflowCreate) AddTickets(v ...*Ticket) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTicketIDs(ids...)
}

// AddResultIDs adds the "results" edge to the WorkflowResult entity by IDs.
func (_c *WorkflowCreate) AddResultIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the WorkflowResult entity.
func (_c *WorkflowCreate) AddResults(v ...*WorkflowResult) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// AddDiagnosticRunIDs adds the "diagnostic_runs" edge to the DiagnosticRun entity by IDs.
func (_c *WorkflowCreate) AddDiagnosticRunIDs(ids ...string) *WorkflowCreate {
	_c.mutation.AddDiagnosticRunIDs(ids...)
	return _c
}

// AddDiagnosticRuns adds the "diagnostic_runs" edges to the DiagnosticRun entity.
func (_c *WorkflowCreate) AddDiagnosticRuns(v ...*DiagnosticRun) *WorkflowCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDiagnosticRunIDs(ids...)
}

// Mutation returns the WorkflowMutation object of the builder.
func (_c *WorkflowCreate) Mutation() *WorkflowMutation {
	return _c.mutation
}

// Save creates the Workflow in the database.
func (_c *WorkflowCreate) Save(ctx context.Context) (*Workflow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowCreate) SaveX(ctx context.Context) *Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowCreate) defaults() {
	if _, ok := _c.mutation.ResultRequired(); !ok {
		v := workflow.DefaultResultRequired
		_c.mutation.SetResultRequired(v)
	}
	if _, ok := _c.mutation.OnResultFound(); !ok {
		v := workflow.DefaultOnResultFound
		_c.mutation.SetOnResultFound(v)
	}
	if _, ok := _c.mutation.TicketHumanReview(); !ok {
		v := workflow.DefaultTicketHumanReview
		_c.mutation.SetTicketHumanReview(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := workflow.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflow.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Workflow.name"`)}
	}
	if _, ok := _c.mutation.GoalText(); !ok {
		return &ValidationError{Name: "goal_text", err: errors.New(`ent: missing required field "Workflow.goal_text"`)}
	}
	if _, ok := _c.mutation.ResultRequired(); !ok {
		return &ValidationError{Name: "result_required", err: errors.New(`ent: missing required field "Workflow.result_required"`)}
	}
	if _, ok := _c.mutation.OnResultFound(); !ok {
		return &ValidationError{Name: "on_result_found", err: errors.New(`ent: missing required field "Workflow.on_result_found"`)}
	}
	if v, ok := _c.mutation.OnResultFound(); ok {
		if err := workflow.OnResultFoundValidator(v); err != nil {
			return &ValidationError{Name: "on_result_found", err: fmt.Errorf(`ent: validator failed for field "Workflow.on_result_found": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TicketHumanReview(); !ok {
		return &ValidationError{Name: "ticket_human_review", err: errors.New(`ent: missing required field "Workflow.ticket_human_review"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Workflow.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflow.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Workflow.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Workflow.created_at"`)}
	}
	return nil
}

func (_c *WorkflowCreate) sqlSave(ctx context.Context) (*Workflow, error) {
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
			return nil, fmt.Errorf("unexpected Workflow.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowCreate) createSpec() (*Workflow, *sqlgraph.CreateSpec) {
	var (
		_node = &Workflow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflow.Table, sqlgraph.NewFieldSpec(workflow.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(workflow.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GoalText(); ok {
		_spec.SetField(workflow.FieldGoalText, field.TypeString, value)
		_node.GoalText = value
	}
	if value, ok := _c.mutation.ResultRequired(); ok {
		_spec.SetField(workflow.FieldResultRequired, field.TypeBool, value)
		_node.ResultRequired = value
	}
	if value, ok := _c.mutation.ResultCriteria(); ok {
		_spec.SetField(workflow.FieldResultCriteria, field.TypeJSON, value)
		_node.ResultCriteria = value
	}
	if value, ok := _c.mutation.OnResultFound(); ok {
		_spec.SetField(workflow.FieldOnResultFound, field.TypeEnum, value)
		_node.OnResultFound = value
	}
	if value, ok := _c.mutation.BoardConfig(); ok {
		_spec.SetField(workflow.FieldBoardConfig, field.TypeJSON, value)
		_node.BoardConfig = value
	}
	if value, ok := _c.mutation.TicketHumanReview(); ok {
		_spec.SetField(workflow.FieldTicketHumanReview, field.TypeBool, value)
		_node.TicketHumanReview = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflow.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflow.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(workflow.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.PhasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.PhasesTable,
			Columns: []string{workflow.PhasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TasksTable,
			Columns: []string{workflow.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.AgentsTable,
			Columns: []string{workflow.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TicketsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.TicketsTable,
			Columns: []string{workflow.TicketsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.ResultsTable,
			Columns: []string{workflow.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DiagnosticRunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflow.DiagnosticRunsTable,
			Columns: []string{workflow.DiagnosticRunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowCreateBulk is the builder for creating many Workflow entities in bulk.
type WorkflowCreateBulk struct {
	config
	err      error
	builders []*WorkflowCreate
}

// Save creates the Workflow entities in the database.
func (_c *WorkflowCreateBulk) Save(ctx context.Context) ([]*Workflow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Workflow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowMutation)
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
func (_c *WorkflowCreateBulk) SaveX(ctx context.Context) []*Workflow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
